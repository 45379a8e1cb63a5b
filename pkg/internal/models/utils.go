package models

import jsoniter "github.com/json-iterator/go"

// WebSocketPackage is the frame delivered to every socket of a group.
type WebSocketPackage struct {
	Action  string `json:"w"`
	Message string `json:"m,omitempty"`
	Payload any    `json:"p"`
}

func (v WebSocketPackage) Marshal() []byte {
	data, _ := jsoniter.Marshal(v)
	return data
}

func WebSocketPackageFromError(err error) WebSocketPackage {
	return WebSocketPackage{
		Action:  "error",
		Message: err.Error(),
	}
}
