package models

type VideoControlStatus struct {
	IsSpotlighted     bool `json:"is_spotlighted"`
	IsLocalAudioMuted bool `json:"is_local_audio_muted"`
	IsLocalVideoMuted bool `json:"is_local_video_muted"`
}

// MediaStatus is what a client device reports about its own microphone and camera.
type MediaStatus struct {
	IsLocalAudioMuted bool `json:"is_local_audio_muted"`
	IsLocalVideoMuted bool `json:"is_local_video_muted"`
}

// VideoControlState maps participant id to its flags within one conference.
type VideoControlState map[string]VideoControlStatus
