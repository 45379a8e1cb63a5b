package models

import "time"

type EventType string

// Inbound events reported by the video platform.
const (
	EventTypeStart                = EventType("Start")
	EventTypePause                = EventType("Pause")
	EventTypeSuspend              = EventType("Suspend")
	EventTypeClose                = EventType("Close")
	EventTypeJoined               = EventType("Joined")
	EventTypeDisconnected         = EventType("Disconnected")
	EventTypeTransfer             = EventType("Transfer")
	EventTypeEndpointJoined       = EventType("EndpointJoined")
	EventTypeEndpointDisconnected = EventType("EndpointDisconnected")
	EventTypeEndpointTransfer     = EventType("EndpointTransfer")
)

type ConferenceEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type" validate:"required"`
	ConferenceID  string    `json:"conference_id" validate:"required"`
	ParticipantID string    `json:"participant_id"`
	TransferFrom  string    `json:"transfer_from"`
	TransferTo    string    `json:"transfer_to"`
	Reason        string    `json:"reason"`
	TimeStamp     time.Time `json:"time_stamp"`
}

// Outbound actions published to client groups.
const (
	ActionRequestedConsultation  = "RequestedConsultationMessage"
	ActionConsultationResponse   = "ConsultationRequestResponseMessage"
	ActionRoomUpdate             = "RoomUpdate"
	ActionHearingLayoutChanged   = "HearingLayoutChanged"
	ActionEndpointsUpdated       = "EndpointsUpdated"
	ActionNewConferenceAdded     = "NewConferenceAddedMessage"
	ActionParticipantStatus      = "ParticipantStatusMessage"
	ActionEndpointStatus         = "EndpointStatusMessage"
	ActionConferenceStatus       = "ConferenceStatusMessage"
	ActionParticipantMediaStatus = "ParticipantMediaStatusMessage"
)

const (
	GroupVhOfficers   = "VhOfficers"
	GroupStaffMembers = "StaffMembers"
)

type RequestedConsultationMessage struct {
	ConferenceID string `json:"conference_id"`
	InvitationID string `json:"invitation_id"`
	RoomLabel    string `json:"room_label"`
	RequestedBy  string `json:"requested_by"`
	RequestedFor string `json:"requested_for"`
}

type ConsultationRequestResponseMessage struct {
	ConferenceID      string             `json:"conference_id"`
	InvitationID      string             `json:"invitation_id"`
	RoomLabel         string             `json:"room_label"`
	RequestedFor      string             `json:"requested_for"`
	Answer            ConsultationAnswer `json:"answer"`
	ResponseInitiator string             `json:"response_initiator"`
}

type RoomUpdateMessage struct {
	ConferenceID string `json:"conference_id"`
	Room         Room   `json:"room"`
}

type HearingLayoutChangedMessage struct {
	ConferenceID string        `json:"conference_id"`
	ChangedBy    string        `json:"changed_by"`
	NewLayout    HearingLayout `json:"new_layout"`
	OldLayout    HearingLayout `json:"old_layout"`
}

type EndpointsUpdatedMessage struct {
	ConferenceID string     `json:"conference_id"`
	Endpoints    []Endpoint `json:"endpoints"`
}

type NewConferenceAddedMessage struct {
	ConferenceID string `json:"conference_id"`
}

type ParticipantStatusMessage struct {
	ConferenceID  string            `json:"conference_id"`
	ParticipantID string            `json:"participant_id"`
	Username      string            `json:"username"`
	Status        ParticipantStatus `json:"status"`
	CurrentRoom   string            `json:"current_room"`
}

type EndpointStatusMessage struct {
	ConferenceID string         `json:"conference_id"`
	EndpointID   string         `json:"endpoint_id"`
	Status       EndpointStatus `json:"status"`
	CurrentRoom  string         `json:"current_room"`
}

type ConferenceStatusMessage struct {
	ConferenceID string           `json:"conference_id"`
	Status       ConferenceStatus `json:"status"`
}

type ParticipantMediaStatusMessage struct {
	ConferenceID  string             `json:"conference_id"`
	ParticipantID string             `json:"participant_id"`
	Status        VideoControlStatus `json:"status"`
}
