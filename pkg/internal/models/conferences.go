package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type ConferenceStatus string

const (
	ConferenceStatusNone      = ConferenceStatus("None")
	ConferenceStatusInSession = ConferenceStatus("InSession")
	ConferenceStatusPaused    = ConferenceStatus("Paused")
	ConferenceStatusSuspended = ConferenceStatus("Suspended")
	ConferenceStatusClosed    = ConferenceStatus("Closed")
)

// Conference is the cached snapshot of a single hearing session.
// Participants, endpoints and rooms reference each other by id or label only.
type Conference struct {
	ID            string           `json:"id"`
	HearingID     string           `json:"hearing_id"`
	CaseName      string           `json:"case_name"`
	CaseNumber    string           `json:"case_number"`
	ScheduledAt   time.Time        `json:"scheduled_at"`
	Status        ConferenceStatus `json:"status"`
	Participants  []Participant    `json:"participants"`
	Endpoints     []Endpoint       `json:"endpoints"`
	CivilianRooms []CivilianRoom   `json:"civilian_rooms"`
	Rooms         []Room           `json:"rooms"`
	HearingLayout *HearingLayout   `json:"hearing_layout"`
	ClosedAt      *time.Time       `json:"closed_at"`
}

func (v Conference) GetParticipant(id string) (Participant, bool) {
	return lo.Find(v.Participants, func(item Participant) bool {
		return item.ID == id
	})
}

func (v Conference) GetEndpoint(id string) (Endpoint, bool) {
	return lo.Find(v.Endpoints, func(item Endpoint) bool {
		return item.ID == id
	})
}

func (v Conference) GetRoom(label string) (Room, bool) {
	return lo.Find(v.Rooms, func(item Room) bool {
		return strings.EqualFold(item.Label, label)
	})
}

// UpdateParticipant replaces the participant with the same id, reports false when it is absent.
func (v *Conference) UpdateParticipant(participant Participant) bool {
	_, idx, ok := lo.FindIndexOf(v.Participants, func(item Participant) bool {
		return item.ID == participant.ID
	})
	if !ok {
		return false
	}
	v.Participants[idx] = participant
	return true
}

func (v *Conference) UpdateEndpoint(endpoint Endpoint) bool {
	_, idx, ok := lo.FindIndexOf(v.Endpoints, func(item Endpoint) bool {
		return item.ID == endpoint.ID
	})
	if !ok {
		return false
	}
	v.Endpoints[idx] = endpoint
	return true
}

// UpsertRoom returns the room with the given label, creating an unlocked one when missing.
func (v *Conference) UpsertRoom(label string) Room {
	if room, ok := v.GetRoom(label); ok {
		return room
	}
	room := Room{Label: label}
	v.Rooms = append(v.Rooms, room)
	return room
}

func (v *Conference) SetRoomLocked(label string, locked bool) Room {
	v.UpsertRoom(label)
	for idx := range v.Rooms {
		if strings.EqualFold(v.Rooms[idx].Label, label) {
			v.Rooms[idx].Locked = locked
			return v.Rooms[idx]
		}
	}
	return Room{Label: label, Locked: locked}
}

// RoomSnapshot fills in the current occupants of a room from participant and endpoint locations.
func (v Conference) RoomSnapshot(label string) Room {
	room, ok := v.GetRoom(label)
	if !ok {
		room = Room{Label: label}
	}
	room.Participants = nil
	for _, participant := range v.Participants {
		if strings.EqualFold(participant.CurrentRoom, label) {
			room.Participants = append(room.Participants, participant.ID)
		}
	}
	for _, endpoint := range v.Endpoints {
		if strings.EqualFold(endpoint.CurrentRoom, label) {
			room.Participants = append(room.Participants, endpoint.ID)
		}
	}
	return room
}

// Hosts returns the participants allowed to drive hearing controls.
func (v Conference) Hosts() []Participant {
	return lo.Filter(v.Participants, func(item Participant, _ int) bool {
		return item.IsHost()
	})
}

func (v Conference) IsClosed() bool {
	return v.Status == ConferenceStatusClosed
}

type EndpointStatus string

const (
	EndpointStatusNotYetJoined   = EndpointStatus("NotYetJoined")
	EndpointStatusConnected      = EndpointStatus("Connected")
	EndpointStatusDisconnected   = EndpointStatus("Disconnected")
	EndpointStatusInConsultation = EndpointStatus("InConsultation")
)

type Endpoint struct {
	ID              string         `json:"id"`
	DisplayName     string         `json:"display_name"`
	SipAddress      string         `json:"sip_address"`
	Status          EndpointStatus `json:"status"`
	DefenceAdvocate string         `json:"defence_advocate"`
	CurrentRoom     string         `json:"current_room"`
}

// CivilianRoom is a persistent sub-room, an interpreter pair's room for example.
type CivilianRoom struct {
	ID           int64    `json:"id"`
	RoomLabel    string   `json:"room_label"`
	Participants []string `json:"participants"`
}

type Room struct {
	Label        string   `json:"label"`
	Locked       bool     `json:"locked"`
	Participants []string `json:"participants"`
}

const (
	RoomWaiting = "WaitingRoom"
	RoomHearing = "HearingRoom"
)

// IsConsultationRoom reports whether the label names an ad hoc or civilian room rather than a fixed one.
func IsConsultationRoom(label string) bool {
	return len(label) > 0 && !strings.EqualFold(label, RoomWaiting) && !strings.EqualFold(label, RoomHearing)
}

// Clone copies the snapshot deeply enough that the copy can be mutated independently.
func (v Conference) Clone() Conference {
	out := v
	out.Participants = cloneSlice(v.Participants)
	for idx := range out.Participants {
		out.Participants[idx].LinkedParticipants = cloneSlice(out.Participants[idx].LinkedParticipants)
	}
	out.Endpoints = cloneSlice(v.Endpoints)
	out.CivilianRooms = cloneSlice(v.CivilianRooms)
	for idx := range out.CivilianRooms {
		out.CivilianRooms[idx].Participants = cloneSlice(out.CivilianRooms[idx].Participants)
	}
	out.Rooms = cloneSlice(v.Rooms)
	for idx := range out.Rooms {
		out.Rooms[idx].Participants = cloneSlice(out.Rooms[idx].Participants)
	}
	if v.HearingLayout != nil {
		out.HearingLayout = lo.ToPtr(*v.HearingLayout)
	}
	if v.ClosedAt != nil {
		out.ClosedAt = lo.ToPtr(*v.ClosedAt)
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}
