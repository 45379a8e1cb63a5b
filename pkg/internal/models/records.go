package models

import (
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ConferenceRecord is the persisted hearing the cache hydrates from.
type ConferenceRecord struct {
	BaseModel

	ExternalID    string               `json:"external_id" gorm:"uniqueIndex"`
	HearingID     string               `json:"hearing_id"`
	CaseName      string               `json:"case_name"`
	CaseNumber    string               `json:"case_number"`
	ScheduledAt   time.Time            `json:"scheduled_at"`
	Status        string               `json:"status"`
	HearingLayout *string              `json:"hearing_layout"`
	Participants  []ParticipantRecord  `json:"participants" gorm:"foreignKey:ConferenceID"`
	Endpoints     []EndpointRecord     `json:"endpoints" gorm:"foreignKey:ConferenceID"`
	CivilianRooms []CivilianRoomRecord `json:"civilian_rooms" gorm:"foreignKey:ConferenceID"`
}

type ParticipantRecord struct {
	BaseModel

	ExternalID         string                                `json:"external_id" gorm:"index"`
	ConferenceID       uint                                  `json:"conference_id"`
	Username           string                                `json:"username"`
	DisplayName        string                                `json:"display_name"`
	Role               string                                `json:"role"`
	HearingRole        string                                `json:"hearing_role"`
	Status             string                                `json:"status"`
	CurrentRoom        string                                `json:"current_room"`
	LinkedParticipants datatypes.JSONSlice[LinkedParticipant] `json:"linked_participants"`
}

type EndpointRecord struct {
	BaseModel

	ExternalID      string `json:"external_id" gorm:"index"`
	ConferenceID    uint   `json:"conference_id"`
	DisplayName     string `json:"display_name"`
	SipAddress      string `json:"sip_address"`
	Status          string `json:"status"`
	DefenceAdvocate string `json:"defence_advocate"`
	CurrentRoom     string `json:"current_room"`
}

type CivilianRoomRecord struct {
	BaseModel

	ConferenceID uint                        `json:"conference_id"`
	RoomLabel    string                      `json:"room_label"`
	Participants datatypes.JSONSlice[string] `json:"participants"`
}

func (v ConferenceRecord) ToConference() Conference {
	conference := Conference{
		ID:          v.ExternalID,
		HearingID:   v.HearingID,
		CaseName:    v.CaseName,
		CaseNumber:  v.CaseNumber,
		ScheduledAt: v.ScheduledAt,
		Status:      ConferenceStatus(v.Status),
		Participants: lo.Map(v.Participants, func(item ParticipantRecord, _ int) Participant {
			return Participant{
				ID:                 item.ExternalID,
				Username:           item.Username,
				DisplayName:        item.DisplayName,
				Role:               Role(item.Role),
				HearingRole:        item.HearingRole,
				Status:             ParticipantStatus(item.Status),
				CurrentRoom:        item.CurrentRoom,
				LinkedParticipants: item.LinkedParticipants,
			}
		}),
		Endpoints: lo.Map(v.Endpoints, func(item EndpointRecord, _ int) Endpoint {
			return Endpoint{
				ID:              item.ExternalID,
				DisplayName:     item.DisplayName,
				SipAddress:      item.SipAddress,
				Status:          EndpointStatus(item.Status),
				DefenceAdvocate: item.DefenceAdvocate,
				CurrentRoom:     item.CurrentRoom,
			}
		}),
		CivilianRooms: lo.Map(v.CivilianRooms, func(item CivilianRoomRecord, _ int) CivilianRoom {
			return CivilianRoom{
				ID:           int64(item.ID),
				RoomLabel:    item.RoomLabel,
				Participants: item.Participants,
			}
		}),
	}
	if len(conference.Status) == 0 {
		conference.Status = ConferenceStatusNone
	}
	if v.HearingLayout != nil && len(*v.HearingLayout) > 0 {
		conference.HearingLayout = lo.ToPtr(HearingLayout(*v.HearingLayout))
	}
	return conference
}
