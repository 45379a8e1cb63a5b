package models

import (
	"time"

	"github.com/samber/lo"
)

type ConsultationAnswer string

const (
	ConsultationAnswerNone         = ConsultationAnswer("None")
	ConsultationAnswerAccepted     = ConsultationAnswer("Accepted")
	ConsultationAnswerRejected     = ConsultationAnswer("Rejected")
	ConsultationAnswerTransferring = ConsultationAnswer("Transferring")
)

// EmptyInvitationID is returned when tracking could not start because the participant is unknown.
const EmptyInvitationID = ""

// ConsultationInvitation tracks the answers of every participant who has to agree
// to a room transfer. InvitedParticipantIDs never changes after creation.
type ConsultationInvitation struct {
	InvitationID              string                        `json:"invitation_id"`
	ConferenceID              string                        `json:"conference_id"`
	RequestedForParticipantID string                        `json:"requested_for_participant_id"`
	RoomLabel                 string                        `json:"room_label"`
	InvitedParticipantIDs     []string                      `json:"invited_participant_ids"`
	Responses                 map[string]ConsultationAnswer `json:"responses"`
	CreatedAt                 time.Time                     `json:"created_at"`
}

func NewConsultationInvitation(id, conferenceID, roomLabel string, requestedFor Participant) ConsultationInvitation {
	invited := lo.Uniq(append([]string{requestedFor.ID}, requestedFor.InterpreterLinkIDs()...))
	responses := make(map[string]ConsultationAnswer, len(invited))
	for _, participantID := range invited {
		responses[participantID] = ConsultationAnswerNone
	}

	return ConsultationInvitation{
		InvitationID:              id,
		ConferenceID:              conferenceID,
		RequestedForParticipantID: requestedFor.ID,
		RoomLabel:                 roomLabel,
		InvitedParticipantIDs:     invited,
		Responses:                 responses,
		CreatedAt:                 time.Now(),
	}
}

func (v ConsultationInvitation) IsInvited(participantID string) bool {
	return lo.Contains(v.InvitedParticipantIDs, participantID)
}

func (v ConsultationInvitation) answerOf(participantID string) ConsultationAnswer {
	if answer, ok := v.Responses[participantID]; ok && len(answer) > 0 {
		return answer
	}
	return ConsultationAnswerNone
}

// HaveAllAccepted is vacuously true for an empty invited set.
func (v ConsultationInvitation) HaveAllAccepted() bool {
	return lo.EveryBy(v.InvitedParticipantIDs, func(item string) bool {
		return v.answerOf(item) == ConsultationAnswerAccepted
	})
}

func (v ConsultationInvitation) HaveAllResponded() bool {
	return lo.EveryBy(v.InvitedParticipantIDs, func(item string) bool {
		return v.answerOf(item) != ConsultationAnswerNone
	})
}
