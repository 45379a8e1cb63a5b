package services

import (
	"context"
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ConsultationTracker keeps the consensus record of every room transfer request.
// The invitation itself is written once, each answer lives under its own key so
// concurrent responders never overwrite each other.
type ConsultationTracker struct {
	marshal *marshaler.Marshaler
	ttl     time.Duration
}

func NewConsultationTracker(marshal *marshaler.Marshaler, ttl time.Duration) *ConsultationTracker {
	return &ConsultationTracker{marshal: marshal, ttl: ttl}
}

// StartTrackingInvitation returns models.EmptyInvitationID when the participant is not in the conference.
func (v *ConsultationTracker) StartTrackingInvitation(ctx context.Context, conference models.Conference, roomLabel, requestedForID string) (string, error) {
	participant, ok := conference.GetParticipant(requestedForID)
	if !ok {
		return models.EmptyInvitationID, nil
	}

	invitation := models.NewConsultationInvitation(uuid.NewString(), conference.ID, roomLabel, participant)
	if err := v.marshal.Set(
		ctx,
		cache.InvitationKey(invitation.InvitationID),
		invitation,
		store.WithExpiration(v.ttl),
		store.WithTags([]string{cache.ConferenceTag(conference.ID)}),
	); err != nil {
		return models.EmptyInvitationID, fmt.Errorf("unable to store consultation invitation: %w", err)
	}

	return invitation.InvitationID, nil
}

func (v *ConsultationTracker) getRecord(ctx context.Context, invitationID string) (*models.ConsultationInvitation, error) {
	if invitationID == models.EmptyInvitationID {
		return nil, nil
	}

	val, err := v.marshal.Get(ctx, cache.InvitationKey(invitationID), new(models.ConsultationInvitation))
	if cache.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return val.(*models.ConsultationInvitation), nil
}

func (v *ConsultationTracker) getResponse(ctx context.Context, invitationID, participantID string) (models.ConsultationAnswer, error) {
	val, err := v.marshal.Get(ctx, cache.InvitationResponseKey(invitationID, participantID), new(models.ConsultationAnswer))
	if cache.IsNotFound(err) {
		return models.ConsultationAnswerNone, nil
	} else if err != nil {
		return models.ConsultationAnswerNone, err
	}
	return *val.(*models.ConsultationAnswer), nil
}

// GetInvitation returns nil for an unknown or empty invitation id.
func (v *ConsultationTracker) GetInvitation(ctx context.Context, invitationID string) (*models.ConsultationInvitation, error) {
	invitation, err := v.getRecord(ctx, invitationID)
	if err != nil || invitation == nil {
		return invitation, err
	}

	invitation.Responses = make(map[string]models.ConsultationAnswer, len(invitation.InvitedParticipantIDs))
	for _, participantID := range invitation.InvitedParticipantIDs {
		answer, err := v.getResponse(ctx, invitationID, participantID)
		if err != nil {
			return nil, err
		}
		invitation.Responses[participantID] = answer
	}

	return invitation, nil
}

// UpdateConsultationResponse records one answer. Unknown invitations are ignored, and so are
// answers from participants outside the invited set.
func (v *ConsultationTracker) UpdateConsultationResponse(ctx context.Context, invitationID, participantID string, answer models.ConsultationAnswer) error {
	invitation, err := v.getRecord(ctx, invitationID)
	if err != nil {
		return err
	} else if invitation == nil {
		return nil
	} else if !invitation.IsInvited(participantID) {
		log.Warn().
			Str("invitation", invitationID).
			Str("participant", participantID).
			Msg("Ignored consultation response from a participant who was not invited...")
		return nil
	}

	return v.marshal.Set(
		ctx,
		cache.InvitationResponseKey(invitationID, participantID),
		answer,
		store.WithExpiration(v.ttl),
		store.WithTags([]string{cache.ConferenceTag(invitation.ConferenceID)}),
	)
}

// HaveAllParticipantsAccepted is true for an unknown invitation, it never blocks a transfer.
func (v *ConsultationTracker) HaveAllParticipantsAccepted(ctx context.Context, invitationID string) (bool, error) {
	invitation, err := v.GetInvitation(ctx, invitationID)
	if err != nil {
		return false, err
	} else if invitation == nil {
		return true, nil
	}
	return invitation.HaveAllAccepted(), nil
}

func (v *ConsultationTracker) HaveAllParticipantsResponded(ctx context.Context, invitationID string) (bool, error) {
	invitation, err := v.GetInvitation(ctx, invitationID)
	if err != nil {
		return false, err
	} else if invitation == nil {
		return true, nil
	}
	return invitation.HaveAllResponded(), nil
}
