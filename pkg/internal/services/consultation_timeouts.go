package services

import (
	"context"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

type pendingInvitation struct {
	conferenceID string
	roomLabel    string
	startedAt    time.Time
}

// ConsultationTimeouts gives up on invitations that were not answered in time by
// answering Rejected on behalf of the first invited participant who stayed silent.
type ConsultationTimeouts struct {
	conferences *ConferenceService
	tracker     *ConsultationTracker
	notifier    *ConsultationNotifier
	timeout     time.Duration
	pending     sync.Map
	now         func() time.Time
}

func NewConsultationTimeouts(conferences *ConferenceService, tracker *ConsultationTracker, notifier *ConsultationNotifier, timeout time.Duration) *ConsultationTimeouts {
	return &ConsultationTimeouts{
		conferences: conferences,
		tracker:     tracker,
		notifier:    notifier,
		timeout:     timeout,
		now:         time.Now,
	}
}

func (v *ConsultationTimeouts) Track(invitationID, conferenceID, roomLabel string) {
	v.pending.Store(invitationID, pendingInvitation{
		conferenceID: conferenceID,
		roomLabel:    roomLabel,
		startedAt:    v.now(),
	})
}

func (v *ConsultationTimeouts) Forget(invitationID string) {
	v.pending.Delete(invitationID)
}

func (v *ConsultationTimeouts) Pending() int {
	count := 0
	v.pending.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// DoSweep expires overdue invitations and returns how many were rejected.
func (v *ConsultationTimeouts) DoSweep(ctx context.Context) int {
	deadline := v.now().Add(-v.timeout)
	log.Debug().Time("deadline", deadline).Msg("Now sweeping pending consultation invitations...")

	var expired int
	v.pending.Range(func(key, value any) bool {
		invitationID := key.(string)
		pending := value.(pendingInvitation)
		if pending.startedAt.After(deadline) {
			return true
		}

		v.pending.Delete(invitationID)
		if err := v.expire(ctx, invitationID, pending); err != nil {
			log.Error().Err(err).Str("invitation", invitationID).Msg("An error occurred when expiring consultation invitation...")
		} else {
			expired++
		}
		return true
	})

	log.Debug().Int("expired", expired).Msg("Sweep pending consultation invitations accomplished.")
	return expired
}

func (v *ConsultationTimeouts) expire(ctx context.Context, invitationID string, pending pendingInvitation) error {
	invitation, err := v.tracker.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	} else if invitation == nil || invitation.HaveAllResponded() {
		return nil
	}

	conference, err := v.conferences.GetConference(ctx, pending.conferenceID)
	if err != nil {
		return err
	}

	// A rejection is already repeated for every linked participant, one silent member is enough.
	for _, participantID := range invitation.InvitedParticipantIDs {
		if invitation.Responses[participantID] == models.ConsultationAnswerNone {
			return v.notifier.NotifyConsultationResponse(ctx, conference, invitationID, pending.roomLabel, participantID, models.ConsultationAnswerRejected)
		}
	}
	return nil
}
