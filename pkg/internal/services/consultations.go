package services

import (
	"context"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// ConsultationService drives consultation requests coming from the API.
type ConsultationService struct {
	conferences *ConferenceService
	tracker     *ConsultationTracker
	notifier    *ConsultationNotifier
	timeouts    *ConsultationTimeouts
}

// NewConsultationService accepts nil timeouts, pending invitations then wait forever.
func NewConsultationService(conferences *ConferenceService, tracker *ConsultationTracker, notifier *ConsultationNotifier, timeouts *ConsultationTimeouts) *ConsultationService {
	return &ConsultationService{
		conferences: conferences,
		tracker:     tracker,
		notifier:    notifier,
		timeouts:    timeouts,
	}
}

func (v *ConsultationService) RequestConsultation(ctx context.Context, conferenceID, roomLabel, requestedBy, requestedFor string) (string, error) {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return models.EmptyInvitationID, err
	}

	invitationID, err := v.notifier.NotifyConsultationRequest(ctx, conference, roomLabel, requestedBy, requestedFor)
	if err != nil {
		return invitationID, err
	}
	if invitationID != models.EmptyInvitationID && v.timeouts != nil {
		v.timeouts.Track(invitationID, conferenceID, roomLabel)
	}

	return invitationID, nil
}

// RespondToConsultation records the answer, once the whole linked group has accepted
// every member is announced as transferring into the room.
func (v *ConsultationService) RespondToConsultation(ctx context.Context, conferenceID, invitationID, roomLabel, requestedFor string, answer models.ConsultationAnswer) error {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return err
	}

	if err := v.notifier.NotifyConsultationResponse(ctx, conference, invitationID, roomLabel, requestedFor, answer); err != nil {
		return err
	}

	invitation, err := v.tracker.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	} else if invitation == nil {
		return nil
	}

	if invitation.HaveAllResponded() && v.timeouts != nil {
		v.timeouts.Forget(invitationID)
	}
	if answer == models.ConsultationAnswerAccepted && invitation.HaveAllAccepted() {
		for _, participantID := range invitation.InvitedParticipantIDs {
			v.notifier.NotifyParticipantTransferring(ctx, conference, participantID, invitation.RoomLabel)
		}
		log.Info().
			Str("conference", conferenceID).
			Str("invitation", invitationID).
			Str("room", invitation.RoomLabel).
			Msg("Consultation accepted by every linked participant...")
	}

	return nil
}

func (v *ConsultationService) GetInvitation(ctx context.Context, invitationID string) (*models.ConsultationInvitation, error) {
	return v.tracker.GetInvitation(ctx, invitationID)
}

func (v *ConsultationService) LockRoom(ctx context.Context, conferenceID, roomLabel string, locked bool) (models.Room, error) {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return models.Room{}, err
	}

	conference.SetRoomLocked(roomLabel, locked)
	if err := v.conferences.UpdateConference(ctx, conference); err != nil {
		return models.Room{}, err
	}

	room := conference.RoomSnapshot(roomLabel)
	v.notifier.NotifyRoomUpdate(ctx, conference, room)
	return room, nil
}
