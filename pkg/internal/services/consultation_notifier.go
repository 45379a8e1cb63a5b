package services

import (
	"context"
	"fmt"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ConsultationNotifier decides who hears about a consultation and in which order.
type ConsultationNotifier struct {
	tracker   *ConsultationTracker
	publisher Publisher
}

func NewConsultationNotifier(tracker *ConsultationTracker, publisher Publisher) *ConsultationNotifier {
	return &ConsultationNotifier{tracker: tracker, publisher: publisher}
}

// broadcastToParticipants publishes to the individual group of every participant in the conference.
func broadcastToParticipants(publisher Publisher, conference models.Conference, action string, payload any) {
	groups := lo.Uniq(lo.FilterMap(conference.Participants, func(item models.Participant, _ int) (string, bool) {
		return item.GroupName(), len(item.GroupName()) > 0
	}))
	for _, group := range groups {
		publisher.PublishToGroup(group, action, payload)
	}
}

func broadcastToHosts(publisher Publisher, conference models.Conference, action string, payload any) {
	for _, host := range conference.Hosts() {
		if len(host.GroupName()) > 0 {
			publisher.PublishToGroup(host.GroupName(), action, payload)
		}
	}
}

// NotifyConsultationRequest starts tracking the request and tells every participant about it,
// once for the requested participant and once more per linked participant.
func (v *ConsultationNotifier) NotifyConsultationRequest(ctx context.Context, conference models.Conference, roomLabel, requestedBy, requestedFor string) (string, error) {
	invitationID, err := v.tracker.StartTrackingInvitation(ctx, conference, roomLabel, requestedFor)
	if err != nil {
		return models.EmptyInvitationID, err
	}

	message := models.RequestedConsultationMessage{
		ConferenceID: conference.ID,
		InvitationID: invitationID,
		RoomLabel:    roomLabel,
		RequestedBy:  requestedBy,
		RequestedFor: requestedFor,
	}
	broadcastToParticipants(v.publisher, conference, models.ActionRequestedConsultation, message)

	if participant, ok := conference.GetParticipant(requestedFor); ok {
		for _, link := range participant.LinkedParticipants {
			linked := message
			linked.RequestedFor = link.LinkedID
			broadcastToParticipants(v.publisher, conference, models.ActionRequestedConsultation, linked)
		}
	}

	return invitationID, nil
}

// NotifyConsultationResponse records an answer and publishes it. Once the linked group has
// reached a terminal outcome the answer is repeated for every linked participant.
func (v *ConsultationNotifier) NotifyConsultationResponse(ctx context.Context, conference models.Conference, invitationID, roomLabel, requestedFor string, answer models.ConsultationAnswer) error {
	message := models.ConsultationRequestResponseMessage{
		ConferenceID:      conference.ID,
		InvitationID:      invitationID,
		RoomLabel:         roomLabel,
		RequestedFor:      requestedFor,
		Answer:            answer,
		ResponseInitiator: requestedFor,
	}

	if _, ok := conference.GetEndpoint(requestedFor); ok {
		broadcastToParticipants(v.publisher, conference, models.ActionConsultationResponse, message)
		return nil
	}

	participant, ok := conference.GetParticipant(requestedFor)
	if !ok {
		return fmt.Errorf("%w: %s", ErrParticipantNotFound, requestedFor)
	}

	if err := v.tracker.UpdateConsultationResponse(ctx, invitationID, requestedFor, answer); err != nil {
		return fmt.Errorf("unable to record consultation response: %w", err)
	}
	broadcastToParticipants(v.publisher, conference, models.ActionConsultationResponse, message)

	if answer == models.ConsultationAnswerAccepted {
		if accepted, err := v.tracker.HaveAllParticipantsAccepted(ctx, invitationID); err != nil {
			return err
		} else if !accepted {
			log.Debug().
				Str("invitation", invitationID).
				Str("participant", requestedFor).
				Msg("Consultation accepted, still waiting for linked participants...")
			return nil
		}
	}

	for _, link := range participant.LinkedParticipants {
		linked := message
		linked.RequestedFor = link.LinkedID
		broadcastToParticipants(v.publisher, conference, models.ActionConsultationResponse, linked)
	}

	return nil
}

func (v *ConsultationNotifier) NotifyRoomUpdate(ctx context.Context, conference models.Conference, room models.Room) {
	broadcastToParticipants(v.publisher, conference, models.ActionRoomUpdate, models.RoomUpdateMessage{
		ConferenceID: conference.ID,
		Room:         room,
	})
}

func (v *ConsultationNotifier) NotifyParticipantTransferring(ctx context.Context, conference models.Conference, participantID, roomLabel string) {
	broadcastToParticipants(v.publisher, conference, models.ActionConsultationResponse, models.ConsultationRequestResponseMessage{
		ConferenceID:      conference.ID,
		InvitationID:      models.EmptyInvitationID,
		RoomLabel:         roomLabel,
		RequestedFor:      participantID,
		Answer:            models.ConsultationAnswerTransferring,
		ResponseInitiator: participantID,
	})
}
