package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type EventHandler func(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error

// EventDispatcher applies inbound video platform events to the conference snapshot.
// Handlers are looked up in a table built once at construction.
type EventDispatcher struct {
	conferences   *ConferenceService
	videoControls *VideoControlStore
	notifier      *ConsultationNotifier
	publisher     Publisher
	handlers      map[models.EventType]EventHandler
}

func NewEventDispatcher(conferences *ConferenceService, videoControls *VideoControlStore, notifier *ConsultationNotifier, publisher Publisher) *EventDispatcher {
	v := &EventDispatcher{
		conferences:   conferences,
		videoControls: videoControls,
		notifier:      notifier,
		publisher:     publisher,
	}
	v.handlers = map[models.EventType]EventHandler{
		models.EventTypeStart:                v.handleStart,
		models.EventTypePause:                v.conferenceStatusHandler(models.ConferenceStatusPaused),
		models.EventTypeSuspend:              v.conferenceStatusHandler(models.ConferenceStatusSuspended),
		models.EventTypeClose:                v.handleClose,
		models.EventTypeJoined:               v.handleJoined,
		models.EventTypeDisconnected:         v.handleDisconnected,
		models.EventTypeTransfer:             v.handleTransfer,
		models.EventTypeEndpointJoined:       v.handleEndpointJoined,
		models.EventTypeEndpointDisconnected: v.handleEndpointDisconnected,
		models.EventTypeEndpointTransfer:     v.handleEndpointTransfer,
	}
	return v
}

func (v *EventDispatcher) Supports(eventType models.EventType) bool {
	_, ok := v.handlers[eventType]
	return ok
}

func (v *EventDispatcher) Dispatch(ctx context.Context, event models.ConferenceEvent) error {
	handler, ok := v.handlers[event.EventType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, event.EventType)
	}

	conference, err := v.conferences.GetConference(ctx, event.ConferenceID)
	if err != nil {
		return err
	}

	log.Debug().
		Str("conference", event.ConferenceID).
		Str("type", string(event.EventType)).
		Str("participant", event.ParticipantID).
		Msg("Dispatching conference event...")

	return handler(ctx, conference, event)
}

// publishStatus reaches every participant plus the officers monitoring all hearings.
func (v *EventDispatcher) publishStatus(conference models.Conference, action string, payload any) {
	broadcastToParticipants(v.publisher, conference, action, payload)
	v.publisher.PublishToGroup(models.GroupVhOfficers, action, payload)
}

func (v *EventDispatcher) setConferenceStatus(ctx context.Context, conference models.Conference, status models.ConferenceStatus) error {
	conference.Status = status
	if status == models.ConferenceStatusClosed {
		conference.ClosedAt = lo.ToPtr(time.Now())
	} else {
		conference.ClosedAt = nil
	}
	if err := v.conferences.UpdateConference(ctx, conference); err != nil {
		return err
	}

	v.publishStatus(conference, models.ActionConferenceStatus, models.ConferenceStatusMessage{
		ConferenceID: conference.ID,
		Status:       status,
	})
	return nil
}

func (v *EventDispatcher) conferenceStatusHandler(status models.ConferenceStatus) EventHandler {
	return func(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
		return v.setConferenceStatus(ctx, conference, status)
	}
}

// handleStart resets spotlight and mute flags, a hearing always starts clean.
func (v *EventDispatcher) handleStart(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	if err := v.videoControls.SetVideoControlStateForConference(ctx, conference.ID, models.VideoControlState{}); err != nil {
		return err
	}
	return v.setConferenceStatus(ctx, conference, models.ConferenceStatusInSession)
}

// handleClose sends everyone still in the hearing room back to the waiting room.
func (v *EventDispatcher) handleClose(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	for idx, participant := range conference.Participants {
		if strings.EqualFold(participant.CurrentRoom, models.RoomHearing) {
			conference.Participants[idx].CurrentRoom = models.RoomWaiting
			conference.Participants[idx].Status = models.ParticipantStatusAvailable
		}
	}
	return v.setConferenceStatus(ctx, conference, models.ConferenceStatusClosed)
}

func (v *EventDispatcher) updateParticipant(ctx context.Context, conference models.Conference, participantID string, apply func(participant *models.Participant)) error {
	participant, ok := conference.GetParticipant(participantID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
	}
	apply(&participant)
	conference.UpdateParticipant(participant)
	if err := v.conferences.UpdateConference(ctx, conference); err != nil {
		return err
	}

	v.publishStatus(conference, models.ActionParticipantStatus, models.ParticipantStatusMessage{
		ConferenceID:  conference.ID,
		ParticipantID: participant.ID,
		Username:      participant.Username,
		Status:        participant.Status,
		CurrentRoom:   participant.CurrentRoom,
	})
	return nil
}

func (v *EventDispatcher) handleJoined(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	return v.updateParticipant(ctx, conference, event.ParticipantID, func(participant *models.Participant) {
		participant.Status = models.ParticipantStatusAvailable
		participant.CurrentRoom = models.RoomWaiting
	})
}

func (v *EventDispatcher) handleDisconnected(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	if err := v.updateParticipant(ctx, conference, event.ParticipantID, func(participant *models.Participant) {
		participant.Status = models.ParticipantStatusDisconnected
		participant.CurrentRoom = ""
	}); err != nil {
		return err
	}

	if models.IsConsultationRoom(event.TransferFrom) {
		v.notifyRoom(ctx, conference.ID, event.TransferFrom)
	}
	return nil
}

func participantStatusForRoom(label string) models.ParticipantStatus {
	switch {
	case strings.EqualFold(label, models.RoomHearing):
		return models.ParticipantStatusInHearing
	case models.IsConsultationRoom(label):
		return models.ParticipantStatusInConsultation
	default:
		return models.ParticipantStatusAvailable
	}
}

func (v *EventDispatcher) handleTransfer(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	if err := v.updateParticipant(ctx, conference, event.ParticipantID, func(participant *models.Participant) {
		participant.CurrentRoom = event.TransferTo
		participant.Status = participantStatusForRoom(event.TransferTo)
	}); err != nil {
		return err
	}

	v.notifyTransferredRooms(ctx, conference.ID, event)
	return nil
}

// notifyTransferredRooms re-reads the snapshot so the room occupants include the transfer just applied.
func (v *EventDispatcher) notifyTransferredRooms(ctx context.Context, conferenceID string, event models.ConferenceEvent) {
	for _, label := range lo.Uniq([]string{event.TransferFrom, event.TransferTo}) {
		if models.IsConsultationRoom(label) {
			v.notifyRoom(ctx, conferenceID, label)
		}
	}
}

func (v *EventDispatcher) notifyRoom(ctx context.Context, conferenceID, label string) {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		log.Error().Err(err).Str("conference", conferenceID).Msg("An error occurred when notifying room update...")
		return
	}
	v.notifier.NotifyRoomUpdate(ctx, conference, conference.RoomSnapshot(label))
}

func (v *EventDispatcher) updateEndpoint(ctx context.Context, conference models.Conference, endpointID string, apply func(endpoint *models.Endpoint)) error {
	endpoint, ok := conference.GetEndpoint(endpointID)
	if !ok {
		return fmt.Errorf("%w: endpoint %s", ErrParticipantNotFound, endpointID)
	}
	apply(&endpoint)
	conference.UpdateEndpoint(endpoint)
	if err := v.conferences.UpdateConference(ctx, conference); err != nil {
		return err
	}

	v.publishStatus(conference, models.ActionEndpointStatus, models.EndpointStatusMessage{
		ConferenceID: conference.ID,
		EndpointID:   endpoint.ID,
		Status:       endpoint.Status,
		CurrentRoom:  endpoint.CurrentRoom,
	})
	return nil
}

func (v *EventDispatcher) handleEndpointJoined(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	return v.updateEndpoint(ctx, conference, event.ParticipantID, func(endpoint *models.Endpoint) {
		endpoint.Status = models.EndpointStatusConnected
		endpoint.CurrentRoom = models.RoomWaiting
	})
}

func (v *EventDispatcher) handleEndpointDisconnected(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	return v.updateEndpoint(ctx, conference, event.ParticipantID, func(endpoint *models.Endpoint) {
		endpoint.Status = models.EndpointStatusDisconnected
		endpoint.CurrentRoom = ""
	})
}

func (v *EventDispatcher) handleEndpointTransfer(ctx context.Context, conference models.Conference, event models.ConferenceEvent) error {
	if err := v.updateEndpoint(ctx, conference, event.ParticipantID, func(endpoint *models.Endpoint) {
		endpoint.CurrentRoom = event.TransferTo
		if models.IsConsultationRoom(event.TransferTo) {
			endpoint.Status = models.EndpointStatusInConsultation
		} else {
			endpoint.Status = models.EndpointStatusConnected
		}
	}); err != nil {
		return err
	}

	v.notifyTransferredRooms(ctx, conference.ID, event)
	return nil
}
