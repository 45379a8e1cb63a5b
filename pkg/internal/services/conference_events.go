package services

import (
	"context"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
)

// ConferenceEvents publishes changes that originate from the booking side rather than the video platform.
type ConferenceEvents struct {
	conferences *ConferenceService
	publisher   Publisher
}

func NewConferenceEvents(conferences *ConferenceService, publisher Publisher) *ConferenceEvents {
	return &ConferenceEvents{conferences: conferences, publisher: publisher}
}

// NotifyNewConferenceAdded drops any stale snapshot so the next read hydrates the new booking.
func (v *ConferenceEvents) NotifyNewConferenceAdded(ctx context.Context, conferenceID string) error {
	if err := v.conferences.RemoveConference(ctx, conferenceID); err != nil {
		return err
	}

	message := models.NewConferenceAddedMessage{ConferenceID: conferenceID}
	v.publisher.PublishToGroup(models.GroupVhOfficers, models.ActionNewConferenceAdded, message)
	v.publisher.PublishToGroup(models.GroupStaffMembers, models.ActionNewConferenceAdded, message)
	return nil
}

func (v *ConferenceEvents) UpdateEndpoints(ctx context.Context, conferenceID string, endpoints []models.Endpoint) error {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return err
	}

	conference.Endpoints = endpoints
	if err := v.conferences.UpdateConference(ctx, conference); err != nil {
		return err
	}

	message := models.EndpointsUpdatedMessage{ConferenceID: conferenceID, Endpoints: endpoints}
	broadcastToParticipants(v.publisher, conference, models.ActionEndpointsUpdated, message)
	v.publisher.PublishToGroup(models.GroupVhOfficers, models.ActionEndpointsUpdated, message)
	return nil
}
