package services

import (
	"context"
	"testing"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (*testServices, *EventDispatcher) {
	ts := newTestServices(t)
	ts.seed(t)
	return ts, NewEventDispatcher(ts.conferences, ts.videoControls, ts.notifier, ts.publisher)
}

func TestEventDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject unsupported events", func(t *testing.T) {
		_, dispatcher := newTestDispatcher(t)

		err := dispatcher.Dispatch(ctx, models.ConferenceEvent{EventType: "Unknown", ConferenceID: testConferenceID})
		require.ErrorIs(t, err, ErrUnsupportedEvent)
		assert.False(t, dispatcher.Supports("Unknown"))
		assert.True(t, dispatcher.Supports(models.EventTypeTransfer))
	})

	t.Run("should mark a joined participant available", func(t *testing.T) {
		ts, dispatcher := newTestDispatcher(t)

		require.NoError(t, dispatcher.Dispatch(ctx, models.ConferenceEvent{
			EventType:     models.EventTypeJoined,
			ConferenceID:  testConferenceID,
			ParticipantID: "judge",
		}))

		conference, err := ts.conferences.GetConference(ctx, testConferenceID)
		require.NoError(t, err)
		judge, _ := conference.GetParticipant("judge")
		assert.Equal(t, models.ParticipantStatusAvailable, judge.Status)
		assert.Equal(t, models.RoomWaiting, judge.CurrentRoom)
		assert.Contains(t, ts.publisher.GroupsFor(models.ActionParticipantStatus), models.GroupVhOfficers)
		assert.Len(t, ts.publisher.ByAction(models.ActionParticipantStatus), len(conference.Participants)+1)
	})

	t.Run("should publish the consultation room after a transfer", func(t *testing.T) {
		ts, dispatcher := newTestDispatcher(t)

		require.NoError(t, dispatcher.Dispatch(ctx, models.ConferenceEvent{
			EventType:     models.EventTypeTransfer,
			ConferenceID:  testConferenceID,
			ParticipantID: "individual",
			TransferFrom:  models.RoomWaiting,
			TransferTo:    "ConsultationRoom1",
		}))

		conference, err := ts.conferences.GetConference(ctx, testConferenceID)
		require.NoError(t, err)
		individual, _ := conference.GetParticipant("individual")
		assert.Equal(t, models.ParticipantStatusInConsultation, individual.Status)

		rooms := ts.publisher.ByAction(models.ActionRoomUpdate)
		require.NotEmpty(t, rooms)
		room := rooms[0].Payload.(models.RoomUpdateMessage).Room
		assert.Equal(t, "ConsultationRoom1", room.Label)
		assert.Equal(t, []string{"individual"}, room.Participants)
	})

	t.Run("should fail for an unknown participant", func(t *testing.T) {
		_, dispatcher := newTestDispatcher(t)

		err := dispatcher.Dispatch(ctx, models.ConferenceEvent{
			EventType:     models.EventTypeDisconnected,
			ConferenceID:  testConferenceID,
			ParticipantID: "nobody",
		})
		require.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("should reset video controls when the hearing starts", func(t *testing.T) {
		ts, dispatcher := newTestDispatcher(t)
		require.NoError(t, ts.videoControls.SetVideoControlStateForConference(ctx, testConferenceID, models.VideoControlState{
			"judge": {IsSpotlighted: true},
		}))

		require.NoError(t, dispatcher.Dispatch(ctx, models.ConferenceEvent{EventType: models.EventTypeStart, ConferenceID: testConferenceID}))

		state, err := ts.videoControls.GetVideoControlStateForConference(ctx, testConferenceID)
		require.NoError(t, err)
		assert.Empty(t, state)
		assert.NotEmpty(t, ts.publisher.ByAction(models.ActionConferenceStatus))
	})

	t.Run("should close the conference and empty the hearing room", func(t *testing.T) {
		ts, dispatcher := newTestDispatcher(t)

		require.NoError(t, dispatcher.Dispatch(ctx, models.ConferenceEvent{EventType: models.EventTypeClose, ConferenceID: testConferenceID}))

		conference, err := ts.conferences.GetConference(ctx, testConferenceID)
		require.NoError(t, err)
		assert.True(t, conference.IsClosed())
		assert.NotNil(t, conference.ClosedAt)
		judge, _ := conference.GetParticipant("judge")
		assert.Equal(t, models.RoomWaiting, judge.CurrentRoom)
	})

	t.Run("should move an endpoint into consultation", func(t *testing.T) {
		ts, dispatcher := newTestDispatcher(t)

		require.NoError(t, dispatcher.Dispatch(ctx, models.ConferenceEvent{
			EventType:     models.EventTypeEndpointTransfer,
			ConferenceID:  testConferenceID,
			ParticipantID: "endpoint",
			TransferFrom:  models.RoomWaiting,
			TransferTo:    "ConsultationRoom2",
		}))

		conference, err := ts.conferences.GetConference(ctx, testConferenceID)
		require.NoError(t, err)
		endpoint, _ := conference.GetEndpoint("endpoint")
		assert.Equal(t, models.EndpointStatusInConsultation, endpoint.Status)
		assert.NotEmpty(t, ts.publisher.ByAction(models.ActionEndpointStatus))
	})
}

func TestConferenceEvents(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.seed(t)
	events := NewConferenceEvents(ts.conferences, ts.publisher)

	endpoints := []models.Endpoint{{ID: "endpoint-2", DisplayName: "Court Room 2"}}
	require.NoError(t, events.UpdateEndpoints(ctx, testConferenceID, endpoints))
	conference, err := ts.conferences.GetConference(ctx, testConferenceID)
	require.NoError(t, err)
	require.Len(t, conference.Endpoints, 1)
	assert.Equal(t, "endpoint-2", conference.Endpoints[0].ID)
	assert.Contains(t, ts.publisher.GroupsFor(models.ActionEndpointsUpdated), models.GroupVhOfficers)

	require.NoError(t, events.NotifyNewConferenceAdded(ctx, "conference-2"))
	assert.ElementsMatch(t, []string{models.GroupVhOfficers, models.GroupStaffMembers}, ts.publisher.GroupsFor(models.ActionNewConferenceAdded))
}
