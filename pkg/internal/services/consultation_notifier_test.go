package services

import (
	"context"
	"testing"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseMessages(publisher *recordingPublisher) []models.ConsultationRequestResponseMessage {
	return lo.Map(publisher.ByAction(models.ActionConsultationResponse), func(item published, _ int) models.ConsultationRequestResponseMessage {
		return item.Payload.(models.ConsultationRequestResponseMessage)
	})
}

func TestConsultationNotifier_NotifyConsultationRequest(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	conference := sampleConference()

	id, err := ts.notifier.NotifyConsultationRequest(ctx, conference, "Room1", "judge", "individual")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	packages := ts.publisher.ByAction(models.ActionRequestedConsultation)
	require.Len(t, packages, len(conference.Participants)*2)
	assert.ElementsMatch(t, []string{
		judgeGroup,
		staffGroup,
		"individual@hearings.net",
		"interpreter@hearings.net",
		"rep@hearings.net",
	}, ts.publisher.GroupsFor(models.ActionRequestedConsultation))

	first := packages[0].Payload.(models.RequestedConsultationMessage)
	last := packages[len(packages)-1].Payload.(models.RequestedConsultationMessage)
	assert.Equal(t, "individual", first.RequestedFor)
	assert.Equal(t, "interpreter", last.RequestedFor)
	assert.Equal(t, id, last.InvitationID)
	assert.Equal(t, "judge", last.RequestedBy)
}

func TestConsultationNotifier_NotifyConsultationResponse(t *testing.T) {
	ctx := context.Background()
	conference := sampleConference()
	participants := len(conference.Participants)

	t.Run("should wait for the linked participant before cascading an accept", func(t *testing.T) {
		ts := newTestServices(t)
		id, err := ts.tracker.StartTrackingInvitation(ctx, conference, "Room1", "individual")
		require.NoError(t, err)

		require.NoError(t, ts.notifier.NotifyConsultationResponse(ctx, conference, id, "Room1", "interpreter", models.ConsultationAnswerAccepted))
		messages := responseMessages(ts.publisher)
		require.Len(t, messages, participants)
		for _, message := range messages {
			assert.Equal(t, "interpreter", message.RequestedFor)
		}

		require.NoError(t, ts.notifier.NotifyConsultationResponse(ctx, conference, id, "Room1", "individual", models.ConsultationAnswerAccepted))
		messages = responseMessages(ts.publisher)
		require.Len(t, messages, participants*3)

		cascade := messages[participants*2:]
		for _, message := range cascade {
			assert.Equal(t, "interpreter", message.RequestedFor)
			assert.Equal(t, "individual", message.ResponseInitiator)
			assert.Equal(t, models.ConsultationAnswerAccepted, message.Answer)
		}
	})

	t.Run("should cascade a rejection straight away", func(t *testing.T) {
		ts := newTestServices(t)
		id, err := ts.tracker.StartTrackingInvitation(ctx, conference, "Room1", "individual")
		require.NoError(t, err)

		require.NoError(t, ts.notifier.NotifyConsultationResponse(ctx, conference, id, "Room1", "individual", models.ConsultationAnswerRejected))
		messages := responseMessages(ts.publisher)
		require.Len(t, messages, participants*2)
		assert.Equal(t, "individual", messages[0].RequestedFor)
		assert.Equal(t, "interpreter", messages[participants].RequestedFor)
		assert.Equal(t, models.ConsultationAnswerRejected, messages[participants].Answer)

		accepted, err := ts.tracker.HaveAllParticipantsAccepted(ctx, id)
		require.NoError(t, err)
		assert.False(t, accepted)
	})

	t.Run("should publish endpoint responses without tracking", func(t *testing.T) {
		ts := newTestServices(t)

		require.NoError(t, ts.notifier.NotifyConsultationResponse(ctx, conference, models.EmptyInvitationID, "Room1", "endpoint", models.ConsultationAnswerAccepted))
		messages := responseMessages(ts.publisher)
		require.Len(t, messages, participants)
		assert.Equal(t, "endpoint", messages[0].RequestedFor)
	})

	t.Run("should fail for an unknown participant", func(t *testing.T) {
		ts := newTestServices(t)

		err := ts.notifier.NotifyConsultationResponse(ctx, conference, "any", "Room1", "nobody", models.ConsultationAnswerAccepted)
		require.ErrorIs(t, err, ErrParticipantNotFound)
		assert.Empty(t, ts.publisher.ByAction(models.ActionConsultationResponse))
	})
}

func TestConsultationNotifier_Broadcasts(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	conference := sampleConference()

	ts.notifier.NotifyRoomUpdate(ctx, conference, models.Room{Label: "Room1", Locked: true})
	rooms := ts.publisher.ByAction(models.ActionRoomUpdate)
	require.Len(t, rooms, len(conference.Participants))
	assert.True(t, rooms[0].Payload.(models.RoomUpdateMessage).Room.Locked)

	ts.notifier.NotifyParticipantTransferring(ctx, conference, "individual", "Room1")
	messages := responseMessages(ts.publisher)
	require.Len(t, messages, len(conference.Participants))
	assert.Equal(t, models.ConsultationAnswerTransferring, messages[0].Answer)
	assert.Equal(t, models.EmptyInvitationID, messages[0].InvitationID)
	assert.Equal(t, "individual", messages[0].ResponseInitiator)
}
