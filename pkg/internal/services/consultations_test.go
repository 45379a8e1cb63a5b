package services

import (
	"context"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultationService_RespondToConsultation(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.seed(t)
	timeouts := NewConsultationTimeouts(ts.conferences, ts.tracker, ts.notifier, time.Minute)
	svc := NewConsultationService(ts.conferences, ts.tracker, ts.notifier, timeouts)

	id, err := svc.RequestConsultation(ctx, testConferenceID, "Room1", "judge", "individual")
	require.NoError(t, err)
	assert.Equal(t, 1, timeouts.Pending())

	require.NoError(t, svc.RespondToConsultation(ctx, testConferenceID, id, "Room1", "individual", models.ConsultationAnswerAccepted))
	transferring := lo.Filter(responseMessages(ts.publisher), func(item models.ConsultationRequestResponseMessage, _ int) bool {
		return item.Answer == models.ConsultationAnswerTransferring
	})
	assert.Empty(t, transferring)
	assert.Equal(t, 1, timeouts.Pending())

	require.NoError(t, svc.RespondToConsultation(ctx, testConferenceID, id, "Room1", "interpreter", models.ConsultationAnswerAccepted))
	transferring = lo.Filter(responseMessages(ts.publisher), func(item models.ConsultationRequestResponseMessage, _ int) bool {
		return item.Answer == models.ConsultationAnswerTransferring
	})
	assert.ElementsMatch(t, []string{"individual", "interpreter"}, lo.Uniq(lo.Map(transferring, func(item models.ConsultationRequestResponseMessage, _ int) string {
		return item.RequestedFor
	})))
	assert.Equal(t, 0, timeouts.Pending())
}

func TestConsultationService_RequestConsultation(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	ts.seed(t)
	timeouts := NewConsultationTimeouts(ts.conferences, ts.tracker, ts.notifier, time.Minute)
	svc := NewConsultationService(ts.conferences, ts.tracker, ts.notifier, timeouts)

	id, err := svc.RequestConsultation(ctx, testConferenceID, "Room1", "judge", "nobody")
	require.NoError(t, err)
	assert.Equal(t, models.EmptyInvitationID, id)
	assert.Equal(t, 0, timeouts.Pending())
}

func TestConsultationService_LockRoom(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	conference := sampleConference()
	conference.Participants[2].CurrentRoom = "ConsultationRoom1"
	require.NoError(t, ts.conferences.UpdateConference(ctx, conference))
	svc := NewConsultationService(ts.conferences, ts.tracker, ts.notifier, nil)

	room, err := svc.LockRoom(ctx, testConferenceID, "ConsultationRoom1", true)
	require.NoError(t, err)
	assert.True(t, room.Locked)
	assert.Equal(t, []string{"individual"}, room.Participants)

	stored, err := ts.conferences.GetConference(ctx, testConferenceID)
	require.NoError(t, err)
	storedRoom, ok := stored.GetRoom("consultationroom1")
	require.True(t, ok)
	assert.True(t, storedRoom.Locked)

	updates := ts.publisher.ByAction(models.ActionRoomUpdate)
	require.Len(t, updates, len(conference.Participants))
	assert.True(t, updates[0].Payload.(models.RoomUpdateMessage).Room.Locked)
}
