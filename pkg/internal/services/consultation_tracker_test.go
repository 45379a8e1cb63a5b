package services

import (
	"context"
	"sync"
	"testing"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultationTracker_StartTrackingInvitation(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices(t)
	conference := sampleConference()

	t.Run("should invite the participant and their interpreter", func(t *testing.T) {
		id, err := ts.tracker.StartTrackingInvitation(ctx, conference, "Room1", "individual")
		require.NoError(t, err)
		require.NotEqual(t, models.EmptyInvitationID, id)

		invitation, err := ts.tracker.GetInvitation(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, invitation)
		assert.ElementsMatch(t, []string{"individual", "interpreter"}, invitation.InvitedParticipantIDs)
		assert.Equal(t, "Room1", invitation.RoomLabel)
		for _, participantID := range invitation.InvitedParticipantIDs {
			assert.Equal(t, models.ConsultationAnswerNone, invitation.Responses[participantID])
		}
	})

	t.Run("should invite only the participant without links", func(t *testing.T) {
		id, err := ts.tracker.StartTrackingInvitation(ctx, conference, "Room1", "representative")
		require.NoError(t, err)

		invitation, err := ts.tracker.GetInvitation(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"representative"}, invitation.InvitedParticipantIDs)
	})

	t.Run("should return the empty id for an unknown participant", func(t *testing.T) {
		id, err := ts.tracker.StartTrackingInvitation(ctx, conference, "Room1", "nobody")
		require.NoError(t, err)
		assert.Equal(t, models.EmptyInvitationID, id)
	})
}

func TestConsultationTracker_Consensus(t *testing.T) {
	ctx := context.Background()

	t.Run("should reach consensus once both linked participants accept", func(t *testing.T) {
		ts := newTestServices(t)
		id, err := ts.tracker.StartTrackingInvitation(ctx, sampleConference(), "Room1", "individual")
		require.NoError(t, err)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "individual", models.ConsultationAnswerAccepted))
		accepted, err := ts.tracker.HaveAllParticipantsAccepted(ctx, id)
		require.NoError(t, err)
		assert.False(t, accepted)
		responded, err := ts.tracker.HaveAllParticipantsResponded(ctx, id)
		require.NoError(t, err)
		assert.False(t, responded)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "interpreter", models.ConsultationAnswerAccepted))
		accepted, err = ts.tracker.HaveAllParticipantsAccepted(ctx, id)
		require.NoError(t, err)
		assert.True(t, accepted)
		responded, err = ts.tracker.HaveAllParticipantsResponded(ctx, id)
		require.NoError(t, err)
		assert.True(t, responded)
	})

	t.Run("should stay blocked after a rejection", func(t *testing.T) {
		ts := newTestServices(t)
		id, err := ts.tracker.StartTrackingInvitation(ctx, sampleConference(), "Room1", "individual")
		require.NoError(t, err)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "interpreter", models.ConsultationAnswerRejected))
		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "individual", models.ConsultationAnswerAccepted))

		accepted, err := ts.tracker.HaveAllParticipantsAccepted(ctx, id)
		require.NoError(t, err)
		assert.False(t, accepted)
		responded, err := ts.tracker.HaveAllParticipantsResponded(ctx, id)
		require.NoError(t, err)
		assert.True(t, responded)
	})

	t.Run("should not change the outcome when a response is repeated", func(t *testing.T) {
		ts := newTestServices(t)
		id, err := ts.tracker.StartTrackingInvitation(ctx, sampleConference(), "Room1", "individual")
		require.NoError(t, err)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "individual", models.ConsultationAnswerAccepted))
		once, err := ts.tracker.HaveAllParticipantsAccepted(ctx, id)
		require.NoError(t, err)
		onceResponded, err := ts.tracker.HaveAllParticipantsResponded(ctx, id)
		require.NoError(t, err)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "individual", models.ConsultationAnswerAccepted))
		twice, err := ts.tracker.HaveAllParticipantsAccepted(ctx, id)
		require.NoError(t, err)
		twiceResponded, err := ts.tracker.HaveAllParticipantsResponded(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
		assert.Equal(t, onceResponded, twiceResponded)
	})

	t.Run("should ignore responders who were not invited", func(t *testing.T) {
		ts := newTestServices(t)
		id, err := ts.tracker.StartTrackingInvitation(ctx, sampleConference(), "Room1", "representative")
		require.NoError(t, err)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, "judge", models.ConsultationAnswerRejected))

		invitation, err := ts.tracker.GetInvitation(ctx, id)
		require.NoError(t, err)
		assert.NotContains(t, invitation.Responses, "judge")
		assert.False(t, invitation.HaveAllResponded())
	})

	t.Run("should be permissive for unknown invitations", func(t *testing.T) {
		ts := newTestServices(t)

		require.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, "missing", "individual", models.ConsultationAnswerAccepted))

		invitation, err := ts.tracker.GetInvitation(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, invitation)

		accepted, err := ts.tracker.HaveAllParticipantsAccepted(ctx, "missing")
		require.NoError(t, err)
		assert.True(t, accepted)
		responded, err := ts.tracker.HaveAllParticipantsResponded(ctx, models.EmptyInvitationID)
		require.NoError(t, err)
		assert.True(t, responded)
	})
}

func TestConsultationTracker_ConcurrentResponses(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep both answers when linked participants respond at once", func(t *testing.T) {
		ts := newTestServices(t)

		for round := 0; round < 50; round++ {
			id, err := ts.tracker.StartTrackingInvitation(ctx, sampleConference(), "Room1", "individual")
			require.NoError(t, err)

			var wg sync.WaitGroup
			for _, participantID := range []string{"individual", "interpreter"} {
				wg.Add(1)
				go func(participantID string) {
					defer wg.Done()
					for idx := 0; idx < 20; idx++ {
						assert.NoError(t, ts.tracker.UpdateConsultationResponse(ctx, id, participantID, models.ConsultationAnswerAccepted))
					}
				}(participantID)
			}
			wg.Wait()

			accepted, err := ts.tracker.HaveAllParticipantsAccepted(ctx, id)
			require.NoError(t, err)
			assert.True(t, accepted)

			invitation, err := ts.tracker.GetInvitation(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, invitation)
			assert.Equal(t, models.ConsultationAnswerAccepted, invitation.Responses["individual"])
			assert.Equal(t, models.ConsultationAnswerAccepted, invitation.Responses["interpreter"])
		}
	})
}
