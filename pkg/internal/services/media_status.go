package services

import (
	"context"
	"fmt"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// MediaStatusService applies a device's mute report and tells the hosts about it.
type MediaStatusService struct {
	conferences   *ConferenceService
	videoControls *VideoControlStore
	publisher     Publisher
	syncer        MediaSyncer
}

// NewMediaStatusService accepts a nil syncer, media server mirroring is then skipped.
func NewMediaStatusService(conferences *ConferenceService, videoControls *VideoControlStore, publisher Publisher, syncer MediaSyncer) *MediaStatusService {
	return &MediaStatusService{
		conferences:   conferences,
		videoControls: videoControls,
		publisher:     publisher,
		syncer:        syncer,
	}
}

func (v *MediaStatusService) UpdateMediaStatus(ctx context.Context, conferenceID, participantID string, status models.MediaStatus) (models.VideoControlStatus, error) {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return models.VideoControlStatus{}, err
	}
	participant, ok := conference.GetParticipant(participantID)
	if !ok {
		return models.VideoControlStatus{}, fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
	}

	current, err := v.videoControls.UpdateMediaStatusForParticipantInConference(ctx, conferenceID, participantID, status)
	if err != nil {
		return current, err
	}

	broadcastToHosts(v.publisher, conference, models.ActionParticipantMediaStatus, models.ParticipantMediaStatusMessage{
		ConferenceID:  conferenceID,
		ParticipantID: participantID,
		Status:        current,
	})

	if v.syncer != nil {
		if err := v.syncer.SyncVideoControlStatus(ctx, conferenceID, participant, current); err != nil {
			log.Warn().Err(err).
				Str("conference", conferenceID).
				Str("participant", participantID).
				Msg("Unable to mirror video control status to media server...")
		}
	}

	return current, nil
}
