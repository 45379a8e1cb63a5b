package services

import (
	"context"
	"errors"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// LayoutService stores the explicitly chosen layout inside the conference snapshot.
type LayoutService struct {
	conferences *ConferenceService
	publisher   Publisher
}

func NewLayoutService(conferences *ConferenceService, publisher Publisher) *LayoutService {
	return &LayoutService{conferences: conferences, publisher: publisher}
}

// GetCurrentLayout returns nil without error when the conference does not exist upstream.
func (v *LayoutService) GetCurrentLayout(ctx context.Context, conferenceID string) (*models.HearingLayout, error) {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if errors.Is(err, ErrConferenceNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return lo.ToPtr(conference.GetHearingLayout()), nil
}

func (v *LayoutService) UpdateLayout(ctx context.Context, conferenceID, changedByID string, layout models.HearingLayout) error {
	conference, err := v.conferences.GetConference(ctx, conferenceID)
	if err != nil {
		return err
	}

	oldLayout := conference.GetHearingLayout()
	conference.HearingLayout = lo.ToPtr(layout)
	if err := v.conferences.UpdateConference(ctx, conference); err != nil {
		return err
	}

	broadcastToHosts(v.publisher, conference, models.ActionHearingLayoutChanged, models.HearingLayoutChangedMessage{
		ConferenceID: conferenceID,
		ChangedBy:    changedByID,
		NewLayout:    layout,
		OldLayout:    oldLayout,
	})

	log.Info().
		Str("conference", conferenceID).
		Str("layout", string(layout)).
		Msg("Hearing layout changed...")
	return nil
}
