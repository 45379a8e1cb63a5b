//go:generate go run go.uber.org/mock/mockgen -source=conferences.go -destination=mocks/mock_conferences.go -package=mocks

package services

import (
	"context"
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"gorm.io/gorm"
)

// ConferenceSource is the upstream source of truth for conferences.
// A missing conference is reported as ErrConferenceNotFound, anything else is transient.
type ConferenceSource interface {
	FetchConferenceByID(ctx context.Context, conferenceID string) (models.Conference, error)
}

type DatabaseConferenceSource struct {
	db *gorm.DB
}

func NewDatabaseConferenceSource(db *gorm.DB) *DatabaseConferenceSource {
	return &DatabaseConferenceSource{db: db}
}

func (v *DatabaseConferenceSource) FetchConferenceByID(ctx context.Context, conferenceID string) (models.Conference, error) {
	var record models.ConferenceRecord
	if err := v.db.WithContext(ctx).
		Where(&models.ConferenceRecord{ExternalID: conferenceID}).
		Preload("Participants").
		Preload("Endpoints").
		Preload("CivilianRooms").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Conference{}, fmt.Errorf("%w: %s", ErrConferenceNotFound, conferenceID)
		}
		return models.Conference{}, fmt.Errorf("unable to fetch conference %s: %w", conferenceID, err)
	}

	return record.ToConference(), nil
}

// ConferenceService reads conferences through the cache, hydrating from the source on a miss.
type ConferenceService struct {
	store  *ConferenceStore
	source ConferenceSource
}

func NewConferenceService(store *ConferenceStore, source ConferenceSource) *ConferenceService {
	return &ConferenceService{store: store, source: source}
}

func (v *ConferenceService) GetConference(ctx context.Context, conferenceID string) (models.Conference, error) {
	return v.store.GetOrAdd(ctx, conferenceID, v.source.FetchConferenceByID)
}

func (v *ConferenceService) UpdateConference(ctx context.Context, conference models.Conference) error {
	return v.store.Update(ctx, conference)
}

func (v *ConferenceService) RemoveConference(ctx context.Context, conferenceID string) error {
	return v.store.Remove(ctx, conferenceID)
}
