package services

import (
	"context"
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"golang.org/x/sync/singleflight"
)

type ConferenceFetcher func(ctx context.Context, conferenceID string) (models.Conference, error)

// ConferenceStore caches conference snapshots and hydrates misses from upstream.
// Update is a full replace without any version check.
type ConferenceStore struct {
	marshal     *marshaler.Marshaler
	flight      singleflight.Group
	ttl         time.Duration
	closedGrace time.Duration
}

func NewConferenceStore(marshal *marshaler.Marshaler, ttl, closedGrace time.Duration) *ConferenceStore {
	return &ConferenceStore{
		marshal:     marshal,
		ttl:         ttl,
		closedGrace: closedGrace,
	}
}

func (v *ConferenceStore) get(ctx context.Context, conferenceID string) (models.Conference, error) {
	val, err := v.marshal.Get(ctx, cache.ConferenceKey(conferenceID), new(models.Conference))
	if err != nil {
		return models.Conference{}, err
	}
	return *val.(*models.Conference), nil
}

// GetOrAdd returns the cached conference, on a miss fetch runs once per id no matter
// how many callers are waiting. A failed fetch is shared by all of them and nothing is cached.
func (v *ConferenceStore) GetOrAdd(ctx context.Context, conferenceID string, fetch ConferenceFetcher) (models.Conference, error) {
	if conference, err := v.get(ctx, conferenceID); err == nil {
		return conference, nil
	} else if !cache.IsNotFound(err) {
		return models.Conference{}, fmt.Errorf("unable to read conference cache: %w", err)
	}

	val, err, _ := v.flight.Do(conferenceID, func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)
		if conference, err := v.get(flightCtx, conferenceID); err == nil {
			return conference, nil
		}

		conference, err := fetch(flightCtx, conferenceID)
		if err != nil {
			return nil, err
		}
		if len(conference.ID) == 0 {
			conference.ID = conferenceID
		}
		if err := v.Update(flightCtx, conference); err != nil {
			return nil, err
		}
		return conference, nil
	})
	if err != nil {
		return models.Conference{}, err
	}

	return val.(models.Conference).Clone(), nil
}

func (v *ConferenceStore) Update(ctx context.Context, conference models.Conference) error {
	expiration := v.ttl
	if conference.ClosedAt != nil {
		expiration = max(v.closedGrace-time.Since(*conference.ClosedAt), time.Second)
	}

	if err := v.marshal.Set(
		ctx,
		cache.ConferenceKey(conference.ID),
		conference,
		store.WithExpiration(expiration),
		store.WithTags([]string{cache.ConferenceTag(conference.ID)}),
	); err != nil {
		return fmt.Errorf("unable to write conference cache: %w", err)
	}
	return nil
}

// Remove evicts the snapshot together with every entry tagged with the conference.
func (v *ConferenceStore) Remove(ctx context.Context, conferenceID string) error {
	if err := v.marshal.Delete(ctx, cache.ConferenceKey(conferenceID)); err != nil {
		return err
	}
	return v.marshal.Invalidate(ctx, store.WithInvalidateTags([]string{cache.ConferenceTag(conferenceID)}))
}
