package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
)

const videoControlStripes = 32

// VideoControlStore keeps the spotlight and mute flags of every participant per conference.
type VideoControlStore struct {
	marshal *marshaler.Marshaler
	ttl     time.Duration
	locks   [videoControlStripes]sync.Mutex
}

func NewVideoControlStore(marshal *marshaler.Marshaler, ttl time.Duration) *VideoControlStore {
	return &VideoControlStore{marshal: marshal, ttl: ttl}
}

func (v *VideoControlStore) lock(conferenceID string) *sync.Mutex {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(conferenceID))
	return &v.locks[hash.Sum32()%videoControlStripes]
}

func (v *VideoControlStore) get(ctx context.Context, conferenceID string) (models.VideoControlState, error) {
	val, err := v.marshal.Get(ctx, cache.VideoControlKey(conferenceID), new(models.VideoControlState))
	if cache.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to read video control state: %w", err)
	}
	return *val.(*models.VideoControlState), nil
}

func (v *VideoControlStore) set(ctx context.Context, conferenceID string, state models.VideoControlState) error {
	if err := v.marshal.Set(
		ctx,
		cache.VideoControlKey(conferenceID),
		state,
		store.WithExpiration(v.ttl),
		store.WithTags([]string{cache.ConferenceTag(conferenceID)}),
	); err != nil {
		return fmt.Errorf("unable to write video control state: %w", err)
	}
	return nil
}

// GetVideoControlStateForConference returns nil when nothing has been stored yet.
func (v *VideoControlStore) GetVideoControlStateForConference(ctx context.Context, conferenceID string) (models.VideoControlState, error) {
	return v.get(ctx, conferenceID)
}

func (v *VideoControlStore) SetVideoControlStateForConference(ctx context.Context, conferenceID string, state models.VideoControlState) error {
	mu := v.lock(conferenceID)
	mu.Lock()
	defer mu.Unlock()

	if state == nil {
		state = make(models.VideoControlState)
	}
	return v.set(ctx, conferenceID, state)
}

// UpdateMediaStatusForParticipantInConference overwrites only the mute flags, a new entry starts without spotlight.
func (v *VideoControlStore) UpdateMediaStatusForParticipantInConference(ctx context.Context, conferenceID, participantID string, status models.MediaStatus) (models.VideoControlStatus, error) {
	mu := v.lock(conferenceID)
	mu.Lock()
	defer mu.Unlock()

	state, err := v.get(ctx, conferenceID)
	if err != nil {
		return models.VideoControlStatus{}, err
	}
	if state == nil {
		state = make(models.VideoControlState)
	}

	current := state[participantID]
	current.IsLocalAudioMuted = status.IsLocalAudioMuted
	current.IsLocalVideoMuted = status.IsLocalVideoMuted
	state[participantID] = current

	if err := v.set(ctx, conferenceID, state); err != nil {
		return models.VideoControlStatus{}, err
	}
	return current, nil
}
