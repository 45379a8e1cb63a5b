//go:generate go run go.uber.org/mock/mockgen -source=livekit.go -destination=mocks/mock_livekit.go -package=mocks

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	jsoniter "github.com/json-iterator/go"
	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go"
)

// MediaSyncer mirrors video control flags into the media server.
type MediaSyncer interface {
	SyncVideoControlStatus(ctx context.Context, conferenceID string, participant models.Participant, status models.VideoControlStatus) error
}

type MediaService struct {
	endpoint      string
	client        *lksdk.RoomServiceClient
	apiKey        string
	apiSecret     string
	tokenDuration time.Duration
}

func NewMediaService(endpoint, apiKey, apiSecret string, tokenDuration time.Duration) *MediaService {
	host := endpoint
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	return &MediaService{
		endpoint:      host,
		client:        lksdk.NewRoomServiceClient(host, apiKey, apiSecret),
		apiKey:        apiKey,
		apiSecret:     apiSecret,
		tokenDuration: tokenDuration,
	}
}

func (v *MediaService) Endpoint() string {
	return v.endpoint
}

// MediaRoomName names the media room backing a conference room, a participant
// without a room belongs to the waiting room.
func MediaRoomName(conferenceID, roomLabel string) string {
	if len(roomLabel) == 0 {
		roomLabel = models.RoomWaiting
	}
	return fmt.Sprintf("%s_%s", conferenceID, strings.ToLower(roomLabel))
}

// EncodeRoomToken grants the participant access to the room they currently occupy.
func (v *MediaService) EncodeRoomToken(conference models.Conference, participant models.Participant) (string, error) {
	grant := &auth.VideoGrant{
		Room:      MediaRoomName(conference.ID, participant.CurrentRoom),
		RoomJoin:  true,
		RoomAdmin: participant.IsHost(),
	}

	metadata, _ := jsoniter.Marshal(participant)

	tk := auth.NewAccessToken(v.apiKey, v.apiSecret)
	tk.AddGrant(grant).
		SetIdentity(participant.ID).
		SetName(participant.DisplayName).
		SetMetadata(string(metadata)).
		SetValidFor(v.tokenDuration)

	return tk.ToJWT()
}

func (v *MediaService) SyncVideoControlStatus(ctx context.Context, conferenceID string, participant models.Participant, status models.VideoControlStatus) error {
	metadata, _ := jsoniter.Marshal(status)
	if _, err := v.client.UpdateParticipant(ctx, &livekit.UpdateParticipantRequest{
		Room:     MediaRoomName(conferenceID, participant.CurrentRoom),
		Identity: participant.ID,
		Metadata: string(metadata),
	}); err != nil {
		return fmt.Errorf("remote livekit error: %v", err)
	}
	return nil
}
