package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"git.solsynth.dev/hypernet/hearing/pkg/internal/services/mocks"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testConferenceID = "conference-1"
	judgeGroup       = "judge.judy@hearings.net"
	staffGroup       = "staff@hearings.net"
)

type published struct {
	Group   string
	Action  string
	Payload any
}

type recordingPublisher struct {
	mu       sync.Mutex
	packages []published
}

func (v *recordingPublisher) PublishToGroup(group string, action string, payload any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.packages = append(v.packages, published{Group: group, Action: action, Payload: payload})
}

func (v *recordingPublisher) ByAction(action string) []published {
	v.mu.Lock()
	defer v.mu.Unlock()
	return lo.Filter(v.packages, func(item published, _ int) bool {
		return item.Action == action
	})
}

func (v *recordingPublisher) GroupsFor(action string) []string {
	return lo.Uniq(lo.Map(v.ByAction(action), func(item published, _ int) string {
		return item.Group
	}))
}

func (v *recordingPublisher) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.packages = nil
}

// sampleConference has two hosts, an interpreter pair and one endpoint.
func sampleConference() models.Conference {
	return models.Conference{
		ID:          testConferenceID,
		HearingID:   "hearing-1",
		CaseName:    "Applicant v Respondent",
		CaseNumber:  "CASE-001",
		ScheduledAt: time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
		Status:      models.ConferenceStatusInSession,
		Participants: []models.Participant{
			{ID: "judge", Username: "Judge.Judy@hearings.net", DisplayName: "Judge Judy", Role: models.RoleJudge, Status: models.ParticipantStatusInHearing, CurrentRoom: models.RoomHearing},
			{ID: "staff", Username: "staff@hearings.net", DisplayName: "Clerk", Role: models.RoleStaffMember, Status: models.ParticipantStatusAvailable, CurrentRoom: models.RoomWaiting},
			{
				ID:          "individual",
				Username:    "individual@hearings.net",
				DisplayName: "Applicant",
				Role:        models.RoleIndividual,
				Status:      models.ParticipantStatusAvailable,
				CurrentRoom: models.RoomWaiting,
				LinkedParticipants: []models.LinkedParticipant{
					{LinkedID: "interpreter", LinkType: models.LinkTypeInterpreter},
				},
			},
			{
				ID:          "interpreter",
				Username:    "interpreter@hearings.net",
				DisplayName: "Interpreter",
				Role:        models.RoleIndividual,
				HearingRole: "Interpreter",
				Status:      models.ParticipantStatusAvailable,
				CurrentRoom: models.RoomWaiting,
				LinkedParticipants: []models.LinkedParticipant{
					{LinkedID: "individual", LinkType: models.LinkTypeInterpreter},
				},
			},
			{ID: "representative", Username: "rep@hearings.net", DisplayName: "Representative", Role: models.RoleRepresentative, Status: models.ParticipantStatusAvailable, CurrentRoom: models.RoomWaiting},
		},
		Endpoints: []models.Endpoint{
			{ID: "endpoint", DisplayName: "Court Room 1", SipAddress: "room1@sip.hearings.net", Status: models.EndpointStatusConnected, CurrentRoom: models.RoomWaiting},
		},
	}
}

type testServices struct {
	marshal       *marshaler.Marshaler
	source        *mocks.MockConferenceSource
	publisher     *recordingPublisher
	store         *ConferenceStore
	conferences   *ConferenceService
	tracker       *ConsultationTracker
	notifier      *ConsultationNotifier
	videoControls *VideoControlStore
}

func newTestServices(t *testing.T) *testServices {
	ctrl := gomock.NewController(t)

	v := &testServices{
		marshal:   cache.NewMarshaler(cache.NewMemoryStore()),
		source:    mocks.NewMockConferenceSource(ctrl),
		publisher: &recordingPublisher{},
	}
	v.store = NewConferenceStore(v.marshal, time.Hour, 10*time.Minute)
	v.conferences = NewConferenceService(v.store, v.source)
	v.tracker = NewConsultationTracker(v.marshal, time.Hour)
	v.notifier = NewConsultationNotifier(v.tracker, v.publisher)
	v.videoControls = NewVideoControlStore(v.marshal, time.Hour)
	return v
}

// seed puts the sample conference in the cache so the source is never asked for it.
func (v *testServices) seed(t *testing.T) models.Conference {
	conference := sampleConference()
	require.NoError(t, v.conferences.UpdateConference(context.Background(), conference))
	return conference
}
