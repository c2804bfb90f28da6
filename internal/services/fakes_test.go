package services

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

type fakeTextClient struct {
	name       string
	completion string
	err        error
	calls      int
}

func (f *fakeTextClient) Name() string { return f.name }

func (f *fakeTextClient) Complete(ctx context.Context, system string, user string, maxTokens int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

type fakeImageClient struct {
	asset string
	err   error
	calls int
}

func (f *fakeImageClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.asset, nil
}

type fakeVoiceClient struct {
	voiceID   string
	audio     []byte
	addErr    error
	synthErr  error
	addCalls  int
	lastName  string
	lastText  string
	lastVoice string
}

func (f *fakeVoiceClient) AddVoice(ctx context.Context, name string, description string, sample []byte, filename string) (string, error) {
	f.addCalls++
	f.lastName = name
	if f.addErr != nil {
		return "", f.addErr
	}
	return f.voiceID, nil
}

func (f *fakeVoiceClient) Synthesize(ctx context.Context, voiceID string, text string) ([]byte, error) {
	f.lastVoice = voiceID
	f.lastText = text
	if f.synthErr != nil {
		return nil, f.synthErr
	}
	return f.audio, nil
}

func (f *fakeVoiceClient) ListVoices(ctx context.Context) ([]Voice, error) {
	return nil, nil
}

type fakeStoryRepo struct {
	stories   map[uuid.UUID]*types.Story
	createErr error
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: map[uuid.UUID]*types.Story{}}
}

func (f *fakeStoryRepo) Create(ctx context.Context, tx *gorm.DB, story *types.Story) (*types.Story, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *story
	f.stories[story.ID] = &copied
	return story, nil
}

func (f *fakeStoryRepo) GetByID(ctx context.Context, tx *gorm.DB, storyID uuid.UUID) (*types.Story, error) {
	story, ok := f.stories[storyID]
	if !ok {
		return nil, fmt.Errorf("story not found")
	}
	return story, nil
}

func (f *fakeStoryRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Story, error) {
	var out []*types.Story
	for _, story := range f.stories {
		if story.UserID == userID {
			out = append(out, story)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStoryRepo) UpdateAudioURL(ctx context.Context, tx *gorm.DB, storyID uuid.UUID, audioURL string) error {
	story, ok := f.stories[storyID]
	if !ok {
		return fmt.Errorf("story not found")
	}
	story.AudioURL = audioURL
	return nil
}

type fakeActivityRepo struct {
	activities []*types.Activity
	createErr  error
}

func (f *fakeActivityRepo) Create(ctx context.Context, tx *gorm.DB, activity *types.Activity) (*types.Activity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.activities = append(f.activities, activity)
	return activity, nil
}

func (f *fakeActivityRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Activity, error) {
	var out []*types.Activity
	for _, activity := range f.activities {
		if activity.UserID == userID {
			out = append(out, activity)
		}
	}
	return out, nil
}

type fakeVoiceProfileRepo struct {
	profiles  map[uuid.UUID]*types.VoiceProfile
	createErr error
}

func newFakeVoiceProfileRepo() *fakeVoiceProfileRepo {
	return &fakeVoiceProfileRepo{profiles: map[uuid.UUID]*types.VoiceProfile{}}
}

func (f *fakeVoiceProfileRepo) Create(ctx context.Context, tx *gorm.DB, profile *types.VoiceProfile) (*types.VoiceProfile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.profiles[profile.ID] = profile
	return profile, nil
}

func (f *fakeVoiceProfileRepo) GetByID(ctx context.Context, tx *gorm.DB, profileID uuid.UUID) (*types.VoiceProfile, error) {
	profile, ok := f.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("voice profile not found")
	}
	return profile, nil
}

func (f *fakeVoiceProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.VoiceProfile, error) {
	var out []*types.VoiceProfile
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			out = append(out, profile)
		}
	}
	return out, nil
}

type fakeDonationRepo struct {
	donations map[uuid.UUID]*types.Donation
	createErr error
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: map[uuid.UUID]*types.Donation{}}
}

func (f *fakeDonationRepo) Create(ctx context.Context, tx *gorm.DB, donation *types.Donation) (*types.Donation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.donations[donation.ID] = donation
	return donation, nil
}

func (f *fakeDonationRepo) GetByID(ctx context.Context, tx *gorm.DB, donationID uuid.UUID) (*types.Donation, error) {
	donation, ok := f.donations[donationID]
	if !ok {
		return nil, fmt.Errorf("donation not found")
	}
	copied := *donation
	return &copied, nil
}

func (f *fakeDonationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Donation, error) {
	var out []*types.Donation
	for _, donation := range f.donations {
		out = append(out, donation)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeDonationRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, donationID uuid.UUID, status types.DonationStatus, distributedAt *time.Time) error {
	donation, ok := f.donations[donationID]
	if !ok {
		return fmt.Errorf("donation not found")
	}
	donation.Status = status
	if distributedAt != nil {
		donation.DistributedAt = distributedAt
	}
	return nil
}

type fakeUserRepo struct {
	byID    map[uuid.UUID]*types.User
	byEmail map[string]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]*types.User{}, byEmail: map[string]*types.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error) {
	user, ok := f.byID[userID]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}
