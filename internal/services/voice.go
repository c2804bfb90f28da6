package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/repos"
	"github.com/storysprout/storysprout-backend/internal/types"
)

type VoiceService interface {
	// CreateProfile registers the voice sample with the provider. Provider
	// failure does not surface: the profile is kept locally with
	// IsProcessed=false so it can be retried later.
	CreateProfile(ctx context.Context, userID uuid.UUID, name string, sample []byte, filename string) (*types.VoiceProfile, error)
	Profiles(ctx context.Context, userID uuid.UUID) ([]*types.VoiceProfile, error)
	// Synthesize returns the narration as a data URL. Unlike profile
	// creation, synthesis errors propagate to the caller.
	Synthesize(ctx context.Context, profileID uuid.UUID, text string) (string, error)
	// NarrateStory synthesizes the story body with the given profile and
	// attaches the audio reference to the story, saving best-effort.
	NarrateStory(ctx context.Context, storyID uuid.UUID, profileID uuid.UUID) (string, error)
}

type voiceService struct {
	log         *logger.Logger
	voiceClient VoiceClient
	profileRepo repos.VoiceProfileRepo
	storyRepo   repos.StoryRepo
}

func NewVoiceService(log *logger.Logger, voiceClient VoiceClient, profileRepo repos.VoiceProfileRepo, storyRepo repos.StoryRepo) VoiceService {
	return &voiceService{
		log:         log.With("service", "VoiceService"),
		voiceClient: voiceClient,
		profileRepo: profileRepo,
		storyRepo:   storyRepo,
	}
}

func (vs *voiceService) CreateProfile(ctx context.Context, userID uuid.UUID, name string, sample []byte, filename string) (*types.VoiceProfile, error) {
	if vs.voiceClient == nil {
		return nil, fmt.Errorf("voice provider: %w", ErrNotConfigured)
	}
	if name == "" {
		return nil, fmt.Errorf("name required")
	}
	if len(sample) == 0 {
		return nil, fmt.Errorf("audio sample required")
	}

	profile := &types.VoiceProfile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	description := fmt.Sprintf("Voice profile for %s", name)
	voiceID, err := vs.voiceClient.AddVoice(ctx, name, description, sample, filename)
	if err != nil {
		vs.log.Warn("Voice profile creation failed, keeping unprocessed profile", "error", err)
	} else {
		profile.ProviderVoiceID = voiceID
		profile.IsProcessed = true
	}

	if vs.profileRepo != nil {
		if _, err := vs.profileRepo.Create(ctx, nil, profile); err != nil {
			vs.log.Warn("Failed to save voice profile to database", "profile_id", profile.ID, "error", err)
		}
	}
	return profile, nil
}

func (vs *voiceService) Profiles(ctx context.Context, userID uuid.UUID) ([]*types.VoiceProfile, error) {
	return vs.profileRepo.GetByUserID(ctx, nil, userID)
}

func (vs *voiceService) Synthesize(ctx context.Context, profileID uuid.UUID, text string) (string, error) {
	if vs.voiceClient == nil {
		return "", fmt.Errorf("voice provider: %w", ErrNotConfigured)
	}
	if text == "" {
		return "", fmt.Errorf("text required")
	}
	profile, err := vs.profileRepo.GetByID(ctx, nil, profileID)
	if err != nil {
		return "", fmt.Errorf("voice profile: %w", err)
	}
	if !profile.IsProcessed || profile.ProviderVoiceID == "" {
		return "", fmt.Errorf("voice profile %s is not processed yet", profileID)
	}

	audio, err := vs.voiceClient.Synthesize(ctx, profile.ProviderVoiceID, text)
	if err != nil {
		return "", err
	}
	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio), nil
}

func (vs *voiceService) NarrateStory(ctx context.Context, storyID uuid.UUID, profileID uuid.UUID) (string, error) {
	story, err := vs.storyRepo.GetByID(ctx, nil, storyID)
	if err != nil {
		return "", fmt.Errorf("story: %w", err)
	}

	audioURL, err := vs.Synthesize(ctx, profileID, story.Content)
	if err != nil {
		return "", err
	}

	if err := vs.storyRepo.UpdateAudioURL(ctx, nil, storyID, audioURL); err != nil {
		vs.log.Warn("Failed to save story audio reference", "story_id", storyID, "error", err)
	}
	return audioURL, nil
}
