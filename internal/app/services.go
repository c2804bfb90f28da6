package app

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Story    services.StoryService
	Activity services.ActivityService
	Content  *services.ContentStore
	Voice    services.VoiceService
	Donation services.DonationService
}

// wireServices builds the provider clients from whatever credentials are
// present. Missing text providers shrink the fallback chain (possibly to
// nothing, which forces local synthesis); a missing image or voice provider
// leaves that client nil.
func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	var textClients []services.TextClient
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		if !errors.Is(err, services.ErrNotConfigured) {
			return Services{}, err
		}
		log.Info("OpenAI not configured, skipping")
	} else {
		textClients = append(textClients, openaiClient)
	}
	anthropicClient, err := services.NewAnthropicClient(log)
	if err != nil {
		if !errors.Is(err, services.ErrNotConfigured) {
			return Services{}, err
		}
		log.Info("Anthropic not configured, skipping")
	} else {
		textClients = append(textClients, anthropicClient)
	}

	var imageClient services.ImageClient
	if ic, err := services.NewStabilityClient(log); err != nil {
		if !errors.Is(err, services.ErrNotConfigured) {
			return Services{}, err
		}
		log.Info("Stability not configured, image enrichment disabled")
	} else {
		imageClient = ic
	}

	var voiceClient services.VoiceClient
	if vc, err := services.NewElevenLabsClient(log); err != nil {
		if !errors.Is(err, services.ErrNotConfigured) {
			return Services{}, err
		}
		log.Info("ElevenLabs not configured, voice features disabled")
	} else {
		voiceClient = vc
	}

	storyService := services.NewStoryService(log, textClients, imageClient)
	activityService := services.NewActivityService(log, textClients, imageClient)
	contentStore := services.NewContentStore(log, storyService, activityService, reposet.Story, reposet.Activity)
	voiceService := services.NewVoiceService(log, voiceClient, reposet.VoiceProfile, reposet.Story)
	donationService := services.NewDonationService(log, reposet.Donation)
	authService := services.NewAuthService(db, log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	userService := services.NewUserService(log, reposet.User)

	return Services{
		Auth:     authService,
		User:     userService,
		Story:    storyService,
		Activity: activityService,
		Content:  contentStore,
		Voice:    voiceService,
		Donation: donationService,
	}, nil
}
