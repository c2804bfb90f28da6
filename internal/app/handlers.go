package app

import (
	"github.com/storysprout/storysprout-backend/internal/handlers"
	"github.com/storysprout/storysprout-backend/internal/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Content  *handlers.ContentHandler
	Voice    *handlers.VoiceHandler
	Donation *handlers.DonationHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(services.Auth),
		User:     handlers.NewUserHandler(services.User),
		Content:  handlers.NewContentHandler(log, services.Content),
		Voice:    handlers.NewVoiceHandler(log, services.Voice),
		Donation: handlers.NewDonationHandler(log, services.Donation),
	}
}
