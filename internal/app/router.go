package app

import (
	"github.com/gin-gonic/gin"

	"github.com/storysprout/storysprout-backend/internal/server"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  middleware.Auth,
		UserHandler:     handlers.User,
		ContentHandler:  handlers.Content,
		VoiceHandler:    handlers.Voice,
		DonationHandler: handlers.Donation,
	})
}
