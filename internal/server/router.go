package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/storysprout/storysprout-backend/internal/handlers"
	"github.com/storysprout/storysprout-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	UserHandler     *handlers.UserHandler
	ContentHandler  *handlers.ContentHandler
	VoiceHandler    *handlers.VoiceHandler
	DonationHandler *handlers.DonationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.GET("/user", cfg.UserHandler.GetMe)

	protected.POST("/stories/generate", cfg.ContentHandler.GenerateStory)
	protected.GET("/stories", cfg.ContentHandler.ListStories)
	protected.POST("/stories", cfg.ContentHandler.AddStory)
	protected.POST("/stories/:id/narrate", cfg.VoiceHandler.NarrateStory)

	protected.POST("/activities/generate", cfg.ContentHandler.GenerateActivity)
	protected.GET("/activities", cfg.ContentHandler.ListActivities)
	protected.POST("/activities", cfg.ContentHandler.AddActivity)

	protected.POST("/content/load", cfg.ContentHandler.LoadUserContent)
	protected.GET("/generation/status", cfg.ContentHandler.GenerationStatus)
	protected.POST("/generation/clear-error", cfg.ContentHandler.ClearError)

	protected.POST("/voice/profiles", cfg.VoiceHandler.CreateProfile)
	protected.GET("/voice/profiles", cfg.VoiceHandler.ListProfiles)
	protected.POST("/voice/synthesize", cfg.VoiceHandler.Synthesize)

	protected.POST("/donations", cfg.DonationHandler.Create)
	protected.GET("/donations", cfg.DonationHandler.List)
	protected.POST("/donations/:id/advance", cfg.DonationHandler.Advance)

	return router
}
