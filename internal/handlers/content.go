package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/requestdata"
	"github.com/storysprout/storysprout-backend/internal/services"
	"github.com/storysprout/storysprout-backend/internal/types"
)

// ContentHandler exposes the generation store: story and activity generation,
// session lists, manual adds, and the shared in-flight/error state.
type ContentHandler struct {
	log   *logger.Logger
	store *services.ContentStore
}

func NewContentHandler(log *logger.Logger, store *services.ContentStore) *ContentHandler {
	return &ContentHandler{log: log.With("handler", "ContentHandler"), store: store}
}

func currentUserID(c *gin.Context) uuid.UUID {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		return uuid.Nil
	}
	return rd.UserID
}

func (ch *ContentHandler) GenerateStory(c *gin.Context) {
	var req types.StoryGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	story, err := ch.store.GenerateStory(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "generate_story_failed", err)
		return
	}
	RespondOK(c, gin.H{"story": story})
}

func (ch *ContentHandler) ListStories(c *gin.Context) {
	RespondOK(c, gin.H{"stories": ch.store.Stories()})
}

func (ch *ContentHandler) AddStory(c *gin.Context) {
	var story types.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ch.store.AddStory(&story)
	RespondOK(c, gin.H{"story": &story})
}

func (ch *ContentHandler) GenerateActivity(c *gin.Context) {
	var req types.ActivityGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	activity, err := ch.store.GenerateActivity(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "generate_activity_failed", err)
		return
	}
	RespondOK(c, gin.H{"activity": activity})
}

func (ch *ContentHandler) ListActivities(c *gin.Context) {
	RespondOK(c, gin.H{"activities": ch.store.Activities()})
}

func (ch *ContentHandler) AddActivity(c *gin.Context) {
	var activity types.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ch.store.AddActivity(&activity)
	RespondOK(c, gin.H{"activity": &activity})
}

func (ch *ContentHandler) LoadUserContent(c *gin.Context) {
	if err := ch.store.LoadUserContent(c.Request.Context(), currentUserID(c)); err != nil {
		RespondError(c, http.StatusInternalServerError, "load_content_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"stories":    ch.store.Stories(),
		"activities": ch.store.Activities(),
	})
}

func (ch *ContentHandler) GenerationStatus(c *gin.Context) {
	RespondOK(c, gin.H{
		"isGenerating": ch.store.IsGenerating(),
		"error":        ch.store.Err(),
	})
}

func (ch *ContentHandler) ClearError(c *gin.Context) {
	ch.store.ClearError()
	RespondOK(c, gin.H{"ok": true})
}
