package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/services"
)

type VoiceHandler struct {
	log          *logger.Logger
	voiceService services.VoiceService
}

func NewVoiceHandler(log *logger.Logger, voiceService services.VoiceService) *VoiceHandler {
	return &VoiceHandler{log: log.With("handler", "VoiceHandler"), voiceService: voiceService}
}

func (vh *VoiceHandler) CreateProfile(c *gin.Context) {
	name := c.PostForm("name")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	defer file.Close()
	sample, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	profile, err := vh.voiceService.CreateProfile(c.Request.Context(), currentUserID(c), name, sample, fileHeader.Filename)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_profile_failed", err)
		return
	}
	RespondOK(c, gin.H{"profile": profile})
}

func (vh *VoiceHandler) ListProfiles(c *gin.Context) {
	profiles, err := vh.voiceService.Profiles(c.Request.Context(), currentUserID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_profiles_failed", err)
		return
	}
	RespondOK(c, gin.H{"profiles": profiles})
}

type synthesizeRequestBody struct {
	ProfileID uuid.UUID `json:"profileId" binding:"required"`
	Text      string    `json:"text" binding:"required"`
}

func (vh *VoiceHandler) Synthesize(c *gin.Context) {
	var req synthesizeRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	audioURL, err := vh.voiceService.Synthesize(c.Request.Context(), req.ProfileID, req.Text)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "synthesize_failed", err)
		return
	}
	RespondOK(c, gin.H{"audioUrl": audioURL})
}

type narrateRequestBody struct {
	ProfileID uuid.UUID `json:"profileId" binding:"required"`
}

func (vh *VoiceHandler) NarrateStory(c *gin.Context) {
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_story_id", err)
		return
	}
	var req narrateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	audioURL, err := vh.voiceService.NarrateStory(c.Request.Context(), storyID, req.ProfileID)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "narrate_failed", err)
		return
	}
	RespondOK(c, gin.H{"audioUrl": audioURL})
}
