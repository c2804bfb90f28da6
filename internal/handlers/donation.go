package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/services"
	"github.com/storysprout/storysprout-backend/internal/types"
)

type DonationHandler struct {
	log             *logger.Logger
	donationService services.DonationService
}

func NewDonationHandler(log *logger.Logger, donationService services.DonationService) *DonationHandler {
	return &DonationHandler{log: log.With("handler", "DonationHandler"), donationService: donationService}
}

func (dh *DonationHandler) Create(c *gin.Context) {
	var input services.CreateDonationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	donation, err := dh.donationService.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_donation_failed", err)
		return
	}
	RespondOK(c, gin.H{"donation": donation})
}

func (dh *DonationHandler) List(c *gin.Context) {
	donations, err := dh.donationService.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_donations_failed", err)
		return
	}
	RespondOK(c, gin.H{"donations": donations})
}

type advanceRequestBody struct {
	Status types.DonationStatus `json:"status" binding:"required"`
}

func (dh *DonationHandler) Advance(c *gin.Context) {
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_donation_id", err)
		return
	}
	var req advanceRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	donation, err := dh.donationService.Advance(c.Request.Context(), donationID, req.Status)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "advance_donation_failed", err)
		return
	}
	RespondOK(c, gin.H{"donation": donation})
}
