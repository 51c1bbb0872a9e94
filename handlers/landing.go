package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/landing"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// LandingHandler exposes landing page configuration for owners plus the
// public read.
type LandingHandler struct {
	Svc landing.LandingService
}

func NewLandingHandler(svc landing.LandingService) *LandingHandler {
	return &LandingHandler{Svc: svc}
}

// GetLandingConfigHandler returns the caller's landing page, creating the
// default one on first access.
func (h *LandingHandler) GetLandingConfigHandler(c *gin.Context) {
	cfg, err := h.Svc.GetConfig(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateLandingConfigHandler applies a partial landing page update.
func (h *LandingHandler) UpdateLandingConfigHandler(c *gin.Context) {
	var req models.LandingConfigUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid landing config payload", err.Error())
		return
	}

	cfg, err := h.Svc.UpdateConfig(c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PublishLandingHandler makes the caller's landing page public.
func (h *LandingHandler) PublishLandingHandler(c *gin.Context) {
	cfg, err := h.Svc.Publish(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UnpublishLandingHandler hides the caller's landing page.
func (h *LandingHandler) UnpublishLandingHandler(c *gin.Context) {
	cfg, err := h.Svc.Unpublish(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PublicLandingHandler serves the published landing page without auth.
func (h *LandingHandler) PublicLandingHandler(c *gin.Context) {
	cfg, err := h.Svc.GetPublic()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
