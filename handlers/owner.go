package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/owner"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// OwnerHandler exposes the business owner's dashboard surface.
type OwnerHandler struct {
	Svc owner.OwnerService
}

func NewOwnerHandler(svc owner.OwnerService) *OwnerHandler {
	return &OwnerHandler{Svc: svc}
}

// OwnerDashboardHandler returns the owner's headline numbers across all of
// their profiles.
func (h *OwnerHandler) OwnerDashboardHandler(c *gin.Context) {
	stats, err := h.Svc.Dashboard(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MyProfilesHandler lists the owner's profiles with booking counters.
func (h *OwnerHandler) MyProfilesHandler(c *gin.Context) {
	profiles, err := h.Svc.MyProfiles(c.Request.Context(), c.GetString("userID"),
		intQuery(c, "skip", 0), intQuery(c, "limit", 10))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// CreateOwnerProfileHandler creates a profile owned by the caller.
func (h *OwnerHandler) CreateOwnerProfileHandler(c *gin.Context) {
	var req models.ProfileCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	created, err := h.Svc.CreateProfile(c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ProfileAnalyticsHandler returns per-profile analytics for its owner.
func (h *OwnerHandler) ProfileAnalyticsHandler(c *gin.Context) {
	analytics, err := h.Svc.ProfileAnalytics(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
