package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/profile"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler exposes business profile CRUD and embedded service
// management.
type ProfileHandler struct {
	Svc profile.ProfileService
}

func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Svc: svc}
}

// CreateProfileHandler creates a business profile owned by the caller.
func (h *ProfileHandler) CreateProfileHandler(c *gin.Context) {
	var req models.ProfileCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	created, err := h.Svc.Create(c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProfilesHandler returns all business profiles.
func (h *ProfileHandler) ListProfilesHandler(c *gin.Context) {
	profiles, err := h.Svc.GetAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileHandler returns one profile by ID.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	found, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateProfileHandler applies a partial update to a profile.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}

	updated, err := h.Svc.Update(c.Param("id"), c.GetString("userID"), c.GetString("userRole"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProfileHandler removes a profile.
func (h *ProfileHandler) DeleteProfileHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id"), c.GetString("userID"), c.GetString("userRole")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

// ListServicesHandler returns the services embedded in a profile.
func (h *ProfileHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// AddServiceHandler appends a service to a profile.
func (h *ProfileHandler) AddServiceHandler(c *gin.Context) {
	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}

	updated, err := h.Svc.AddService(c.Param("id"), c.GetString("userID"), c.GetString("userRole"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, updated)
}

// UpdateServiceHandler replaces one embedded service.
func (h *ProfileHandler) UpdateServiceHandler(c *gin.Context) {
	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateService(c.Param("id"), c.Param("serviceId"), c.GetString("userID"), c.GetString("userRole"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler removes one embedded service.
func (h *ProfileHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Param("id"), c.Param("serviceId"), c.GetString("userID"), c.GetString("userRole")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// VerifyProfileHandler marks a profile as verified.
func (h *ProfileHandler) VerifyProfileHandler(c *gin.Context) {
	updated, err := h.Svc.Verify(c.Param("id"), c.GetString("userID"), c.GetString("userRole"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ActivateProfileHandler opens a profile for bookings.
func (h *ProfileHandler) ActivateProfileHandler(c *gin.Context) {
	updated, err := h.Svc.SetActive(c.Param("id"), c.GetString("userID"), c.GetString("userRole"), true)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeactivateProfileHandler stops a profile from taking bookings.
func (h *ProfileHandler) DeactivateProfileHandler(c *gin.Context) {
	updated, err := h.Svc.SetActive(c.Param("id"), c.GetString("userID"), c.GetString("userRole"), false)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
