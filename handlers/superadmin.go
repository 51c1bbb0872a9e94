package handlers

import (
	"net/http"
	"strconv"

	"bookify/models"
	"bookify/services/superadmin"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// SuperadminHandler exposes owner account provisioning. SUPERADMIN only.
type SuperadminHandler struct {
	Svc superadmin.SuperadminService
}

func NewSuperadminHandler(svc superadmin.SuperadminService) *SuperadminHandler {
	return &SuperadminHandler{Svc: svc}
}

// ListOwnersHandler returns the owner account directory.
func (h *SuperadminHandler) ListOwnersHandler(c *gin.Context) {
	includeDeleted := false
	if raw := c.Query("include_deleted"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid include_deleted, expected true or false", err.Error())
			return
		}
		includeDeleted = v
	}

	owners, err := h.Svc.ListOwners(intQuery(c, "page", 1), intQuery(c, "limit", 20), c.Query("search"), includeDeleted)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// CreateOwnerHandler provisions an owner account with a default profile.
func (h *SuperadminHandler) CreateOwnerHandler(c *gin.Context) {
	var req models.OwnerCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid owner payload", err.Error())
		return
	}

	created, err := h.Svc.CreateOwner(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetOwnerHandler returns one owner account.
func (h *SuperadminHandler) GetOwnerHandler(c *gin.Context) {
	found, err := h.Svc.GetOwner(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateOwnerHandler patches an owner account.
func (h *SuperadminHandler) UpdateOwnerHandler(c *gin.Context) {
	var req models.OwnerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid owner payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateOwner(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOwnerHandler soft-deletes an owner account.
func (h *SuperadminHandler) DeleteOwnerHandler(c *gin.Context) {
	if err := h.Svc.DeleteOwner(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreOwnerHandler reactivates a soft-deleted owner account.
func (h *SuperadminHandler) RestoreOwnerHandler(c *gin.Context) {
	restored, err := h.Svc.RestoreOwner(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restored)
}

// ResetOwnerPasswordHandler resets an owner's password to the provisioning
// default and forces a change on next login.
func (h *SuperadminHandler) ResetOwnerPasswordHandler(c *gin.Context) {
	if err := h.Svc.ResetOwnerPassword(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset to default"})
}
