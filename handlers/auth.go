package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/auth"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and sign-in endpoints.
type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// RegisterHandler creates a customer account and returns a token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	token, err := h.Svc.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

// LoginHandler verifies credentials and returns a token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.UserLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	token, err := h.Svc.Login(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// MeHandler returns the authenticated account.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	user, err := h.Svc.Me(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
