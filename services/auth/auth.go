// File: bookify/services/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bookify/models"
	"bookify/utils"
)

const tokenValidity = 24 * time.Hour

// Register creates a customer account and signs it in.
func (s *DefaultAuthService) Register(req models.UserRegister) (*models.TokenResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByUsername(req.Username)
	if err != nil {
		logger.Error("Failed to check username", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewServiceError(http.StatusConflict, "Username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := s.Repo.Create(user); err != nil {
		logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a bearer token.
func (s *DefaultAuthService) Login(req models.UserLogin) (*models.TokenResponse, error) {
	logger := utils.GetLogger()

	user, err := s.Repo.GetByUsername(req.Username)
	if err != nil {
		logger.Error("Failed to fetch user", zap.Error(err))
		return nil, err
	}
	if user == nil || user.IsDeleted || !user.IsActive {
		return nil, utils.NewServiceError(http.StatusUnauthorized, "Invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, utils.NewServiceError(http.StatusUnauthorized, "Invalid username or password")
	}

	return s.issueToken(user)
}

// Me returns the caller's public profile.
func (s *DefaultAuthService) Me(userID string) (*models.UserResponse, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "User not found")
	}
	view := user.PublicView()
	return &view, nil
}

func (s *DefaultAuthService) issueToken(user *models.User) (*models.TokenResponse, error) {
	token, err := utils.GenerateToken(user.ID, tokenValidity)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.Error(err))
		return nil, err
	}
	cacheToken(user, token)
	return &models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// cacheToken stores the token hash plus the role so the auth middleware can
// skip Mongo on repeat requests. Cache failures only cost us the fast path.
func cacheToken(user *models.User, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + user.ID
	value := utils.HashToken(token) + "|" + user.Role
	if err := client.Set(ctx, key, value, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token", zap.Error(err))
	}
}
