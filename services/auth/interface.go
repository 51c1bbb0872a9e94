package auth

import (
	userRepo "bookify/database/repository/user"
	"bookify/models"
)

type AuthService interface {
	// Registration and sign-in
	Register(req models.UserRegister) (*models.TokenResponse, error)
	Login(req models.UserLogin) (*models.TokenResponse, error)

	// Current user
	Me(userID string) (*models.UserResponse, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}
