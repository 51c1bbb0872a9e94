package superadmin

import (
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bookify/models"
	"bookify/utils"
)

const (
	defaultOwnerPageLimit = 20
	maxOwnerPageLimit     = 100
)

// ListOwners returns the owner directory, newest first.
func (s *DefaultSuperadminService) ListOwners(page, limit int, search string, includeDeleted bool) (*models.OwnerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultOwnerPageLimit
	}
	if limit > maxOwnerPageLimit {
		limit = maxOwnerPageLimit
	}

	items, total, err := s.Users.ListOwners(page, limit, search, includeDeleted)
	if err != nil {
		utils.GetLogger().Error("Failed to list owners", zap.Error(err))
		return nil, err
	}

	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return &models.OwnerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}, nil
}

// CreateOwner provisions an owner account plus its default business profile.
func (s *DefaultSuperadminService) CreateOwner(req models.OwnerCreate) (*models.OwnerAccount, error) {
	logger := utils.GetLogger()

	existing, err := s.Users.GetByUsername(req.Username)
	if err != nil {
		logger.Error("Failed to check username", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewServiceError(http.StatusConflict, "Username already exists")
	}

	password := req.Password
	mustChange := false
	if password == "" {
		password = DefaultOwnerPassword
		mustChange = true
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		ID:                 uuid.New().String(),
		Username:           req.Username,
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hashed),
		Role:               models.RoleOwner,
		IsActive:           true,
		MustChangePassword: mustChange,
	}
	if err := s.Users.Create(user); err != nil {
		logger.Error("Failed to create owner", zap.Error(err))
		return nil, err
	}

	prof := &models.BusinessProfile{
		ID:          uuid.New().String(),
		Name:        req.Name + "'s Business",
		Description: "Default business profile - please update",
		OwnerID:     user.ID,
		Services:    []models.Service{},
		IsActive:    true,
	}
	if err := s.Profiles.Create(prof); err != nil {
		logger.Error("Failed to create default profile", zap.Error(err))
		return nil, err
	}

	return &models.OwnerAccount{
		ID:                 user.ID,
		Username:           user.Username,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		IsActive:           user.IsActive,
		MustChangePassword: user.MustChangePassword,
		ProfileCount:       1,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}, nil
}

// GetOwner returns one owner with its profile count.
func (s *DefaultSuperadminService) GetOwner(ownerID string) (*models.OwnerAccount, error) {
	owner, err := s.Users.GetOwner(ownerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch owner", zap.Error(err))
		return nil, err
	}
	if owner == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Owner not found")
	}
	return owner, nil
}

// UpdateOwner patches the provided fields.
func (s *DefaultSuperadminService) UpdateOwner(ownerID string, req models.OwnerUpdate) (*models.OwnerAccount, error) {
	if req.Name == nil && req.Email == nil && req.IsActive == nil {
		return nil, utils.NewServiceError(http.StatusBadRequest, "No updates provided")
	}
	if _, err := s.GetOwner(ownerID); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.Users.UpdateFields(ownerID, fields); err != nil {
		utils.GetLogger().Error("Failed to update owner", zap.Error(err))
		return nil, err
	}
	return s.GetOwner(ownerID)
}

// DeleteOwner soft-deletes the account; the directory hides it by default.
func (s *DefaultSuperadminService) DeleteOwner(ownerID string) error {
	if _, err := s.GetOwner(ownerID); err != nil {
		return err
	}
	fields := bson.M{"is_deleted": true, "is_active": false}
	if err := s.Users.UpdateFields(ownerID, fields); err != nil {
		utils.GetLogger().Error("Failed to delete owner", zap.Error(err))
		return err
	}
	return nil
}

// RestoreOwner reverses a soft delete.
func (s *DefaultSuperadminService) RestoreOwner(ownerID string) (*models.OwnerAccount, error) {
	user, err := s.Users.GetByID(ownerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch owner", zap.Error(err))
		return nil, err
	}
	if user == nil || user.Role != models.RoleOwner || !user.IsDeleted {
		return nil, utils.NewServiceError(http.StatusNotFound, "Owner not found or not deleted")
	}

	fields := bson.M{"is_deleted": false, "is_active": true}
	if err := s.Users.UpdateFields(ownerID, fields); err != nil {
		utils.GetLogger().Error("Failed to restore owner", zap.Error(err))
		return nil, err
	}
	return s.GetOwner(ownerID)
}

// ResetOwnerPassword sets the default password and forces a change on the
// next login.
func (s *DefaultSuperadminService) ResetOwnerPassword(ownerID string) error {
	if _, err := s.GetOwner(ownerID); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultOwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return err
	}
	fields := bson.M{"password_hash": string(hashed), "must_change_password": true}
	if err := s.Users.UpdateFields(ownerID, fields); err != nil {
		utils.GetLogger().Error("Failed to reset owner password", zap.Error(err))
		return err
	}
	return nil
}
