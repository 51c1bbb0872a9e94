// File: bookify/services/profile/crud.go
package profile

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// Create stores a new business profile owned by the caller.
func (s *DefaultProfileService) Create(ownerID string, req models.ProfileCreate) (*models.BusinessProfile, error) {
	prof := &models.BusinessProfile{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OwnerID:     ownerID,
		Services:    req.Services,
		IsActive:    true,
	}
	for i := range prof.Services {
		if prof.Services[i].ID == "" {
			prof.Services[i].ID = uuid.New().String()
		}
	}

	if err := s.Repo.Create(prof); err != nil {
		utils.GetLogger().Error("Failed to create profile", zap.Error(err))
		return nil, err
	}
	return prof, nil
}

func (s *DefaultProfileService) GetAll() ([]models.BusinessProfile, error) {
	profiles, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list profiles", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

func (s *DefaultProfileService) GetByID(profileID string) (*models.BusinessProfile, error) {
	return s.requireProfile(profileID)
}

// Update applies the provided fields only.
func (s *DefaultProfileService) Update(profileID, callerID, callerRole string, req models.ProfileUpdate) (*models.BusinessProfile, error) {
	prof, err := s.requireOwned(profileID, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Description != nil {
		prof.Description = *req.Description
	}
	if req.ImageURL != nil {
		prof.ImageURL = *req.ImageURL
	}

	if err := s.Repo.Update(prof); err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.Error(err))
		return nil, err
	}
	return prof, nil
}

func (s *DefaultProfileService) Delete(profileID, callerID, callerRole string) error {
	if _, err := s.requireOwned(profileID, callerID, callerRole); err != nil {
		return err
	}
	if err := s.Repo.Delete(profileID); err != nil {
		utils.GetLogger().Error("Failed to delete profile", zap.Error(err))
		return err
	}
	return nil
}

// Verify marks the profile as verified.
func (s *DefaultProfileService) Verify(profileID, callerID, callerRole string) (*models.BusinessProfile, error) {
	prof, err := s.requireOwned(profileID, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	prof.IsVerified = true
	if err := s.Repo.Update(prof); err != nil {
		utils.GetLogger().Error("Failed to verify profile", zap.Error(err))
		return nil, err
	}
	return prof, nil
}

// SetActive toggles whether the profile accepts bookings.
func (s *DefaultProfileService) SetActive(profileID, callerID, callerRole string, active bool) (*models.BusinessProfile, error) {
	prof, err := s.requireOwned(profileID, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	prof.IsActive = active
	if err := s.Repo.Update(prof); err != nil {
		utils.GetLogger().Error("Failed to toggle profile", zap.Error(err))
		return nil, err
	}
	return prof, nil
}

// requireProfile loads a profile or yields a 404 service error.
func (s *DefaultProfileService) requireProfile(profileID string) (*models.BusinessProfile, error) {
	prof, err := s.Repo.GetByID(profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if prof == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}
	return prof, nil
}

// requireOwned loads a profile and checks the caller may mutate it. Platform
// admins bypass the ownership check.
func (s *DefaultProfileService) requireOwned(profileID, callerID, callerRole string) (*models.BusinessProfile, error) {
	prof, err := s.requireProfile(profileID)
	if err != nil {
		return nil, err
	}
	if callerRole == models.RoleAdmin || callerRole == models.RoleSuperAdmin {
		return prof, nil
	}
	if prof.OwnerID != callerID {
		return nil, utils.NewServiceError(http.StatusForbidden, "Not authorized to modify this profile")
	}
	return prof, nil
}
