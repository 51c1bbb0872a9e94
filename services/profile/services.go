package profile

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// ListServices returns the profile's embedded services.
func (s *DefaultProfileService) ListServices(profileID string) ([]models.Service, error) {
	prof, err := s.requireProfile(profileID)
	if err != nil {
		return nil, err
	}
	return prof.Services, nil
}

// AddService appends a new service to the profile.
func (s *DefaultProfileService) AddService(profileID, callerID, callerRole string, req models.ServiceCreate) (*models.BusinessProfile, error) {
	if _, err := s.requireOwned(profileID, callerID, callerRole); err != nil {
		return nil, err
	}

	svc := models.Service{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := s.Repo.AddService(profileID, svc); err != nil {
		utils.GetLogger().Error("Failed to add service", zap.Error(err))
		return nil, err
	}
	return s.requireProfile(profileID)
}

// UpdateService replaces an existing service's fields, keeping its ID.
func (s *DefaultProfileService) UpdateService(profileID, serviceID, callerID, callerRole string, req models.ServiceCreate) (*models.BusinessProfile, error) {
	prof, err := s.requireOwned(profileID, callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if _, ok := prof.ServiceByID(serviceID); !ok {
		return nil, utils.NewServiceError(http.StatusNotFound, "Service not found")
	}

	svc := models.Service{
		ID:          serviceID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := s.Repo.UpdateService(profileID, svc); err != nil {
		utils.GetLogger().Error("Failed to update service", zap.Error(err))
		return nil, err
	}
	return s.requireProfile(profileID)
}

// DeleteService removes a service from the profile.
func (s *DefaultProfileService) DeleteService(profileID, serviceID, callerID, callerRole string) error {
	prof, err := s.requireOwned(profileID, callerID, callerRole)
	if err != nil {
		return err
	}
	if _, ok := prof.ServiceByID(serviceID); !ok {
		return utils.NewServiceError(http.StatusNotFound, "Service not found")
	}

	if err := s.Repo.DeleteService(profileID, serviceID); err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.Error(err))
		return err
	}
	return nil
}
