package profile

import (
	profileRepo "bookify/database/repository/profile"
	"bookify/models"
)

type ProfileService interface {
	// Profile CRUD
	Create(ownerID string, req models.ProfileCreate) (*models.BusinessProfile, error)
	GetAll() ([]models.BusinessProfile, error)
	GetByID(profileID string) (*models.BusinessProfile, error)
	Update(profileID, callerID, callerRole string, req models.ProfileUpdate) (*models.BusinessProfile, error)
	Delete(profileID, callerID, callerRole string) error

	// Embedded services
	ListServices(profileID string) ([]models.Service, error)
	AddService(profileID, callerID, callerRole string, req models.ServiceCreate) (*models.BusinessProfile, error)
	UpdateService(profileID, serviceID, callerID, callerRole string, req models.ServiceCreate) (*models.BusinessProfile, error)
	DeleteService(profileID, serviceID, callerID, callerRole string) error

	// Flags
	Verify(profileID, callerID, callerRole string) (*models.BusinessProfile, error)
	SetActive(profileID, callerID, callerRole string, active bool) (*models.BusinessProfile, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}
