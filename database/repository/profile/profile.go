package profileRepo

import "bookify/models"

// ProfileRepository defines methods for business profile data access.
type ProfileRepository interface {
	Create(profile *models.BusinessProfile) error
	GetByID(id string) (*models.BusinessProfile, error)
	GetAll() ([]models.BusinessProfile, error)
	GetByOwner(ownerID string, skip, limit int) ([]models.BusinessProfile, error)
	GetFirstByOwner(ownerID string) (*models.BusinessProfile, error)
	Update(profile *models.BusinessProfile) error
	Delete(id string) error

	AddService(profileID string, svc models.Service) error
	UpdateService(profileID string, svc models.Service) error
	DeleteService(profileID, serviceID string) error
}
