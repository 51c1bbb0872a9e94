package landing

import (
	landingRepo "bookify/database/repository/landing"
	"bookify/models"
)

type LandingService interface {
	GetConfig(ownerID string) (*models.LandingPageConfig, error)
	UpdateConfig(ownerID string, req models.LandingConfigUpdate) (*models.LandingPageConfig, error)
	Publish(ownerID string) (*models.LandingPageConfig, error)
	Unpublish(ownerID string) (*models.LandingPageConfig, error)
	GetPublic() (*models.LandingPageConfig, error)
}

// DefaultLandingService is the production implementation.
type DefaultLandingService struct {
	Repo landingRepo.LandingRepository
}
