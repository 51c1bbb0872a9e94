package landingRepo

import "bookify/models"

type LandingRepository interface {
	Create(config *models.LandingPageConfig) error
	GetByOwner(ownerID string) (*models.LandingPageConfig, error)
	Update(config *models.LandingPageConfig) error
	GetPublished() (*models.LandingPageConfig, error)
}
