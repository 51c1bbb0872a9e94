package landing

import (
	"net/http"

	"bookify/models"
	"bookify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetConfig returns the owner's landing page, creating the default one on
// first access.
func (s *DefaultLandingService) GetConfig(ownerID string) (*models.LandingPageConfig, error) {
	cfg, err := s.getOrCreate(ownerID)
	if err != nil {
		return nil, err
	}
	enforceConstraints(cfg)
	return cfg, nil
}

// UpdateConfig replaces only the sections present in the request.
func (s *DefaultLandingService) UpdateConfig(ownerID string, req models.LandingConfigUpdate) (*models.LandingPageConfig, error) {
	cfg, err := s.getOrCreate(ownerID)
	if err != nil {
		return nil, err
	}

	if req.Hero != nil {
		cfg.Hero = *req.Hero
	}
	if req.ServicesSection != nil {
		cfg.ServicesSection = *req.ServicesSection
	}
	if req.PortfolioSection != nil {
		cfg.PortfolioSection = *req.PortfolioSection
	}
	if req.PortfolioItems != nil {
		cfg.PortfolioItems = *req.PortfolioItems
	}
	if req.StatsSection != nil {
		cfg.StatsSection = *req.StatsSection
	}
	if req.Stats != nil {
		cfg.Stats = *req.Stats
	}
	if req.TestimonialsSection != nil {
		cfg.TestimonialsSection = *req.TestimonialsSection
	}
	if req.Testimonials != nil {
		cfg.Testimonials = *req.Testimonials
	}
	if req.FinalCTA != nil {
		cfg.FinalCTA = *req.FinalCTA
	}
	if req.CustomSections != nil {
		cfg.CustomSections = *req.CustomSections
	}
	if req.Footer != nil {
		cfg.Footer = *req.Footer
	}
	if req.Branding != nil {
		cfg.Branding = *req.Branding
	}

	enforceConstraints(cfg)
	if err := s.Repo.Update(cfg); err != nil {
		utils.GetLogger().Error("Failed to update landing config", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

// Publish makes the owner's landing page publicly visible.
func (s *DefaultLandingService) Publish(ownerID string) (*models.LandingPageConfig, error) {
	return s.setPublished(ownerID, true)
}

// Unpublish hides the owner's landing page again.
func (s *DefaultLandingService) Unpublish(ownerID string) (*models.LandingPageConfig, error) {
	return s.setPublished(ownerID, false)
}

// GetPublic returns the published landing page, or the default template when
// nothing is published yet. Requires no authentication.
func (s *DefaultLandingService) GetPublic() (*models.LandingPageConfig, error) {
	cfg, err := s.Repo.GetPublished()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = defaultConfig("default")
		cfg.ID = "default"
	}
	enforceConstraints(cfg)
	return cfg, nil
}

func (s *DefaultLandingService) getOrCreate(ownerID string) (*models.LandingPageConfig, error) {
	cfg, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		return cfg, nil
	}

	cfg = defaultConfig(ownerID)
	cfg.ID = uuid.New().String()
	enforceConstraints(cfg)
	if err := s.Repo.Create(cfg); err != nil {
		utils.GetLogger().Error("Failed to create landing config", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	utils.GetLogger().Info("Created default landing config", zap.String("owner_id", ownerID))
	return cfg, nil
}

func (s *DefaultLandingService) setPublished(ownerID string, published bool) (*models.LandingPageConfig, error) {
	cfg, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "No landing page configuration found. Create one first.")
	}

	cfg.IsPublished = published
	enforceConstraints(cfg)
	if err := s.Repo.Update(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
