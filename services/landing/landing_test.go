package landing

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"bookify/models"
	"bookify/utils"
)

type fakeLandingRepo struct {
	byOwner   map[string]*models.LandingPageConfig
	published *models.LandingPageConfig
	creates   int
	updates   int
}

func (f *fakeLandingRepo) Create(config *models.LandingPageConfig) error {
	f.creates++
	f.byOwner[config.OwnerID] = config
	return nil
}

func (f *fakeLandingRepo) GetByOwner(ownerID string) (*models.LandingPageConfig, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeLandingRepo) Update(config *models.LandingPageConfig) error {
	f.updates++
	f.byOwner[config.OwnerID] = config
	return nil
}

func (f *fakeLandingRepo) GetPublished() (*models.LandingPageConfig, error) {
	return f.published, nil
}

func newService() (*DefaultLandingService, *fakeLandingRepo) {
	repo := &fakeLandingRepo{byOwner: map[string]*models.LandingPageConfig{}}
	return &DefaultLandingService{Repo: repo}, repo
}

func TestGetConfigCreatesDefaultOnFirstAccess(t *testing.T) {
	svc, repo := newService()

	cfg, err := svc.GetConfig("owner-1")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one create, got %d", repo.creates)
	}
	if cfg.ID == "" || cfg.OwnerID != "owner-1" {
		t.Errorf("config identity = %q/%q", cfg.ID, cfg.OwnerID)
	}
	if cfg.Hero.CTAButton.Text != "Book Now" {
		t.Errorf("hero CTA = %q, want the default", cfg.Hero.CTAButton.Text)
	}
	if cfg.IsPublished {
		t.Error("new configs must start unpublished")
	}

	// Second access reuses the stored config.
	again, err := svc.GetConfig("owner-1")
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if repo.creates != 1 || again.ID != cfg.ID {
		t.Errorf("expected the same config back, creates=%d id=%q", repo.creates, again.ID)
	}
}

func TestUpdateConfigAppliesOnlyGivenSections(t *testing.T) {
	svc, _ := newService()
	base, _ := svc.GetConfig("owner-1")
	originalFinalCTA := base.FinalCTA.Title

	hero := models.HeroSection{
		Title:     "Walk in, strut out",
		CTAButton: models.CTAButtonConfig{Text: "Reserve", Style: "outline", Size: "large"},
	}
	got, err := svc.UpdateConfig("owner-1", models.LandingConfigUpdate{Hero: &hero})
	if err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if got.Hero.Title != "Walk in, strut out" || got.Hero.CTAButton.Text != "Reserve" {
		t.Errorf("hero not replaced: %+v", got.Hero)
	}
	if got.FinalCTA.Title != originalFinalCTA {
		t.Errorf("untouched section changed: %q", got.FinalCTA.Title)
	}
}

func TestCTAFallbacks(t *testing.T) {
	svc, _ := newService()
	svc.GetConfig("owner-1")

	// A one-character label or empty style cannot ship.
	hero := models.HeroSection{CTAButton: models.CTAButtonConfig{Text: "X"}}
	got, err := svc.UpdateConfig("owner-1", models.LandingConfigUpdate{Hero: &hero})
	if err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	btn := got.Hero.CTAButton
	if btn.Text != "Book Now" || btn.Style != "solid" || btn.Size != "default" {
		t.Errorf("CTA fallbacks not applied: %+v", btn)
	}
}

func TestSectionLimits(t *testing.T) {
	svc, _ := newService()
	svc.GetConfig("owner-1")

	var portfolio []models.PortfolioItem
	for i := 0; i < 12; i++ {
		portfolio = append(portfolio, models.PortfolioItem{ImageURL: fmt.Sprintf("https://cdn.example.com/cut-%d.jpg", i)})
	}
	var stats []models.SocialStat
	for i := 0; i < 9; i++ {
		stats = append(stats, models.SocialStat{Value: "5k", Label: "followers"})
	}
	var quotes []models.Testimonial
	for i := 0; i < 8; i++ {
		quotes = append(quotes, models.Testimonial{Author: "A client", Text: "Great cut"})
	}

	got, err := svc.UpdateConfig("owner-1", models.LandingConfigUpdate{
		PortfolioItems: &portfolio,
		Stats:          &stats,
		Testimonials:   &quotes,
	})
	if err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	if len(got.PortfolioItems) != maxPortfolioItems {
		t.Errorf("portfolio kept %d items, want %d", len(got.PortfolioItems), maxPortfolioItems)
	}
	if len(got.Stats) != maxStats {
		t.Errorf("stats kept %d items, want %d", len(got.Stats), maxStats)
	}
	if len(got.Testimonials) != maxTestimonials {
		t.Errorf("testimonials kept %d items, want %d", len(got.Testimonials), maxTestimonials)
	}
}

func TestPublishRequiresConfig(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Publish("owner-1")
	var svcErr *utils.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing config, got %v", err)
	}

	svc.GetConfig("owner-1")
	got, err := svc.Publish("owner-1")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !got.IsPublished {
		t.Error("config not marked published")
	}

	got, err = svc.Unpublish("owner-1")
	if err != nil {
		t.Fatalf("Unpublish: %v", err)
	}
	if got.IsPublished {
		t.Error("config still published")
	}
}

func TestGetPublicFallsBackToDefault(t *testing.T) {
	svc, repo := newService()

	cfg, err := svc.GetPublic()
	if err != nil {
		t.Fatalf("GetPublic: %v", err)
	}
	if cfg.ID != "default" {
		t.Errorf("fallback ID = %q, want default", cfg.ID)
	}
	if cfg.Hero.CTAButton.Text == "" {
		t.Error("fallback page must still carry a booking CTA")
	}

	repo.published = &models.LandingPageConfig{ID: "live-1", OwnerID: "owner-1", IsPublished: true}
	cfg, err = svc.GetPublic()
	if err != nil {
		t.Fatalf("GetPublic: %v", err)
	}
	if cfg.ID != "live-1" {
		t.Errorf("published ID = %q, want live-1", cfg.ID)
	}
	// Even a sparse stored config is repaired on the way out.
	if cfg.Hero.CTAButton.Text != "Book Now" || cfg.PortfolioItems == nil {
		t.Errorf("constraints not enforced on read: %+v", cfg.Hero.CTAButton)
	}
}
