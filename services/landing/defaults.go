package landing

import "bookify/models"

// Section item limits.
const (
	maxPortfolioItems = 8
	maxStats          = 6
	maxTestimonials   = 6
)

const defaultCTAText = "Book Now"

// defaultConfig is the starter landing page every owner begins from.
func defaultConfig(ownerID string) *models.LandingPageConfig {
	return &models.LandingPageConfig{
		OwnerID: ownerID,
		Hero: models.HeroSection{
			Title:    "Premium Cuts & Styles",
			Subtitle: "Book your next appointment in seconds",
			CTAButton: models.CTAButtonConfig{
				Text:  defaultCTAText,
				Style: "solid",
				Size:  "large",
			},
			Height:        "large",
			TextAlignment: "center",
		},
		ServicesSection: models.SectionConfig{
			Title:    "Our Services",
			Subtitle: "What we offer",
			Enabled:  true,
		},
		PortfolioSection: models.SectionConfig{
			Title:   "Our Work",
			Enabled: true,
		},
		PortfolioItems: []models.PortfolioItem{},
		StatsSection: models.SectionConfig{
			Title:   "Follow Us",
			Enabled: false,
		},
		Stats: []models.SocialStat{},
		TestimonialsSection: models.SectionConfig{
			Title:   "What Clients Say",
			Enabled: true,
		},
		Testimonials: []models.Testimonial{},
		FinalCTA: models.FinalCTASection{
			Title:    "Ready for a fresh look?",
			Subtitle: "Spots fill up fast. Book yours now.",
			CTAButton: models.CTAButtonConfig{
				Text:  defaultCTAText,
				Style: "gradient",
				Size:  "large",
			},
		},
		CustomSections: []models.ContentBlock{},
		Footer:         models.FooterConfig{},
		Branding: models.BrandingConfig{
			PrimaryColor: "#d4af37",
			DarkBgColor:  "#1a1a1a",
			LightBgColor: "#f5f5f5",
		},
	}
}

// enforceConstraints guarantees the booking path always exists: the hero and
// final CTA buttons are present with usable text, and section lists stay
// within their limits. Runs on every read and write.
func enforceConstraints(cfg *models.LandingPageConfig) {
	enforceCTA(&cfg.Hero.CTAButton)
	enforceCTA(&cfg.FinalCTA.CTAButton)

	if len(cfg.PortfolioItems) > maxPortfolioItems {
		cfg.PortfolioItems = cfg.PortfolioItems[:maxPortfolioItems]
	}
	if len(cfg.Stats) > maxStats {
		cfg.Stats = cfg.Stats[:maxStats]
	}
	if len(cfg.Testimonials) > maxTestimonials {
		cfg.Testimonials = cfg.Testimonials[:maxTestimonials]
	}

	if cfg.PortfolioItems == nil {
		cfg.PortfolioItems = []models.PortfolioItem{}
	}
	if cfg.Stats == nil {
		cfg.Stats = []models.SocialStat{}
	}
	if cfg.Testimonials == nil {
		cfg.Testimonials = []models.Testimonial{}
	}
	if cfg.CustomSections == nil {
		cfg.CustomSections = []models.ContentBlock{}
	}
}

func enforceCTA(btn *models.CTAButtonConfig) {
	if len(btn.Text) < 2 {
		btn.Text = defaultCTAText
	}
	if btn.Style == "" {
		btn.Style = "solid"
	}
	if btn.Size == "" {
		btn.Size = "default"
	}
}
