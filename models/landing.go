package models

import "time"

// CTAButtonConfig styles a call-to-action button.
type CTAButtonConfig struct {
	Text  string `bson:"text" json:"text"`
	Style string `bson:"style" json:"style"` // solid | outline | gradient
	Size  string `bson:"size" json:"size"`   // default | large
}

// HeroSection is the top banner of the landing page.
type HeroSection struct {
	Title              string          `bson:"title" json:"title"`
	Subtitle           string          `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	BackgroundImageURL string          `bson:"background_image_url,omitempty" json:"background_image_url,omitempty"`
	CTAButton          CTAButtonConfig `bson:"cta_button" json:"cta_button"`
	Height             string          `bson:"height,omitempty" json:"height,omitempty"`
	ImageFit           string          `bson:"image_fit,omitempty" json:"image_fit,omitempty"`
	TextAlignment      string          `bson:"text_alignment,omitempty" json:"text_alignment,omitempty"`
	FontFamily         string          `bson:"font_family,omitempty" json:"font_family,omitempty"`
	TitleFontSize      string          `bson:"title_font_size,omitempty" json:"title_font_size,omitempty"`
	SubtitleFontSize   string          `bson:"subtitle_font_size,omitempty" json:"subtitle_font_size,omitempty"`
}

// PortfolioItem is one image in the portfolio gallery.
type PortfolioItem struct {
	ID       string `bson:"id,omitempty" json:"id,omitempty"`
	ImageURL string `bson:"image_url" json:"image_url"`
	Caption  string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// SocialStat is one headline number ("5k followers").
type SocialStat struct {
	Value    string `bson:"value" json:"value"`
	Label    string `bson:"label" json:"label"`
	Platform string `bson:"platform,omitempty" json:"platform,omitempty"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	Author string `bson:"author" json:"author"`
	Text   string `bson:"text" json:"text"`
	Rating int    `bson:"rating,omitempty" json:"rating,omitempty"`
}

// FooterConfig is the page footer.
type FooterConfig struct {
	BusinessName string            `bson:"business_name" json:"business_name"`
	Address      string            `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Hours        []string          `bson:"hours,omitempty" json:"hours,omitempty"`
	SocialLinks  map[string]string `bson:"social_links,omitempty" json:"social_links,omitempty"`
}

// FinalCTASection is the closing call to action.
type FinalCTASection struct {
	Title     string          `bson:"title" json:"title"`
	Subtitle  string          `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	CTAButton CTAButtonConfig `bson:"cta_button" json:"cta_button"`
}

// SectionConfig toggles and titles a built-in section.
type SectionConfig struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Enabled  bool   `bson:"enabled" json:"enabled"`
}

// BrandingConfig sets the page palette and logo.
type BrandingConfig struct {
	PrimaryColor string `bson:"primary_color" json:"primary_color" binding:"omitempty,hexcolor"`
	DarkBgColor  string `bson:"dark_bg_color" json:"dark_bg_color" binding:"omitempty,hexcolor"`
	LightBgColor string `bson:"light_bg_color" json:"light_bg_color" binding:"omitempty,hexcolor"`
	LogoURL      string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
}

// Content block discriminators for custom sections.
const (
	BlockTypeImageText = "image_text"
	BlockTypeText      = "text"
	BlockTypeGallery   = "gallery"
	BlockTypeFrame     = "frame"
)

// ContentBlock is a custom section. Type decides which of the optional
// fields apply.
type ContentBlock struct {
	ID      string `bson:"id" json:"id"`
	Type    string `bson:"type" json:"type"`
	Enabled bool   `bson:"enabled" json:"enabled"`

	Title         string   `bson:"title,omitempty" json:"title,omitempty"`
	Text          string   `bson:"text,omitempty" json:"text,omitempty"`
	ImageURL      string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ImagePosition string   `bson:"image_position,omitempty" json:"image_position,omitempty"` // left | right
	Alignment     string   `bson:"alignment,omitempty" json:"alignment,omitempty"`
	Images        []string `bson:"images,omitempty" json:"images,omitempty"`
	URL           string   `bson:"url,omitempty" json:"url,omitempty"`
	Height        string   `bson:"height,omitempty" json:"height,omitempty"`
}

// LandingPageConfig is one owner's public landing page. Limits: 8 portfolio
// items, 6 stats, 6 testimonials.
type LandingPageConfig struct {
	ID                  string          `bson:"id" json:"id"`
	OwnerID             string          `bson:"owner_id" json:"owner_id"`
	Hero                HeroSection     `bson:"hero" json:"hero"`
	ServicesSection     SectionConfig   `bson:"services_section" json:"services_section"`
	PortfolioSection    SectionConfig   `bson:"portfolio_section" json:"portfolio_section"`
	PortfolioItems      []PortfolioItem `bson:"portfolio_items" json:"portfolio_items"`
	StatsSection        SectionConfig   `bson:"stats_section" json:"stats_section"`
	Stats               []SocialStat    `bson:"stats" json:"stats"`
	TestimonialsSection SectionConfig   `bson:"testimonials_section" json:"testimonials_section"`
	Testimonials        []Testimonial   `bson:"testimonials" json:"testimonials"`
	FinalCTA            FinalCTASection `bson:"final_cta" json:"final_cta"`
	CustomSections      []ContentBlock  `bson:"custom_sections" json:"custom_sections"`
	Footer              FooterConfig    `bson:"footer" json:"footer"`
	Branding            BrandingConfig  `bson:"branding" json:"branding"`
	IsPublished         bool            `bson:"is_published" json:"is_published"`
	CreatedAt           time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `bson:"updated_at" json:"updated_at"`
}

// LandingConfigUpdate is a partial update; nil sections are left untouched.
type LandingConfigUpdate struct {
	Hero                *HeroSection     `json:"hero,omitempty"`
	ServicesSection     *SectionConfig   `json:"services_section,omitempty"`
	PortfolioSection    *SectionConfig   `json:"portfolio_section,omitempty"`
	PortfolioItems      *[]PortfolioItem `json:"portfolio_items,omitempty"`
	StatsSection        *SectionConfig   `json:"stats_section,omitempty"`
	Stats               *[]SocialStat    `json:"stats,omitempty"`
	TestimonialsSection *SectionConfig   `json:"testimonials_section,omitempty"`
	Testimonials        *[]Testimonial   `json:"testimonials,omitempty"`
	FinalCTA            *FinalCTASection `json:"final_cta,omitempty"`
	CustomSections      *[]ContentBlock  `json:"custom_sections,omitempty"`
	Footer              *FooterConfig    `json:"footer,omitempty"`
	Branding            *BrandingConfig  `json:"branding,omitempty"`
}
