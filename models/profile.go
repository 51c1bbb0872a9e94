package models

import "time"

// Service is a bookable offering embedded in a business profile.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	ImageURL    string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// BusinessProfile is a bookable business page with its embedded services.
type BusinessProfile struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	OwnerID     string    `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	Services    []Service `bson:"services" json:"services"`
	IsVerified  bool      `bson:"is_verified" json:"is_verified"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ServiceByID returns the embedded service with the given ID, if present.
func (p *BusinessProfile) ServiceByID(serviceID string) (*Service, bool) {
	for i := range p.Services {
		if p.Services[i].ID == serviceID {
			return &p.Services[i], true
		}
	}
	return nil, false
}

// ProfileCreate is the payload for creating or replacing a profile.
type ProfileCreate struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Services    []Service `json:"services"`
}

// ServiceCreate is the payload for adding a service to a profile.
type ServiceCreate struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ProfileUpdate carries a partial profile update; nil fields are left
// untouched.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}
