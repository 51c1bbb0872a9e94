package availability

import (
	"context"
	"time"

	availabilityRepo "bookify/database/repository/availability"
	profileRepo "bookify/database/repository/profile"
	"bookify/models"
)

type AvailabilityService interface {
	// Slot management (profile owner)
	CreateSlots(ctx context.Context, profileID, callerID, callerRole string, req models.AvailabilityCreate) ([]models.AvailabilitySlot, error)
	UpdateCapacity(ctx context.Context, slotID, callerID, callerRole string, maxCapacity int) (*models.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, slotID, callerID, callerRole string) error

	// Public reads
	GetRange(ctx context.Context, profileID string, start, end time.Time) ([]models.DateAvailability, error)
	GetDate(ctx context.Context, profileID string, date time.Time) (*models.DateAvailability, error)

	// Cache maintenance, called by booking flows that change slot counts.
	InvalidateProfile(profileID string)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Profiles profileRepo.ProfileRepository
}
