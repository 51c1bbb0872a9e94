package owner

import (
	"context"

	bookingRepo "bookify/database/repository/booking"
	profileRepo "bookify/database/repository/profile"
	"bookify/models"
	"bookify/services/profile"
)

type OwnerService interface {
	Dashboard(ctx context.Context, ownerID string) (*models.OwnerDashboardStats, error)
	MyProfiles(ctx context.Context, ownerID string, skip, limit int) ([]models.ProfileWithBookingCount, error)
	CreateProfile(ownerID string, req models.ProfileCreate) (*models.BusinessProfile, error)
	ProfileAnalytics(ctx context.Context, ownerID, profileID string) (*models.ProfileAnalytics, error)
}

// DefaultOwnerService is the production implementation.
type DefaultOwnerService struct {
	Profiles   profileRepo.ProfileRepository
	Bookings   bookingRepo.BookingRepository
	ProfileSvc profile.ProfileService
}
