package booking

import (
	"context"

	adminRepo "bookify/database/repository/admin"
	availabilityRepo "bookify/database/repository/availability"
	bookingRepo "bookify/database/repository/booking"
	profileRepo "bookify/database/repository/profile"
	"bookify/models"
	"bookify/services/availability"
	"bookify/services/notification"
)

type BookingService interface {
	// Customer flow
	Create(ctx context.Context, userID string, req models.BookingCreate) (*models.BookingRefResponse, error)
	GetByID(ctx context.Context, bookingID, callerID string) (*models.BookingDetail, error)
	GetByRef(ctx context.Context, ref string) (*models.BookingDetail, error)
	ListMine(ctx context.Context, userID string) ([]models.BookingDetail, error)

	// Owner flow
	UpdateStatus(ctx context.Context, bookingID, callerID, status string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, callerID, callerRole string) (*models.Booking, error)
	ListForProfile(ctx context.Context, profileID, callerID, callerRole string) ([]models.BookingDetail, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Profiles     profileRepo.ProfileRepository
	Slots        availabilityRepo.AvailabilityRepository
	Admin        adminRepo.AdminRepository
	Availability availability.AvailabilityService
	Notifier     notification.NotificationService
}
