package admin

import (
	"context"
	"time"

	adminRepo "bookify/database/repository/admin"
	availabilityRepo "bookify/database/repository/availability"
	bookingRepo "bookify/database/repository/booking"
	profileRepo "bookify/database/repository/profile"
	userRepo "bookify/database/repository/user"
	"bookify/models"
	"bookify/services/availability"
	"bookify/services/notification"
)

// AdminService is the owner/admin management surface. OWNER callers are
// scoped to their own profile; ADMIN and SUPERADMIN see everything.
type AdminService interface {
	// Booking management
	ListBookings(ctx context.Context, callerID, callerRole string, q models.BookingListQuery) (*models.PaginatedBookings, error)
	GetBooking(ctx context.Context, callerID, callerRole, bookingID string) (*models.AdminBookingDetail, error)
	ApproveBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.ApproveBookingRequest) (*models.Booking, error)
	RejectBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.RejectBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.CancelBookingRequest) (*models.Booking, error)
	CompleteBooking(ctx context.Context, callerID, callerRole, bookingID string) (*models.Booking, error)
	NoShowBooking(ctx context.Context, callerID, callerRole, bookingID string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.RescheduleBookingRequest) (*models.Booking, error)
	AddBookingNote(ctx context.Context, callerID, callerRole, bookingID, note string) (*models.BookingNote, error)

	// Customer management
	ListCustomers(ctx context.Context, callerID, callerRole string, q models.CustomerListQuery) (*models.PaginatedCustomers, error)
	GetCustomer(ctx context.Context, callerID, callerRole, customerID string) (*models.Customer, error)
	GetCustomerBookings(ctx context.Context, callerID, callerRole, customerID string, page, pageSize int) (*models.PaginatedBookings, error)
	BlockCustomer(ctx context.Context, callerID, callerRole, customerID, reason string) error
	UnblockCustomer(ctx context.Context, callerID, callerRole, customerID string) error
	AddCustomerNote(ctx context.Context, callerID, callerRole, customerID, note string) (*models.CustomerNote, error)
	GetCustomerNotes(ctx context.Context, callerID, callerRole, customerID string) ([]models.CustomerNote, error)

	// Analytics
	Dashboard(ctx context.Context, callerID, callerRole string) (*models.DashboardStats, error)
	Overview(ctx context.Context, callerID, callerRole string, start, end time.Time) (*models.AnalyticsOverview, error)
	BookingTrends(ctx context.Context, callerID, callerRole string, start, end time.Time, granularity string) ([]models.BookingTrend, error)
	DailyTrends(ctx context.Context, callerID, callerRole string, days int) ([]models.BookingTrend, error)
	PopularServices(ctx context.Context, callerID, callerRole string, start, end *time.Time) ([]models.ServiceStats, error)
	PeakHours(ctx context.Context, callerID, callerRole string, start, end *time.Time) ([]models.PeakHour, error)

	// Audit trail
	ListActivities(ctx context.Context, callerID, callerRole string, page, pageSize int) (*models.PaginatedActivities, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo         adminRepo.AdminRepository
	Bookings     bookingRepo.BookingRepository
	Profiles     profileRepo.ProfileRepository
	Users        userRepo.UserRepository
	Slots        availabilityRepo.AvailabilityRepository
	Availability availability.AvailabilityService
	Notifier     notification.NotificationService
}
