// File: bookify/handlers/bundle.go
package handlers

import (
	userRepoPkg "bookify/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration only needs a single argument.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Profile endpoints
	CreateProfileHandler     gin.HandlerFunc
	ListProfilesHandler      gin.HandlerFunc
	GetProfileHandler        gin.HandlerFunc
	UpdateProfileHandler     gin.HandlerFunc
	DeleteProfileHandler     gin.HandlerFunc
	ListServicesHandler      gin.HandlerFunc
	AddServiceHandler        gin.HandlerFunc
	UpdateServiceHandler     gin.HandlerFunc
	DeleteServiceHandler     gin.HandlerFunc
	VerifyProfileHandler     gin.HandlerFunc
	ActivateProfileHandler   gin.HandlerFunc
	DeactivateProfileHandler gin.HandlerFunc

	// Availability endpoints
	CreateSlotsHandler        gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc
	GetDateAvailability       gin.HandlerFunc
	UpdateSlotCapacityHandler gin.HandlerFunc
	DeleteSlotHandler         gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	GetBookingByRefHandler     gin.HandlerFunc
	ListMyBookingsHandler      gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	ListProfileBookingsHandler gin.HandlerFunc

	// Admin booking endpoints
	AdminListBookingsHandler      gin.HandlerFunc
	AdminGetBookingHandler        gin.HandlerFunc
	AdminApproveBookingHandler    gin.HandlerFunc
	AdminRejectBookingHandler     gin.HandlerFunc
	AdminCancelBookingHandler     gin.HandlerFunc
	AdminCompleteBookingHandler   gin.HandlerFunc
	AdminNoShowBookingHandler     gin.HandlerFunc
	AdminRescheduleBookingHandler gin.HandlerFunc
	AdminAddBookingNoteHandler    gin.HandlerFunc

	// Admin customer endpoints
	AdminListCustomersHandler       gin.HandlerFunc
	AdminGetCustomerHandler         gin.HandlerFunc
	AdminGetCustomerBookingsHandler gin.HandlerFunc
	AdminBlockCustomerHandler       gin.HandlerFunc
	AdminUnblockCustomerHandler     gin.HandlerFunc
	AdminAddCustomerNoteHandler     gin.HandlerFunc
	AdminGetCustomerNotesHandler    gin.HandlerFunc

	// Admin analytics endpoints
	AdminDashboardHandler       gin.HandlerFunc
	AdminOverviewHandler        gin.HandlerFunc
	AdminBookingTrendsHandler   gin.HandlerFunc
	AdminDailyTrendsHandler     gin.HandlerFunc
	AdminPopularServicesHandler gin.HandlerFunc
	AdminPeakHoursHandler       gin.HandlerFunc
	AdminListActivitiesHandler  gin.HandlerFunc

	// Owner endpoints
	OwnerDashboardHandler     gin.HandlerFunc
	OwnerMyProfilesHandler    gin.HandlerFunc
	OwnerCreateProfileHandler gin.HandlerFunc
	OwnerAnalyticsHandler     gin.HandlerFunc

	// Superadmin endpoints
	ListOwnersHandler         gin.HandlerFunc
	CreateOwnerHandler        gin.HandlerFunc
	GetOwnerHandler           gin.HandlerFunc
	UpdateOwnerHandler        gin.HandlerFunc
	DeleteOwnerHandler        gin.HandlerFunc
	RestoreOwnerHandler       gin.HandlerFunc
	ResetOwnerPasswordHandler gin.HandlerFunc

	// Landing page endpoints
	GetLandingConfigHandler    gin.HandlerFunc
	UpdateLandingConfigHandler gin.HandlerFunc
	PublishLandingHandler      gin.HandlerFunc
	UnpublishLandingHandler    gin.HandlerFunc
	PublicLandingHandler       gin.HandlerFunc

	// Media endpoints
	UploadImageHandler gin.HandlerFunc
	DeleteImageHandler gin.HandlerFunc
}
