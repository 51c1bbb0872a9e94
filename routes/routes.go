package routes

import (
	"strings"
	"time"

	"bookify/config"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuth(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterProfileRoutes registers business profile endpoints. Reads are
// public; mutations require authentication (ownership is enforced in the
// service layer).
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.GET("", hb.ListProfilesHandler)
		api.GET("/:id", hb.GetProfileHandler)
		api.GET("/:id/services", hb.ListServicesHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(hb.UserRepo))
		protected.POST("", hb.CreateProfileHandler)
		protected.PUT("/:id", hb.UpdateProfileHandler)
		protected.DELETE("/:id", hb.DeleteProfileHandler)
		protected.POST("/:id/services", hb.AddServiceHandler)
		protected.PUT("/:id/services/:serviceId", hb.UpdateServiceHandler)
		protected.DELETE("/:id/services/:serviceId", hb.DeleteServiceHandler)
		protected.POST("/:id/verify", hb.VerifyProfileHandler)
		protected.PUT("/:id/activate", hb.ActivateProfileHandler)
		protected.PUT("/:id/deactivate", hb.DeactivateProfileHandler)
	}
}

// RegisterAvailabilityRoutes registers slot management and public
// availability reads.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/profiles/:profileId", hb.GetAvailabilityHandler)
		api.GET("/profiles/:profileId/dates/:date", hb.GetDateAvailability)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(hb.UserRepo))
		protected.POST("/profiles/:profileId/slots", hb.CreateSlotsHandler)
		protected.PUT("/slots/:slotId", hb.UpdateSlotCapacityHandler)
		protected.DELETE("/slots/:slotId", hb.DeleteSlotHandler)
	}
}

// RegisterBookingRoutes registers the customer booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Reference lookup is public so customers can check a booking from
		// a confirmation email without signing in.
		api.GET("/ref/:ref", hb.GetBookingByRefHandler)

		api.Use(middleware.JWTAuth(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id/status", hb.UpdateBookingStatusHandler)
		api.PUT("/:id/cancel", hb.CancelBookingHandler)
		api.GET("/profile/:profileId/bookings", hb.ListProfileBookingsHandler)
	}
}

// RegisterAdminRoutes registers the management surface shared by owners and
// platform staff.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuth(hb.UserRepo))
	api.Use(middleware.RequireRoles(models.RoleOwner, models.RoleAdmin, models.RoleSuperAdmin))
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", hb.AdminListBookingsHandler)
			bookings.GET("/:id", hb.AdminGetBookingHandler)
			bookings.PUT("/:id/approve", hb.AdminApproveBookingHandler)
			bookings.PUT("/:id/reject", hb.AdminRejectBookingHandler)
			bookings.PUT("/:id/cancel", hb.AdminCancelBookingHandler)
			bookings.PUT("/:id/complete", hb.AdminCompleteBookingHandler)
			bookings.PUT("/:id/no-show", hb.AdminNoShowBookingHandler)
			bookings.PUT("/:id/reschedule", hb.AdminRescheduleBookingHandler)
			bookings.POST("/:id/notes", hb.AdminAddBookingNoteHandler)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", hb.AdminListCustomersHandler)
			customers.GET("/:id", hb.AdminGetCustomerHandler)
			customers.GET("/:id/bookings", hb.AdminGetCustomerBookingsHandler)
			customers.PUT("/:id/block", hb.AdminBlockCustomerHandler)
			customers.PUT("/:id/unblock", hb.AdminUnblockCustomerHandler)
			customers.POST("/:id/notes", hb.AdminAddCustomerNoteHandler)
			customers.GET("/:id/notes", hb.AdminGetCustomerNotesHandler)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/dashboard", hb.AdminDashboardHandler)
			analytics.GET("/overview", hb.AdminOverviewHandler)
			analytics.GET("/booking-trends", hb.AdminBookingTrendsHandler)
			analytics.GET("/trends", hb.AdminDailyTrendsHandler)
			analytics.GET("/services", hb.AdminPopularServicesHandler)
			analytics.GET("/peak-hours", hb.AdminPeakHoursHandler)
		}

		api.GET("/activities", hb.AdminListActivitiesHandler)
	}
}

// RegisterOwnerRoutes registers the owner dashboard endpoints.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/owners")
	api.Use(middleware.JWTAuth(hb.UserRepo))
	api.Use(middleware.RequireRoles(models.RoleOwner, models.RoleAdmin, models.RoleSuperAdmin))
	{
		api.GET("/dashboard", hb.OwnerDashboardHandler)
		api.GET("/my-profiles", hb.OwnerMyProfilesHandler)
		api.POST("/profiles", hb.OwnerCreateProfileHandler)
		api.GET("/profiles/:id/analytics", hb.OwnerAnalyticsHandler)
	}
}

// RegisterSuperadminRoutes registers owner account provisioning.
func RegisterSuperadminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/superadmin")
	api.Use(middleware.JWTAuth(hb.UserRepo))
	api.Use(middleware.RequireRoles(models.RoleSuperAdmin))
	{
		api.GET("/owners", hb.ListOwnersHandler)
		api.POST("/owners", hb.CreateOwnerHandler)
		api.GET("/owners/:id", hb.GetOwnerHandler)
		api.PUT("/owners/:id", hb.UpdateOwnerHandler)
		api.DELETE("/owners/:id", hb.DeleteOwnerHandler)
		api.POST("/owners/:id/restore", hb.RestoreOwnerHandler)
		api.POST("/owners/:id/reset-password", hb.ResetOwnerPasswordHandler)
	}
}

// RegisterLandingRoutes registers landing page configuration plus the
// public page read.
func RegisterLandingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/landing")
	{
		api.GET("/public", hb.PublicLandingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(hb.UserRepo))
		protected.Use(middleware.RequireRoles(models.RoleOwner, models.RoleAdmin, models.RoleSuperAdmin))
		protected.GET("/config", hb.GetLandingConfigHandler)
		protected.PUT("/config", hb.UpdateLandingConfigHandler)
		protected.POST("/config/publish", hb.PublishLandingHandler)
		protected.POST("/config/unpublish", hb.UnpublishLandingHandler)
	}
}

// RegisterMediaRoutes registers image upload endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/media")
	api.Use(middleware.JWTAuth(hb.UserRepo))
	{
		api.POST("/images", hb.UploadImageHandler)
		api.DELETE("/images/:publicId", hb.DeleteImageHandler)
	}
}

// RegisterSystemRoutes registers the banner, server time and health checks.
func RegisterSystemRoutes(r *gin.Engine) {
	r.GET("/", handlers.RootHandler)
	r.GET("/server-time", handlers.ServerTimeHandler)
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"*"}
	if config.AppConfig.CORSOrigins != "" {
		origins = strings.Split(config.AppConfig.CORSOrigins, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSystemRoutes(r)
	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterSuperadminRoutes(r, hb)
	RegisterLandingRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
}
