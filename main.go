// File: bookify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookify/config"
	"bookify/cron"
	"bookify/database"
	adminRepoPkg "bookify/database/repository/admin"
	availabilityRepoPkg "bookify/database/repository/availability"
	bookingRepoPkg "bookify/database/repository/booking"
	landingRepoPkg "bookify/database/repository/landing"
	profileRepoPkg "bookify/database/repository/profile"
	userRepoPkg "bookify/database/repository/user"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/routes"
	"bookify/services/admin"
	"bookify/services/auth"
	"bookify/services/availability"
	"bookify/services/booking"
	"bookify/services/landing"
	"bookify/services/notification"
	"bookify/services/owner"
	"bookify/services/profile"
	"bookify/services/superadmin"
	"bookify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	database.EnsureIndexes()
	utils.InitRedis()

	cloudinaryStorage, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	landingRepo := landingRepoPkg.NewMongoLandingRepo()

	// background task queue.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	// services.
	authService := &auth.DefaultAuthService{Repo: userRepo}
	profileService := &profile.DefaultProfileService{Repo: profileRepo}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:     availabilityRepo,
		Profiles: profileRepo,
	}
	notificationService := notification.NewDefaultNotificationService(
		taskClient,
		notification.NewMailerFromConfig(),
		userRepo,
		profileRepo,
		bookingRepo,
	)
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Profiles:     profileRepo,
		Slots:        availabilityRepo,
		Admin:        adminRepo,
		Availability: availabilityService,
		Notifier:     notificationService,
	}
	adminService := &admin.DefaultAdminService{
		Repo:         adminRepo,
		Bookings:     bookingRepo,
		Profiles:     profileRepo,
		Users:        userRepo,
		Slots:        availabilityRepo,
		Availability: availabilityService,
		Notifier:     notificationService,
	}
	ownerService := &owner.DefaultOwnerService{
		Profiles:   profileRepo,
		Bookings:   bookingRepo,
		ProfileSvc: profileService,
	}
	superadminService := &superadmin.DefaultSuperadminService{
		Users:    userRepo,
		Profiles: profileRepo,
	}
	landingService := &landing.DefaultLandingService{Repo: landingRepo}

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(adminService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)
	superadminHandler := handlers.NewSuperadminHandler(superadminService)
	landingHandler := handlers.NewLandingHandler(landingService)
	mediaHandler := handlers.NewMediaHandler(cloudinaryStorage)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		MeHandler:       authHandler.MeHandler,

		// Profile endpoints.
		CreateProfileHandler:     profileHandler.CreateProfileHandler,
		ListProfilesHandler:      profileHandler.ListProfilesHandler,
		GetProfileHandler:        profileHandler.GetProfileHandler,
		UpdateProfileHandler:     profileHandler.UpdateProfileHandler,
		DeleteProfileHandler:     profileHandler.DeleteProfileHandler,
		ListServicesHandler:      profileHandler.ListServicesHandler,
		AddServiceHandler:        profileHandler.AddServiceHandler,
		UpdateServiceHandler:     profileHandler.UpdateServiceHandler,
		DeleteServiceHandler:     profileHandler.DeleteServiceHandler,
		VerifyProfileHandler:     profileHandler.VerifyProfileHandler,
		ActivateProfileHandler:   profileHandler.ActivateProfileHandler,
		DeactivateProfileHandler: profileHandler.DeactivateProfileHandler,

		// Availability endpoints.
		CreateSlotsHandler:        availabilityHandler.CreateSlotsHandler,
		GetAvailabilityHandler:    availabilityHandler.GetRangeHandler,
		GetDateAvailability:       availabilityHandler.GetDateHandler,
		UpdateSlotCapacityHandler: availabilityHandler.UpdateSlotCapacityHandler,
		DeleteSlotHandler:         availabilityHandler.DeleteSlotHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		GetBookingByRefHandler:     bookingHandler.GetBookingByRefHandler,
		ListMyBookingsHandler:      bookingHandler.ListMyBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
		ListProfileBookingsHandler: bookingHandler.ListProfileBookingsHandler,

		// Admin booking endpoints.
		AdminListBookingsHandler:      adminHandler.ListBookingsHandler,
		AdminGetBookingHandler:        adminHandler.GetBookingHandler,
		AdminApproveBookingHandler:    adminHandler.ApproveBookingHandler,
		AdminRejectBookingHandler:     adminHandler.RejectBookingHandler,
		AdminCancelBookingHandler:     adminHandler.CancelBookingHandler,
		AdminCompleteBookingHandler:   adminHandler.CompleteBookingHandler,
		AdminNoShowBookingHandler:     adminHandler.NoShowBookingHandler,
		AdminRescheduleBookingHandler: adminHandler.RescheduleBookingHandler,
		AdminAddBookingNoteHandler:    adminHandler.AddBookingNoteHandler,

		// Admin customer endpoints.
		AdminListCustomersHandler:       adminHandler.ListCustomersHandler,
		AdminGetCustomerHandler:         adminHandler.GetCustomerHandler,
		AdminGetCustomerBookingsHandler: adminHandler.GetCustomerBookingsHandler,
		AdminBlockCustomerHandler:       adminHandler.BlockCustomerHandler,
		AdminUnblockCustomerHandler:     adminHandler.UnblockCustomerHandler,
		AdminAddCustomerNoteHandler:     adminHandler.AddCustomerNoteHandler,
		AdminGetCustomerNotesHandler:    adminHandler.GetCustomerNotesHandler,

		// Admin analytics endpoints.
		AdminDashboardHandler:       adminHandler.DashboardHandler,
		AdminOverviewHandler:        adminHandler.OverviewHandler,
		AdminBookingTrendsHandler:   adminHandler.BookingTrendsHandler,
		AdminDailyTrendsHandler:     adminHandler.DailyTrendsHandler,
		AdminPopularServicesHandler: adminHandler.PopularServicesHandler,
		AdminPeakHoursHandler:       adminHandler.PeakHoursHandler,
		AdminListActivitiesHandler:  adminHandler.ListActivitiesHandler,

		// Owner endpoints.
		OwnerDashboardHandler:     ownerHandler.OwnerDashboardHandler,
		OwnerMyProfilesHandler:    ownerHandler.MyProfilesHandler,
		OwnerCreateProfileHandler: ownerHandler.CreateOwnerProfileHandler,
		OwnerAnalyticsHandler:     ownerHandler.ProfileAnalyticsHandler,

		// Superadmin endpoints.
		ListOwnersHandler:         superadminHandler.ListOwnersHandler,
		CreateOwnerHandler:        superadminHandler.CreateOwnerHandler,
		GetOwnerHandler:           superadminHandler.GetOwnerHandler,
		UpdateOwnerHandler:        superadminHandler.UpdateOwnerHandler,
		DeleteOwnerHandler:        superadminHandler.DeleteOwnerHandler,
		RestoreOwnerHandler:       superadminHandler.RestoreOwnerHandler,
		ResetOwnerPasswordHandler: superadminHandler.ResetOwnerPasswordHandler,

		// Landing page endpoints.
		GetLandingConfigHandler:    landingHandler.GetLandingConfigHandler,
		UpdateLandingConfigHandler: landingHandler.UpdateLandingConfigHandler,
		PublishLandingHandler:      landingHandler.PublishLandingHandler,
		UnpublishLandingHandler:    landingHandler.UnpublishLandingHandler,
		PublicLandingHandler:       landingHandler.PublicLandingHandler,

		// Media endpoints.
		UploadImageHandler: mediaHandler.UploadImageHandler,
		DeleteImageHandler: mediaHandler.DeleteImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background monitors and the task worker.
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient(), utils.GetAuthCacheClient())
	cron.InitTaskWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := taskClient.Close(); err != nil {
		logger.Sugar().Warnf("main: task client close: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
