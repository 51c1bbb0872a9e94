package notification

import (
	"context"

	"github.com/hibiken/asynq"

	bookingRepo "bookify/database/repository/booking"
	profileRepo "bookify/database/repository/profile"
	userRepo "bookify/database/repository/user"
	"bookify/models"
)

// NotificationService fans booking events out as emails through the task
// queue. Every Notify method is fire-and-forget: delivery problems are
// logged and never fail the triggering request.
type NotificationService interface {
	// Event fan-out
	NotifyBookingCreated(booking *models.Booking, profile *models.BusinessProfile)
	NotifyStatusUpdate(booking *models.Booking, reason string)
	NotifyCancellation(booking *models.Booking)

	// Task handlers consumed by the background worker
	HandleEmailTask(ctx context.Context, t *asynq.Task) error
	HandleReminderTask(ctx context.Context, t *asynq.Task) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Client   *asynq.Client
	Mailer   *Mailer
	Users    userRepo.UserRepository
	Profiles profileRepo.ProfileRepository
	Bookings bookingRepo.BookingRepository
}

func NewDefaultNotificationService(
	client *asynq.Client,
	mailer *Mailer,
	users userRepo.UserRepository,
	profiles profileRepo.ProfileRepository,
	bookings bookingRepo.BookingRepository,
) *DefaultNotificationService {
	return &DefaultNotificationService{
		Client:   client,
		Mailer:   mailer,
		Users:    users,
		Profiles: profiles,
		Bookings: bookings,
	}
}
