package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookify/models"
	"bookify/services/tasks"
	"bookify/utils"
)

const reminderLead = 24 * time.Hour

// NotifyBookingCreated emails the customer a confirmation, alerts the owner,
// and schedules the pre-appointment reminder.
func (s *DefaultNotificationService) NotifyBookingCreated(booking *models.Booking, profile *models.BusinessProfile) {
	customer := s.lookupUser(booking.UserID)

	if customer != nil && customer.Email != "" {
		data := bookingEmailData{
			Name:       customer.Name,
			BookingRef: booking.BookingRef,
			Business:   profile.Name,
			Date:       formatBookingTime(booking.Date),
			TimeSlot:   booking.TimeSlot,
			Service:    s.serviceTitle(profile, booking.ServiceID),
		}
		if html, err := renderEmail(confirmationTmpl, data); err == nil {
			s.enqueueEmail(customer.Email, "Booking received: "+booking.BookingRef, html)
		}
	}

	if profile.OwnerID != "" {
		if owner := s.lookupUser(profile.OwnerID); owner != nil && owner.Email != "" {
			name := ""
			if customer != nil {
				name = customer.Name
			}
			data := bookingEmailData{
				Name:       name,
				BookingRef: booking.BookingRef,
				Business:   profile.Name,
				Date:       formatBookingTime(booking.Date),
				TimeSlot:   booking.TimeSlot,
				Service:    s.serviceTitle(profile, booking.ServiceID),
			}
			if html, err := renderEmail(ownerAlertTmpl, data); err == nil {
				s.enqueueEmail(owner.Email, "New booking: "+booking.BookingRef, html)
			}
		}
	}

	s.scheduleReminder(booking)
}

// NotifyStatusUpdate emails the customer about an owner decision.
func (s *DefaultNotificationService) NotifyStatusUpdate(booking *models.Booking, reason string) {
	customer := s.lookupUser(booking.UserID)
	if customer == nil || customer.Email == "" {
		return
	}
	business := s.profileName(booking.ProfileID)

	data := bookingEmailData{
		Name:       customer.Name,
		BookingRef: booking.BookingRef,
		Business:   business,
		Date:       formatBookingTime(booking.Date),
		Status:     booking.Status,
		Reason:     reason,
		Color:      statusColor(booking.Status),
	}
	if html, err := renderEmail(statusUpdateTmpl, data); err == nil {
		s.enqueueEmail(customer.Email, fmt.Sprintf("Booking %s: %s", booking.Status, booking.BookingRef), html)
	}
}

// NotifyCancellation emails the customer that the booking was cancelled.
func (s *DefaultNotificationService) NotifyCancellation(booking *models.Booking) {
	customer := s.lookupUser(booking.UserID)
	if customer == nil || customer.Email == "" {
		return
	}
	data := bookingEmailData{
		Name:       customer.Name,
		BookingRef: booking.BookingRef,
		Business:   s.profileName(booking.ProfileID),
		Date:       formatBookingTime(booking.Date),
	}
	if html, err := renderEmail(cancellationTmpl, data); err == nil {
		s.enqueueEmail(customer.Email, "Booking cancelled: "+booking.BookingRef, html)
	}
}

// scheduleReminder queues the reminder 24h before the appointment. Bookings
// closer than the lead time get no reminder.
func (s *DefaultNotificationService) scheduleReminder(booking *models.Booking) {
	logger := utils.GetLogger()
	fireAt := booking.Date.Add(-reminderLead)
	if fireAt.Before(time.Now().UTC()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{BookingID: booking.ID}, fireAt)
	if err != nil {
		logger.Warn("Failed to build reminder task", zap.Error(err))
		return
	}
	if s.Client == nil {
		return
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		logger.Warn("Failed to enqueue reminder", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultNotificationService) enqueueEmail(to, subject, html string) {
	logger := utils.GetLogger()
	task, _, err := tasks.NewEmailTask(models.EmailPayload{To: to, Subject: subject, HTML: html})
	if err != nil {
		logger.Warn("Failed to build email task", zap.Error(err))
		return
	}
	if s.Client == nil {
		// No queue in this process, deliver inline.
		if err := s.Mailer.Send(to, subject, html); err != nil {
			logger.Warn("Failed to send email inline", zap.Error(err))
		}
		return
	}
	if _, err := s.Client.Enqueue(task); err != nil {
		logger.Warn("Failed to enqueue email", zap.String("to", to), zap.Error(err))
	}
}

func (s *DefaultNotificationService) lookupUser(userID string) *models.User {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load user for notification", zap.String("userID", userID), zap.Error(err))
		return nil
	}
	return user
}

func (s *DefaultNotificationService) profileName(profileID string) string {
	prof, err := s.Profiles.GetByID(profileID)
	if err != nil || prof == nil {
		return "the business"
	}
	return prof.Name
}

func (s *DefaultNotificationService) serviceTitle(profile *models.BusinessProfile, serviceID string) string {
	if serviceID == "" {
		return ""
	}
	if svc, ok := profile.ServiceByID(serviceID); ok {
		return svc.Title
	}
	return ""
}

// HandleEmailTask is the worker-side delivery of queued emails.
func (s *DefaultNotificationService) HandleEmailTask(ctx context.Context, t *asynq.Task) error {
	var payload models.EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid email payload: %w", err)
	}
	return s.Mailer.Send(payload.To, payload.Subject, payload.HTML)
}

// HandleReminderTask re-checks the booking before sending; rejected or
// cancelled bookings get no reminder.
func (s *DefaultNotificationService) HandleReminderTask(ctx context.Context, t *asynq.Task) error {
	logger := utils.GetLogger()

	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}

	booking, err := s.Bookings.GetByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		logger.Info("Reminder skipped, booking gone", zap.String("bookingID", payload.BookingID))
		return nil
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		logger.Info("Reminder skipped, booking inactive",
			zap.String("bookingID", booking.ID), zap.String("status", booking.Status))
		return nil
	}

	customer := s.lookupUser(booking.UserID)
	if customer == nil || customer.Email == "" {
		return nil
	}
	data := bookingEmailData{
		Name:       customer.Name,
		BookingRef: booking.BookingRef,
		Business:   s.profileName(booking.ProfileID),
		Date:       formatBookingTime(booking.Date),
		TimeSlot:   booking.TimeSlot,
	}
	html, err := renderEmail(reminderTmpl, data)
	if err != nil {
		return err
	}
	return s.Mailer.Send(customer.Email, "Reminder: upcoming booking "+booking.BookingRef, html)
}
