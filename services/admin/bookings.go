// File: bookify/services/admin/bookings.go
package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	availabilityRepo "bookify/database/repository/availability"
	"bookify/models"
	"bookify/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func clampPage(page, pageSize, def, max int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = def
	}
	if pageSize > max {
		pageSize = max
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}

// ListBookings returns the filtered, enriched booking list.
func (s *DefaultAdminService) ListBookings(ctx context.Context, callerID, callerRole string, q models.BookingListQuery) (*models.PaginatedBookings, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}

	q.Page, q.PageSize = clampPage(q.Page, q.PageSize, defaultPageSize, maxPageSize)
	if q.Status != "" && !models.ValidBookingStatus(q.Status) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Invalid status filter")
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "start_date must be before end_date")
	}

	items, total, err := s.Repo.ListBookings(ctx, q, scope)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		return nil, err
	}
	return &models.PaginatedBookings{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(total, q.PageSize),
	}, nil
}

// GetBooking returns one enriched booking with its note history.
func (s *DefaultAdminService) GetBooking(ctx context.Context, callerID, callerRole, bookingID string) (*models.AdminBookingDetail, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireBookingAccess(ctx, bookingID, scope); err != nil {
		return nil, err
	}

	enriched, err := s.Repo.GetBookingDetail(ctx, bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking detail", zap.Error(err))
		return nil, err
	}
	if enriched == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Booking not found")
	}

	notes, err := s.Bookings.GetNotes(ctx, bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking notes", zap.Error(err))
		return nil, err
	}
	return &models.AdminBookingDetail{AdminBooking: *enriched, AdminNotes: notes}, nil
}

// ApproveBooking confirms a pending booking.
func (s *DefaultAdminService) ApproveBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.ApproveBookingRequest) (*models.Booking, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Only pending bookings can be approved")
	}

	if err := s.setStatus(ctx, booking, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	if req.Notes != "" {
		s.attachNote(ctx, callerID, booking.ID, req.Notes)
	}
	s.logActivity(ctx, callerID, booking.ProfileID, "booking_approved", "booking", booking.ID, nil)
	s.Notifier.NotifyStatusUpdate(booking, "")

	return booking, nil
}

// RejectBooking declines a pending booking and frees its slot.
func (s *DefaultAdminService) RejectBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.RejectBookingRequest) (*models.Booking, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Only pending bookings can be rejected")
	}

	if err := s.setStatus(ctx, booking, models.BookingStatusRejected); err != nil {
		return nil, err
	}
	s.releaseSlot(ctx, booking)
	if req.Reason != "" {
		s.attachNote(ctx, callerID, booking.ID, "Rejection reason: "+req.Reason)
	}
	s.logActivity(ctx, callerID, booking.ProfileID, "booking_rejected", "booking", booking.ID,
		map[string]interface{}{"reason": req.Reason})
	s.Notifier.NotifyStatusUpdate(booking, req.Reason)

	return booking, nil
}

// CancelBooking cancels a pending or confirmed booking and frees its slot.
func (s *DefaultAdminService) CancelBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.CancelBookingRequest) (*models.Booking, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Only pending or confirmed bookings can be cancelled")
	}

	previous := booking.Status
	if err := s.setStatus(ctx, booking, models.BookingStatusCancelled); err != nil {
		return nil, err
	}
	s.releaseSlot(ctx, booking)
	if req.Reason != "" {
		s.attachNote(ctx, callerID, booking.ID, "Cancellation reason: "+req.Reason)
	}
	s.logActivity(ctx, callerID, booking.ProfileID, "booking_cancelled", "booking", booking.ID,
		map[string]interface{}{"previous_status": previous, "reason": req.Reason})
	s.Notifier.NotifyCancellation(booking)

	return booking, nil
}

// CompleteBooking marks a confirmed booking as done.
func (s *DefaultAdminService) CompleteBooking(ctx context.Context, callerID, callerRole, bookingID string) (*models.Booking, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Only confirmed bookings can be marked as completed")
	}

	if err := s.setStatus(ctx, booking, models.BookingStatusCompleted); err != nil {
		return nil, err
	}
	s.logActivity(ctx, callerID, booking.ProfileID, "booking_completed", "booking", booking.ID, nil)
	return booking, nil
}

// NoShowBooking marks a confirmed booking as missed.
func (s *DefaultAdminService) NoShowBooking(ctx context.Context, callerID, callerRole, bookingID string) (*models.Booking, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Only confirmed bookings can be marked as no-show")
	}

	if err := s.setStatus(ctx, booking, models.BookingStatusNoShow); err != nil {
		return nil, err
	}
	s.logActivity(ctx, callerID, booking.ProfileID, "booking_no_show", "booking", booking.ID, nil)
	return booking, nil
}

// RescheduleBooking moves a booking to a new date, re-homing any slot
// coupling. The new slot is claimed before the old one is released so a
// failure cannot lose the customer's place.
func (s *DefaultAdminService) RescheduleBooking(ctx context.Context, callerID, callerRole, bookingID string, req models.RescheduleBookingRequest) (*models.Booking, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Only pending or confirmed bookings can be rescheduled")
	}
	if !req.NewDate.After(time.Now().UTC()) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "New booking date must be in the future")
	}

	newDay := dayOf(req.NewDate)
	if req.NewTimeSlot != "" {
		err := s.Slots.IncrementBooked(ctx, booking.ProfileID, newDay, req.NewTimeSlot)
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, utils.NewServiceError(http.StatusNotFound, "Time slot not found")
		case errors.Is(err, availabilityRepo.ErrSlotFull):
			return nil, utils.NewServiceError(http.StatusConflict, "Time slot is fully booked")
		case err != nil:
			utils.GetLogger().Error("Failed to claim new slot", zap.Error(err))
			return nil, err
		}
	}

	oldDate, oldSlot := booking.Date, booking.TimeSlot
	if err := s.Bookings.Reschedule(ctx, booking.ID, req.NewDate.UTC(), req.NewTimeSlot); err != nil {
		if req.NewTimeSlot != "" {
			if derr := s.Slots.DecrementBooked(ctx, booking.ProfileID, newDay, req.NewTimeSlot); derr != nil {
				utils.GetLogger().Warn("Failed to undo slot claim", zap.Error(derr))
			}
		}
		utils.GetLogger().Error("Failed to reschedule booking", zap.Error(err))
		return nil, err
	}

	if oldSlot != "" {
		if err := s.Slots.DecrementBooked(ctx, booking.ProfileID, dayOf(oldDate), oldSlot); err != nil {
			utils.GetLogger().Warn("Failed to release old slot", zap.Error(err))
		}
	}
	s.Availability.InvalidateProfile(booking.ProfileID)

	booking.Date = req.NewDate.UTC()
	booking.TimeSlot = req.NewTimeSlot
	booking.UpdatedAt = time.Now().UTC()

	if req.Notes != "" {
		s.attachNote(ctx, callerID, booking.ID, "Rescheduled: "+req.Notes)
	}
	s.logActivity(ctx, callerID, booking.ProfileID, "booking_rescheduled", "booking", booking.ID,
		map[string]interface{}{
			"old_date":      oldDate,
			"new_date":      booking.Date,
			"old_time_slot": oldSlot,
			"new_time_slot": booking.TimeSlot,
		})
	s.Notifier.NotifyStatusUpdate(booking, "")

	return booking, nil
}

// AddBookingNote attaches an internal note to a booking.
func (s *DefaultAdminService) AddBookingNote(ctx context.Context, callerID, callerRole, bookingID, note string) (*models.BookingNote, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	booking, err := s.requireBookingAccess(ctx, bookingID, scope)
	if err != nil {
		return nil, err
	}

	name := ""
	if u, err := s.Users.GetByID(callerID); err == nil && u != nil {
		name = u.Name
	}
	entry := &models.BookingNote{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		Note:          note,
		CreatedBy:     callerID,
		CreatedByName: name,
	}
	if err := s.Bookings.AddNote(ctx, entry); err != nil {
		utils.GetLogger().Error("Failed to add booking note", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// attachNote best-effort records a transition note; failures are logged.
func (s *DefaultAdminService) attachNote(ctx context.Context, callerID, bookingID, text string) {
	name := ""
	if u, err := s.Users.GetByID(callerID); err == nil && u != nil {
		name = u.Name
	}
	note := &models.BookingNote{
		ID:            uuid.New().String(),
		BookingID:     bookingID,
		Note:          text,
		CreatedBy:     callerID,
		CreatedByName: name,
	}
	if err := s.Bookings.AddNote(ctx, note); err != nil {
		utils.GetLogger().Warn("Failed to add booking note", zap.Error(err))
	}
}

func (s *DefaultAdminService) setStatus(ctx context.Context, booking *models.Booking, status string) error {
	if err := s.Bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
		utils.GetLogger().Error("Failed to update booking status", zap.Error(err))
		return err
	}
	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *DefaultAdminService) releaseSlot(ctx context.Context, booking *models.Booking) {
	if booking.TimeSlot == "" {
		return
	}
	if err := s.Slots.DecrementBooked(ctx, booking.ProfileID, dayOf(booking.Date), booking.TimeSlot); err != nil {
		utils.GetLogger().Warn("Failed to release slot", zap.Error(err))
		return
	}
	s.Availability.InvalidateProfile(booking.ProfileID)
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
