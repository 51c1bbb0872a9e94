package booking

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// UpdateStatus is the profile owner's decision on a pending booking:
// CONFIRMED or REJECTED only.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, callerID, status string) (*models.Booking, error) {
	booking, err := s.requireBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	profile, err := s.Profiles.GetByID(booking.ProfileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if profile == nil || profile.OwnerID != callerID {
		return nil, utils.NewServiceError(http.StatusForbidden, "Only profile owner can update booking status")
	}

	if status != models.BookingStatusConfirmed && status != models.BookingStatusRejected {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Owner can only set status to CONFIRMED or REJECTED")
	}
	if booking.Status != models.BookingStatusPending {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Can only update PENDING bookings")
	}

	if err := s.Repo.UpdateStatus(ctx, booking.ID, status); err != nil {
		utils.GetLogger().Error("Failed to update booking status", zap.Error(err))
		return nil, err
	}
	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	if status == models.BookingStatusRejected {
		s.releaseBookingSlot(ctx, booking)
	}
	s.Notifier.NotifyStatusUpdate(booking, "")

	return booking, nil
}

// Cancel ends a booking. The booking's customer, the profile owner and
// platform admins may cancel.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, callerID, callerRole string) (*models.Booking, error) {
	booking, err := s.requireBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !s.mayCancel(booking, callerID, callerRole) {
		return nil, utils.NewServiceError(http.StatusForbidden, "Not authorized to cancel this booking")
	}
	if booking.Status == models.BookingStatusRejected || booking.Status == models.BookingStatusCancelled {
		return nil, utils.NewServiceError(http.StatusBadRequest,
			fmt.Sprintf("Cannot cancel booking with status %s", booking.Status))
	}

	if err := s.Repo.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled); err != nil {
		utils.GetLogger().Error("Failed to cancel booking", zap.Error(err))
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled
	booking.UpdatedAt = time.Now().UTC()

	s.releaseBookingSlot(ctx, booking)
	s.Notifier.NotifyCancellation(booking)

	return booking, nil
}

func (s *DefaultBookingService) mayCancel(booking *models.Booking, callerID, callerRole string) bool {
	if booking.UserID == callerID {
		return true
	}
	if callerRole == models.RoleAdmin || callerRole == models.RoleSuperAdmin {
		return true
	}
	profile, err := s.Profiles.GetByID(booking.ProfileID)
	if err != nil || profile == nil {
		return false
	}
	return profile.OwnerID == callerID
}

// releaseBookingSlot frees the coupled slot, if any, and drops the cached
// availability.
func (s *DefaultBookingService) releaseBookingSlot(ctx context.Context, booking *models.Booking) {
	if booking.TimeSlot == "" {
		return
	}
	if err := s.Slots.DecrementBooked(ctx, booking.ProfileID, dayOf(booking.Date), booking.TimeSlot); err != nil {
		utils.GetLogger().Warn("Failed to release booking slot",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	s.Availability.InvalidateProfile(booking.ProfileID)
}
