// File: bookify/services/booking/create.go
package booking

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

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create books an appointment. When a time slot is given its capacity is
// claimed atomically before the booking document is written.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, req models.BookingCreate) (*models.BookingRefResponse, error) {
	logger := utils.GetLogger()

	profile, err := s.Profiles.GetByID(req.ProfileID)
	if err != nil {
		logger.Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}

	if req.ServiceID != "" {
		if _, ok := profile.ServiceByID(req.ServiceID); !ok {
			return nil, utils.NewServiceError(http.StatusNotFound, "Service not found in profile")
		}
	}

	if !req.Date.After(time.Now().UTC()) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Booking date must be in the future")
	}

	block, err := s.Admin.GetBlock(ctx, userID, profile.ID)
	if err != nil {
		logger.Error("Failed to check block list", zap.Error(err))
		return nil, err
	}
	if block != nil {
		return nil, utils.NewServiceError(http.StatusForbidden, "You are blocked from booking with this business")
	}

	// Claim slot capacity first so a full slot can never be double booked.
	slotClaimed := false
	if req.TimeSlot != "" {
		err := s.Slots.IncrementBooked(ctx, profile.ID, dayOf(req.Date), req.TimeSlot)
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, utils.NewServiceError(http.StatusNotFound, "Time slot not found")
		case errors.Is(err, availabilityRepo.ErrSlotFull):
			return nil, utils.NewServiceError(http.StatusConflict, "Time slot is fully booked")
		case err != nil:
			logger.Error("Failed to claim slot", zap.Error(err))
			return nil, err
		}
		slotClaimed = true
	}

	ref, err := s.uniqueRef(ctx)
	if err != nil {
		s.releaseSlot(ctx, slotClaimed, profile.ID, req.Date, req.TimeSlot)
		logger.Error("Failed to allocate booking reference", zap.Error(err))
		return nil, err
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		BookingRef: ref,
		UserID:     userID,
		ProfileID:  profile.ID,
		ServiceID:  req.ServiceID,
		Date:       req.Date.UTC(),
		TimeSlot:   req.TimeSlot,
		Status:     models.BookingStatusPending,
		Notes:      req.Notes,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		s.releaseSlot(ctx, slotClaimed, profile.ID, req.Date, req.TimeSlot)
		logger.Error("Failed to create booking", zap.Error(err))
		return nil, err
	}

	if slotClaimed {
		s.Availability.InvalidateProfile(profile.ID)
	}
	s.Notifier.NotifyBookingCreated(booking, profile)

	return &models.BookingRefResponse{BookingRef: booking.BookingRef, BookingID: booking.ID}, nil
}

// releaseSlot undoes a claimed slot when a later creation step fails.
func (s *DefaultBookingService) releaseSlot(ctx context.Context, claimed bool, profileID string, date time.Time, timeSlot string) {
	if !claimed {
		return
	}
	if err := s.Slots.DecrementBooked(ctx, profileID, dayOf(date), timeSlot); err != nil {
		utils.GetLogger().Warn("Failed to release slot", zap.Error(err))
	}
}
