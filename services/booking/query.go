package booking

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// GetByID returns one booking; only the booking's customer may read it.
func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID, callerID string) (*models.BookingDetail, error) {
	booking, err := s.requireBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != callerID {
		return nil, utils.NewServiceError(http.StatusForbidden, "Not authorized to view this booking")
	}
	return s.enrichOne(booking), nil
}

// GetByRef is the public reference lookup.
func (s *DefaultBookingService) GetByRef(ctx context.Context, ref string) (*models.BookingDetail, error) {
	booking, err := s.Repo.GetByRef(ctx, ref)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking by ref", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Booking not found")
	}
	return s.enrichOne(booking), nil
}

// ListMine returns the caller's bookings, newest first.
func (s *DefaultBookingService) ListMine(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		return nil, err
	}
	return s.enrich(bookings), nil
}

// ListForProfile returns all bookings against a profile, owner only.
func (s *DefaultBookingService) ListForProfile(ctx context.Context, profileID, callerID, callerRole string) ([]models.BookingDetail, error) {
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}
	if callerRole != models.RoleAdmin && callerRole != models.RoleSuperAdmin && profile.OwnerID != callerID {
		return nil, utils.NewServiceError(http.StatusForbidden, "Only profile owner can view bookings")
	}

	bookings, err := s.Repo.GetByProfile(ctx, profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to list profile bookings", zap.Error(err))
		return nil, err
	}
	return s.enrich(bookings), nil
}

func (s *DefaultBookingService) requireBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Booking not found")
	}
	return booking, nil
}

// enrich joins profile and service details onto bookings, loading each
// profile once.
func (s *DefaultBookingService) enrich(bookings []models.Booking) []models.BookingDetail {
	profiles := map[string]*models.BusinessProfile{}
	details := make([]models.BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, *s.enrichWith(&bookings[i], profiles))
	}
	return details
}

func (s *DefaultBookingService) enrichOne(booking *models.Booking) *models.BookingDetail {
	return s.enrichWith(booking, map[string]*models.BusinessProfile{})
}

func (s *DefaultBookingService) enrichWith(booking *models.Booking, cache map[string]*models.BusinessProfile) *models.BookingDetail {
	detail := &models.BookingDetail{Booking: *booking}

	profile, seen := cache[booking.ProfileID]
	if !seen {
		loaded, err := s.Profiles.GetByID(booking.ProfileID)
		if err != nil {
			utils.GetLogger().Warn("Failed to load profile for booking",
				zap.String("profileID", booking.ProfileID), zap.Error(err))
		}
		profile = loaded
		cache[booking.ProfileID] = profile
	}
	if profile == nil {
		return detail
	}

	detail.ProfileName = profile.Name
	if booking.ServiceID != "" {
		if svc, ok := profile.ServiceByID(booking.ServiceID); ok {
			detail.ServiceTitle = svc.Title
			detail.ServicePrice = svc.Price
		}
	}
	return detail
}
