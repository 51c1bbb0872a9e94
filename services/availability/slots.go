package availability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatSlot(startMin, endMin int) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", startMin/60, startMin%60, endMin/60, endMin%60)
}

func normalizeDate(d time.Time) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateSlots generates consecutive slots for one date from the given config.
// A slot that would end past end_time is not created.
func (s *DefaultAvailabilityService) CreateSlots(ctx context.Context, profileID, callerID, callerRole string, req models.AvailabilityCreate) ([]models.AvailabilitySlot, error) {
	if _, err := s.requireOwnedProfile(profileID, callerID, callerRole); err != nil {
		return nil, err
	}

	start, err := parseClock(req.Config.StartTime)
	if err != nil {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Invalid start_time, expected HH:MM")
	}
	end, err := parseClock(req.Config.EndTime)
	if err != nil {
		return nil, utils.NewServiceError(http.StatusBadRequest, "Invalid end_time, expected HH:MM")
	}
	if start >= end {
		return nil, utils.NewServiceError(http.StatusBadRequest, "start_time must be before end_time")
	}

	date := normalizeDate(req.Date)
	slots := []models.AvailabilitySlot{}
	for cur := start; cur+req.Config.SlotDuration <= end; cur += req.Config.SlotDuration {
		slots = append(slots, models.AvailabilitySlot{
			ProfileID:   profileID,
			Date:        date,
			TimeSlot:    formatSlot(cur, cur+req.Config.SlotDuration),
			MaxCapacity: req.Config.MaxCapacityPerSlot,
			BookedCount: 0,
			IsAvailable: true,
		})
	}
	if len(slots) == 0 {
		return slots, nil
	}

	if err := s.Repo.CreateMany(ctx, slots); err != nil {
		utils.GetLogger().Error("Failed to create slots", zap.Error(err))
		return nil, err
	}
	s.InvalidateProfile(profileID)
	return slots, nil
}

// UpdateCapacity changes a slot's max capacity; availability is recomputed
// against the current booked count.
func (s *DefaultAvailabilityService) UpdateCapacity(ctx context.Context, slotID, callerID, callerRole string, maxCapacity int) (*models.AvailabilitySlot, error) {
	slot, err := s.requireSlot(ctx, slotID, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateCapacity(ctx, slotID, maxCapacity)
	if err != nil {
		utils.GetLogger().Error("Failed to update slot capacity", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Slot not found")
	}
	s.InvalidateProfile(slot.ProfileID)
	return updated, nil
}

// DeleteSlot removes a slot.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, slotID, callerID, callerRole string) error {
	slot, err := s.requireSlot(ctx, slotID, callerID, callerRole)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, slotID); err != nil {
		utils.GetLogger().Error("Failed to delete slot", zap.Error(err))
		return err
	}
	s.InvalidateProfile(slot.ProfileID)
	return nil
}

func (s *DefaultAvailabilityService) requireSlot(ctx context.Context, slotID, callerID, callerRole string) (*models.AvailabilitySlot, error) {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch slot", zap.Error(err))
		return nil, err
	}
	if slot == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Slot not found")
	}
	if _, err := s.requireOwnedProfile(slot.ProfileID, callerID, callerRole); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *DefaultAvailabilityService) requireOwnedProfile(profileID, callerID, callerRole string) (*models.BusinessProfile, error) {
	prof, err := s.Profiles.GetByID(profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if prof == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}
	if callerRole == models.RoleAdmin || callerRole == models.RoleSuperAdmin {
		return prof, nil
	}
	if prof.OwnerID != callerID {
		return nil, utils.NewServiceError(http.StatusForbidden, "Only the profile owner can manage availability")
	}
	return prof, nil
}
