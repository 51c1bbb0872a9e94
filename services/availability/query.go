package availability

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// GetRange returns availability grouped by date for [start, end], end
// inclusive. Responses are cached briefly in Redis.
func (s *DefaultAvailabilityService) GetRange(ctx context.Context, profileID string, start, end time.Time) ([]models.DateAvailability, error) {
	logger := utils.GetLogger()
	start = normalizeDate(start)
	endOfDay := normalizeDate(end).Add(24*time.Hour - time.Second)

	cacheKey := rangeCacheKey(profileID, start, endOfDay)
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	prof, err := s.Profiles.GetByID(profileID)
	if err != nil {
		logger.Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if prof == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}

	slots, err := s.Repo.GetByProfileAndRange(ctx, profileID, start, endOfDay)
	if err != nil {
		logger.Error("Failed to fetch availability range", zap.Error(err))
		return nil, err
	}

	days := groupByDate(slots)
	s.writeCache(ctx, cacheKey, days)
	return days, nil
}

// GetDate returns one date's availability. The slots array is empty, not
// null, when nothing is configured.
func (s *DefaultAvailabilityService) GetDate(ctx context.Context, profileID string, date time.Time) (*models.DateAvailability, error) {
	logger := utils.GetLogger()

	prof, err := s.Profiles.GetByID(profileID)
	if err != nil {
		logger.Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if prof == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}

	date = normalizeDate(date)
	slots, err := s.Repo.GetByProfileAndDate(ctx, profileID, date)
	if err != nil {
		logger.Error("Failed to fetch availability", zap.Error(err))
		return nil, err
	}

	day := models.DateAvailability{Date: date, Slots: []models.AvailabilitySlot{}}
	for _, slot := range slots {
		day.Slots = append(day.Slots, slot)
		day.TotalSlots++
		if slot.IsAvailable {
			day.AvailableSlots++
		}
	}
	return &day, nil
}

// groupByDate folds date-sorted slots into per-date summaries.
func groupByDate(slots []models.AvailabilitySlot) []models.DateAvailability {
	days := []models.DateAvailability{}
	for _, slot := range slots {
		day := normalizeDate(slot.Date)
		if len(days) == 0 || !days[len(days)-1].Date.Equal(day) {
			days = append(days, models.DateAvailability{Date: day, Slots: []models.AvailabilitySlot{}})
		}
		last := &days[len(days)-1]
		last.Slots = append(last.Slots, slot)
		last.TotalSlots++
		if slot.IsAvailable {
			last.AvailableSlots++
		}
	}
	return days
}

func rangeCacheKey(profileID string, start, end time.Time) string {
	return utils.AvailabilityCachePrefix + profileID + ":" + start.Format("2006-01-02") + ":" + end.Format("2006-01-02")
}

func (s *DefaultAvailabilityService) readCache(ctx context.Context, key string) []models.DateAvailability {
	raw, err := utils.GetCacheClient().Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var days []models.DateAvailability
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil
	}
	return days
}

func (s *DefaultAvailabilityService) writeCache(ctx context.Context, key string, days []models.DateAvailability) {
	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := utils.GetCacheClient().Set(ctx, key, raw, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache availability", zap.Error(err))
	}
}

// InvalidateProfile drops every cached availability response for a profile.
// Called after any slot mutation or slot-coupled booking change.
func (s *DefaultAvailabilityService) InvalidateProfile(profileID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := utils.GetCacheClient()
	keys, err := client.Keys(ctx, utils.AvailabilityCachePrefix+profileID+":*").Result()
	if err != nil {
		utils.GetLogger().Warn("Failed to scan availability cache", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate availability cache", zap.Error(err))
	}
}
