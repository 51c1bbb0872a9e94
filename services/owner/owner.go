package owner

import (
	"context"
	"math"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

const defaultProfileLimit = 10

// Dashboard aggregates bookings across all of the owner's profiles. Revenue
// counts CONFIRMED bookings at their service price.
func (s *DefaultOwnerService) Dashboard(ctx context.Context, ownerID string) (*models.OwnerDashboardStats, error) {
	profiles, err := s.Profiles.GetByOwner(ownerID, 0, 0)
	if err != nil {
		utils.GetLogger().Error("Failed to list owner profiles", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	weekStart := todayStart.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	stats := &models.OwnerDashboardStats{}
	for i := range profiles {
		prof := &profiles[i]
		bookings, err := s.Bookings.GetByProfile(ctx, prof.ID)
		if err != nil {
			utils.GetLogger().Error("Failed to list profile bookings", zap.Error(err))
			return nil, err
		}
		for _, b := range bookings {
			stats.TotalBookings++
			switch b.Status {
			case models.BookingStatusPending:
				stats.PendingBookings++
			case models.BookingStatusConfirmed:
				stats.ConfirmedBookings++
				if svc, ok := prof.ServiceByID(b.ServiceID); ok {
					stats.TotalRevenue += svc.Price
				}
			}
			if !b.Date.Before(todayStart) && b.Date.Before(tomorrowStart) {
				stats.TodayBookings++
			}
			if !b.Date.Before(weekStart) {
				stats.ThisWeekBookings++
			}
		}
	}
	stats.TotalRevenue = math.Round(stats.TotalRevenue*100) / 100
	return stats, nil
}

// MyProfiles lists the owner's profiles with booking counters.
func (s *DefaultOwnerService) MyProfiles(ctx context.Context, ownerID string, skip, limit int) ([]models.ProfileWithBookingCount, error) {
	if limit < 1 {
		limit = defaultProfileLimit
	}
	if skip < 0 {
		skip = 0
	}

	profiles, err := s.Profiles.GetByOwner(ownerID, skip, limit)
	if err != nil {
		utils.GetLogger().Error("Failed to list owner profiles", zap.Error(err))
		return nil, err
	}

	result := make([]models.ProfileWithBookingCount, 0, len(profiles))
	for i := range profiles {
		row := models.ProfileWithBookingCount{BusinessProfile: profiles[i]}
		bookings, err := s.Bookings.GetByProfile(ctx, profiles[i].ID)
		if err != nil {
			utils.GetLogger().Error("Failed to count profile bookings", zap.Error(err))
			return nil, err
		}
		for _, b := range bookings {
			row.TotalBookings++
			switch b.Status {
			case models.BookingStatusPending:
				row.PendingBookings++
			case models.BookingStatusConfirmed:
				row.ConfirmedBookings++
			}
		}
		result = append(result, row)
	}
	return result, nil
}

// CreateProfile creates a profile owned by the caller.
func (s *DefaultOwnerService) CreateProfile(ownerID string, req models.ProfileCreate) (*models.BusinessProfile, error) {
	return s.ProfileSvc.Create(ownerID, req)
}

// ProfileAnalytics summarizes one profile: totals, service ranking and a
// 30-day booking trend.
func (s *DefaultOwnerService) ProfileAnalytics(ctx context.Context, ownerID, profileID string) (*models.ProfileAnalytics, error) {
	prof, err := s.Profiles.GetByID(profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}
	if prof == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Profile not found")
	}
	if prof.OwnerID != ownerID {
		return nil, utils.NewServiceError(http.StatusForbidden, "Not authorized to view this profile's analytics")
	}

	bookings, err := s.Bookings.GetByProfile(ctx, profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to list profile bookings", zap.Error(err))
		return nil, err
	}

	analytics := &models.ProfileAnalytics{
		ProfileID:       prof.ID,
		ProfileName:     prof.Name,
		PopularServices: []models.ProfileServiceStats{},
		BookingTrend:    []models.DateCount{},
	}

	trendStart := time.Now().UTC().AddDate(0, 0, -30)
	serviceStats := map[string]*models.ProfileServiceStats{}
	trend := map[string]int{}

	for _, b := range bookings {
		analytics.TotalBookings++
		switch b.Status {
		case models.BookingStatusConfirmed:
			analytics.ConfirmedBookings++
		case models.BookingStatusCancelled:
			analytics.CancelledBookings++
		}

		if b.ServiceID != "" {
			stat, ok := serviceStats[b.ServiceID]
			if !ok {
				stat = &models.ProfileServiceStats{ServiceID: b.ServiceID}
				if svc, found := prof.ServiceByID(b.ServiceID); found {
					stat.ServiceTitle = svc.Title
				}
				serviceStats[b.ServiceID] = stat
			}
			stat.TotalBookings++
			if b.Status == models.BookingStatusConfirmed {
				if svc, found := prof.ServiceByID(b.ServiceID); found {
					stat.Revenue = math.Round((stat.Revenue+svc.Price)*100) / 100
				}
			}
		}

		if !b.Date.Before(trendStart) {
			trend[b.Date.Format("2006-01-02")]++
		}
	}

	for _, stat := range serviceStats {
		analytics.PopularServices = append(analytics.PopularServices, *stat)
	}
	sort.Slice(analytics.PopularServices, func(i, j int) bool {
		return analytics.PopularServices[i].TotalBookings > analytics.PopularServices[j].TotalBookings
	})

	for date, count := range trend {
		analytics.BookingTrend = append(analytics.BookingTrend, models.DateCount{Date: date, Count: count})
	}
	sort.Slice(analytics.BookingTrend, func(i, j int) bool {
		return analytics.BookingTrend[i].Date < analytics.BookingTrend[j].Date
	})

	return analytics, nil
}
