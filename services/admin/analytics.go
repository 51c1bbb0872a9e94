package admin

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

const popularServicesLimit = 5

// Dashboard returns the headline stats for the caller's scope.
func (s *DefaultAdminService) Dashboard(ctx context.Context, callerID, callerRole string) (*models.DashboardStats, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	stats, err := s.Repo.GetDashboardStats(ctx, scope)
	if err != nil {
		utils.GetLogger().Error("Failed to compute dashboard", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// Overview summarizes a date range.
func (s *DefaultAdminService) Overview(ctx context.Context, callerID, callerRole string, start, end time.Time) (*models.AnalyticsOverview, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "start_date must be before end_date")
	}

	overview, err := s.Repo.GetAnalyticsOverview(ctx, scope, start, end)
	if err != nil {
		utils.GetLogger().Error("Failed to compute analytics overview", zap.Error(err))
		return nil, err
	}
	return overview, nil
}

// BookingTrends buckets bookings by day, week or month over a range.
func (s *DefaultAdminService) BookingTrends(ctx context.Context, callerID, callerRole string, start, end time.Time, granularity string) ([]models.BookingTrend, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "start_date must be before end_date")
	}
	switch granularity {
	case "day", "week", "month":
	default:
		return nil, utils.NewServiceError(http.StatusBadRequest, "Invalid granularity. Use day, week, or month")
	}

	trends, err := s.Repo.GetBookingTrends(ctx, scope, start, end, granularity)
	if err != nil {
		utils.GetLogger().Error("Failed to compute booking trends", zap.Error(err))
		return nil, err
	}
	return trends, nil
}

// DailyTrends is the legacy daily series over the past N days.
func (s *DefaultAdminService) DailyTrends(ctx context.Context, callerID, callerRole string, days int) ([]models.BookingTrend, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		days = 30
	}
	if days > 365 {
		days = 365
	}

	trends, err := s.Repo.GetDailyTrends(ctx, scope, days)
	if err != nil {
		utils.GetLogger().Error("Failed to compute daily trends", zap.Error(err))
		return nil, err
	}
	return trends, nil
}

// PopularServices ranks the top services, optionally within a range.
func (s *DefaultAdminService) PopularServices(ctx context.Context, callerID, callerRole string, start, end *time.Time) ([]models.ServiceStats, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "start_date must be before end_date")
	}

	services, err := s.Repo.GetPopularServices(ctx, scope, start, end, popularServicesLimit)
	if err != nil {
		utils.GetLogger().Error("Failed to compute popular services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

// PeakHours ranks hours of the day by booking volume.
func (s *DefaultAdminService) PeakHours(ctx context.Context, callerID, callerRole string, start, end *time.Time) ([]models.PeakHour, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, utils.NewServiceError(http.StatusBadRequest, "start_date must be before end_date")
	}

	hours, err := s.Repo.GetPeakHours(ctx, scope, start, end)
	if err != nil {
		utils.GetLogger().Error("Failed to compute peak hours", zap.Error(err))
		return nil, err
	}
	return hours, nil
}

// ListActivities returns the audit feed for the caller's scope.
func (s *DefaultAdminService) ListActivities(ctx context.Context, callerID, callerRole string, page, pageSize int) (*models.PaginatedActivities, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	page, pageSize = clampPage(page, pageSize, defaultPageSize, maxPageSize)

	items, total, err := s.Repo.ListActivities(ctx, scope, page, pageSize)
	if err != nil {
		utils.GetLogger().Error("Failed to list activities", zap.Error(err))
		return nil, err
	}
	return &models.PaginatedActivities{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
