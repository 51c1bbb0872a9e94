// File: bookify/database/repository/admin/admin.go
package adminRepo

import (
	"context"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository provides the management-surface queries: enriched booking
// lists, customer statistics, analytics and the activity trail. A nil
// *models.OwnerScope means platform-wide access.
type AdminRepository interface {
	ListBookings(ctx context.Context, q models.BookingListQuery, scope *models.OwnerScope) ([]models.AdminBooking, int64, error)
	GetBookingDetail(ctx context.Context, bookingID string) (*models.AdminBooking, error)

	ListCustomers(ctx context.Context, q models.CustomerListQuery, scope *models.OwnerScope) ([]models.Customer, int64, error)
	GetCustomerStats(ctx context.Context, customerID string, scope *models.OwnerScope) (*models.Customer, error)
	BlockCustomer(ctx context.Context, block *models.BlockedCustomer) error
	UnblockCustomer(ctx context.Context, customerID, profileID string) (bool, error)
	GetBlock(ctx context.Context, customerID, profileID string) (*models.BlockedCustomer, error)
	AddCustomerNote(ctx context.Context, note *models.CustomerNote) error
	GetCustomerNotes(ctx context.Context, customerID, profileID string) ([]models.CustomerNote, error)

	GetDashboardStats(ctx context.Context, scope *models.OwnerScope) (*models.DashboardStats, error)
	GetBookingTrends(ctx context.Context, scope *models.OwnerScope, start, end time.Time, granularity string) ([]models.BookingTrend, error)
	GetDailyTrends(ctx context.Context, scope *models.OwnerScope, days int) ([]models.BookingTrend, error)
	GetAnalyticsOverview(ctx context.Context, scope *models.OwnerScope, start, end time.Time) (*models.AnalyticsOverview, error)
	GetPopularServices(ctx context.Context, scope *models.OwnerScope, start, end *time.Time, limit int) ([]models.ServiceStats, error)
	GetPeakHours(ctx context.Context, scope *models.OwnerScope, start, end *time.Time) ([]models.PeakHour, error)

	LogActivity(ctx context.Context, entry *models.ActivityLog) error
	ListActivities(ctx context.Context, scope *models.OwnerScope, page, pageSize int) ([]models.ActivityLog, int64, error)
}

type mongoAdminRepo struct {
	bookings   *mongo.Collection
	users      *mongo.Collection
	profiles   *mongo.Collection
	blocked    *mongo.Collection
	custNotes  *mongo.Collection
	activities *mongo.Collection
}

// NewMongoAdminRepo constructs a MongoDB-backed AdminRepository.
func NewMongoAdminRepo() AdminRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoAdminRepo{
		bookings:   db.Collection("bookings"),
		users:      db.Collection("users"),
		profiles:   db.Collection("profiles"),
		blocked:    db.Collection("blocked_customers"),
		custNotes:  db.Collection("customer_notes"),
		activities: db.Collection("activity_logs"),
	}
}
