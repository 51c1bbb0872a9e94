package adminRepo

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookify/models"
)

// analyticsMatch scopes analytics queries to one profile. Unlike the booking
// list, analytics never cross profile boundaries for owners.
func analyticsMatch(scope *models.OwnerScope) bson.M {
	if scope == nil {
		return bson.M{}
	}
	return bson.M{"profile_id": scope.ProfileID}
}

// serviceStages resolves each booking's service name and price from the
// profile's embedded services.
func serviceStages() mongo.Pipeline {
	svcExpr := bson.M{"$arrayElemAt": bson.A{
		bson.M{"$filter": bson.M{
			"input": bson.M{"$ifNull": bson.A{"$profile.services", bson.A{}}},
			"as":    "s",
			"cond":  bson.M{"$eq": bson.A{"$$s.id", "$service_id"}},
		}},
		0,
	}}
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "profile_id",
			"foreignField": "id",
			"as":           "profile",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$profile",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{"svc": svcExpr}}},
		{{Key: "$addFields", Value: bson.M{
			"service_name":  bson.M{"$ifNull": bson.A{"$svc.title", ""}},
			"service_price": bson.M{"$ifNull": bson.A{"$svc.price", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"profile": 0, "svc": 0}}},
	}
}

func statusCond(status string, value interface{}) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", status}}, value, 0,
	}}}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// GetDashboardStats computes the headline numbers for the dashboard. Weeks
// start on Monday; all boundaries are UTC.
func (r *mongoAdminRepo) GetDashboardStats(ctx context.Context, scope *models.OwnerScope) (*models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	weekStart := todayStart.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	completedRevenue := bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", models.BookingStatusCompleted}},
		"$service_price", 0,
	}}
	completedRevenueSince := func(since time.Time) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$and": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingStatusCompleted}},
				bson.M{"$gte": bson.A{"$booking_date", since}},
			}},
			"$service_price", 0,
		}}}
	}

	pipeline := mongo.Pipeline{}
	if match := analyticsMatch(scope); len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, serviceStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":            nil,
		"total_bookings": bson.M{"$sum": 1},
		"pending":        statusCond(models.BookingStatusPending, 1),
		"confirmed":      statusCond(models.BookingStatusConfirmed, 1),
		"completed":      statusCond(models.BookingStatusCompleted, 1),
		"no_show":        statusCond(models.BookingStatusNoShow, 1),
		"today": bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$and": bson.A{
				bson.M{"$gte": bson.A{"$booking_date", todayStart}},
				bson.M{"$lt": bson.A{"$booking_date", tomorrowStart}},
			}}, 1, 0,
		}}},
		"this_week": bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$gte": bson.A{"$booking_date", weekStart}}, 1, 0,
		}}},
		"this_month": bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$gte": bson.A{"$booking_date", monthStart}}, 1, 0,
		}}},
		"total_revenue": bson.M{"$sum": completedRevenue},
		"week_revenue":  completedRevenueSince(weekStart),
		"month_revenue": completedRevenueSince(monthStart),
		"customers":     bson.M{"$addToSet": "$user_id"},
	}}})

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalBookings int      `bson:"total_bookings"`
		Pending       int      `bson:"pending"`
		Confirmed     int      `bson:"confirmed"`
		Completed     int      `bson:"completed"`
		NoShow        int      `bson:"no_show"`
		Today         int      `bson:"today"`
		ThisWeek      int      `bson:"this_week"`
		ThisMonth     int      `bson:"this_month"`
		TotalRevenue  float64  `bson:"total_revenue"`
		WeekRevenue   float64  `bson:"week_revenue"`
		MonthRevenue  float64  `bson:"month_revenue"`
		Customers     []string `bson:"customers"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard stats: %w", err)
	}

	stats := &models.DashboardStats{}
	if len(rows) == 0 {
		return stats, nil
	}
	row := rows[0]

	stats.TotalBookings = row.TotalBookings
	stats.PendingBookings = row.Pending
	stats.ConfirmedBookings = row.Confirmed
	stats.TodayBookings = row.Today
	stats.ThisWeekBookings = row.ThisWeek
	stats.ThisMonthBookings = row.ThisMonth
	stats.TotalRevenue = round2(row.TotalRevenue)
	stats.ThisWeekRevenue = round2(row.WeekRevenue)
	stats.ThisMonthRevenue = round2(row.MonthRevenue)
	stats.TotalCustomers = len(row.Customers)
	if row.TotalBookings > 0 {
		stats.CompletionRate = round1(float64(row.Completed) / float64(row.TotalBookings) * 100)
		stats.NoShowRate = round1(float64(row.NoShow) / float64(row.TotalBookings) * 100)
	}

	newCustomers, err := r.countNewCustomers(ctx, scope, weekStart)
	if err != nil {
		return nil, err
	}
	stats.NewCustomersThisWeek = newCustomers
	return stats, nil
}

// countNewCustomers counts customers whose first booking in scope falls on
// or after the cutoff.
func (r *mongoAdminRepo) countNewCustomers(ctx context.Context, scope *models.OwnerScope, cutoff time.Time) (int, error) {
	pipeline := mongo.Pipeline{}
	if match := analyticsMatch(scope); len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$user_id",
			"first": bson.M{"$min": "$created_at"},
		}}},
		bson.D{{Key: "$match", Value: bson.M{"first": bson.M{"$gte": cutoff}}}},
		bson.D{{Key: "$count", Value: "total"}},
	)

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count new customers: %w", err)
	}
	var rows []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode new customer count: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

var trendFormats = map[string]string{
	"day":   "%Y-%m-%d",
	"week":  "%Y-W%V",
	"month": "%Y-%m",
}

// GetBookingTrends buckets bookings in [start, end] by day, ISO week or
// month of their booking date.
func (r *mongoAdminRepo) GetBookingTrends(ctx context.Context, scope *models.OwnerScope, start, end time.Time, granularity string) ([]models.BookingTrend, error) {
	format, ok := trendFormats[granularity]
	if !ok {
		format = trendFormats["day"]
	}
	match := analyticsMatch(scope)
	match["booking_date"] = bson.M{"$gte": start, "$lte": end}
	return r.trendAggregate(ctx, match, format)
}

// GetDailyTrends is the legacy daily trend over bookings created in the past
// N days.
func (r *mongoAdminRepo) GetDailyTrends(ctx context.Context, scope *models.OwnerScope, days int) ([]models.BookingTrend, error) {
	match := analyticsMatch(scope)
	match["created_at"] = bson.M{"$gte": time.Now().UTC().AddDate(0, 0, -days)}
	return r.trendAggregate(ctx, match, trendFormats["day"])
}

func (r *mongoAdminRepo) trendAggregate(ctx context.Context, match bson.M, format string) ([]models.BookingTrend, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	pipeline = append(pipeline, serviceStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": format,
				"date":   "$booking_date",
			}},
			"count": bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingStatusCompleted}},
				"$service_price", 0,
			}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute booking trends: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date    string  `bson:"_id"`
		Count   int     `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode booking trends: %w", err)
	}

	trends := make([]models.BookingTrend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, models.BookingTrend{
			Date:    row.Date,
			Count:   row.Count,
			Revenue: round2(row.Revenue),
		})
	}
	return trends, nil
}

// GetAnalyticsOverview summarizes bookings whose booking date falls in
// [start, end].
func (r *mongoAdminRepo) GetAnalyticsOverview(ctx context.Context, scope *models.OwnerScope, start, end time.Time) (*models.AnalyticsOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	match := analyticsMatch(scope)
	match["booking_date"] = bson.M{"$gte": start, "$lte": end}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	pipeline = append(pipeline, serviceStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":            nil,
		"total_bookings": bson.M{"$sum": 1},
		"completed":      statusCond(models.BookingStatusCompleted, 1),
		"cancelled":      statusCond(models.BookingStatusCancelled, 1),
		"completed_revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", models.BookingStatusCompleted}},
			"$service_price", 0,
		}}},
	}}})

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute analytics overview: %w", err)
	}
	var rows []struct {
		TotalBookings    int     `bson:"total_bookings"`
		Completed        int     `bson:"completed"`
		Cancelled        int     `bson:"cancelled"`
		CompletedRevenue float64 `bson:"completed_revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode analytics overview: %w", err)
	}

	overview := &models.AnalyticsOverview{
		Period:          fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
		PopularServices: []models.ServiceStats{},
		BookingTrends:   []models.BookingTrend{},
	}
	if len(rows) > 0 {
		row := rows[0]
		overview.TotalBookings = row.TotalBookings
		overview.TotalRevenue = round2(row.CompletedRevenue)
		if row.Completed > 0 {
			overview.AverageBookingValue = round2(row.CompletedRevenue / float64(row.Completed))
		}
		if row.TotalBookings > 0 {
			overview.BookingCompletionRate = round1(float64(row.Completed) / float64(row.TotalBookings) * 100)
			overview.CancellationRate = round1(float64(row.Cancelled) / float64(row.TotalBookings) * 100)
		}
	}

	services, err := r.GetPopularServices(ctx, scope, &start, &end, 5)
	if err != nil {
		return nil, err
	}
	overview.PopularServices = services

	trends, err := r.GetBookingTrends(ctx, scope, start, end, "day")
	if err != nil {
		return nil, err
	}
	overview.BookingTrends = trends

	return overview, nil
}

// GetPopularServices ranks services by booking count, optionally limited to
// a booking-date range.
func (r *mongoAdminRepo) GetPopularServices(ctx context.Context, scope *models.OwnerScope, start, end *time.Time, limit int) ([]models.ServiceStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	match := analyticsMatch(scope)
	match["service_id"] = bson.M{"$exists": true, "$nin": bson.A{nil, ""}}
	if start != nil && end != nil {
		match["booking_date"] = bson.M{"$gte": *start, "$lte": *end}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
	}
	pipeline = append(pipeline, serviceStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$service_id",
			"name":  bson.M{"$first": "$service_name"},
			"count": bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingStatusCompleted}},
				"$service_price", 0,
			}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute popular services: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ServiceID string  `bson:"_id"`
		Name      string  `bson:"name"`
		Count     int     `bson:"count"`
		Revenue   float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode popular services: %w", err)
	}

	totalMatch := analyticsMatch(scope)
	if start != nil && end != nil {
		totalMatch["booking_date"] = bson.M{"$gte": *start, "$lte": *end}
	}
	total, err := r.bookings.CountDocuments(ctx, totalMatch)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings for service share: %w", err)
	}

	services := make([]models.ServiceStats, 0, len(rows))
	for _, row := range rows {
		stat := models.ServiceStats{
			ServiceID:    row.ServiceID,
			ServiceName:  row.Name,
			BookingCount: row.Count,
			Revenue:      round2(row.Revenue),
		}
		if total > 0 {
			stat.Percentage = round1(float64(row.Count) / float64(total) * 100)
		}
		services = append(services, stat)
	}
	return services, nil
}

// GetPeakHours groups bookings by the hour of their booking date, most
// popular first.
func (r *mongoAdminRepo) GetPeakHours(ctx context.Context, scope *models.OwnerScope, start, end *time.Time) ([]models.PeakHour, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	match := analyticsMatch(scope)
	if start != nil && end != nil {
		match["booking_date"] = bson.M{"$gte": *start, "$lte": *end}
	}

	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$hour": "$booking_date"},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	)

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute peak hours: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Hour  int `bson:"_id"`
		Count int `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode peak hours: %w", err)
	}

	var total int
	for _, row := range rows {
		total += row.Count
	}

	hours := make([]models.PeakHour, 0, len(rows))
	for _, row := range rows {
		peak := models.PeakHour{
			Hour:         fmt.Sprintf("%02d:00", row.Hour),
			BookingCount: row.Count,
		}
		if total > 0 {
			peak.Percentage = round1(float64(row.Count) / float64(total) * 100)
		}
		hours = append(hours, peak)
	}
	return hours, nil
}
