package adminRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookify/models"
)

// enrichmentStages joins each booking with its customer, profile and the
// embedded service the booking refers to.
func enrichmentStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
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
		{{Key: "$addFields", Value: bson.M{
			"svc": bson.M{"$arrayElemAt": bson.A{
				bson.M{"$filter": bson.M{
					"input": bson.M{"$ifNull": bson.A{"$profile.services", bson.A{}}},
					"as":    "s",
					"cond":  bson.M{"$eq": bson.A{"$$s.id", "$service_id"}},
				}},
				0,
			}},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"user_name":     bson.M{"$ifNull": bson.A{"$user.name", ""}},
			"user_email":    bson.M{"$ifNull": bson.A{"$user.email", ""}},
			"user_phone":    bson.M{"$ifNull": bson.A{"$user.phone", ""}},
			"profile_name":  bson.M{"$ifNull": bson.A{"$profile.name", ""}},
			"service_name":  bson.M{"$ifNull": bson.A{"$svc.title", ""}},
			"service_price": bson.M{"$ifNull": bson.A{"$svc.price", 0}},
		}}},
	}
}

// scopeMatch limits bookings to one owner: bookings against the owner's
// profile, plus bookings made by customers belonging to the owner.
func scopeMatch(scope *models.OwnerScope) bson.M {
	if scope == nil {
		return bson.M{}
	}
	return bson.M{"$or": []bson.M{
		{"profile_id": scope.ProfileID},
		{"user.owner_id": scope.OwnerUserID},
	}}
}

var bookingSortFields = map[string]string{
	"created_at":    "created_at",
	"booking_date":  "booking_date",
	"status":        "status",
	"customer_name": "user_name",
}

// ListBookings runs the enriched, filtered, paginated booking query.
func (r *mongoAdminRepo) ListBookings(ctx context.Context, q models.BookingListQuery, scope *models.OwnerScope) ([]models.AdminBooking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	base := bson.M{}
	if q.Status != "" {
		base["status"] = q.Status
	}
	if q.StartDate != nil || q.EndDate != nil {
		dateRange := bson.M{}
		if q.StartDate != nil {
			dateRange["$gte"] = *q.StartDate
		}
		if q.EndDate != nil {
			dateRange["$lte"] = *q.EndDate
		}
		base["booking_date"] = dateRange
	}

	pipeline := mongo.Pipeline{}
	if len(base) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: base}})
	}
	pipeline = append(pipeline, enrichmentStages()...)
	if scope != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: scopeMatch(scope)}})
	}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"user_name": regex},
			{"user_email": regex},
			{"user.username": regex},
			{"booking_ref": regex},
		}}}})
	}

	// Count before paging.
	countPipeline := append(mongo.Pipeline{}, pipeline...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})
	cursor, err := r.bookings.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	var countRows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &countRows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode booking count: %w", err)
	}
	var total int64
	if len(countRows) > 0 {
		total = countRows[0].Total
	}

	sortField, ok := bookingSortFields[q.SortBy]
	if !ok {
		sortField = "created_at"
	}
	sortDir := -1
	if q.SortOrder == "asc" {
		sortDir = 1
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: sortField, Value: sortDir}}}},
		bson.D{{Key: "$skip", Value: (q.Page - 1) * q.PageSize}},
		bson.D{{Key: "$limit", Value: q.PageSize}},
		bson.D{{Key: "$project", Value: bson.M{"user": 0, "profile": 0, "svc": 0}}},
	)

	cursor, err = r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.AdminBooking
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return items, total, nil
}

// GetBookingDetail fetches one booking with customer, profile and service
// details. Returns (nil, nil) when the booking does not exist.
func (r *mongoAdminRepo) GetBookingDetail(ctx context.Context, bookingID string) (*models.AdminBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"id": bookingID}}},
	}
	pipeline = append(pipeline, enrichmentStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{"user": 0, "profile": 0, "svc": 0}}})

	cursor, err := r.bookings.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var rows []models.AdminBooking
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode booking %s: %w", bookingID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
