package adminRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

// bookingsLookup joins a user with their bookings (optionally limited to one
// profile), resolving the price of each booking's service on the way so
// spend totals can be computed without further joins.
func bookingsLookup(profileID string) bson.D {
	matchExpr := bson.M{"$eq": bson.A{"$user_id", "$$uid"}}
	inner := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$expr": matchExpr}}},
	}
	if profileID != "" {
		inner = append(inner, bson.D{{Key: "$match", Value: bson.M{"profile_id": profileID}}})
	}
	inner = append(inner,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "profile_id",
			"foreignField": "id",
			"as":           "profile",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$profile",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"service_price": bson.M{"$let": bson.M{
				"vars": bson.M{"svc": bson.M{"$arrayElemAt": bson.A{
					bson.M{"$filter": bson.M{
						"input": bson.M{"$ifNull": bson.A{"$profile.services", bson.A{}}},
						"as":    "s",
						"cond":  bson.M{"$eq": bson.A{"$$s.id", "$service_id"}},
					}},
					0,
				}}},
				"in": bson.M{"$ifNull": bson.A{"$$svc.price", 0}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"profile": 0}}},
	)

	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":     "bookings",
		"let":      bson.M{"uid": "$id"},
		"pipeline": inner,
		"as":       "customer_bookings",
	}}}
}

func statusSize(status string) bson.M {
	return bson.M{"$size": bson.M{"$filter": bson.M{
		"input": "$customer_bookings",
		"as":    "b",
		"cond":  bson.M{"$eq": bson.A{"$$b.status", status}},
	}}}
}

// ListCustomers pages through customers with per-profile booking statistics.
func (r *mongoAdminRepo) ListCustomers(ctx context.Context, q models.CustomerListQuery, scope *models.OwnerScope) ([]models.Customer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	profileID := ""
	if scope != nil {
		profileID = scope.ProfileID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": models.RoleUser}}},
		bookingsLookup(profileID),
	}

	if scope != nil {
		// Owners see their own customers plus anyone who booked with them.
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"owner_id": scope.OwnerUserID},
			{"customer_bookings.0": bson.M{"$exists": true}},
		}}}})
	}

	blockFilter := bson.M{"$eq": bson.A{"$user_id", "$$uid"}}
	blockMatch := bson.M{"$expr": blockFilter}
	blockPipeline := mongo.Pipeline{{{Key: "$match", Value: blockMatch}}}
	if profileID != "" {
		blockPipeline = append(blockPipeline, bson.D{{Key: "$match", Value: bson.M{"profile_id": profileID}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":     "blocked_customers",
			"let":      bson.M{"uid": "$id"},
			"pipeline": blockPipeline,
			"as":       "block_info",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"total_bookings":     bson.M{"$size": "$customer_bookings"},
			"pending_bookings":   statusSize(models.BookingStatusPending),
			"confirmed_bookings": statusSize(models.BookingStatusConfirmed),
			"completed_bookings": statusSize(models.BookingStatusCompleted),
			"cancelled_bookings": statusSize(models.BookingStatusCancelled),
			"no_show_bookings":   statusSize(models.BookingStatusNoShow),
			"first_booking":      bson.M{"$min": "$customer_bookings.booking_date"},
			"last_booking":       bson.M{"$max": "$customer_bookings.booking_date"},
			"total_spent": bson.M{"$reduce": bson.M{
				"input":        "$customer_bookings",
				"initialValue": 0,
				"in": bson.M{"$add": bson.A{
					"$$value",
					bson.M{"$cond": bson.A{
						bson.M{"$eq": bson.A{"$$this.status", models.BookingStatusCompleted}},
						bson.M{"$ifNull": bson.A{"$$this.service_price", 0}},
						0,
					}},
				}},
			}},
			"is_blocked":     bson.M{"$gt": bson.A{bson.M{"$size": "$block_info"}, 0}},
			"blocked_reason": bson.M{"$arrayElemAt": bson.A{"$block_info.reason", 0}},
		}}},
	)

	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"name": regex},
			{"email": regex},
			{"username": regex},
		}}}})
	}
	if q.IsBlocked != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"is_blocked": *q.IsBlocked}}})
	}

	countPipeline := append(mongo.Pipeline{}, pipeline...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})
	cursor, err := r.users.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}
	var countRows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &countRows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode customer count: %w", err)
	}
	var total int64
	if len(countRows) > 0 {
		total = countRows[0].Total
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (q.Page - 1) * q.PageSize}},
		bson.D{{Key: "$limit", Value: q.PageSize}},
		bson.D{{Key: "$project", Value: bson.M{
			"customer_bookings": 0,
			"block_info":        0,
			"password_hash":     0,
		}}},
	)

	cursor, err = r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Customer
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode customers: %w", err)
	}
	return items, total, nil
}

// GetCustomerStats aggregates one customer's booking history. Returns
// (nil, nil) when the user does not exist, and a Customer with zero
// TotalBookings when they have never booked in scope.
func (r *mongoAdminRepo) GetCustomerStats(ctx context.Context, customerID string, scope *models.OwnerScope) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	profileID := ""
	if scope != nil {
		profileID = scope.ProfileID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"id": customerID, "role": models.RoleUser}}},
		bookingsLookup(profileID),
	}

	blockPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$expr": bson.M{"$eq": bson.A{"$user_id", "$$uid"}}}}},
	}
	if profileID != "" {
		blockPipeline = append(blockPipeline, bson.D{{Key: "$match", Value: bson.M{"profile_id": profileID}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":     "blocked_customers",
			"let":      bson.M{"uid": "$id"},
			"pipeline": blockPipeline,
			"as":       "block_info",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"total_bookings":     bson.M{"$size": "$customer_bookings"},
			"pending_bookings":   statusSize(models.BookingStatusPending),
			"confirmed_bookings": statusSize(models.BookingStatusConfirmed),
			"completed_bookings": statusSize(models.BookingStatusCompleted),
			"cancelled_bookings": statusSize(models.BookingStatusCancelled),
			"no_show_bookings":   statusSize(models.BookingStatusNoShow),
			"first_booking":      bson.M{"$min": "$customer_bookings.booking_date"},
			"last_booking":       bson.M{"$max": "$customer_bookings.booking_date"},
			"total_spent": bson.M{"$reduce": bson.M{
				"input":        "$customer_bookings",
				"initialValue": 0,
				"in": bson.M{"$add": bson.A{
					"$$value",
					bson.M{"$cond": bson.A{
						bson.M{"$eq": bson.A{"$$this.status", models.BookingStatusCompleted}},
						bson.M{"$ifNull": bson.A{"$$this.service_price", 0}},
						0,
					}},
				}},
			}},
			"is_blocked":     bson.M{"$gt": bson.A{bson.M{"$size": "$block_info"}, 0}},
			"blocked_reason": bson.M{"$arrayElemAt": bson.A{"$block_info.reason", 0}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"customer_bookings": 0,
			"block_info":        0,
			"password_hash":     0,
		}}},
	)

	cursor, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var rows []models.Customer
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode customer %s: %w", customerID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// BlockCustomer records a block, updating the existing one when the pair is
// already present.
func (r *mongoAdminRepo) BlockCustomer(ctx context.Context, block *models.BlockedCustomer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	filter := bson.M{"user_id": block.UserID, "profile_id": block.ProfileID}
	update := bson.M{
		"$set": bson.M{
			"blocked_by": block.BlockedBy,
			"reason":     block.Reason,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":         block.ID,
			"user_id":    block.UserID,
			"profile_id": block.ProfileID,
			"created_at": now,
		},
	}
	_, err := r.blocked.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to block customer %s: %w", block.UserID, err)
	}
	return nil
}

// UnblockCustomer removes a block; reports whether one existed.
func (r *mongoAdminRepo) UnblockCustomer(ctx context.Context, customerID, profileID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.blocked.DeleteOne(ctx, bson.M{"user_id": customerID, "profile_id": profileID})
	if err != nil {
		return false, fmt.Errorf("failed to unblock customer %s: %w", customerID, err)
	}
	return res.DeletedCount > 0, nil
}

// GetBlock returns the block record for a customer/profile pair, or (nil, nil).
func (r *mongoAdminRepo) GetBlock(ctx context.Context, customerID, profileID string) (*models.BlockedCustomer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.BlockedCustomer
	err := r.blocked.FindOne(ctx, bson.M{"user_id": customerID, "profile_id": profileID}).Decode(&block)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch block for customer %s: %w", customerID, err)
	}
	return &block, nil
}

func (r *mongoAdminRepo) AddCustomerNote(ctx context.Context, note *models.CustomerNote) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now().UTC()
	if _, err := r.custNotes.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("failed to add customer note: %w", err)
	}
	return nil
}

func (r *mongoAdminRepo) GetCustomerNotes(ctx context.Context, customerID, profileID string) ([]models.CustomerNote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"customer_id": customerID}
	if profileID != "" {
		filter["profile_id"] = profileID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.custNotes.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer notes: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.CustomerNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode customer notes: %w", err)
	}
	return notes, nil
}
