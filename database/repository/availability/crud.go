package availabilityRepo

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

func (r *mongoAvailabilityRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		slot.CreatedAt = now
		slot.UpdatedAt = now
		docs[i] = slot
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert availability slots: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) GetByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.AvailabilitySlot
	if err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slot %s: %w", slotID, err)
	}
	return &slot, nil
}

func (r *mongoAvailabilityRepo) GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"profile_id": profileID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "time_slot", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for profile %s: %w", profileID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

func (r *mongoAvailabilityRepo) GetByProfileAndRange(ctx context.Context, profileID string, start, end time.Time) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"profile_id": profileID,
		"date":       bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "time_slot", Value: 1},
	})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots for profile %s: %w", profileID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

func (r *mongoAvailabilityRepo) GetSlot(ctx context.Context, profileID string, date time.Time, timeSlot string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"profile_id": profileID, "date": date, "time_slot": timeSlot}
	var slot models.AvailabilitySlot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slot %s on %s: %w", timeSlot, date.Format("2006-01-02"), err)
	}
	return &slot, nil
}

// UpdateCapacity sets a new max capacity and recomputes is_available against
// the current booked count in the same update.
func (r *mongoAvailabilityRepo) UpdateCapacity(ctx context.Context, slotID string, maxCapacity int) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"max_capacity": maxCapacity,
			"updated_at":   time.Now().UTC(),
		}}},
		{{Key: "$set", Value: bson.M{
			"is_available": bson.M{"$lt": bson.A{"$booked_count", "$max_capacity"}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var slot models.AvailabilitySlot
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": slotID}, update, opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update capacity for slot %s: %w", slotID, err)
	}
	return &slot, nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID})
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementBooked claims one unit of capacity. The filter only matches while
// booked_count < max_capacity, so a full slot can never be over-claimed.
func (r *mongoAvailabilityRepo) IncrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"profile_id": profileID,
		"date":       date,
		"time_slot":  timeSlot,
		"$expr":      bson.M{"$lt": bson.A{"$booked_count", "$max_capacity"}},
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"booked_count": bson.M{"$add": bson.A{"$booked_count", 1}},
			"updated_at":   time.Now().UTC(),
		}}},
		{{Key: "$set", Value: bson.M{
			"is_available": bson.M{"$lt": bson.A{"$booked_count", "$max_capacity"}},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment booked count: %w", err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing slot from a full one.
		exists, err := r.coll.CountDocuments(ctx, bson.M{
			"profile_id": profileID, "date": date, "time_slot": timeSlot,
		})
		if err != nil {
			return fmt.Errorf("failed to check slot existence: %w", err)
		}
		if exists == 0 {
			return mongo.ErrNoDocuments
		}
		return ErrSlotFull
	}
	return nil
}

// DecrementBooked releases one unit of capacity. A slot already at zero is
// left untouched.
func (r *mongoAvailabilityRepo) DecrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"profile_id":   profileID,
		"date":         date,
		"time_slot":    timeSlot,
		"booked_count": bson.M{"$gt": 0},
	}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"booked_count": bson.M{"$add": bson.A{"$booked_count", -1}},
			"updated_at":   time.Now().UTC(),
		}}},
		{{Key: "$set", Value: bson.M{
			"is_available": bson.M{"$lt": bson.A{"$booked_count", "$max_capacity"}},
		}}},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to decrement booked count: %w", err)
	}
	return nil
}
