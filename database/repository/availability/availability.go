package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotFull is returned when an increment would exceed a slot's capacity.
var ErrSlotFull = errors.New("slot is fully booked")

// AvailabilityRepository defines data access for availability slots.
type AvailabilityRepository interface {
	CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error
	GetByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error)
	GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) ([]models.AvailabilitySlot, error)
	GetByProfileAndRange(ctx context.Context, profileID string, start, end time.Time) ([]models.AvailabilitySlot, error)
	GetSlot(ctx context.Context, profileID string, date time.Time, timeSlot string) (*models.AvailabilitySlot, error)
	UpdateCapacity(ctx context.Context, slotID string, maxCapacity int) (*models.AvailabilitySlot, error)
	Delete(ctx context.Context, slotID string) error

	// Booked-count mutations. Both recompute is_available atomically with
	// the count change.
	IncrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error
	DecrementBooked(ctx context.Context, profileID string, date time.Time, timeSlot string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_slots"),
	}
}
