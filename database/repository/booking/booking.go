package bookingRepo

import (
	"context"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for bookings and their notes.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	RefExists(ctx context.Context, ref string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByRef(ctx context.Context, ref string) (*models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetByProfile(ctx context.Context, profileID string) ([]models.Booking, error)
	GetByUserAndProfile(ctx context.Context, userID, profileID string, page, pageSize int) ([]models.Booking, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Reschedule(ctx context.Context, id string, newDate time.Time, newTimeSlot string) error

	AddNote(ctx context.Context, note *models.BookingNote) error
	GetNotes(ctx context.Context, bookingID string) ([]models.BookingNote, error)
}

type mongoBookingRepo struct {
	coll  *mongo.Collection
	notes *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoBookingRepo{
		coll:  db.Collection("bookings"),
		notes: db.Collection("booking_notes"),
	}
}
