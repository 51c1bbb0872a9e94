package profileRepo

import (
	"context"
	"fmt"
	"time"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("profiles")
	return &MongoProfileRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.BusinessProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.Services == nil {
		profile.Services = []models.Service{}
	}

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by ID. Returns (nil, nil) when absent.
func (r *MongoProfileRepo) GetByID(id string) (*models.BusinessProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.BusinessProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetAll retrieves every profile.
func (r *MongoProfileRepo) GetAll() ([]models.BusinessProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.BusinessProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

// GetByOwner retrieves an owner's profiles with skip/limit paging.
func (r *MongoProfileRepo) GetByOwner(ownerID string, skip, limit int) ([]models.BusinessProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var profiles []models.BusinessProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

// GetFirstByOwner returns the owner's primary profile, or (nil, nil) when
// the owner has none.
func (r *MongoProfileRepo) GetFirstByOwner(ownerID string) (*models.BusinessProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.BusinessProfile
	err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for owner %s: %w", ownerID, err)
	}
	return &profile, nil
}

// Update replaces the mutable fields of an existing profile.
func (r *MongoProfileRepo) Update(profile *models.BusinessProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now().UTC()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a profile document.
func (r *MongoProfileRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete profile with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddService appends a service to the profile's embedded list.
func (r *MongoProfileRepo) AddService(profileID string, svc models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profileID}, update)
	if err != nil {
		return fmt.Errorf("failed to add service to profile %s: %w", profileID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateService replaces one embedded service by ID.
func (r *MongoProfileRepo) UpdateService(profileID string, svc models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": profileID, "services.id": svc.ID}
	update := bson.M{
		"$set": bson.M{
			"services.$": svc,
			"updated_at": time.Now().UTC(),
		},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service %s on profile %s: %w", svc.ID, profileID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteService removes one embedded service by ID.
func (r *MongoProfileRepo) DeleteService(profileID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"services": bson.M{"id": serviceID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profileID}, update)
	if err != nil {
		return fmt.Errorf("failed to delete service %s from profile %s: %w", serviceID, profileID, err)
	}
	if result.MatchedCount == 0 || result.ModifiedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
