package landingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/database"
	"bookify/models"
)

type MongoLandingRepo struct {
	coll *mongo.Collection
}

func NewMongoLandingRepo() *MongoLandingRepo {
	return &MongoLandingRepo{
		coll: database.MongoClient.Database(database.DBName).Collection("landing_configs"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLandingRepo) Create(config *models.LandingPageConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	config.CreatedAt = now
	config.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, config); err != nil {
		return fmt.Errorf("failed to create landing config: %w", err)
	}
	return nil
}

func (r *MongoLandingRepo) GetByOwner(ownerID string) (*models.LandingPageConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var config models.LandingPageConfig
	err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&config)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landing config: %w", err)
	}
	return &config, nil
}

// Update replaces the stored document. Partial merging happens in the
// service layer, which always writes back a full config.
func (r *MongoLandingRepo) Update(config *models.LandingPageConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	config.UpdatedAt = time.Now().UTC()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": config.ID}, config)
	if err != nil {
		return fmt.Errorf("failed to update landing config: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetPublished returns the first published landing config, if any.
func (r *MongoLandingRepo) GetPublished() (*models.LandingPageConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	var config models.LandingPageConfig
	err := r.coll.FindOne(ctx, bson.M{"is_published": true}, opts).Decode(&config)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published landing config: %w", err)
	}
	return &config, nil
}
