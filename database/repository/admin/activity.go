package adminRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

// LogActivity records an audit entry. Failures here should not abort the
// action that triggered them, so callers typically log and continue.
func (r *mongoAdminRepo) LogActivity(ctx context.Context, entry *models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now().UTC()

	if _, err := r.activities.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListActivities returns recent audit entries, newest first.
func (r *mongoAdminRepo) ListActivities(ctx context.Context, scope *models.OwnerScope, page, pageSize int) ([]models.ActivityLog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if scope != nil {
		filter["profile_id"] = scope.ProfileID
	}

	total, err := r.activities.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.activities.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.ActivityLog{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, fmt.Errorf("failed to decode activities: %w", err)
	}
	return entries, total, nil
}
