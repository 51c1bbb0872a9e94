package userRepo

import (
	"fmt"
	"time"

	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ownerMatch(search string, includeDeleted bool) bson.M {
	match := bson.M{"role": models.RoleOwner}
	if !includeDeleted {
		match["is_deleted"] = bson.M{"$ne": true}
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		match["$or"] = []bson.M{
			{"username": regex},
			{"name": regex},
			{"email": regex},
		}
	}
	return match
}

// ListOwners returns one page of owner accounts, newest first, each with the
// number of profiles it owns.
func (r *MongoUserRepo) ListOwners(page, limit int, search string, includeDeleted bool) ([]models.OwnerAccount, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	match := ownerMatch(search, includeDeleted)

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count owners: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "profiles",
			"localField":   "id",
			"foreignField": "owner_id",
			"as":           "owner_profiles",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"profile_count": bson.M{"$size": "$owner_profiles"},
		}}},
		{{Key: "$project", Value: bson.M{
			"owner_profiles": 0,
			"password_hash":  0,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list owners: %w", err)
	}
	defer cursor.Close(ctx)

	var owners []models.OwnerAccount
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, 0, fmt.Errorf("failed to decode owners: %w", err)
	}
	return owners, total, nil
}

// GetOwner fetches one owner account (any deletion state) with its profile
// count. Returns (nil, nil) when the account does not exist or is not an
// owner.
func (r *MongoUserRepo) GetOwner(id string) (*models.OwnerAccount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var owner models.OwnerAccount
	err := r.coll.FindOne(ctx,
		bson.M{"id": id, "role": models.RoleOwner},
		options.FindOne().SetProjection(bson.M{"password_hash": 0}),
	).Decode(&owner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch owner with id %s: %w", id, err)
	}

	count, err := r.profiles.CountDocuments(ctx, bson.M{"owner_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles for owner %s: %w", id, err)
	}
	owner.ProfileCount = int(count)
	return &owner, nil
}
