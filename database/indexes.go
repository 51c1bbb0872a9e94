package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DBName is the application database.
const DBName = "bookify"

// EnsureIndexes creates the indexes every collection relies on. Safe to run
// on every startup; Mongo treats existing definitions as no-ops.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db := MongoClient.Database(DBName)
	unique := options.Index().SetUnique(true)

	create := func(coll string, models []mongo.IndexModel) {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			log.Printf("failed to create indexes on %s: %v", coll, err)
		}
	}

	create("users", []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	})

	create("bookings", []mongo.IndexModel{
		{Keys: bson.D{{Key: "booking_ref", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "profile_id", Value: 1}}},
		{Keys: bson.D{{Key: "booking_date", Value: 1}}},
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "booking_date", Value: 1}}},
	})

	create("profiles", []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
	})

	create("availability_slots", []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "date", Value: 1}}},
	})

	create("blocked_customers", []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: unique},
	})

	create("customer_notes", []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "customer_id", Value: 1}}},
	})

	create("activity_logs", []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	create("booking_notes", []mongo.IndexModel{
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
	})

	create("landing_configs", []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "is_published", Value: 1}}},
	})
}
