// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/database"
)

// EnsureIndexes creates the indexes backing overlap and range queries.
func EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("appointments")
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "professionalId", Value: 1},
			{Key: "start", Value: 1},
			{Key: "end", Value: 1},
			{Key: "status", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "professionalId", Value: 1},
			{Key: "id", Value: 1},
		}},
	})
	return err
}
