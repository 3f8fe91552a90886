// File: database/repository/professional/crud.go
package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/models"
)

func (r *mongoProfessionalRepo) Create(ctx context.Context, pro *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pro.ID == "" {
		pro.ID = uuid.New().String()
	}
	now := time.Now()
	pro.CreatedAt = now
	pro.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pro); err != nil {
		return fmt.Errorf("failed to insert professional: %w", err)
	}
	return nil
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pro models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pro); err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *mongoProfessionalRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pro models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&pro); err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *mongoProfessionalRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pro models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&pro); err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *mongoProfessionalRepo) Update(ctx context.Context, pro *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pro.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": pro.ID}, pro)
	if err != nil {
		return fmt.Errorf("failed to update professional: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) UpdateAvailability(ctx context.Context, id string, cfg models.AvailabilityConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"availability": cfg, "updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update availability config: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to set token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) SetGoogleLink(ctx context.Context, id string, link *models.GoogleCalendarLink) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"google": link, "updatedAt": time.Now()}}
	if link == nil {
		update = bson.M{
			"$unset": bson.M{"google": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set google link: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
