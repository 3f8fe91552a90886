// File: database/repository/landing/crud.go
package landingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"miagenda/models"
)

func (r *mongoLandingRepo) Upsert(ctx context.Context, page *models.LandingPage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	page.UpdatedAt = time.Now()

	filter := bson.M{"professionalId": page.ProfessionalID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, page, opts); err != nil {
		return fmt.Errorf("failed to upsert landing page: %w", err)
	}
	return nil
}

func (r *mongoLandingRepo) GetByProfessionalID(ctx context.Context, professionalID string) (*models.LandingPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var page models.LandingPage
	if err := r.coll.FindOne(ctx, bson.M{"professionalId": professionalID}).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *mongoLandingRepo) GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var page models.LandingPage
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *mongoLandingRepo) SlugTaken(ctx context.Context, slug, professionalID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"slug": slug, "professionalId": bson.M{"$ne": professionalID}}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (r *mongoLandingRepo) Delete(ctx context.Context, professionalID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"professionalId": professionalID})
	if err != nil {
		return fmt.Errorf("failed to delete landing page: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
