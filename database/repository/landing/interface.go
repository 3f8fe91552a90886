// File: database/repository/landing/interface.go
package landingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/database"
	"miagenda/models"
)

type LandingRepository interface {
	Upsert(ctx context.Context, page *models.LandingPage) error
	GetByProfessionalID(ctx context.Context, professionalID string) (*models.LandingPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error)
	SlugTaken(ctx context.Context, slug, professionalID string) (bool, error)
	Delete(ctx context.Context, professionalID string) error
}

type mongoLandingRepo struct {
	coll *mongo.Collection
}

// NewMongoLandingRepo constructs a new MongoDB LandingRepository.
func NewMongoLandingRepo() LandingRepository {
	return &mongoLandingRepo{
		coll: database.DB().Collection("landing_pages"),
	}
}
