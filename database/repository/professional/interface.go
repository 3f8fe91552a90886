// File: database/repository/professional/interface.go
package professionalRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/database"
	"miagenda/models"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, pro *models.Professional) error
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	GetByEmail(ctx context.Context, email string) (*models.Professional, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error)
	Update(ctx context.Context, pro *models.Professional) error
	UpdateAvailability(ctx context.Context, id string, cfg models.AvailabilityConfig) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetGoogleLink(ctx context.Context, id string, link *models.GoogleCalendarLink) error
	Delete(ctx context.Context, id string) error

	// Service catalogue, embedded-collection style kept in its own collection
	// so public queries stay cheap.
	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, professionalID, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, professionalID, serviceID string) error
}

type mongoProfessionalRepo struct {
	coll     *mongo.Collection
	services *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new MongoDB ProfessionalRepository.
func NewMongoProfessionalRepo() ProfessionalRepository {
	db := database.DB()
	return &mongoProfessionalRepo{
		coll:     db.Collection("professionals"),
		services: db.Collection("services"),
	}
}
