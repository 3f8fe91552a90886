// File: database/repository/customer/interface.go
package customerRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/database"
	"miagenda/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, professionalID, id string) (*models.Customer, error)
	GetByPhone(ctx context.Context, professionalID, phone string) (*models.Customer, error)
	List(ctx context.Context, professionalID string) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, professionalID, id string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new MongoDB CustomerRepository.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{
		coll: database.DB().Collection("customers"),
	}
}
