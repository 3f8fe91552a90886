package customer

import (
	"context"

	customerRepo "miagenda/database/repository/customer"
	"miagenda/models"
)

type CustomerService interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, professionalID, id string) (*models.Customer, error)
	List(ctx context.Context, professionalID string) ([]models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, professionalID, id string) error
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}
