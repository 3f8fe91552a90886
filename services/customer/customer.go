// File: services/customer/customer.go
package customer

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/models"
)

func (s *DefaultCustomerService) Create(ctx context.Context, c *models.Customer) error {
	if c.Name == "" || c.Phone == "" {
		return fmt.Errorf("customer needs a name and a phone")
	}
	// One record per phone per professional; public bookings rely on this to
	// match returning visitors.
	if _, err := s.Repo.GetByPhone(ctx, c.ProfessionalID, c.Phone); err == nil {
		return fmt.Errorf("a customer with phone %s already exists", c.Phone)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return s.Repo.Create(ctx, c)
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, professionalID, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, professionalID, id)
}

func (s *DefaultCustomerService) List(ctx context.Context, professionalID string) ([]models.Customer, error) {
	return s.Repo.List(ctx, professionalID)
}

func (s *DefaultCustomerService) Update(ctx context.Context, c *models.Customer) error {
	if c.Name == "" || c.Phone == "" {
		return fmt.Errorf("customer needs a name and a phone")
	}
	return s.Repo.Update(ctx, c)
}

func (s *DefaultCustomerService) Delete(ctx context.Context, professionalID, id string) error {
	return s.Repo.Delete(ctx, professionalID, id)
}
