// File: database/repository/customer/crud.go
package customerRepo

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

func (r *mongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, professionalID, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	filter := bson.M{"id": id, "professionalId": professionalID}
	if err := r.coll.FindOne(ctx, filter).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) GetByPhone(ctx context.Context, professionalID, phone string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	filter := bson.M{"phone": phone, "professionalId": professionalID}
	if err := r.coll.FindOne(ctx, filter).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) List(ctx context.Context, professionalID string) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"professionalId": professionalID},
		options.Find().SetSort(bson.M{"name": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("error decoding customers: %w", err)
	}
	return customers, nil
}

func (r *mongoCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": customer.ID, "professionalId": customer.ProfessionalID}
	res, err := r.coll.ReplaceOne(ctx, filter, customer)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCustomerRepo) Delete(ctx context.Context, professionalID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "professionalId": professionalID})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
