// File: services/booking/public.go
package booking

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/models"
)

// BookPublicAppointment handles the unauthenticated landing-page path: resolve
// the published page by slug, match or create the customer by phone, then run
// the same conflict-checked booking as the internal path.
func (se *DefaultSchedulingEngine) BookPublicAppointment(ctx context.Context, req PublicBookingRequest) (*models.Appointment, error) {
	if req.Slug == "" {
		return nil, NewValidationError("landing page slug is required")
	}
	if req.CustomerName == "" || req.Phone == "" {
		return nil, NewValidationError("customer name and phone are required")
	}
	if req.Start.IsZero() {
		return nil, NewValidationError("start time is required")
	}

	page, err := se.Landing.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, mongo.ErrNoDocuments
	}

	customer, err := se.Customers.GetByPhone(ctx, page.ProfessionalID, req.Phone)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		// Created ahead of the conflict check; if the booking is rejected,
		// a retry with the same phone matches this record instead of
		// creating another.
		customer = &models.Customer{
			ProfessionalID: page.ProfessionalID,
			Name:           req.CustomerName,
			Phone:          req.Phone,
			Email:          req.Email,
		}
		if err := se.Customers.Create(ctx, customer); err != nil {
			return nil, err
		}
	}

	return se.BookAppointment(ctx, BookingRequest{
		ProfessionalID: page.ProfessionalID,
		CustomerID:     customer.ID,
		ServiceID:      req.ServiceID,
		Start:          req.Start,
		Notes:          req.Notes,
		Source:         models.SourcePublic,
	})
}
