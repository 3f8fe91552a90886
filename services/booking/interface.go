package booking

import (
	"context"
	"time"

	"miagenda/models"
)

// BookingRequest is the internal (authenticated) booking input. Duration is
// resolved from the service when ServiceID is set, otherwise from the
// professional's availability defaults, otherwise from DurationMinutes.
type BookingRequest struct {
	ProfessionalID  string
	CustomerID      string
	ServiceID       string
	Start           time.Time
	DurationMinutes int
	Notes           string
	Source          string
}

// PublicBookingRequest is what an unauthenticated visitor submits through a
// published landing page. The customer is matched by phone or created.
type PublicBookingRequest struct {
	Slug         string
	CustomerName string
	Phone        string
	Email        string
	ServiceID    string
	Start        time.Time
	Notes        string
}

// SchedulingService is the availability & conflict engine surface.
type SchedulingService interface {
	GetDayAvailability(ctx context.Context, professionalID, serviceID string, day time.Time) (models.DaySlots, error)
	GetWeekAvailability(ctx context.Context, professionalID, serviceID string, from time.Time) ([]models.DaySlots, error)

	BookAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	BookPublicAppointment(ctx context.Context, req PublicBookingRequest) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, professionalID, apptID string, newStart time.Time) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, professionalID, apptID, status string) (*models.Appointment, error)
}

// NotificationQueue decouples the engine from the async worker: bookings
// enqueue, the worker delivers.
type NotificationQueue interface {
	EnqueueBooking(ctx context.Context, payload models.NotificationPayload) error
	ScheduleReminder(ctx context.Context, payload models.NotificationPayload, fireAt time.Time) error
}

// CalendarSync mirrors appointments into an external calendar, best effort.
type CalendarSync interface {
	CreateEvent(ctx context.Context, pro *models.Professional, appt *models.Appointment, customerName string) (string, error)
	DeleteEvent(ctx context.Context, pro *models.Professional, eventID string) error
}
