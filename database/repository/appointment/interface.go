// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/database"
	"miagenda/models"
)

type AppointmentRepository interface {
	GetByID(ctx context.Context, professionalID, id string) (*models.Appointment, error)
	ListByDay(ctx context.Context, professionalID string, day time.Time) ([]models.Appointment, error)
	ListByRange(ctx context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error)

	// FindOverlapping returns appointments in the given status set whose
	// [start, end) range intersects [rangeStart, rangeEnd). excludeID skips a
	// single appointment (used when re-validating a reschedule).
	FindOverlapping(ctx context.Context, professionalID string, rangeStart, rangeEnd time.Time, statuses []string, excludeID string) ([]models.Appointment, error)

	// InsertIfNoConflict runs the overlap query and the insert inside one
	// session transaction. A non-empty return means the insert was aborted and
	// the returned appointments are the colliding set.
	InsertIfNoConflict(ctx context.Context, appt *models.Appointment) ([]models.Appointment, error)

	// RescheduleIfNoConflict moves an appointment to a new time under the same
	// transactional overlap rule, excluding the appointment itself.
	RescheduleIfNoConflict(ctx context.Context, professionalID, id string, newStart time.Time, durationMinutes int) ([]models.Appointment, error)

	UpdateStatus(ctx context.Context, professionalID, id, status string) error
	SetGoogleEventID(ctx context.Context, professionalID, id, eventID string) error
	Delete(ctx context.Context, professionalID, id string) error

	SumCompletedIncome(ctx context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
