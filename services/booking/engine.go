// File: services/booking/engine.go
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "miagenda/database/repository/appointment"
	customerRepo "miagenda/database/repository/customer"
	landingRepo "miagenda/database/repository/landing"
	professionalRepo "miagenda/database/repository/professional"
	"miagenda/models"
	"miagenda/services/availability"
	"miagenda/utils"
)

const weekWindowDays = 7

// DefaultSchedulingEngine is the production scheduling service.
type DefaultSchedulingEngine struct {
	Appointments  appointmentRepo.AppointmentRepository
	Professionals professionalRepo.ProfessionalRepository
	Customers     customerRepo.CustomerRepository
	Landing       landingRepo.LandingRepository
	Queue         NotificationQueue
	Calendar      CalendarSync
}

// resolveConfig merges the professional's availability defaults with an
// optional service override and validates the result.
func (se *DefaultSchedulingEngine) resolveConfig(ctx context.Context, pro *models.Professional, serviceID string) (availability.Config, *models.Service, error) {
	cfg := availability.Config{
		WorkStartHour:   pro.Availability.WorkStartHour,
		WorkEndHour:     pro.Availability.WorkEndHour,
		DurationMinutes: pro.Availability.DurationMinutes,
		BufferMinutes:   pro.Availability.BufferMinutes,
	}

	var svc *models.Service
	if serviceID != "" {
		found, err := se.Professionals.GetService(ctx, pro.ID, serviceID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return cfg, nil, NewValidationError("unknown service")
			}
			return cfg, nil, err
		}
		svc = found
		cfg.DurationMinutes = svc.DurationMinutes
		cfg.BufferMinutes = svc.BufferMinutes
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, NewValidationError(err.Error())
	}
	return cfg, svc, nil
}

func (se *DefaultSchedulingEngine) GetDayAvailability(ctx context.Context, professionalID, serviceID string, day time.Time) (models.DaySlots, error) {
	pro, err := se.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		return models.DaySlots{}, err
	}

	cfg, _, err := se.resolveConfig(ctx, pro, serviceID)
	if err != nil {
		return models.DaySlots{}, err
	}

	appts, err := se.Appointments.ListByDay(ctx, professionalID, day)
	if err != nil {
		return models.DaySlots{}, err
	}

	return models.DaySlots{
		Date:    day.Format("2006-01-02"),
		Weekday: day.Weekday().String(),
		Slots:   availability.DaySlots(day, cfg, availability.BusyFromAppointments(appts)),
	}, nil
}

func (se *DefaultSchedulingEngine) GetWeekAvailability(ctx context.Context, professionalID, serviceID string, from time.Time) ([]models.DaySlots, error) {
	pro, err := se.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	cfg, _, err := se.resolveConfig(ctx, pro, serviceID)
	if err != nil {
		return nil, err
	}

	appts, err := se.Appointments.ListByRange(ctx, professionalID,
		startOfDay(from), startOfDay(from).AddDate(0, 0, weekWindowDays))
	if err != nil {
		return nil, err
	}

	// Bucket busy intervals by the query's local date: stored starts are UTC
	// instants, and an appointment near the UTC day boundary belongs to the
	// day the caller sees it on.
	loc := from.Location()
	busyByDate := make(map[string][]availability.BusyInterval)
	for _, b := range availability.BusyFromAppointments(appts) {
		key := b.Start.In(loc).Format("2006-01-02")
		busyByDate[key] = append(busyByDate[key], b)
	}

	return availability.WeekSlots(startOfDay(from), weekWindowDays, cfg, busyByDate), nil
}

// BookAppointment validates the request, resolves the effective duration and
// runs the transactional conflict-check-then-insert. Notifications and
// calendar sync follow, both non-fatal.
func (se *DefaultSchedulingEngine) BookAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if req.ProfessionalID == "" || req.CustomerID == "" {
		return nil, NewValidationError("professional and customer are required")
	}
	if req.Start.IsZero() {
		return nil, NewValidationError("start time is required")
	}

	pro, err := se.Professionals.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}
	customer, err := se.Customers.GetByID(ctx, req.ProfessionalID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	cfg, svc, err := se.resolveConfig(ctx, pro, req.ServiceID)
	if err != nil {
		return nil, err
	}
	duration := cfg.DurationMinutes
	if req.ServiceID == "" && req.DurationMinutes > 0 {
		duration = req.DurationMinutes
	}
	if duration <= 0 {
		return nil, NewValidationError("duration must be positive")
	}

	appt := newAppointment(req, pro, svc, duration)
	conflicts, err := se.Appointments.InsertIfNoConflict(ctx, appt)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, NewConflictError(conflicts)
	}

	se.afterBooking(ctx, pro, customer, appt, svc)
	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("professionalID", pro.ID),
		zap.Time("start", appt.Start),
		zap.String("source", appt.Source),
	)
	return appt, nil
}

// RescheduleAppointment moves an appointment to a new start, re-running the
// conflict check with the appointment itself excluded. The duration is kept.
func (se *DefaultSchedulingEngine) RescheduleAppointment(ctx context.Context, professionalID, apptID string, newStart time.Time) (*models.Appointment, error) {
	if newStart.IsZero() {
		return nil, NewValidationError("new start time is required")
	}

	appt, err := se.Appointments.GetByID(ctx, professionalID, apptID)
	if err != nil {
		return nil, err
	}
	if !appt.IsActive() {
		return nil, NewValidationError("only pending or confirmed appointments can be rescheduled")
	}

	conflicts, err := se.Appointments.RescheduleIfNoConflict(ctx, professionalID, apptID, newStart, appt.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, NewConflictError(conflicts)
	}

	moved, err := se.Appointments.GetByID(ctx, professionalID, apptID)
	if err != nil {
		return nil, err
	}
	se.afterReschedule(ctx, professionalID, moved)
	return moved, nil
}

// validTransitions encodes the status lifecycle: pending is confirmed or
// cancelled, confirmed is completed or cancelled, terminal states stay put.
var validTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (se *DefaultSchedulingEngine) UpdateStatus(ctx context.Context, professionalID, apptID, status string) (*models.Appointment, error) {
	appt, err := se.Appointments.GetByID(ctx, professionalID, apptID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(appt.Status, status) {
		return nil, NewValidationError("cannot transition from " + appt.Status + " to " + status)
	}

	if err := se.Appointments.UpdateStatus(ctx, professionalID, apptID, status); err != nil {
		return nil, err
	}
	appt.Status = status

	if status == models.StatusCancelled {
		se.afterCancellation(ctx, professionalID, appt)
	}
	return appt, nil
}

func newAppointment(req BookingRequest, pro *models.Professional, svc *models.Service, duration int) *models.Appointment {
	now := time.Now()
	status := models.StatusConfirmed
	if req.Source == models.SourcePublic {
		status = models.StatusPending
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		ProfessionalID:  pro.ID,
		CustomerID:      req.CustomerID,
		ServiceID:       req.ServiceID,
		Start:           req.Start,
		End:             req.Start.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		Status:          status,
		Notes:           req.Notes,
		Source:          req.Source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if svc != nil {
		appt.Price = svc.Price
	}
	return appt
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
