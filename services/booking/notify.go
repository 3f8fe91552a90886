// File: services/booking/notify.go
package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"miagenda/models"
	"miagenda/utils"
)

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// afterBooking enqueues the confirmation notifications and schedules the
// reminder, and mirrors the appointment into Google Calendar when connected.
// All of it is best effort: a failed side effect never unwinds the booking.
func (se *DefaultSchedulingEngine) afterBooking(ctx context.Context, pro *models.Professional, customer *models.Customer, appt *models.Appointment, svc *models.Service) {
	logger := utils.GetLogger()

	payload := models.NotificationPayload{
		Kind:              models.NotifyBookingCreated,
		AppointmentID:     appt.ID,
		ProfessionalID:    pro.ID,
		ProfessionalName:  pro.Name,
		ProfessionalPhone: pro.Phone,
		CustomerName:      customer.Name,
		CustomerPhone:     customer.Phone,
		CustomerEmail:     customer.Email,
		Start:             appt.Start,
	}
	if svc != nil {
		payload.ServiceName = svc.Name
	}

	if se.Queue != nil {
		if err := se.Queue.EnqueueBooking(ctx, payload); err != nil {
			logger.Error("failed to enqueue booking notification",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}

		if fireAt := appt.Start.Add(-reminderLead); fireAt.After(time.Now()) {
			reminder := payload
			reminder.Kind = models.NotifyReminder
			if err := se.Queue.ScheduleReminder(ctx, reminder, fireAt); err != nil {
				logger.Error("failed to schedule reminder",
					zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
	}

	if se.Calendar != nil && pro.Google != nil {
		eventID, err := se.Calendar.CreateEvent(ctx, pro, appt, customer.Name)
		if err != nil {
			logger.Error("google calendar sync failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			return
		}
		if err := se.Appointments.SetGoogleEventID(ctx, pro.ID, appt.ID, eventID); err != nil {
			logger.Error("failed to store google event id",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			return
		}
		appt.GoogleEventID = eventID
	}
}

// afterReschedule queues a reminder for the new start. The old reminder is
// left in the queue; the worker drops it when the stored start no longer
// matches the payload.
func (se *DefaultSchedulingEngine) afterReschedule(ctx context.Context, professionalID string, appt *models.Appointment) {
	if se.Queue == nil {
		return
	}
	fireAt := appt.Start.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return
	}
	logger := utils.GetLogger()

	pro, err := se.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		logger.Error("reschedule follow-up: professional lookup failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	payload := models.NotificationPayload{
		Kind:             models.NotifyReminder,
		AppointmentID:    appt.ID,
		ProfessionalID:   pro.ID,
		ProfessionalName: pro.Name,
		Start:            appt.Start,
	}
	if customer, err := se.Customers.GetByID(ctx, professionalID, appt.CustomerID); err == nil {
		payload.CustomerName = customer.Name
		payload.CustomerPhone = customer.Phone
		payload.CustomerEmail = customer.Email
	}
	if err := se.Queue.ScheduleReminder(ctx, payload, fireAt); err != nil {
		logger.Error("failed to schedule reminder after reschedule",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

// afterCancellation notifies the customer and removes the mirrored calendar
// event. The scheduled reminder is not dequeued; the worker re-checks the
// appointment status before sending.
func (se *DefaultSchedulingEngine) afterCancellation(ctx context.Context, professionalID string, appt *models.Appointment) {
	logger := utils.GetLogger()

	pro, err := se.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		logger.Error("cancellation follow-up: professional lookup failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}

	if se.Queue != nil {
		payload := models.NotificationPayload{
			Kind:             models.NotifyBookingCancelled,
			AppointmentID:    appt.ID,
			ProfessionalID:   pro.ID,
			ProfessionalName: pro.Name,
			Start:            appt.Start,
		}
		if customer, err := se.Customers.GetByID(ctx, professionalID, appt.CustomerID); err == nil {
			payload.CustomerName = customer.Name
			payload.CustomerPhone = customer.Phone
			payload.CustomerEmail = customer.Email
		}
		if err := se.Queue.EnqueueBooking(ctx, payload); err != nil {
			logger.Error("failed to enqueue cancellation notification",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	if se.Calendar != nil && pro.Google != nil && appt.GoogleEventID != "" {
		if err := se.Calendar.DeleteEvent(ctx, pro, appt.GoogleEventID); err != nil {
			logger.Error("failed to delete google calendar event",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
}
