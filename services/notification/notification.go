// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"miagenda/models"
	"miagenda/utils"
)

// NewDefaultNotificationService wires the WhatsApp and SMTP channels from the
// application config.
func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{
		WhatsApp: NewWhatsAppClient(),
		Mailer:   NewMailer(),
	}
}

// NotifyBooking dispatches the messages for one notification payload. Channel
// failures are logged and folded into a single error so the worker can decide
// whether to retry the task.
func (s *DefaultNotificationService) NotifyBooking(ctx context.Context, payload models.NotificationPayload) error {
	logger := utils.GetLogger()

	customerMsg, proMsg, subject := composeMessages(payload)

	var firstErr error
	record := func(channel string, err error) {
		if err == nil {
			return
		}
		logger.Error("notification channel failed",
			zap.String("channel", channel),
			zap.String("kind", payload.Kind),
			zap.String("appointmentID", payload.AppointmentID),
			zap.Error(err),
		)
		if firstErr == nil {
			firstErr = err
		}
	}

	if payload.CustomerPhone != "" {
		record("whatsapp", s.WhatsApp.Send(ctx, payload.CustomerPhone, customerMsg))
	}
	if payload.CustomerEmail != "" {
		record("email", s.Mailer.Send(payload.CustomerEmail, subject, customerMsg))
	}
	if proMsg != "" && payload.ProfessionalPhone != "" {
		record("whatsapp", s.WhatsApp.Send(ctx, payload.ProfessionalPhone, proMsg))
	}
	return firstErr
}

func (s *DefaultNotificationService) SendWhatsApp(ctx context.Context, toPhone, message string) error {
	return s.WhatsApp.Send(ctx, toPhone, message)
}

func (s *DefaultNotificationService) SendEmail(ctx context.Context, toEmail, subject, body string) error {
	return s.Mailer.Send(toEmail, subject, body)
}

// composeMessages renders the customer message, the professional heads-up
// (empty when the kind has none) and the email subject.
func composeMessages(p models.NotificationPayload) (customerMsg, proMsg, subject string) {
	when := p.Start.Format("02/01/2006 15:04")
	service := p.ServiceName
	if service == "" {
		service = "tu cita"
	}

	switch p.Kind {
	case models.NotifyBookingCreated:
		customerMsg = fmt.Sprintf("Hola %s, tu reserva de %s con %s quedó agendada para el %s. ¡Te esperamos!",
			p.CustomerName, service, p.ProfessionalName, when)
		proMsg = fmt.Sprintf("Nueva reserva: %s agendó %s para el %s.",
			p.CustomerName, service, when)
		subject = fmt.Sprintf("Reserva confirmada - %s", p.ProfessionalName)
	case models.NotifyBookingCancelled:
		customerMsg = fmt.Sprintf("Hola %s, tu cita con %s del %s fue cancelada. Podés reservar un nuevo horario cuando quieras.",
			p.CustomerName, p.ProfessionalName, when)
		subject = fmt.Sprintf("Cita cancelada - %s", p.ProfessionalName)
	case models.NotifyReminder:
		customerMsg = fmt.Sprintf("Hola %s, te recordamos tu cita de %s con %s mañana a las %s.",
			p.CustomerName, service, p.ProfessionalName, p.Start.Format("15:04"))
		subject = fmt.Sprintf("Recordatorio de cita - %s", p.ProfessionalName)
	default:
		customerMsg = fmt.Sprintf("Hola %s, hay una novedad sobre tu cita con %s del %s.",
			p.CustomerName, p.ProfessionalName, when)
		subject = "Novedad sobre tu cita"
	}
	return customerMsg, proMsg, subject
}
