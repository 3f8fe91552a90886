package notification

import (
	"context"

	"miagenda/models"
)

// NotificationService delivers booking notifications and reminders over
// WhatsApp and email. Delivery is synchronous; scheduling lives in the async
// worker that calls this service.
type NotificationService interface {
	NotifyBooking(ctx context.Context, payload models.NotificationPayload) error
	SendWhatsApp(ctx context.Context, toPhone, message string) error
	SendEmail(ctx context.Context, toEmail, subject, body string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	WhatsApp *WhatsAppClient
	Mailer   *Mailer
}
