package models

import "time"

// Notification kinds handled by the async worker.
const (
	NotifyBookingCreated   = "booking_created"
	NotifyBookingCancelled = "booking_cancelled"
	NotifyReminder         = "reminder"
)

// NotificationPayload is the asynq task body for booking notifications and
// reminders. Contact details are captured at enqueue time so the worker does
// not depend on records that may change underneath it.
type NotificationPayload struct {
	Kind              string    `json:"kind"`
	AppointmentID     string    `json:"appointmentId"`
	ProfessionalID    string    `json:"professionalId"`
	ProfessionalName  string    `json:"professionalName"`
	ProfessionalPhone string    `json:"professionalPhone,omitempty"`
	CustomerName      string    `json:"customerName"`
	CustomerPhone     string    `json:"customerPhone,omitempty"`
	CustomerEmail     string    `json:"customerEmail,omitempty"`
	ServiceName       string    `json:"serviceName,omitempty"`
	Start             time.Time `json:"start"`
}
