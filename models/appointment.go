package models

import "time"

// Appointment statuses. Pending and confirmed appointments block their time
// range; completed and cancelled ones never conflict.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking sources.
const (
	SourceInternal = "internal"
	SourcePublic   = "public"
)

// Appointment represents a booked time range for a professional and customer.
// End is persisted alongside Start so overlap queries stay index-friendly.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	ProfessionalID  string    `bson:"professionalId" json:"professionalId"`
	CustomerID      string    `bson:"customerId" json:"customerId"`
	ServiceID       string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Start           time.Time `bson:"start" json:"start"`
	End             time.Time `bson:"end" json:"end"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"`
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Source          string    `bson:"source" json:"source"`
	GoogleEventID   string    `bson:"googleEventId,omitempty" json:"googleEventId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the appointment blocks its time range.
func (a Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Summary returns the minimal view used in conflict responses.
func (a Appointment) Summary() AppointmentSummary {
	return AppointmentSummary{
		ID:              a.ID,
		Start:           a.Start,
		DurationMinutes: a.DurationMinutes,
	}
}

// AppointmentSummary identifies a colliding appointment in conflict responses.
type AppointmentSummary struct {
	ID              string    `json:"id"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"durationMinutes"`
}

// ActiveStatuses is the status set used by overlap queries.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}
