package booking

import (
	"fmt"

	"miagenda/models"
)

// ConflictError signals that a proposed appointment overlaps existing active
// appointments. It carries the colliding set so callers can show the visitor
// what is in the way.
type ConflictError struct {
	Code      string
	Message   string
	Conflicts []models.AppointmentSummary
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(conflicts []models.Appointment) error {
	summaries := make([]models.AppointmentSummary, len(conflicts))
	for i, c := range conflicts {
		summaries[i] = c.Summary()
	}
	return &ConflictError{
		Code:      "appointmentConflict",
		Message:   fmt.Sprintf("requested time overlaps %d existing appointment(s)", len(conflicts)),
		Conflicts: summaries,
	}
}

// ValidationError rejects malformed booking input before any engine work.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Code: "validationError", Message: msg}
}
