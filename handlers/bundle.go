// File: handlers/bundle.go
package handlers

import (
	professionalRepoPkg "miagenda/database/repository/professional"
)

// HandlerBundle groups the endpoint handlers and the repository the auth
// middleware needs.
type HandlerBundle struct {
	ProfessionalRepo professionalRepoPkg.ProfessionalRepository

	Professional *ProfessionalHandler
	Customer     *CustomerHandler
	Appointment  *AppointmentHandler
	Public       *PublicHandler
}
