package models

import "time"

// Service is a bookable offering of a professional. Duration and buffer
// override the professional's availability defaults when selected.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ProfessionalID  string    `bson:"professionalId" json:"professionalId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	BufferMinutes   int       `bson:"bufferMinutes" json:"bufferMinutes"`
	Price           float64   `bson:"price" json:"price"`
	Currency        string    `bson:"currency,omitempty" json:"currency,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
