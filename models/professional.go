package models

import "time"

// Professional is the tenant of the system: owns customers, appointments,
// services and the public landing page.
type Professional struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Profession   string    `bson:"profession,omitempty" json:"profession,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`

	Availability AvailabilityConfig  `bson:"availability" json:"availability"`
	Google       *GoogleCalendarLink `bson:"google,omitempty" json:"google,omitempty"`
}

// AvailabilityConfig holds the per-professional scheduling defaults.
// Working hours are integer hours of the local day, end exclusive.
type AvailabilityConfig struct {
	WorkStartHour   int `bson:"workStartHour" json:"workStartHour"`
	WorkEndHour     int `bson:"workEndHour" json:"workEndHour"`
	DurationMinutes int `bson:"durationMinutes" json:"durationMinutes"`
	BufferMinutes   int `bson:"bufferMinutes" json:"bufferMinutes"`
}

// DefaultAvailabilityConfig is applied on registration until the professional
// customizes it.
func DefaultAvailabilityConfig() AvailabilityConfig {
	return AvailabilityConfig{
		WorkStartHour:   9,
		WorkEndHour:     18,
		DurationMinutes: 60,
		BufferMinutes:   0,
	}
}

// GoogleCalendarLink stores the OAuth grant for calendar sync.
type GoogleCalendarLink struct {
	RefreshToken string    `bson:"refreshToken" json:"-"`
	CalendarID   string    `bson:"calendarId" json:"calendarId"`
	ConnectedAt  time.Time `bson:"connectedAt" json:"connectedAt"`
}

// PublicProfile is the subset of professional data exposed on the landing page.
type PublicProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Profession string `json:"profession,omitempty"`
}
