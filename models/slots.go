package models

import "time"

// Slot is a candidate bookable window, computed on demand and never persisted.
type Slot struct {
	Start           time.Time `json:"startInstant"`
	TimeOfDay       string    `json:"timeOfDay"` // "HH:MM" local time
	Available       bool      `json:"available"`
	DurationMinutes int       `json:"durationMinutes"`
	BufferMinutes   int       `json:"bufferMinutes"`
}

// DaySlots groups a day's available slots, labelled with the weekday name.
type DaySlots struct {
	Date    string `json:"date"` // "2006-01-02"
	Weekday string `json:"weekday"`
	Slots   []Slot `json:"slots"`
}
