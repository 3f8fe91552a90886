package models

import "time"

// LandingPage is the public, slug-addressed booking page of a professional.
type LandingPage struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	Slug           string    `bson:"slug" json:"slug"`
	Headline       string    `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ServiceIDs     []string  `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	Published      bool      `bson:"published" json:"published"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LandingView is what public visitors receive: page content plus the
// professional's public profile and visible services.
type LandingView struct {
	Page         LandingPage   `json:"page"`
	Professional PublicProfile `json:"professional"`
	Services     []Service     `json:"services"`
}
