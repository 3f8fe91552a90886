package professional

import (
	"context"
	"time"

	landingRepo "miagenda/database/repository/landing"
	professionalRepo "miagenda/database/repository/professional"
	"miagenda/models"
)

// RegistrationInput is the signup payload.
type RegistrationInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
}

// AuthResult carries the signed token and the authenticated professional.
type AuthResult struct {
	Token        string               `json:"token"`
	Professional *models.Professional `json:"professional"`
}

type ProfessionalService interface {
	Register(ctx context.Context, input RegistrationInput) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	RevokeToken(ctx context.Context, professionalID string) error

	GetByID(ctx context.Context, id string) (*models.Professional, error)
	UpdateProfile(ctx context.Context, pro *models.Professional) error
	UpdateAvailability(ctx context.Context, id string, cfg models.AvailabilityConfig) error

	CreateService(ctx context.Context, svc *models.Service) error
	ListServices(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, professionalID, serviceID string) error

	UpsertLandingPage(ctx context.Context, page *models.LandingPage) error
	GetLandingPage(ctx context.Context, professionalID string) (*models.LandingPage, error)

	ConnectGoogle(ctx context.Context, professionalID, refreshToken, calendarID string) error
	DisconnectGoogle(ctx context.Context, professionalID string) error

	IncomeStats(ctx context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error)
}

// IncomeReporter is implemented by the appointment repository.
type IncomeReporter interface {
	SumCompletedIncome(ctx context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo    professionalRepo.ProfessionalRepository
	Landing landingRepo.LandingRepository
	Income  IncomeReporter
}
