// File: services/professional/professional.go
package professional

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"miagenda/models"
	"miagenda/utils"
)

const tokenTTL = 72 * time.Hour

func (s *DefaultProfessionalService) Register(ctx context.Context, input RegistrationInput) (*AuthResult, error) {
	if _, err := s.Repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	pro := &models.Professional{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		Phone:        input.Phone,
		Profession:   input.Profession,
		PasswordHash: string(hash),
		Availability: models.DefaultAvailabilityConfig(),
	}
	if err := s.Repo.Create(ctx, pro); err != nil {
		return nil, err
	}
	return s.issueToken(ctx, pro)
}

func (s *DefaultProfessionalService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	pro, err := s.Repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pro.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return s.issueToken(ctx, pro)
}

func (s *DefaultProfessionalService) issueToken(ctx context.Context, pro *models.Professional) (*AuthResult, error) {
	token, err := utils.GenerateToken(pro.ID, pro.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(ctx, pro.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Professional: pro}, nil
}

func (s *DefaultProfessionalService) RevokeToken(ctx context.Context, professionalID string) error {
	return s.Repo.SetTokenHash(ctx, professionalID, "")
}

func (s *DefaultProfessionalService) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultProfessionalService) UpdateProfile(ctx context.Context, pro *models.Professional) error {
	existing, err := s.Repo.GetByID(ctx, pro.ID)
	if err != nil {
		return err
	}
	// Credentials and integration state are managed through their own flows.
	pro.PasswordHash = existing.PasswordHash
	pro.TokenHash = existing.TokenHash
	pro.Google = existing.Google
	pro.CreatedAt = existing.CreatedAt
	return s.Repo.Update(ctx, pro)
}

func (s *DefaultProfessionalService) UpdateAvailability(ctx context.Context, id string, cfg models.AvailabilityConfig) error {
	if cfg.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if cfg.BufferMinutes < 0 {
		return fmt.Errorf("buffer must not be negative")
	}
	if cfg.WorkStartHour < 0 || cfg.WorkEndHour > 23 || cfg.WorkEndHour <= cfg.WorkStartHour {
		return fmt.Errorf("invalid working hours %02d:00-%02d:00", cfg.WorkStartHour, cfg.WorkEndHour)
	}
	return s.Repo.UpdateAvailability(ctx, id, cfg)
}

func (s *DefaultProfessionalService) CreateService(ctx context.Context, svc *models.Service) error {
	if svc.Name == "" || svc.DurationMinutes <= 0 {
		return fmt.Errorf("service needs a name and a positive duration")
	}
	return s.Repo.CreateService(ctx, svc)
}

func (s *DefaultProfessionalService) ListServices(ctx context.Context, professionalID string, activeOnly bool) ([]models.Service, error) {
	return s.Repo.ListServices(ctx, professionalID, activeOnly)
}

func (s *DefaultProfessionalService) UpdateService(ctx context.Context, svc *models.Service) error {
	if svc.Name == "" || svc.DurationMinutes <= 0 {
		return fmt.Errorf("service needs a name and a positive duration")
	}
	return s.Repo.UpdateService(ctx, svc)
}

func (s *DefaultProfessionalService) DeleteService(ctx context.Context, professionalID, serviceID string) error {
	return s.Repo.DeleteService(ctx, professionalID, serviceID)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func (s *DefaultProfessionalService) UpsertLandingPage(ctx context.Context, page *models.LandingPage) error {
	if !slugPattern.MatchString(page.Slug) {
		return fmt.Errorf("slug must be lowercase letters, digits and hyphens")
	}
	taken, err := s.Landing.SlugTaken(ctx, page.Slug, page.ProfessionalID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("slug %q is already in use", page.Slug)
	}
	return s.Landing.Upsert(ctx, page)
}

func (s *DefaultProfessionalService) GetLandingPage(ctx context.Context, professionalID string) (*models.LandingPage, error) {
	return s.Landing.GetByProfessionalID(ctx, professionalID)
}

func (s *DefaultProfessionalService) ConnectGoogle(ctx context.Context, professionalID, refreshToken, calendarID string) error {
	if refreshToken == "" {
		return fmt.Errorf("refresh token is required")
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return s.Repo.SetGoogleLink(ctx, professionalID, &models.GoogleCalendarLink{
		RefreshToken: refreshToken,
		CalendarID:   calendarID,
		ConnectedAt:  time.Now(),
	})
}

func (s *DefaultProfessionalService) DisconnectGoogle(ctx context.Context, professionalID string) error {
	return s.Repo.SetGoogleLink(ctx, professionalID, nil)
}

// IncomeStats reports completed-appointment income for the period.
func (s *DefaultProfessionalService) IncomeStats(ctx context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error) {
	if !to.After(from) {
		return models.IncomeStats{}, fmt.Errorf("invalid period: to must be after from")
	}
	return s.Income.SumCompletedIncome(ctx, professionalID, from, to)
}
