// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"miagenda/config"
	"miagenda/models"
)

// GoogleCalendarService mirrors appointments into the professional's Google
// Calendar using the stored OAuth refresh token.
type GoogleCalendarService struct{}

func NewGoogleCalendarService() *GoogleCalendarService {
	return &GoogleCalendarService{}
}

func (s *GoogleCalendarService) client(ctx context.Context, link *models.GoogleCalendarLink) (*gcal.Service, error) {
	conf := &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: link.RefreshToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}
	return svc, nil
}

// CreateEvent inserts the appointment as a calendar event and returns the
// event ID.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, pro *models.Professional, appt *models.Appointment, customerName string) (string, error) {
	if pro.Google == nil {
		return "", fmt.Errorf("professional %s has no google calendar linked", pro.ID)
	}
	svc, err := s.client(ctx, pro.Google)
	if err != nil {
		return "", err
	}

	summary := fmt.Sprintf("Cita: %s", customerName)
	end := appt.End
	if end.IsZero() {
		end = appt.Start.Add(time.Duration(appt.DurationMinutes) * time.Minute)
	}
	event := &gcal.Event{
		Summary:     summary,
		Description: fmt.Sprintf("Reserva gestionada por Mi Agenda Online (cita %s)", appt.ID),
		Start:       &gcal.EventDateTime{DateTime: appt.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}

	created, err := svc.Events.Insert(pro.Google.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// DeleteEvent removes a previously mirrored event. A 404/410 from Google is
// returned as-is; callers treat deletion as best effort.
func (s *GoogleCalendarService) DeleteEvent(ctx context.Context, pro *models.Professional, eventID string) error {
	if pro.Google == nil {
		return fmt.Errorf("professional %s has no google calendar linked", pro.ID)
	}
	svc, err := s.client(ctx, pro.Google)
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(pro.Google.CalendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}
