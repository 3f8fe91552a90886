package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"miagenda/models"
	"miagenda/services/availability"
)

// ---- in-memory fakes ----

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, professionalID, id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok || a.ProfessionalID != professionalID {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) ListByDay(ctx context.Context, professionalID string, day time.Time) ([]models.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return f.ListByRange(ctx, professionalID, start, start.AddDate(0, 0, 1))
}

func (f *fakeAppointmentRepo) ListByRange(_ context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProfessionalID == professionalID && !a.Start.Before(from) && a.Start.Before(to) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) findOverlaps(professionalID string, start, end time.Time, excludeID string) []models.Appointment {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProfessionalID != professionalID || a.ID == excludeID || !a.IsActive() {
			continue
		}
		if availability.Overlaps(start, end, a.Start, a.End) {
			out = append(out, *a)
		}
	}
	return out
}

func (f *fakeAppointmentRepo) FindOverlapping(_ context.Context, professionalID string, rangeStart, rangeEnd time.Time, _ []string, excludeID string) ([]models.Appointment, error) {
	return f.findOverlaps(professionalID, rangeStart, rangeEnd, excludeID), nil
}

func (f *fakeAppointmentRepo) InsertIfNoConflict(_ context.Context, appt *models.Appointment) ([]models.Appointment, error) {
	conflicts := f.findOverlaps(appt.ProfessionalID, appt.Start, appt.End, "")
	if len(conflicts) > 0 {
		return conflicts, nil
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil, nil
}

func (f *fakeAppointmentRepo) RescheduleIfNoConflict(_ context.Context, professionalID, id string, newStart time.Time, durationMinutes int) ([]models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok || a.ProfessionalID != professionalID {
		return nil, mongo.ErrNoDocuments
	}
	newEnd := newStart.Add(time.Duration(durationMinutes) * time.Minute)
	conflicts := f.findOverlaps(professionalID, newStart, newEnd, id)
	if len(conflicts) > 0 {
		return conflicts, nil
	}
	a.Start = newStart
	a.End = newEnd
	a.DurationMinutes = durationMinutes
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, professionalID, id, status string) error {
	a, ok := f.appts[id]
	if !ok || a.ProfessionalID != professionalID {
		return mongo.ErrNoDocuments
	}
	a.Status = status
	return nil
}

func (f *fakeAppointmentRepo) SetGoogleEventID(_ context.Context, professionalID, id, eventID string) error {
	a, ok := f.appts[id]
	if !ok || a.ProfessionalID != professionalID {
		return mongo.ErrNoDocuments
	}
	a.GoogleEventID = eventID
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, professionalID, id string) error {
	a, ok := f.appts[id]
	if !ok || a.ProfessionalID != professionalID {
		return mongo.ErrNoDocuments
	}
	delete(f.appts, id)
	return nil
}

func (f *fakeAppointmentRepo) SumCompletedIncome(_ context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error) {
	stats := models.IncomeStats{From: from, To: to}
	for _, a := range f.appts {
		if a.ProfessionalID == professionalID && a.Status == models.StatusCompleted &&
			!a.Start.Before(from) && a.Start.Before(to) {
			stats.TotalIncome += a.Price
			stats.CompletedCount++
		}
	}
	return stats, nil
}

type fakeProfessionalRepo struct {
	pros     map[string]*models.Professional
	services map[string]*models.Service
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{
		pros:     make(map[string]*models.Professional),
		services: make(map[string]*models.Service),
	}
}

func (f *fakeProfessionalRepo) Create(_ context.Context, pro *models.Professional) error {
	f.pros[pro.ID] = pro
	return nil
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, id string) (*models.Professional, error) {
	p, ok := f.pros[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeProfessionalRepo) GetByEmail(_ context.Context, email string) (*models.Professional, error) {
	for _, p := range f.pros {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfessionalRepo) GetByTokenHash(_ context.Context, hash string) (*models.Professional, error) {
	for _, p := range f.pros {
		if p.TokenHash == hash {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfessionalRepo) Update(_ context.Context, pro *models.Professional) error {
	f.pros[pro.ID] = pro
	return nil
}

func (f *fakeProfessionalRepo) UpdateAvailability(_ context.Context, id string, cfg models.AvailabilityConfig) error {
	p, ok := f.pros[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Availability = cfg
	return nil
}

func (f *fakeProfessionalRepo) SetTokenHash(_ context.Context, id, hash string) error {
	p, ok := f.pros[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.TokenHash = hash
	return nil
}

func (f *fakeProfessionalRepo) SetGoogleLink(_ context.Context, id string, link *models.GoogleCalendarLink) error {
	p, ok := f.pros[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Google = link
	return nil
}

func (f *fakeProfessionalRepo) Delete(_ context.Context, id string) error {
	delete(f.pros, id)
	return nil
}

func (f *fakeProfessionalRepo) CreateService(_ context.Context, svc *models.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeProfessionalRepo) GetService(_ context.Context, professionalID, serviceID string) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.ProfessionalID != professionalID {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

func (f *fakeProfessionalRepo) ListServices(_ context.Context, professionalID string, activeOnly bool) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.ProfessionalID == professionalID && (!activeOnly || s.Active) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeProfessionalRepo) UpdateService(_ context.Context, svc *models.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeProfessionalRepo) DeleteService(_ context.Context, _, serviceID string) error {
	delete(f.services, serviceID)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	if c.ID == "" {
		c.ID = "cust-" + c.Phone
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, professionalID, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.ProfessionalID != professionalID {
		return nil, mongo.ErrNoDocuments
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByPhone(_ context.Context, professionalID, phone string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ProfessionalID == professionalID && c.Phone == phone {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCustomerRepo) List(_ context.Context, professionalID string) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.customers {
		if c.ProfessionalID == professionalID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *models.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, _, id string) error {
	delete(f.customers, id)
	return nil
}

type fakeLandingRepo struct {
	pages map[string]*models.LandingPage
}

func newFakeLandingRepo() *fakeLandingRepo {
	return &fakeLandingRepo{pages: make(map[string]*models.LandingPage)}
}

func (f *fakeLandingRepo) Upsert(_ context.Context, page *models.LandingPage) error {
	f.pages[page.Slug] = page
	return nil
}

func (f *fakeLandingRepo) GetByProfessionalID(_ context.Context, professionalID string) (*models.LandingPage, error) {
	for _, p := range f.pages {
		if p.ProfessionalID == professionalID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeLandingRepo) GetBySlug(_ context.Context, slug string) (*models.LandingPage, error) {
	p, ok := f.pages[slug]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeLandingRepo) SlugTaken(_ context.Context, slug, professionalID string) (bool, error) {
	p, ok := f.pages[slug]
	return ok && p.ProfessionalID != professionalID, nil
}

func (f *fakeLandingRepo) Delete(_ context.Context, professionalID string) error {
	for slug, p := range f.pages {
		if p.ProfessionalID == professionalID {
			delete(f.pages, slug)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeQueue struct {
	bookings  []models.NotificationPayload
	reminders []models.NotificationPayload
}

func (f *fakeQueue) EnqueueBooking(_ context.Context, p models.NotificationPayload) error {
	f.bookings = append(f.bookings, p)
	return nil
}

func (f *fakeQueue) ScheduleReminder(_ context.Context, p models.NotificationPayload, _ time.Time) error {
	f.reminders = append(f.reminders, p)
	return nil
}

// ---- fixtures ----

func newTestEngine() (*DefaultSchedulingEngine, *fakeAppointmentRepo, *fakeQueue) {
	appts := newFakeAppointmentRepo()
	pros := newFakeProfessionalRepo()
	customers := newFakeCustomerRepo()
	landing := newFakeLandingRepo()
	queue := &fakeQueue{}

	pros.pros["pro-1"] = &models.Professional{
		ID:           "pro-1",
		Name:         "Dra. Gomez",
		Email:        "dra@example.com",
		Availability: models.DefaultAvailabilityConfig(),
	}
	customers.customers["cust-1"] = &models.Customer{
		ID:             "cust-1",
		ProfessionalID: "pro-1",
		Name:           "Juan",
		Phone:          "+5491100000000",
		Email:          "juan@example.com",
	}
	landing.pages["dra-gomez"] = &models.LandingPage{
		ID:             "lp-1",
		ProfessionalID: "pro-1",
		Slug:           "dra-gomez",
		Published:      true,
	}

	engine := &DefaultSchedulingEngine{
		Appointments:  appts,
		Professionals: pros,
		Customers:     customers,
		Landing:       landing,
		Queue:         queue,
	}
	return engine, appts, queue
}

func futureDay() time.Time {
	d := time.Now().AddDate(0, 0, 14)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// ---- tests ----

func TestBookAppointment_Success(t *testing.T) {
	engine, appts, queue := newTestEngine()
	start := futureDay().Add(10 * time.Hour)

	appt, err := engine.BookAppointment(context.Background(), BookingRequest{
		ProfessionalID: "pro-1",
		CustomerID:     "cust-1",
		Start:          start,
		Source:         models.SourceInternal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("internal booking status = %s, want confirmed", appt.Status)
	}
	if appt.DurationMinutes != 60 {
		t.Fatalf("duration = %d, want professional default 60", appt.DurationMinutes)
	}
	if !appt.End.Equal(start.Add(60 * time.Minute)) {
		t.Fatalf("end = %s, want start+60m", appt.End)
	}
	if _, ok := appts.appts[appt.ID]; !ok {
		t.Fatal("appointment not persisted")
	}
	if len(queue.bookings) != 1 {
		t.Fatalf("expected 1 booking notification, got %d", len(queue.bookings))
	}
	if len(queue.reminders) != 1 {
		t.Fatalf("expected 1 scheduled reminder, got %d", len(queue.reminders))
	}
}

func TestBookAppointment_Conflict(t *testing.T) {
	engine, _, _ := newTestEngine()
	start := futureDay().Add(10 * time.Hour)

	if _, err := engine.BookAppointment(context.Background(), BookingRequest{
		ProfessionalID: "pro-1", CustomerID: "cust-1", Start: start, Source: models.SourceInternal,
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// 10:15-10:45 against the existing 10:00-11:00.
	_, err := engine.BookAppointment(context.Background(), BookingRequest{
		ProfessionalID:  "pro-1",
		CustomerID:      "cust-1",
		Start:           start.Add(15 * time.Minute),
		DurationMinutes: 30,
		Source:          models.SourceInternal,
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflict.Conflicts) != 1 {
		t.Fatalf("expected 1 colliding appointment, got %d", len(conflict.Conflicts))
	}
	if !conflict.Conflicts[0].Start.Equal(start) {
		t.Fatalf("conflict start = %s, want %s", conflict.Conflicts[0].Start, start)
	}
}

func TestBookAppointment_UnknownService(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.BookAppointment(context.Background(), BookingRequest{
		ProfessionalID: "pro-1",
		CustomerID:     "cust-1",
		ServiceID:      "nope",
		Start:          futureDay().Add(10 * time.Hour),
		Source:         models.SourceInternal,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBookAppointment_ServiceOverridesDuration(t *testing.T) {
	engine, _, _ := newTestEngine()
	pros := engine.Professionals.(*fakeProfessionalRepo)
	pros.services["svc-1"] = &models.Service{
		ID: "svc-1", ProfessionalID: "pro-1", Name: "Consulta corta",
		DurationMinutes: 20, BufferMinutes: 10, Price: 50, Active: true,
	}

	appt, err := engine.BookAppointment(context.Background(), BookingRequest{
		ProfessionalID: "pro-1",
		CustomerID:     "cust-1",
		ServiceID:      "svc-1",
		Start:          futureDay().Add(10 * time.Hour),
		Source:         models.SourceInternal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.DurationMinutes != 20 {
		t.Fatalf("duration = %d, want service override 20", appt.DurationMinutes)
	}
	if appt.Price != 50 {
		t.Fatalf("price = %.2f, want 50", appt.Price)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	engine, appts, _ := newTestEngine()
	start := futureDay().Add(10 * time.Hour)
	appts.appts["a1"] = &models.Appointment{
		ID: "a1", ProfessionalID: "pro-1", CustomerID: "cust-1",
		Start: start, End: start.Add(time.Hour), DurationMinutes: 60,
		Status: models.StatusPending,
	}

	appt, err := engine.UpdateStatus(context.Background(), "pro-1", "a1", models.StatusConfirmed)
	if err != nil {
		t.Fatalf("pending->confirmed failed: %v", err)
	}
	if appt.Status != models.StatusConfirmed {
		t.Fatalf("status = %s", appt.Status)
	}

	if _, err := engine.UpdateStatus(context.Background(), "pro-1", "a1", models.StatusPending); err == nil {
		t.Fatal("confirmed->pending should be rejected")
	}

	if _, err := engine.UpdateStatus(context.Background(), "pro-1", "a1", models.StatusCompleted); err != nil {
		t.Fatalf("confirmed->completed failed: %v", err)
	}
	if _, err := engine.UpdateStatus(context.Background(), "pro-1", "a1", models.StatusCancelled); err == nil {
		t.Fatal("completed->cancelled should be rejected")
	}
}

func TestReschedule_ExcludesSelfAndChecksOthers(t *testing.T) {
	engine, appts, _ := newTestEngine()
	start := futureDay().Add(10 * time.Hour)
	appts.appts["a1"] = &models.Appointment{
		ID: "a1", ProfessionalID: "pro-1", CustomerID: "cust-1",
		Start: start, End: start.Add(time.Hour), DurationMinutes: 60,
		Status: models.StatusConfirmed,
	}
	appts.appts["a2"] = &models.Appointment{
		ID: "a2", ProfessionalID: "pro-1", CustomerID: "cust-1",
		Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour), DurationMinutes: 60,
		Status: models.StatusConfirmed,
	}

	// Shifting a1 by 30 minutes only overlaps a1's old range: allowed.
	appt, err := engine.RescheduleAppointment(context.Background(), "pro-1", "a1", start.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if !appt.Start.Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("start not updated: %s", appt.Start)
	}

	// Moving a1 onto a2 must conflict.
	_, err = engine.RescheduleAppointment(context.Background(), "pro-1", "a1", start.Add(2*time.Hour+30*time.Minute))
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestBookPublicAppointment_CreatesCustomer(t *testing.T) {
	engine, _, _ := newTestEngine()

	appt, err := engine.BookPublicAppointment(context.Background(), PublicBookingRequest{
		Slug:         "dra-gomez",
		CustomerName: "Maria",
		Phone:        "+5491199999999",
		Start:        futureDay().Add(15 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("public booking status = %s, want pending", appt.Status)
	}
	if appt.Source != models.SourcePublic {
		t.Fatalf("source = %s, want public", appt.Source)
	}

	customers := engine.Customers.(*fakeCustomerRepo)
	if _, err := customers.GetByPhone(context.Background(), "pro-1", "+5491199999999"); err != nil {
		t.Fatal("customer was not created")
	}

	// Booking again with the same phone reuses the customer.
	appt2, err := engine.BookPublicAppointment(context.Background(), PublicBookingRequest{
		Slug:         "dra-gomez",
		CustomerName: "Maria",
		Phone:        "+5491199999999",
		Start:        futureDay().Add(16 * time.Hour),
	})
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}
	if appt2.CustomerID != appt.CustomerID {
		t.Fatal("expected the same customer to be reused")
	}
}

func TestBookPublicAppointment_ConflictKeepsCustomerForRetry(t *testing.T) {
	engine, appts, _ := newTestEngine()
	start := futureDay().Add(15 * time.Hour)
	appts.appts["a1"] = &models.Appointment{
		ID: "a1", ProfessionalID: "pro-1", CustomerID: "cust-1",
		Start: start, End: start.Add(time.Hour), DurationMinutes: 60,
		Status: models.StatusConfirmed,
	}

	_, err := engine.BookPublicAppointment(context.Background(), PublicBookingRequest{
		Slug:         "dra-gomez",
		CustomerName: "Maria",
		Phone:        "+5491188888888",
		Start:        start,
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// The rejected booking still registered the customer by phone.
	customers := engine.Customers.(*fakeCustomerRepo)
	created, err := customers.GetByPhone(context.Background(), "pro-1", "+5491188888888")
	if err != nil {
		t.Fatal("customer should survive the rejected booking")
	}

	// Retrying at a free time reuses that record instead of creating another.
	appt, err := engine.BookPublicAppointment(context.Background(), PublicBookingRequest{
		Slug:         "dra-gomez",
		CustomerName: "Maria",
		Phone:        "+5491188888888",
		Start:        start.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if appt.CustomerID != created.ID {
		t.Fatalf("retry used customer %s, want %s", appt.CustomerID, created.ID)
	}
	count := 0
	for _, c := range customers.customers {
		if c.Phone == "+5491188888888" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single customer record for the phone, got %d", count)
	}
}

func TestBookPublicAppointment_UnpublishedPage(t *testing.T) {
	engine, _, _ := newTestEngine()
	landing := engine.Landing.(*fakeLandingRepo)
	landing.pages["dra-gomez"].Published = false

	_, err := engine.BookPublicAppointment(context.Background(), PublicBookingRequest{
		Slug:         "dra-gomez",
		CustomerName: "Maria",
		Phone:        "+5491199999999",
		Start:        futureDay().Add(15 * time.Hour),
	})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected not-found for unpublished page, got %v", err)
	}
}

func TestGetDayAvailability_ExcludesBookedSlots(t *testing.T) {
	engine, appts, _ := newTestEngine()
	day := futureDay()
	start := day.Add(10 * time.Hour)
	appts.appts["a1"] = &models.Appointment{
		ID: "a1", ProfessionalID: "pro-1", CustomerID: "cust-1",
		Start: start, End: start.Add(time.Hour), DurationMinutes: 60,
		Status: models.StatusConfirmed,
	}

	result, err := engine.GetDayAvailability(context.Background(), "pro-1", "", day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range result.Slots {
		if s.TimeOfDay == "09:30" || s.TimeOfDay == "10:00" || s.TimeOfDay == "10:30" {
			t.Fatalf("slot %s should be excluded", s.TimeOfDay)
		}
	}
	if result.Weekday != day.Weekday().String() {
		t.Fatalf("weekday = %s", result.Weekday)
	}
}

func TestGetWeekAvailability_SevenDays(t *testing.T) {
	engine, _, _ := newTestEngine()

	days, err := engine.GetWeekAvailability(context.Background(), "pro-1", "", futureDay())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
}

func TestGetWeekAvailability_BusyBucketedInQueryLocation(t *testing.T) {
	engine, appts, _ := newTestEngine()

	// Appointments come back from storage as UTC instants. With the query in
	// a far-east zone, a morning appointment falls on the previous UTC date;
	// its slots must still be blocked on the local day the caller sees.
	loc := time.FixedZone("UTC+13", 13*60*60)
	d := time.Now().In(loc).AddDate(0, 0, 14)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

	start := from.Add(9*time.Hour + 30*time.Minute).UTC()
	appts.appts["a1"] = &models.Appointment{
		ID: "a1", ProfessionalID: "pro-1", CustomerID: "cust-1",
		Start: start, End: start.Add(time.Hour), DurationMinutes: 60,
		Status: models.StatusConfirmed,
	}

	days, err := engine.GetWeekAvailability(context.Background(), "pro-1", "", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := days[0]
	if first.Date != from.Format("2006-01-02") {
		t.Fatalf("first day = %s, want %s", first.Date, from.Format("2006-01-02"))
	}
	seen := make(map[string]bool)
	for _, s := range first.Slots {
		seen[s.TimeOfDay] = true
	}
	for _, blocked := range []string{"09:00", "09:30", "10:00"} {
		if seen[blocked] {
			t.Fatalf("slot %s offered despite overlapping the 09:30-10:30 appointment", blocked)
		}
	}
	if !seen["11:00"] {
		t.Fatal("slot 11:00 should remain available")
	}
}
