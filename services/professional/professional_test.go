package professional

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"miagenda/models"
)

type fakeProfessionalRepo struct {
	pros     map[string]*models.Professional
	services map[string]*models.Service
	nextID   int
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{
		pros:     make(map[string]*models.Professional),
		services: make(map[string]*models.Service),
	}
}

func (f *fakeProfessionalRepo) Create(_ context.Context, pro *models.Professional) error {
	if pro.ID == "" {
		f.nextID++
		pro.ID = fmt.Sprintf("pro-%d", f.nextID)
	}
	pro.CreatedAt = time.Now()
	f.pros[pro.ID] = pro
	return nil
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, id string) (*models.Professional, error) {
	pro, ok := f.pros[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return pro, nil
}

func (f *fakeProfessionalRepo) GetByEmail(_ context.Context, email string) (*models.Professional, error) {
	for _, pro := range f.pros {
		if pro.Email == email {
			return pro, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfessionalRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Professional, error) {
	for _, pro := range f.pros {
		if pro.TokenHash != "" && pro.TokenHash == tokenHash {
			return pro, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProfessionalRepo) Update(_ context.Context, pro *models.Professional) error {
	if _, ok := f.pros[pro.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.pros[pro.ID] = pro
	return nil
}

func (f *fakeProfessionalRepo) UpdateAvailability(_ context.Context, id string, cfg models.AvailabilityConfig) error {
	pro, ok := f.pros[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	pro.Availability = cfg
	return nil
}

func (f *fakeProfessionalRepo) SetTokenHash(_ context.Context, id, tokenHash string) error {
	pro, ok := f.pros[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	pro.TokenHash = tokenHash
	return nil
}

func (f *fakeProfessionalRepo) SetGoogleLink(_ context.Context, id string, link *models.GoogleCalendarLink) error {
	pro, ok := f.pros[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	pro.Google = link
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
	svc, ok := f.services[serviceID]
	if !ok || svc.ProfessionalID != professionalID {
		return nil, mongo.ErrNoDocuments
	}
	return svc, nil
}

func (f *fakeProfessionalRepo) ListServices(_ context.Context, professionalID string, activeOnly bool) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.ProfessionalID != professionalID {
			continue
		}
		if activeOnly && !svc.Active {
			continue
		}
		out = append(out, *svc)
	}
	return out, nil
}

func (f *fakeProfessionalRepo) UpdateService(_ context.Context, svc *models.Service) error {
	if _, ok := f.services[svc.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeProfessionalRepo) DeleteService(_ context.Context, professionalID, serviceID string) error {
	delete(f.services, serviceID)
	return nil
}

type fakeLandingRepo struct {
	pages map[string]*models.LandingPage
}

func (f *fakeLandingRepo) Upsert(_ context.Context, page *models.LandingPage) error {
	f.pages[page.ProfessionalID] = page
	return nil
}

func (f *fakeLandingRepo) GetByProfessionalID(_ context.Context, professionalID string) (*models.LandingPage, error) {
	page, ok := f.pages[professionalID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return page, nil
}

func (f *fakeLandingRepo) GetBySlug(_ context.Context, slug string) (*models.LandingPage, error) {
	for _, page := range f.pages {
		if page.Slug == slug {
			return page, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeLandingRepo) SlugTaken(_ context.Context, slug, professionalID string) (bool, error) {
	for _, page := range f.pages {
		if page.Slug == slug && page.ProfessionalID != professionalID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLandingRepo) Delete(_ context.Context, professionalID string) error {
	delete(f.pages, professionalID)
	return nil
}

type fakeIncome struct {
	stats models.IncomeStats
}

func (f *fakeIncome) SumCompletedIncome(_ context.Context, professionalID string, from, to time.Time) (models.IncomeStats, error) {
	return f.stats, nil
}

func newTestService() (*DefaultProfessionalService, *fakeProfessionalRepo, *fakeLandingRepo) {
	repo := newFakeProfessionalRepo()
	landing := &fakeLandingRepo{pages: make(map[string]*models.LandingPage)}
	svc := &DefaultProfessionalService{Repo: repo, Landing: landing, Income: &fakeIncome{}}
	return svc, repo, landing
}

func TestRegister_AppliesDefaultsAndHashesPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.Register(context.Background(), RegistrationInput{
		Name:     "Dra. Gomez",
		Email:    "Gomez@Example.com",
		Password: "supersecret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}

	pro := repo.pros[result.Professional.ID]
	if pro.Email != "gomez@example.com" {
		t.Fatalf("email not lowercased: %s", pro.Email)
	}
	if pro.PasswordHash == "supersecret1" || pro.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pro.PasswordHash), []byte("supersecret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	def := models.DefaultAvailabilityConfig()
	if pro.Availability != def {
		t.Fatalf("expected default availability %+v, got %+v", def, pro.Availability)
	}
	if pro.TokenHash == "" {
		t.Fatal("token hash must be stored for auth")
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	input := RegistrationInput{Name: "A", Email: "a@example.com", Password: "supersecret1"}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); err == nil {
		t.Fatal("duplicate email must be rejected")
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "supersecret1",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "A@example.com", "supersecret1"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "a@example.com", "wrong"); err == nil {
		t.Fatal("wrong password must be rejected")
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "supersecret1"); err == nil {
		t.Fatal("unknown email must be rejected")
	}
}

func TestRevokeToken_ClearsHash(t *testing.T) {
	svc, repo, _ := newTestService()
	result, err := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "supersecret1",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if err := svc.RevokeToken(context.Background(), result.Professional.ID); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if repo.pros[result.Professional.ID].TokenHash != "" {
		t.Fatal("token hash must be cleared on revoke")
	}
}

func TestUpdateAvailability_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	result, _ := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "supersecret1",
	})
	id := result.Professional.ID

	cases := []struct {
		name string
		cfg  models.AvailabilityConfig
		ok   bool
	}{
		{"valid custom hours", models.AvailabilityConfig{WorkStartHour: 8, WorkEndHour: 14, DurationMinutes: 45, BufferMinutes: 5}, true},
		{"zero duration", models.AvailabilityConfig{WorkStartHour: 9, WorkEndHour: 18, DurationMinutes: 0}, false},
		{"negative buffer", models.AvailabilityConfig{WorkStartHour: 9, WorkEndHour: 18, DurationMinutes: 30, BufferMinutes: -5}, false},
		{"inverted hours", models.AvailabilityConfig{WorkStartHour: 18, WorkEndHour: 9, DurationMinutes: 30}, false},
	}
	for _, tc := range cases {
		err := svc.UpdateAvailability(context.Background(), id, tc.cfg)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected rejection", tc.name)
		}
	}
}

func TestUpdateProfile_PreservesCredentials(t *testing.T) {
	svc, repo, _ := newTestService()
	result, _ := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "supersecret1",
	})
	id := result.Professional.ID
	originalHash := repo.pros[id].PasswordHash

	update := &models.Professional{
		ID:    id,
		Name:  "Renamed",
		Email: "a@example.com",
		// A hostile payload trying to overwrite credentials.
		PasswordHash: "sneaky",
		TokenHash:    "sneaky",
	}
	if err := svc.UpdateProfile(context.Background(), update); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.pros[id].PasswordHash != originalHash {
		t.Fatal("password hash must survive profile updates")
	}
	if repo.pros[id].Name != "Renamed" {
		t.Fatal("name not updated")
	}
}

func TestUpsertLandingPage_SlugRules(t *testing.T) {
	svc, _, landing := newTestService()
	a, _ := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "supersecret1",
	})
	b, _ := svc.Register(context.Background(), RegistrationInput{
		Name: "B", Email: "b@example.com", Password: "supersecret1",
	})

	if err := svc.UpsertLandingPage(context.Background(), &models.LandingPage{
		ProfessionalID: a.Professional.ID, Slug: "dra-gomez", Published: true,
	}); err != nil {
		t.Fatalf("valid slug rejected: %v", err)
	}

	for _, bad := range []string{"", "Dra-Gomez", "dra gomez", "dra_gomez", "-leading"} {
		if err := svc.UpsertLandingPage(context.Background(), &models.LandingPage{
			ProfessionalID: a.Professional.ID, Slug: bad,
		}); err == nil {
			t.Errorf("slug %q must be rejected", bad)
		}
	}

	// Another professional cannot claim the same slug.
	if err := svc.UpsertLandingPage(context.Background(), &models.LandingPage{
		ProfessionalID: b.Professional.ID, Slug: "dra-gomez",
	}); err == nil {
		t.Fatal("taken slug must be rejected")
	}

	// The owner can re-upsert their own slug.
	if err := svc.UpsertLandingPage(context.Background(), &models.LandingPage{
		ProfessionalID: a.Professional.ID, Slug: "dra-gomez", Headline: "updated",
	}); err != nil {
		t.Fatalf("owner re-upsert rejected: %v", err)
	}
	if landing.pages[a.Professional.ID].Headline != "updated" {
		t.Fatal("page not updated")
	}
}

func TestConnectGoogle_DefaultsCalendarID(t *testing.T) {
	svc, repo, _ := newTestService()
	result, _ := svc.Register(context.Background(), RegistrationInput{
		Name: "A", Email: "a@example.com", Password: "supersecret1",
	})
	id := result.Professional.ID

	if err := svc.ConnectGoogle(context.Background(), id, "refresh-token", ""); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if repo.pros[id].Google == nil || repo.pros[id].Google.CalendarID != "primary" {
		t.Fatalf("calendar ID must default to primary, got %+v", repo.pros[id].Google)
	}

	if err := svc.ConnectGoogle(context.Background(), id, "", ""); err == nil {
		t.Fatal("empty refresh token must be rejected")
	}

	if err := svc.DisconnectGoogle(context.Background(), id); err != nil {
		t.Fatalf("disconnect failed: %v", err)
	}
	if repo.pros[id].Google != nil {
		t.Fatal("google link must be cleared on disconnect")
	}
}
