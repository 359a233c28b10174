package service

import (
	"context"
	"testing"
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/config"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

type mockProfileRepo struct {
	create     func(ctx context.Context, profile *domain.Profile) error
	update     func(ctx context.Context, profile *domain.Profile) error
	getByID    func(ctx context.Context, id string) (*domain.Profile, error)
	getByEmail func(ctx context.Context, email string) (*domain.Profile, error)
	list       func(ctx context.Context, filter repository.ProfileFilter) ([]*domain.Profile, error)
	delete     func(ctx context.Context, id string) error
}

var _ repository.ProfileRepository = (*mockProfileRepo)(nil)

func (m *mockProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return m.create(ctx, p) }
func (m *mockProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return m.update(ctx, p) }
func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return m.getByID(ctx, id)
}
func (m *mockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockProfileRepo) List(ctx context.Context, f repository.ProfileFilter) ([]*domain.Profile, error) {
	return m.list(ctx, f)
}
func (m *mockProfileRepo) Delete(ctx context.Context, id string) error { return m.delete(ctx, id) }

type mockDispatcher struct {
	published []events.Event
}

var _ events.Dispatcher = (*mockDispatcher)(nil)

func (m *mockDispatcher) Publish(_ context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

func (m *mockDispatcher) Subscribe(events.EventType, events.EventHandler) {}

type memProfileCache struct {
	profiles    map[string]*domain.Profile
	invalidated []string
}

var _ repository.ProfileCache = (*memProfileCache)(nil)

func newMemProfileCache() *memProfileCache {
	return &memProfileCache{profiles: make(map[string]*domain.Profile)}
}

func (m *memProfileCache) Get(_ context.Context, id string) (*domain.Profile, bool) {
	p, ok := m.profiles[id]
	return p, ok
}

func (m *memProfileCache) Set(_ context.Context, p *domain.Profile) error {
	m.profiles[p.ID] = p
	return nil
}

func (m *memProfileCache) Invalidate(_ context.Context, id string) error {
	delete(m.profiles, id)
	m.invalidated = append(m.invalidated, id)
	return nil
}

func notFound() error {
	return &repository.StoreError{Kind: repository.KindNotFound, Op: "profiles.get_by_email"}
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   5,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              4,
		},
	}
}

func newTestAccountService(repo repository.ProfileRepository, dispatcher events.Dispatcher) *AccountService {
	return NewAccountService(testConfig(), AccountDependencies{
		ProfileRepo:  repo,
		ProfileCache: newMemProfileCache(),
		Dispatcher:   dispatcher,
	})
}

func TestRegisterEntryStatusByRole(t *testing.T) {
	cases := []struct {
		role string
		want domain.AccountStatus
	}{
		{"student", domain.StatusActive},
		{"teacher", domain.StatusActive},
		{"school", domain.StatusPending},
		{"consultant", domain.StatusPending},
	}

	for _, tc := range cases {
		var created *domain.Profile
		repo := &mockProfileRepo{
			getByEmail: func(context.Context, string) (*domain.Profile, error) { return nil, notFound() },
			create: func(_ context.Context, p *domain.Profile) error {
				created = p
				return nil
			},
		}
		svc := newTestAccountService(repo, nil)

		profile, err := svc.Register(context.Background(), session.RegisterInput{
			Email:    tc.role + "@example.com",
			Password: "secret123",
			Name:     "Test",
			Role:     domain.Role(tc.role),
		})
		if err != nil {
			t.Fatalf("Register(%s): %v", tc.role, err)
		}
		if profile.Status != tc.want {
			t.Errorf("Register(%s) status = %s, want %s", tc.role, profile.Status, tc.want)
		}
		if created == nil || created.PasswordHash == "" {
			t.Errorf("Register(%s) did not persist a hashed password", tc.role)
		}
	}
}

func TestRegisterAdminRoleBlocked(t *testing.T) {
	svc := newTestAccountService(&mockProfileRepo{}, nil)

	_, err := svc.Register(context.Background(), session.RegisterInput{
		Email:    "root@example.com",
		Password: "secret123",
		Role:     domain.RoleAdmin,
	})
	if session.AuthKindOf(err) != AuthErrValidation {
		t.Fatalf("admin registration: got %v, want validation error", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &mockProfileRepo{
		getByEmail: func(context.Context, string) (*domain.Profile, error) {
			return &domain.Profile{ID: "existing"}, nil
		},
	}
	svc := newTestAccountService(repo, nil)

	_, err := svc.Register(context.Background(), session.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
		Role:     domain.RoleStudent,
	})
	if session.AuthKindOf(err) != session.AuthErrConflict {
		t.Fatalf("duplicate email: got %v, want conflict", err)
	}
}

func TestRegisterAttrRoleMismatch(t *testing.T) {
	svc := newTestAccountService(&mockProfileRepo{}, nil)

	_, err := svc.Register(context.Background(), session.RegisterInput{
		Email:    "s@example.com",
		Password: "secret123",
		Role:     domain.RoleStudent,
		Teacher:  &domain.TeacherAttrs{SchoolID: "sch-1"},
	})
	if session.AuthKindOf(err) != AuthErrValidation {
		t.Fatalf("mismatched attrs: got %v, want validation error", err)
	}
}

func TestRegisterDefaultDisplayName(t *testing.T) {
	var created *domain.Profile
	repo := &mockProfileRepo{
		getByEmail: func(context.Context, string) (*domain.Profile, error) { return nil, notFound() },
		create: func(_ context.Context, p *domain.Profile) error {
			created = p
			return nil
		},
	}
	svc := newTestAccountService(repo, nil)

	if _, err := svc.Register(context.Background(), session.RegisterInput{
		Email:    "anon@example.com",
		Password: "secret123",
		Role:     domain.RoleStudent,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Name != session.DefaultDisplayName {
		t.Fatalf("name = %q, want default display name", created.Name)
	}
}

func TestRegisterPublishesEvent(t *testing.T) {
	dispatcher := &mockDispatcher{}
	repo := &mockProfileRepo{
		getByEmail: func(context.Context, string) (*domain.Profile, error) { return nil, notFound() },
		create:     func(context.Context, *domain.Profile) error { return nil },
	}
	svc := newTestAccountService(repo, dispatcher)

	if _, err := svc.Register(context.Background(), session.RegisterInput{
		Email:    "s@example.com",
		Password: "secret123",
		Role:     domain.RoleSchool,
		School:   &domain.SchoolAttrs{Address: "Riyadh"},
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(dispatcher.published) != 1 || dispatcher.published[0].Type != events.EventAccountRegistered {
		t.Fatalf("published = %+v, want one AccountRegistered", dispatcher.published)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := auth.HashPassword("correct-pw", 4)
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockProfileRepo{
		getByEmail: func(_ context.Context, email string) (*domain.Profile, error) {
			if email != "known@example.com" {
				return nil, notFound()
			}
			return &domain.Profile{ID: "u1", Email: email, Name: "Known", PasswordHash: hash}, nil
		},
	}
	svc := newTestAccountService(repo, nil)

	identity, err := svc.Authenticate(context.Background(), "known@example.com", "correct-pw")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if identity.ID != "u1" {
		t.Errorf("identity = %+v", identity)
	}

	if _, err := svc.Authenticate(context.Background(), "known@example.com", "wrong"); session.AuthKindOf(err) != session.AuthErrCredential {
		t.Errorf("wrong password: got %v, want credential error", err)
	}
	// Unknown accounts look exactly like bad passwords.
	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever"); session.AuthKindOf(err) != session.AuthErrCredential {
		t.Errorf("unknown account: got %v, want credential error", err)
	}
}

func TestUpdateSettingsKeepsRoleAndStatus(t *testing.T) {
	stored := &domain.Profile{
		ID:     "u1",
		Role:   domain.RoleConsultant,
		Status: domain.StatusPending,
		Name:   "Before",
		Consultant: &domain.ConsultantAttrs{
			ExperienceYears: 2,
		},
	}
	repo := &mockProfileRepo{
		getByID: func(context.Context, string) (*domain.Profile, error) { return stored, nil },
		update:  func(context.Context, *domain.Profile) error { return nil },
	}
	svc := newTestAccountService(repo, nil)

	name := "After"
	updated, err := svc.UpdateSettings(context.Background(), "u1", SettingsInput{
		Name:       &name,
		Consultant: &domain.ConsultantAttrs{ExperienceYears: 5},
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.Name != "After" || updated.Consultant.ExperienceYears != 5 {
		t.Errorf("settings not applied: %+v", updated)
	}
	if updated.Role != domain.RoleConsultant || updated.Status != domain.StatusPending {
		t.Errorf("settings touched role/status: %s/%s", updated.Role, updated.Status)
	}
}

func TestUpdateSettingsIgnoresForeignAttrs(t *testing.T) {
	stored := &domain.Profile{ID: "u1", Role: domain.RoleStudent, Status: domain.StatusActive}
	repo := &mockProfileRepo{
		getByID: func(context.Context, string) (*domain.Profile, error) { return stored, nil },
		update:  func(context.Context, *domain.Profile) error { return nil },
	}
	svc := newTestAccountService(repo, nil)

	updated, err := svc.UpdateSettings(context.Background(), "u1", SettingsInput{
		Teacher: &domain.TeacherAttrs{SchoolID: "sch-1"},
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.Teacher != nil {
		t.Fatal("teacher attrs applied to a student profile")
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	svc := newTestAccountService(&mockProfileRepo{}, nil)
	profile := &domain.Profile{ID: "u1", Role: domain.RoleTeacher}

	token, expiresAt, err := svc.IssueToken(profile)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.ProfileID != "u1" || claims.Role != domain.RoleTeacher {
		t.Errorf("claims = %+v", claims)
	}
}
