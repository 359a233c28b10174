package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

type mockProvider struct {
	broker  *Broker
	signIn  func(ctx context.Context, email, password string) (*domain.Identity, error)
	signUp  func(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	signOut func(ctx context.Context, identityID string) error
}

var _ IdentityProvider = (*mockProvider)(nil)

func newMockProvider() *mockProvider {
	return &mockProvider{broker: NewBroker()}
}

func (m *mockProvider) Subscribe(fn func(*domain.Identity)) func() {
	return m.broker.Subscribe(fn)
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	return m.signIn(ctx, email, password)
}

func (m *mockProvider) SignUp(ctx context.Context, input RegisterInput) (*domain.Identity, error) {
	return m.signUp(ctx, input)
}

func (m *mockProvider) SignOut(ctx context.Context, identityID string) error {
	if m.signOut != nil {
		return m.signOut(ctx, identityID)
	}
	return nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestSessionStartsLoading(t *testing.T) {
	s := New(newMockProvider(), NewResolver(&mockStore{}, nil, nil, time.Second), nil)
	if snap := s.Snapshot(); !snap.Loading {
		t.Fatal("fresh session must report loading")
	}
}

func TestSessionSettlesOnNoIdentity(t *testing.T) {
	provider := newMockProvider()
	s := New(provider, NewResolver(&mockStore{}, nil, nil, time.Second), nil)
	s.Start(context.Background())
	defer s.Close()

	provider.broker.Start(nil)

	snap := s.Snapshot()
	if snap.Loading {
		t.Fatal("nil identity must settle the session, not leave it loading")
	}
	if snap.Profile != nil {
		t.Fatalf("profile = %+v, want none", snap.Profile)
	}
}

func TestSessionResolvesEmittedIdentity(t *testing.T) {
	provider := newMockProvider()
	resolver := NewResolver(&mockStore{
		getByID: func(_ context.Context, id string) (*domain.Profile, error) {
			return &domain.Profile{ID: id, Role: domain.RoleTeacher, Status: domain.StatusActive}, nil
		},
	}, nil, nil, time.Second)

	s := New(provider, resolver, nil)
	s.Start(context.Background())
	defer s.Close()

	provider.broker.Emit(&domain.Identity{ID: "t1"})

	waitFor(t, func() bool {
		snap := s.Snapshot()
		return !snap.Loading && snap.Profile != nil
	})
	if got := s.Snapshot().Profile.Role; got != domain.RoleTeacher {
		t.Fatalf("resolved role = %s, want teacher", got)
	}
}

func TestSessionNewestRequestedWins(t *testing.T) {
	release := make(chan struct{})
	provider := newMockProvider()
	resolver := NewResolver(&mockStore{
		getByID: func(_ context.Context, id string) (*domain.Profile, error) {
			if id == "slow" {
				<-release
			}
			return &domain.Profile{ID: id, Role: domain.RoleStudent, Status: domain.StatusActive}, nil
		},
	}, nil, nil, time.Second)

	s := New(provider, resolver, nil)
	s.Start(context.Background())
	defer s.Close()

	provider.broker.Emit(&domain.Identity{ID: "slow"})
	provider.broker.Emit(&domain.Identity{ID: "fast"})

	waitFor(t, func() bool {
		snap := s.Snapshot()
		return snap.Profile != nil && snap.Profile.ID == "fast"
	})

	// The stale resolution completes late; it must not overwrite.
	close(release)
	time.Sleep(50 * time.Millisecond)
	if got := s.Snapshot().Profile.ID; got != "fast" {
		t.Fatalf("stale resolution overwrote the session: profile = %s", got)
	}
}

func TestLoginResolvesAuthoritatively(t *testing.T) {
	cache := newMockCache()
	cache.profiles["c1"] = &domain.Profile{ID: "c1", Role: domain.RoleConsultant, Status: domain.StatusPending}

	provider := newMockProvider()
	provider.signIn = func(context.Context, string, string) (*domain.Identity, error) {
		return &domain.Identity{ID: "c1"}, nil
	}
	resolver := NewResolver(&mockStore{
		getByID: func(context.Context, string) (*domain.Profile, error) {
			return &domain.Profile{ID: "c1", Role: domain.RoleConsultant, Status: domain.StatusActive}, nil
		},
	}, cache, nil, time.Second)

	s := New(provider, resolver, nil)
	profile, err := s.Login(context.Background(), "c1@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	// A just-approved account must see active at login, not the cached
	// pending snapshot.
	if profile.Status != domain.StatusActive {
		t.Fatalf("login status = %s, want active", profile.Status)
	}
	if snap := s.Snapshot(); snap.Loading || snap.Profile == nil {
		t.Fatalf("session not settled after login: %+v", snap)
	}
}

func TestLoginCredentialFailurePropagates(t *testing.T) {
	provider := newMockProvider()
	provider.signIn = func(context.Context, string, string) (*domain.Identity, error) {
		return nil, &AuthError{Kind: AuthErrCredential, Message: "invalid credentials"}
	}

	s := New(provider, NewResolver(&mockStore{}, nil, nil, time.Second), nil)
	_, err := s.Login(context.Background(), "x@example.com", "bad")
	if AuthKindOf(err) != AuthErrCredential {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestLogoutClearsDespiteProviderError(t *testing.T) {
	provider := newMockProvider()
	provider.signIn = func(context.Context, string, string) (*domain.Identity, error) {
		return &domain.Identity{ID: "u1"}, nil
	}
	provider.signOut = func(context.Context, string) error {
		return errors.New("network down")
	}
	resolver := NewResolver(&mockStore{
		getByID: func(context.Context, string) (*domain.Profile, error) {
			return &domain.Profile{ID: "u1", Status: domain.StatusActive}, nil
		},
	}, nil, nil, time.Second)

	s := New(provider, resolver, nil)
	if _, err := s.Login(context.Background(), "u1@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s.Logout(context.Background())
	if snap := s.Snapshot(); snap.Profile != nil {
		t.Fatalf("logout left a ghost session: %+v", snap.Profile)
	}
}

func TestBrokerDeliversCurrentToLateSubscriber(t *testing.T) {
	b := NewBroker()
	b.Start(&domain.Identity{ID: "u9"})

	var got *domain.Identity
	unsub := b.Subscribe(func(id *domain.Identity) { got = id })
	defer unsub()

	if got == nil || got.ID != "u9" {
		t.Fatalf("late subscriber got %+v, want current identity", got)
	}
}
