package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// Snapshot is the read-only view of the current session the rest of the
// application depends on.
type Snapshot struct {
	Profile *domain.Profile
	Loading bool
	Offline bool
}

// Session tracks the current profile for one client of the identity
// provider. It is explicitly constructed and passed down, never a process
// global, so tests build a fresh one each time.
//
// Resolutions are guarded by a monotonic generation counter: when identity
// events arrive in quick succession, only the newest requested resolution may
// write the profile slot; stale completions are discarded.
type Session struct {
	provider IdentityProvider
	resolver *Resolver
	logger   *zap.Logger

	mu          sync.Mutex
	snap        Snapshot
	generation  uint64
	unsubscribe func()
}

// New builds an unstarted session.
func New(provider IdentityProvider, resolver *Resolver, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		provider: provider,
		resolver: resolver,
		logger:   logger,
		snap:     Snapshot{Loading: true},
	}
}

// Start subscribes to identity changes. ctx bounds all resolutions the
// subscription triggers.
func (s *Session) Start(ctx context.Context) {
	s.unsubscribe = s.provider.Subscribe(func(identity *domain.Identity) {
		s.onIdentity(ctx, identity)
	})
}

// Close drops the subscription.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Login signs in and applies an authoritative (cache-bypassing) resolution so
// the status is current at the moment of login. Credential and network
// failures propagate to the caller untouched.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.Profile, error) {
	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	gen := s.beginResolution()
	res := s.resolver.ResolveAuthoritative(ctx, identity)
	s.apply(gen, res)
	return res.Profile, nil
}

// Register signs up a new account and resolves its freshly created profile.
func (s *Session) Register(ctx context.Context, input RegisterInput) (*domain.Profile, error) {
	identity, err := s.provider.SignUp(ctx, input)
	if err != nil {
		return nil, err
	}

	gen := s.beginResolution()
	res := s.resolver.ResolveAuthoritative(ctx, identity)
	s.apply(gen, res)
	return res.Profile, nil
}

// Logout signs out and clears the local session even when the provider call
// fails; a broken network must not leave a ghost session behind.
func (s *Session) Logout(ctx context.Context) {
	var identityID string
	if current := s.Snapshot().Profile; current != nil {
		identityID = current.ID
	}
	if err := s.provider.SignOut(ctx, identityID); err != nil {
		s.logger.Warn("sign-out failed, clearing local session anyway", zap.Error(err))
	}

	s.mu.Lock()
	s.generation++
	s.snap = Snapshot{}
	s.mu.Unlock()
}

func (s *Session) onIdentity(ctx context.Context, identity *domain.Identity) {
	if identity == nil {
		s.mu.Lock()
		s.generation++
		s.snap = Snapshot{}
		s.mu.Unlock()
		return
	}

	gen := s.beginResolution()
	go func() {
		res := s.resolver.Resolve(ctx, identity)
		s.apply(gen, res)
	}()
}

func (s *Session) beginResolution() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.snap.Loading = true
	return s.generation
}

// apply installs a completed resolution unless a newer one has been requested
// since (last-resolved-wins is replaced by newest-requested-wins).
func (s *Session) apply(gen uint64, res Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug("discarding stale profile resolution",
			zap.Uint64("resolution", gen), zap.Uint64("latest", s.generation))
		return
	}
	s.snap = Snapshot{Profile: res.Profile, Loading: false, Offline: res.Offline}
}
