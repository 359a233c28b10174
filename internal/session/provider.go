package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// AuthErrorKind distinguishes auth boundary failures.
type AuthErrorKind string

const (
	AuthErrCredential AuthErrorKind = "CREDENTIAL"
	AuthErrConflict   AuthErrorKind = "CONFLICT"
	AuthErrNetwork    AuthErrorKind = "NETWORK"
	AuthErrUnknown    AuthErrorKind = "UNKNOWN"
)

// AuthError is the tagged error surfaced by the auth boundary.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AuthKindOf extracts the auth error kind, defaulting to unknown.
func AuthKindOf(err error) AuthErrorKind {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return AuthErrUnknown
}

// RegisterInput carries sign-up data across the auth boundary.
type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Role       domain.Role
	Student    *domain.StudentAttrs
	Teacher    *domain.TeacherAttrs
	School     *domain.SchoolAttrs
	Consultant *domain.ConsultantAttrs
}

// Authenticator is the credential-facing half of the auth boundary.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)
	SignUp(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	SignOut(ctx context.Context, identityID string) error
}

// IdentityProvider combines credential actions with the identity-change
// subscription every session consumes.
type IdentityProvider interface {
	Authenticator
	Subscribe(fn func(*domain.Identity)) (unsubscribe func())
}

// Broker fans identity-change events out to subscribers. It forwards events
// in emission order and performs no business logic of its own.
type Broker struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(*domain.Identity)
	current     *domain.Identity
	started     bool
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subscribers: make(map[int]func(*domain.Identity))}
}

// Subscribe registers a listener and immediately delivers the current
// identity once the broker has started, so late subscribers never hang
// waiting for a first event.
func (b *Broker) Subscribe(fn func(*domain.Identity)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	started := b.started
	current := b.current
	b.mu.Unlock()

	if started {
		fn(current)
	}

	return func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}

// Start marks the broker established and delivers the initial identity
// (possibly nil) to existing subscribers. Emitting nil here is what lets
// downstream consumers settle on "none" instead of loading forever.
func (b *Broker) Start(identity *domain.Identity) {
	b.mu.Lock()
	b.started = true
	b.current = identity
	listeners := b.snapshotLocked()
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(identity)
	}
}

// Emit publishes an identity change to all subscribers in order.
func (b *Broker) Emit(identity *domain.Identity) {
	b.mu.Lock()
	b.started = true
	b.current = identity
	listeners := b.snapshotLocked()
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(identity)
	}
}

// Current returns the last emitted identity.
func (b *Broker) Current() *domain.Identity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *Broker) snapshotLocked() []func(*domain.Identity) {
	listeners := make([]func(*domain.Identity), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		listeners = append(listeners, fn)
	}
	return listeners
}
