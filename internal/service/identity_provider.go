package service

import (
	"context"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// IdentityProvider adapts the account service to the session layer's auth
// boundary: credential actions delegate to the service and every state
// change is emitted on the broker so subscribed sessions re-resolve.
type IdentityProvider struct {
	accounts *AccountService
	broker   *session.Broker
}

// NewIdentityProvider wires the adapter.
func NewIdentityProvider(accounts *AccountService, broker *session.Broker) *IdentityProvider {
	return &IdentityProvider{accounts: accounts, broker: broker}
}

var _ session.IdentityProvider = (*IdentityProvider)(nil)

// Subscribe forwards to the broker.
func (p *IdentityProvider) Subscribe(fn func(*domain.Identity)) func() {
	return p.broker.Subscribe(fn)
}

// SignIn authenticates and emits the identity change.
func (p *IdentityProvider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := p.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	p.broker.Emit(identity)
	return identity, nil
}

// SignUp registers and emits the fresh identity.
func (p *IdentityProvider) SignUp(ctx context.Context, input session.RegisterInput) (*domain.Identity, error) {
	profile, err := p.accounts.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	identity := &domain.Identity{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.Name,
		PhotoURL:    profile.PhotoURL,
	}
	p.broker.Emit(identity)
	return identity, nil
}

// SignOut emits "none". Tokens are stateless, so there is nothing to revoke
// server-side.
func (p *IdentityProvider) SignOut(_ context.Context, _ string) error {
	p.broker.Emit(nil)
	return nil
}
