package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
)

// DefaultDisplayName is used when the identity carries no display name.
// Kept in Arabic to match what registered clients render.
const DefaultDisplayName = "مستخدم جديد"

const defaultResolveTimeout = 8 * time.Second

// ProfileStore is the read side of the profile boundary the resolver needs.
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// Resolution is the explicit result of resolving an identity, so callers can
// tell a clean read from a degraded fallback without a side channel.
type Resolution struct {
	Profile *domain.Profile
	// Degraded is true when the profile was synthesized because the stored
	// record could not be read (any failure class).
	Degraded bool
	// Offline is true when the failure was connectivity-class; the caller
	// should raise the process-wide offline flag.
	Offline bool
}

// Resolver turns an authenticated identity into a profile, never failing the
// caller: storage trouble degrades to a synthesized guest profile.
type Resolver struct {
	store   ProfileStore
	cache   repository.ProfileCache
	logger  *zap.Logger
	timeout time.Duration
}

// NewResolver builds a resolver. cache may be nil.
func NewResolver(store ProfileStore, cache repository.ProfileCache, logger *zap.Logger, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, cache: cache, logger: logger, timeout: timeout}
}

// Resolve reads the profile for identity, consulting the cache first.
// A nil identity yields an empty resolution (profile none).
func (r *Resolver) Resolve(ctx context.Context, identity *domain.Identity) Resolution {
	return r.resolve(ctx, identity, true)
}

// ResolveAuthoritative bypasses the cache so status is current at the moment
// of login. This closes the window where a just-approved account would keep
// seeing a cached pending status.
func (r *Resolver) ResolveAuthoritative(ctx context.Context, identity *domain.Identity) Resolution {
	return r.resolve(ctx, identity, false)
}

func (r *Resolver) resolve(ctx context.Context, identity *domain.Identity, useCache bool) Resolution {
	if identity == nil {
		return Resolution{}
	}

	if useCache && r.cache != nil {
		if cached, ok := r.cache.Get(ctx, identity.ID); ok {
			return Resolution{Profile: normalize(cached)}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	profile, err := r.store.GetByID(ctx, identity.ID)
	switch {
	case err == nil:
		profile = normalize(profile)
		if r.cache != nil {
			if cacheErr := r.cache.Set(ctx, profile); cacheErr != nil {
				r.logger.Debug("profile cache set failed", zap.Error(cacheErr))
			}
		}
		return Resolution{Profile: profile}

	case repository.IsNotFound(err):
		// First sign-in without a stored record: treat as a new user.
		return Resolution{Profile: r.fallback(identity), Degraded: true}

	case repository.IsNetworkUnavailable(err) || errors.Is(err, context.DeadlineExceeded):
		r.logger.Warn("profile store unreachable, degrading to guest profile",
			zap.String("identity_id", identity.ID), zap.Error(err))
		return Resolution{Profile: r.fallback(identity), Degraded: true, Offline: true}

	default:
		r.logger.Error("profile read failed, falling back",
			zap.String("identity_id", identity.ID), zap.Error(err))
		return Resolution{Profile: r.fallback(identity), Degraded: true}
	}
}

// fallback synthesizes the minimal guest profile. It is deterministic for a
// given identity so repeated degraded resolutions agree.
func (r *Resolver) fallback(identity *domain.Identity) *domain.Profile {
	name := identity.DisplayName
	if name == "" {
		name = DefaultDisplayName
	}
	return &domain.Profile{
		ID:       identity.ID,
		Email:    identity.Email,
		Name:     name,
		PhotoURL: identity.PhotoURL,
		Role:     domain.RoleStudent,
		Status:   domain.StatusActive,
	}
}

// normalize coerces legacy records missing a status to active.
func normalize(profile *domain.Profile) *domain.Profile {
	if profile == nil {
		return nil
	}
	if profile.Status == "" {
		profile.Status = domain.StatusActive
	}
	return profile
}
