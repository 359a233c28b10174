package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

const snapshotKey = "session_snapshot"

// Middleware validates bearer tokens and resolves the caller's profile
// through the session resolver, so a request sees the same degraded-guest
// behavior the session layer guarantees (offline store never locks the
// caller out).
type Middleware struct {
	tokens   *TokenManager
	resolver *session.Resolver
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, resolver *session.Resolver) *Middleware {
	return &Middleware{tokens: tokens, resolver: resolver}
}

// Handle enforces authentication for protected routes and stores the
// resolved session snapshot on the request context.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	identity := &domain.Identity{ID: claims.ProfileID}
	res := m.resolver.Resolve(c.UserContext(), identity)
	if res.Profile == nil {
		return apperrors.NewUnauthorized("unknown profile")
	}
	// Here the profile store is the account store: a not-found degrade for a
	// bearer token means the account was deleted, not that a new user signed
	// in. Connectivity degrades still pass so an outage never locks callers
	// out.
	if res.Degraded && !res.Offline {
		return apperrors.NewUnauthorized("account no longer exists")
	}

	c.Locals(snapshotKey, session.Snapshot{Profile: res.Profile, Offline: res.Offline})
	return c.Next()
}

// HandleOptional resolves a snapshot when a valid bearer token is present and
// passes the request through otherwise. Page routes use it so the access
// guard, not the transport, decides what an anonymous visitor may see.
func (m *Middleware) HandleOptional(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Next()
	}
	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return c.Next()
	}

	identity := &domain.Identity{ID: claims.ProfileID}
	res := m.resolver.Resolve(c.UserContext(), identity)
	if res.Degraded && !res.Offline {
		// Deleted account: treat the bearer as anonymous.
		return c.Next()
	}
	if res.Profile != nil {
		c.Locals(snapshotKey, session.Snapshot{Profile: res.Profile, Offline: res.Offline})
	}
	return c.Next()
}

// SnapshotFromContext retrieves the resolved session snapshot.
func SnapshotFromContext(c *fiber.Ctx) (session.Snapshot, bool) {
	val := c.Locals(snapshotKey)
	if val == nil {
		return session.Snapshot{}, false
	}
	snap, ok := val.(session.Snapshot)
	return snap, ok
}

// ProfileFromContext retrieves the authenticated profile.
func ProfileFromContext(c *fiber.Ctx) (*domain.Profile, bool) {
	snap, ok := SnapshotFromContext(c)
	if !ok || snap.Profile == nil {
		return nil, false
	}
	return snap.Profile, true
}
