package session

import "github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"

// Well-known policy destinations.
const (
	PathHome              = "/"
	PathLogin             = "/login"
	PathRegister          = "/register"
	PathPendingActivation = "/pending-activation"
	PathPublicEnroll      = "/public/enroll"
)

// DecisionKind enumerates guard outcomes.
type DecisionKind int

const (
	// DecisionWait means resolution has not settled; render a neutral
	// loading state and do not redirect.
	DecisionWait DecisionKind = iota
	DecisionAllow
	DecisionRedirect
)

// Decision is the guard's verdict for a requested route.
type Decision struct {
	Kind DecisionKind
	Path string
}

// Allowed is the positive verdict.
var Allowed = Decision{Kind: DecisionAllow}

// RedirectTo builds a redirect verdict.
func RedirectTo(path string) Decision {
	return Decision{Kind: DecisionRedirect, Path: path}
}

// Guard is the route access policy. It owns the set of public routes that
// unauthenticated visitors may reach.
type Guard struct {
	public map[string]struct{}
}

// NewGuard builds a guard with the default public routes unless overridden.
func NewGuard(publicRoutes ...string) *Guard {
	if len(publicRoutes) == 0 {
		publicRoutes = []string{PathLogin, PathRegister, PathPublicEnroll}
	}
	public := make(map[string]struct{}, len(publicRoutes))
	for _, route := range publicRoutes {
		public[route] = struct{}{}
	}
	return &Guard{public: public}
}

// IsPublic reports whether the route is reachable without a session.
func (g *Guard) IsPublic(route string) bool {
	_, ok := g.public[route]
	return ok
}

// Decide evaluates the access policy, strictly in order:
//
//  1. still loading: wait.
//  2. no profile: public routes pass, everything else goes to login.
//  3. pending status: everything but the activation page (and public routes)
//     goes to the activation page; a settled non-pending profile landing on
//     the activation page goes home. This check runs before the role check
//     so a pending consultant is never bounced home by a role mismatch.
//  4. role not in requiredRoles: home.
//  5. allow.
func (g *Guard) Decide(snap Snapshot, route string, requiredRoles []domain.Role) Decision {
	if snap.Loading {
		return Decision{Kind: DecisionWait}
	}

	if snap.Profile == nil {
		if g.IsPublic(route) {
			return Allowed
		}
		return RedirectTo(PathLogin)
	}

	if snap.Profile.Status == domain.StatusPending {
		if route == PathPendingActivation || g.IsPublic(route) {
			return Allowed
		}
		return RedirectTo(PathPendingActivation)
	}
	if route == PathPendingActivation {
		return RedirectTo(PathHome)
	}

	if len(requiredRoles) > 0 && !snap.Profile.HasRole(requiredRoles...) {
		return RedirectTo(PathHome)
	}

	return Allowed
}
