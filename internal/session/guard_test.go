package session

import (
	"testing"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

func profileWith(role domain.Role, status domain.AccountStatus) *domain.Profile {
	return &domain.Profile{ID: "p1", Role: role, Status: status}
}

func TestGuardWaitsWhileLoading(t *testing.T) {
	g := NewGuard()
	d := g.Decide(Snapshot{Loading: true}, "/projects", nil)
	if d.Kind != DecisionWait {
		t.Fatalf("loading session got %v, want wait", d.Kind)
	}
}

func TestGuardAnonymous(t *testing.T) {
	g := NewGuard()

	cases := []struct {
		route string
		want  Decision
	}{
		{PathLogin, Allowed},
		{PathRegister, Allowed},
		{PathPublicEnroll, Allowed},
		{PathHome, RedirectTo(PathLogin)},
		{"/projects", RedirectTo(PathLogin)},
		{PathPendingActivation, RedirectTo(PathLogin)},
	}
	for _, tc := range cases {
		if got := g.Decide(Snapshot{}, tc.route, nil); got != tc.want {
			t.Errorf("anonymous %s: got %+v, want %+v", tc.route, got, tc.want)
		}
	}
}

func TestGuardPendingBeforeRoleCheck(t *testing.T) {
	g := NewGuard()
	snap := Snapshot{Profile: profileWith(domain.RoleConsultant, domain.StatusPending)}

	// A pending consultant hitting an admin-only route must land on the
	// activation page, not bounce home off the role mismatch.
	d := g.Decide(snap, "/admin", []domain.Role{domain.RoleAdmin})
	if d != RedirectTo(PathPendingActivation) {
		t.Fatalf("pending consultant on admin route: got %+v", d)
	}
}

func TestGuardPendingRoutes(t *testing.T) {
	g := NewGuard()
	snap := Snapshot{Profile: profileWith(domain.RoleSchool, domain.StatusPending)}

	if d := g.Decide(snap, PathPendingActivation, nil); d != Allowed {
		t.Errorf("pending account blocked from activation page: %+v", d)
	}
	if d := g.Decide(snap, PathPublicEnroll, nil); d != Allowed {
		t.Errorf("pending account blocked from public route: %+v", d)
	}
	if d := g.Decide(snap, PathHome, nil); d != RedirectTo(PathPendingActivation) {
		t.Errorf("pending account on home: got %+v", d)
	}
}

func TestGuardSettledAccountLeavesActivationPage(t *testing.T) {
	g := NewGuard()
	snap := Snapshot{Profile: profileWith(domain.RoleConsultant, domain.StatusActive)}

	if d := g.Decide(snap, PathPendingActivation, nil); d != RedirectTo(PathHome) {
		t.Fatalf("active account stuck on activation page: %+v", d)
	}
}

func TestGuardRoleMismatchGoesHome(t *testing.T) {
	g := NewGuard()
	snap := Snapshot{Profile: profileWith(domain.RoleStudent, domain.StatusActive)}

	if d := g.Decide(snap, "/admin", []domain.Role{domain.RoleAdmin}); d != RedirectTo(PathHome) {
		t.Fatalf("role mismatch: got %+v, want home redirect", d)
	}
}

func TestGuardAllows(t *testing.T) {
	g := NewGuard()

	active := Snapshot{Profile: profileWith(domain.RoleTeacher, domain.StatusActive)}
	if d := g.Decide(active, "/resources", []domain.Role{domain.RoleTeacher, domain.RoleAdmin}); d != Allowed {
		t.Errorf("matching role denied: %+v", d)
	}
	if d := g.Decide(active, "/resources", nil); d != Allowed {
		t.Errorf("unrestricted route denied: %+v", d)
	}

	// Rejected and suspended accounts are not pending: they pass the status
	// gate here and are handled by route-level policy.
	rejected := Snapshot{Profile: profileWith(domain.RoleConsultant, domain.StatusRejected)}
	if d := g.Decide(rejected, PathHome, nil); d != Allowed {
		t.Errorf("rejected account on home: %+v", d)
	}
}

func TestGuardOfflineDoesNotBlock(t *testing.T) {
	g := NewGuard()
	snap := Snapshot{Profile: profileWith(domain.RoleStudent, domain.StatusActive), Offline: true}

	if d := g.Decide(snap, PathHome, nil); d != Allowed {
		t.Fatalf("offline session locked out: %+v", d)
	}
}
