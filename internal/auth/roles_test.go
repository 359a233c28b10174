package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// withSnapshot installs a fixed session snapshot, standing in for the token
// middleware.
func withSnapshot(snap session.Snapshot) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session_snapshot", snap)
		return c.Next()
	}
}

func guardApp(snap session.Snapshot, roles ...domain.Role) *fiber.App {
	app := fiber.New()
	guard := session.NewGuard()
	app.Get("/admin", withSnapshot(snap), Guarded(guard, roles...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/pending-activation", withSnapshot(snap), Guarded(guard), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestGuardedRedirectsAnonymousToLogin(t *testing.T) {
	app := guardApp(session.Snapshot{})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != session.PathLogin {
		t.Errorf("Location = %q, want %q", loc, session.PathLogin)
	}
}

func TestGuardedSendsPendingToActivationPage(t *testing.T) {
	snap := session.Snapshot{
		Profile: &domain.Profile{ID: "c1", Role: domain.RoleConsultant, Status: domain.StatusPending},
	}
	app := guardApp(snap, domain.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	// The pending redirect must win over the role mismatch.
	if loc := resp.Header.Get("Location"); loc != session.PathPendingActivation {
		t.Fatalf("Location = %q, want activation page", loc)
	}
}

func TestGuardedAllowsMatchingRole(t *testing.T) {
	snap := session.Snapshot{
		Profile: &domain.Profile{ID: "a1", Role: domain.RoleAdmin, Status: domain.StatusActive},
	}
	app := guardApp(snap, domain.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGuardedWaitAnswersAccepted(t *testing.T) {
	app := guardApp(session.Snapshot{Loading: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusAccepted {
		t.Fatalf("status = %d, want 202 while resolution settles", resp.StatusCode)
	}
}

func TestRequireActiveBlocksPending(t *testing.T) {
	snap := session.Snapshot{
		Profile: &domain.Profile{ID: "c1", Role: domain.RoleConsultant, Status: domain.StatusPending},
	}
	app := fiber.New()
	app.Get("/consultations", withSnapshot(snap), RequireActive(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/consultations", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireRole(t *testing.T) {
	snap := session.Snapshot{
		Profile: &domain.Profile{ID: "s1", Role: domain.RoleStudent, Status: domain.StatusActive},
	}
	app := fiber.New()
	app.Get("/admin", withSnapshot(snap), RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/projects", withSnapshot(snap), RequireRole(domain.RoleStudent, domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("mismatched role: status = %d, want 403", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/projects", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("matching role: status = %d, want 200", resp.StatusCode)
	}
}
