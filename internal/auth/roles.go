package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// Guarded applies the access guard to the request: pending accounts are sent
// to the activation page before any role check, role mismatches go home.
// Guard redirects surface as HTTP 302 with the policy path.
func Guarded(guard *session.Guard, requiredRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, _ := SnapshotFromContext(c)
		decision := guard.Decide(snap, c.Path(), requiredRoles)
		switch decision.Kind {
		case session.DecisionAllow:
			return c.Next()
		case session.DecisionRedirect:
			return c.Redirect(decision.Path, fiber.StatusFound)
		default:
			// Resolution not settled; nothing to render yet.
			return c.SendStatus(fiber.StatusAccepted)
		}
	}
}

// RequireRole ensures the caller holds one of the allowed roles. Unlike
// Guarded it answers 403 instead of redirecting, for API-style routes.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, ok := ProfileFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		if !profile.HasRole(allowed...) {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireActive blocks pending, rejected and suspended accounts from
// API-style routes.
func RequireActive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, ok := ProfileFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		if profile.Status != domain.StatusActive {
			return fiber.NewError(fiber.StatusForbidden, "account not active")
		}
		return c.Next()
	}
}
