package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/dto"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
)

// PagesHandler serves the navigation destinations the access guard redirects
// to. They return JSON page descriptors rather than markup; clients render
// the page named in "page".
type PagesHandler struct{}

// NewPagesHandler constructs the handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	snap, _ := auth.SnapshotFromContext(c)
	return c.JSON(fiber.Map{
		"page":    "home",
		"profile": dto.NewProfileResponse(snap.Profile),
		"offline": snap.Offline,
	})
}

// Login handles GET /login, the public sign-in destination.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}

// RegisterPage handles GET /register.
func (h *PagesHandler) RegisterPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "register"})
}

// PendingActivation handles GET /pending-activation: the holding page for
// accounts awaiting admin review. The guard keeps pending accounts here and
// bounces settled accounts home.
func (h *PagesHandler) PendingActivation(c *fiber.Ctx) error {
	snap, _ := auth.SnapshotFromContext(c)
	return c.JSON(fiber.Map{
		"page":    "pending-activation",
		"profile": dto.NewProfileResponse(snap.Profile),
	})
}

// PublicEnroll handles GET /public/enroll, reachable without a session.
func (h *PagesHandler) PublicEnroll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":  "public-enroll",
		"roles": []string{"student", "teacher", "school", "consultant"},
	})
}
