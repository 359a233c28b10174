package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/dto"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/service"
)

// AdminHandler exposes the activation queue and user management.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListRegistrations handles GET /admin/registrations. Defaults to the pending
// queue; ?status= and ?role= narrow it.
func (h *AdminHandler) ListRegistrations(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	filter := repository.ProfileFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("status", string(domain.StatusPending)); raw != "" {
		status := domain.AccountStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("role"); raw != "" {
		role := domain.Role(raw)
		filter.Role = &role
	}

	profiles, err := h.admin.ListRegistrations(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}

	out := make([]*dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.NewProfileResponse(p))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Approve handles POST /admin/registrations/:id/approve.
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	profile, err := h.admin.Approve(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// Reject handles POST /admin/registrations/:id/reject.
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.RejectRequest
	// Body is optional; a bare reject carries no reason.
	_ = c.BodyParser(&req)

	profile, err := h.admin.Reject(c.UserContext(), actor, c.Params("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.admin.DeleteUser(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
