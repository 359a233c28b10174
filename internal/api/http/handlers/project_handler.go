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

// ProjectHandler exposes student project CRUD.
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler constructs the handler.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.Create(c.UserContext(), actor, service.ProjectCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}

// List handles GET /projects.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	filter := repository.ProjectFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ProjectStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("category"); raw != "" {
		category := raw
		filter.Category = &category
	}

	projects, err := h.projects.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProjectResponses(projects)})
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	project, err := h.projects.Get(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}

// Update handles PATCH /projects/:id.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ProjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch := service.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TeacherID:   req.TeacherID,
		Tags:        req.Tags,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		patch.Status = &status
	}

	project, err := h.projects.Update(c.UserContext(), actor, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProjectResponse(project)})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.projects.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
