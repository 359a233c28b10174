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

// ResourceHandler exposes the shared educational library.
type ResourceHandler struct {
	resources *service.ResourceService
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// Create handles POST /resources.
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	resource, err := h.resources.Create(c.UserContext(), actor, service.ResourceInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.ResourceType(req.Type),
		URL:         req.URL,
		Subject:     req.Subject,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewResourceResponse(resource)})
}

// List handles GET /resources.
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	filter := repository.ResourceFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("type"); raw != "" {
		rt := domain.ResourceType(raw)
		filter.Type = &rt
	}
	if raw := c.Query("subject"); raw != "" {
		subject := raw
		filter.Subject = &subject
	}

	resources, err := h.resources.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewResourceResponses(resources)})
}

// Update handles PATCH /resources/:id.
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	resource, err := h.resources.Update(c.UserContext(), actor, c.Params("id"), service.ResourceInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.ResourceType(req.Type),
		URL:         req.URL,
		Subject:     req.Subject,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewResourceResponse(resource)})
}

// Delete handles DELETE /resources/:id.
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.resources.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
