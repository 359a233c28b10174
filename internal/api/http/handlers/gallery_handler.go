package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/dto"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/service"
)

// GalleryHandler exposes the showcase gallery.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler constructs the handler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// Create handles POST /gallery.
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.GalleryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.gallery.Create(c.UserContext(), actor, service.GalleryInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewGalleryItemResponse(item)})
}

// List handles GET /gallery.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	filter := repository.GalleryFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("project_id"); raw != "" {
		projectID := raw
		filter.ProjectID = &projectID
	}
	if raw := c.Query("uploader_id"); raw != "" {
		uploaderID := raw
		filter.UploaderID = &uploaderID
	}

	items, err := h.gallery.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGalleryItemResponses(items)})
}

// Delete handles DELETE /gallery/:id.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.gallery.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
