package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/dto"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/service"
)

// ConsultationHandler exposes consultation booking.
type ConsultationHandler struct {
	consultations *service.ConsultationService
}

// NewConsultationHandler constructs the handler.
func NewConsultationHandler(consultations *service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// Book handles POST /consultations.
func (h *ConsultationHandler) Book(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ConsultationBookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ConsultantID == "" || req.ScheduledAt.IsZero() {
		return fiber.NewError(http.StatusBadRequest, "consultant_id and scheduled_at required")
	}

	consultation, err := h.consultations.Book(c.UserContext(), actor, service.BookInput{
		ConsultantID: req.ConsultantID,
		Topic:        req.Topic,
		Notes:        req.Notes,
		ScheduledAt:  req.ScheduledAt,
		DurationMin:  req.DurationMin,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewConsultationResponse(consultation)})
}

// List handles GET /consultations.
func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	filter := repository.ConsultationFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ConsultationStatus(raw)
		filter.Status = &status
	}

	consultations, err := h.consultations.List(c.UserContext(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewConsultationResponses(consultations)})
}

// Confirm handles POST /consultations/:id/confirm.
func (h *ConsultationHandler) Confirm(c *fiber.Ctx) error {
	return h.transition(c, h.consultations.Confirm)
}

// Cancel handles POST /consultations/:id/cancel.
func (h *ConsultationHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.consultations.Cancel)
}

// Complete handles POST /consultations/:id/complete.
func (h *ConsultationHandler) Complete(c *fiber.Ctx) error {
	return h.transition(c, h.consultations.Complete)
}

func (h *ConsultationHandler) transition(
	c *fiber.Ctx,
	apply func(ctx context.Context, actor *domain.Profile, id string) (*domain.Consultation, error),
) error {
	actor, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	consultation, err := apply(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewConsultationResponse(consultation)})
}
