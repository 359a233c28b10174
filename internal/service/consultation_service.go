package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

// ConsultationService runs the booking marketplace between students and
// approved consultants.
type ConsultationService struct {
	consultations repository.ConsultationRepository
	profiles      repository.ProfileRepository
	dispatcher    events.Dispatcher
}

// NewConsultationService constructs the service.
func NewConsultationService(consultations repository.ConsultationRepository, profiles repository.ProfileRepository, dispatcher events.Dispatcher) *ConsultationService {
	return &ConsultationService{consultations: consultations, profiles: profiles, dispatcher: dispatcher}
}

// BookInput describes a booking request.
type BookInput struct {
	ConsultantID string
	Topic        string
	Notes        string
	ScheduledAt  time.Time
	DurationMin  int
}

// Book creates a requested consultation. Only active consultants are
// bookable; a pending or rejected consultant never appears available.
func (s *ConsultationService) Book(ctx context.Context, actor *domain.Profile, input BookInput) (*domain.Consultation, error) {
	if actor.Role != domain.RoleStudent {
		return nil, apperrors.NewForbidden("only students book consultations")
	}

	consultant, err := s.profiles.GetByID(ctx, input.ConsultantID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("consultant", nil)
		}
		return nil, err
	}
	if consultant.Role != domain.RoleConsultant {
		return nil, apperrors.NewValidationError("profile is not a consultant", nil)
	}
	if consultant.Status != domain.StatusActive {
		return nil, apperrors.NewConflict("consultant not active", nil)
	}

	consultation := &domain.Consultation{
		ID:           uuid.NewString(),
		StudentID:    actor.ID,
		ConsultantID: consultant.ID,
		Topic:        input.Topic,
		Notes:        input.Notes,
		ScheduledAt:  input.ScheduledAt,
		DurationMin:  input.DurationMin,
		Status:       domain.ConsultationStatusRequested,
	}
	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, err
	}

	s.publish(ctx, actor, consultation, events.EventConsultationBooked, events.ConsultationBookedPayload{
		StudentID:    actor.ID,
		ConsultantID: consultant.ID,
		ScheduledAt:  consultation.ScheduledAt,
		Topic:        consultation.Topic,
	})
	return consultation, nil
}

// List returns bookings visible to the caller: students and consultants see
// their own side, admins see everything.
func (s *ConsultationService) List(ctx context.Context, actor *domain.Profile, filter repository.ConsultationFilter) ([]*domain.Consultation, error) {
	switch actor.Role {
	case domain.RoleStudent:
		id := actor.ID
		filter.StudentID = &id
	case domain.RoleConsultant:
		id := actor.ID
		filter.ConsultantID = &id
	case domain.RoleAdmin:
		// unscoped
	default:
		return nil, apperrors.NewForbidden("role cannot list consultations")
	}
	return s.consultations.List(ctx, filter)
}

// Confirm moves a requested booking to confirmed; only the booked consultant
// may confirm.
func (s *ConsultationService) Confirm(ctx context.Context, actor *domain.Profile, id string) (*domain.Consultation, error) {
	return s.setStatus(ctx, actor, id, domain.ConsultationStatusConfirmed, events.EventConsultationConfirmed)
}

// Cancel moves a booking to cancelled; either party may cancel a booking
// that is not completed.
func (s *ConsultationService) Cancel(ctx context.Context, actor *domain.Profile, id string) (*domain.Consultation, error) {
	return s.setStatus(ctx, actor, id, domain.ConsultationStatusCancelled, events.EventConsultationCancelled)
}

// Complete marks a confirmed booking completed; only the booked consultant
// may complete.
func (s *ConsultationService) Complete(ctx context.Context, actor *domain.Profile, id string) (*domain.Consultation, error) {
	return s.setStatus(ctx, actor, id, domain.ConsultationStatusCompleted, "")
}

func (s *ConsultationService) setStatus(ctx context.Context, actor *domain.Profile, id string, to domain.ConsultationStatus, eventType events.EventType) (*domain.Consultation, error) {
	consultation, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("consultation", nil)
		}
		return nil, err
	}

	if !s.mayTransition(actor, consultation, to) {
		return nil, apperrors.NewForbidden("not allowed to change consultation")
	}
	if !validConsultationTransition(consultation.Status, to) {
		return nil, apperrors.NewConflict("invalid booking transition",
			map[string]any{"from": string(consultation.Status), "to": string(to)})
	}

	old := consultation.Status
	consultation.Status = to
	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, err
	}

	if eventType != "" {
		s.publish(ctx, actor, consultation, eventType, events.ConsultationStatusPayload{
			OldStatus: old,
			NewStatus: to,
		})
	}
	return consultation, nil
}

func (s *ConsultationService) mayTransition(actor *domain.Profile, c *domain.Consultation, to domain.ConsultationStatus) bool {
	if actor.IsAdmin() {
		return true
	}
	switch to {
	case domain.ConsultationStatusConfirmed, domain.ConsultationStatusCompleted:
		return actor.ID == c.ConsultantID
	case domain.ConsultationStatusCancelled:
		return actor.ID == c.ConsultantID || actor.ID == c.StudentID
	}
	return false
}

func validConsultationTransition(from, to domain.ConsultationStatus) bool {
	switch from {
	case domain.ConsultationStatusRequested:
		return to == domain.ConsultationStatusConfirmed || to == domain.ConsultationStatusCancelled
	case domain.ConsultationStatusConfirmed:
		return to == domain.ConsultationStatusCompleted || to == domain.ConsultationStatusCancelled
	}
	return false
}

func (s *ConsultationService) publish(ctx context.Context, actor *domain.Profile, c *domain.Consultation, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: c.ID,
		Actor:     events.Actor{ProfileID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
