package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

// AdminService owns the activation workflow: only these operations move a
// profile out of pending, and only an admin actor may call them.
type AdminService struct {
	profiles   repository.ProfileRepository
	cache      repository.ProfileCache
	dispatcher events.Dispatcher
}

// NewAdminService builds the service.
func NewAdminService(profiles repository.ProfileRepository, cache repository.ProfileCache, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{profiles: profiles, cache: cache, dispatcher: dispatcher}
}

// ListRegistrations returns profiles filtered by status/role for the approval
// queue.
func (s *AdminService) ListRegistrations(ctx context.Context, actor *domain.Profile, filter repository.ProfileFilter) ([]*domain.Profile, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("admin role required")
	}
	return s.profiles.List(ctx, filter)
}

// Approve transitions a pending profile to active, stamping the acting admin.
func (s *AdminService) Approve(ctx context.Context, actor *domain.Profile, profileID string) (*domain.Profile, error) {
	return s.transition(ctx, actor, profileID, "", session.Approve)
}

// Reject transitions a pending profile to rejected with an optional reason,
// persisted on the profile so the user sees it later.
func (s *AdminService) Reject(ctx context.Context, actor *domain.Profile, profileID, reason string) (*domain.Profile, error) {
	apply := func(profile *domain.Profile, adminID string, now time.Time) error {
		if err := session.Reject(profile, adminID, now); err != nil {
			return err
		}
		if reason != "" {
			profile.RejectionReason = &reason
		}
		return nil
	}
	return s.transition(ctx, actor, profileID, reason, apply)
}

func (s *AdminService) transition(
	ctx context.Context,
	actor *domain.Profile,
	profileID, reason string,
	apply func(*domain.Profile, string, time.Time) error,
) (*domain.Profile, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("admin role required")
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}

	before := profile.Status
	if err := apply(profile, actor.ID, time.Now()); err != nil {
		return nil, apperrors.NewConflict(err.Error(), map[string]any{"status": string(before)})
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	if s.cache != nil {
		// A stale cached snapshot here would keep a just-approved account on
		// the activation page until TTL expiry.
		_ = s.cache.Invalidate(ctx, profile.ID)
	}

	s.publishTransition(ctx, actor, profile, reason)
	return profile, nil
}

func (s *AdminService) publishTransition(ctx context.Context, actor, profile *domain.Profile, reason string) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		SubjectID: profile.ID,
		Actor:     events.Actor{ProfileID: actor.ID, Role: actor.Role},
		Timestamp: time.Now(),
	}
	if profile.Status == domain.StatusActive {
		event.Type = events.EventAccountApproved
		event.Payload = events.AccountApprovedPayload{Role: profile.Role, ApprovedBy: actor.ID}
	} else {
		event.Type = events.EventAccountRejected
		event.Payload = events.AccountRejectedPayload{Role: profile.Role, RejectedBy: actor.ID, Reason: reason}
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// DeleteUser is the destructive escape hatch, outside the activation state
// machine.
func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.Profile, profileID string) error {
	if !actor.IsAdmin() {
		return apperrors.NewForbidden("admin role required")
	}
	if err := s.profiles.Delete(ctx, profileID); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("profile", nil)
		}
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, profileID)
	}
	return nil
}
