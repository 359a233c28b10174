package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

// ResourceService manages the shared library. Listing is open to any active
// account; publishing is gated to teachers, consultants and admins.
type ResourceService struct {
	resources repository.ResourceRepository
}

// NewResourceService constructs the service.
func NewResourceService(resources repository.ResourceRepository) *ResourceService {
	return &ResourceService{resources: resources}
}

// ResourceInput describes a library record.
type ResourceInput struct {
	Title       string
	Description string
	Type        domain.ResourceType
	URL         string
	Subject     string
}

// Create publishes a new resource.
func (s *ResourceService) Create(ctx context.Context, actor *domain.Profile, input ResourceInput) (*domain.Resource, error) {
	if !actor.HasRole(domain.RoleTeacher, domain.RoleConsultant, domain.RoleAdmin) {
		return nil, apperrors.NewForbidden("role cannot publish resources")
	}
	if input.Title == "" || input.URL == "" {
		return nil, apperrors.NewValidationError("title and url required", nil)
	}

	resource := &domain.Resource{
		ID:          uuid.NewString(),
		AuthorID:    actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		URL:         input.URL,
		Subject:     input.Subject,
	}
	if err := s.resources.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// List returns library records; the filter is caller-supplied, no scoping
// beyond authentication.
func (s *ResourceService) List(ctx context.Context, filter repository.ResourceFilter) ([]*domain.Resource, error) {
	return s.resources.List(ctx, filter)
}

// Update edits a record the caller authored (admins edit any).
func (s *ResourceService) Update(ctx context.Context, actor *domain.Profile, id string, input ResourceInput) (*domain.Resource, error) {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("resource", nil)
		}
		return nil, err
	}
	if resource.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("not the author")
	}

	if input.Title != "" {
		resource.Title = input.Title
	}
	if input.Description != "" {
		resource.Description = input.Description
	}
	if input.Type != "" {
		resource.Type = input.Type
	}
	if input.URL != "" {
		resource.URL = input.URL
	}
	if input.Subject != "" {
		resource.Subject = input.Subject
	}

	if err := s.resources.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Delete removes a record the caller authored (admins delete any).
func (s *ResourceService) Delete(ctx context.Context, actor *domain.Profile, id string) error {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("resource", nil)
		}
		return err
	}
	if resource.AuthorID != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("not the author")
	}
	return s.resources.Delete(ctx, id)
}
