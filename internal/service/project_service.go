package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

// ProjectService scopes project CRUD by the caller's role.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService constructs the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// ProjectCreateInput describes project creation payload.
type ProjectCreateInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
}

// Create opens a draft project owned by the calling student.
func (s *ProjectService) Create(ctx context.Context, actor *domain.Profile, input ProjectCreateInput) (*domain.Project, error) {
	if actor.Role != domain.RoleStudent {
		return nil, apperrors.NewForbidden("only students create projects")
	}
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		OwnerID:     actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Status:      domain.ProjectStatusDraft,
		Tags:        input.Tags,
	}
	if actor.Student != nil && actor.Student.SchoolID != "" {
		schoolID := actor.Student.SchoolID
		project.SchoolID = &schoolID
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// List returns the projects visible to the caller: students see their own,
// teachers see their school's, admins see everything.
func (s *ProjectService) List(ctx context.Context, actor *domain.Profile, filter repository.ProjectFilter) ([]*domain.Project, error) {
	switch actor.Role {
	case domain.RoleStudent:
		ownerID := actor.ID
		filter.OwnerID = &ownerID
	case domain.RoleTeacher:
		if actor.Teacher == nil || actor.Teacher.SchoolID == "" {
			return nil, apperrors.NewForbidden("teacher has no school")
		}
		schoolID := actor.Teacher.SchoolID
		filter.SchoolID = &schoolID
	case domain.RoleAdmin:
		// unscoped
	default:
		return nil, apperrors.NewForbidden("role cannot list projects")
	}
	return s.projects.List(ctx, filter)
}

// ProjectPatch carries updatable fields.
type ProjectPatch struct {
	Title       *string
	Description *string
	Category    *string
	Status      *domain.ProjectStatus
	TeacherID   *string
	Tags        []string
}

// Update applies a patch; owners edit content, supervising teachers and
// admins may also move status.
func (s *ProjectService) Update(ctx context.Context, actor *domain.Profile, id string, patch ProjectPatch) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("project", nil)
		}
		return nil, err
	}
	if !s.canModify(actor, project) {
		return nil, apperrors.NewForbidden("not allowed to modify project")
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.TeacherID != nil {
		project.TeacherID = patch.TeacherID
	}
	if patch.Tags != nil {
		project.Tags = patch.Tags
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project the caller owns (or any, for admins).
func (s *ProjectService) Delete(ctx context.Context, actor *domain.Profile, id string) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("project", nil)
		}
		return err
	}
	if !s.canModify(actor, project) {
		return apperrors.NewForbidden("not allowed to delete project")
	}
	return s.projects.Delete(ctx, id)
}

// Get returns one project if the caller may see it.
func (s *ProjectService) Get(ctx context.Context, actor *domain.Profile, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("project", nil)
		}
		return nil, err
	}
	if !s.canView(actor, project) {
		return nil, apperrors.NewForbidden("not allowed to view project")
	}
	return project, nil
}

func (s *ProjectService) canModify(actor *domain.Profile, project *domain.Project) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleStudent:
		return project.OwnerID == actor.ID
	case domain.RoleTeacher:
		return project.TeacherID != nil && *project.TeacherID == actor.ID
	}
	return false
}

func (s *ProjectService) canView(actor *domain.Profile, project *domain.Project) bool {
	if s.canModify(actor, project) {
		return true
	}
	if actor.Role == domain.RoleTeacher && actor.Teacher != nil && project.SchoolID != nil {
		return actor.Teacher.SchoolID == *project.SchoolID
	}
	return false
}
