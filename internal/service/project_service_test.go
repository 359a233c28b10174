package service

import (
	"context"
	"errors"
	"testing"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

type mockProjectRepo struct {
	create  func(ctx context.Context, p *domain.Project) error
	update  func(ctx context.Context, p *domain.Project) error
	getByID func(ctx context.Context, id string) (*domain.Project, error)
	list    func(ctx context.Context, f repository.ProjectFilter) ([]*domain.Project, error)
	delete  func(ctx context.Context, id string) error
}

var _ repository.ProjectRepository = (*mockProjectRepo)(nil)

func (m *mockProjectRepo) Create(ctx context.Context, p *domain.Project) error { return m.create(ctx, p) }
func (m *mockProjectRepo) Update(ctx context.Context, p *domain.Project) error { return m.update(ctx, p) }
func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return m.getByID(ctx, id)
}
func (m *mockProjectRepo) List(ctx context.Context, f repository.ProjectFilter) ([]*domain.Project, error) {
	return m.list(ctx, f)
}
func (m *mockProjectRepo) Delete(ctx context.Context, id string) error { return m.delete(ctx, id) }

func studentWithSchool() *domain.Profile {
	return &domain.Profile{
		ID:      "stu-1",
		Role:    domain.RoleStudent,
		Status:  domain.StatusActive,
		Student: &domain.StudentAttrs{SchoolID: "sch-1", Grade: "10"},
	}
}

func TestProjectCreateStartsDraft(t *testing.T) {
	var created *domain.Project
	repo := &mockProjectRepo{
		create: func(_ context.Context, p *domain.Project) error {
			created = p
			return nil
		},
	}
	svc := NewProjectService(repo)

	p, err := svc.Create(context.Background(), studentWithSchool(), ProjectCreateInput{Title: "solar car"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != domain.ProjectStatusDraft {
		t.Errorf("status = %s, want draft", p.Status)
	}
	if created.SchoolID == nil || *created.SchoolID != "sch-1" {
		t.Errorf("school not carried from student attrs: %+v", created.SchoolID)
	}
}

func TestProjectCreateNonStudentForbidden(t *testing.T) {
	svc := NewProjectService(&mockProjectRepo{})
	teacher := &domain.Profile{ID: "t1", Role: domain.RoleTeacher, Status: domain.StatusActive}

	_, err := svc.Create(context.Background(), teacher, ProjectCreateInput{Title: "x"})
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.HTTPStatus != 403 {
		t.Fatalf("teacher creating a project: got %v, want forbidden", err)
	}
}

func TestProjectListScoping(t *testing.T) {
	var gotFilter repository.ProjectFilter
	repo := &mockProjectRepo{
		list: func(_ context.Context, f repository.ProjectFilter) ([]*domain.Project, error) {
			gotFilter = f
			return nil, nil
		},
	}
	svc := NewProjectService(repo)

	if _, err := svc.List(context.Background(), studentWithSchool(), repository.ProjectFilter{}); err != nil {
		t.Fatal(err)
	}
	if gotFilter.OwnerID == nil || *gotFilter.OwnerID != "stu-1" {
		t.Errorf("student list not owner-scoped: %+v", gotFilter)
	}

	teacher := &domain.Profile{
		ID: "t1", Role: domain.RoleTeacher, Status: domain.StatusActive,
		Teacher: &domain.TeacherAttrs{SchoolID: "sch-1"},
	}
	if _, err := svc.List(context.Background(), teacher, repository.ProjectFilter{}); err != nil {
		t.Fatal(err)
	}
	if gotFilter.SchoolID == nil || *gotFilter.SchoolID != "sch-1" {
		t.Errorf("teacher list not school-scoped: %+v", gotFilter)
	}
}

func TestProjectUpdateOwnershipEnforced(t *testing.T) {
	stored := &domain.Project{ID: "p1", OwnerID: "someone-else", Status: domain.ProjectStatusDraft}
	repo := &mockProjectRepo{
		getByID: func(context.Context, string) (*domain.Project, error) { return stored, nil },
	}
	svc := NewProjectService(repo)

	title := "renamed"
	_, err := svc.Update(context.Background(), studentWithSchool(), "p1", ProjectPatch{Title: &title})
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.HTTPStatus != 403 {
		t.Fatalf("editing a foreign project: got %v, want forbidden", err)
	}
}
