package dto

import (
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ProjectCreateRequest payload for new projects.
type ProjectCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// ProjectUpdateRequest payload for project patches.
type ProjectUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Status      *string  `json:"status,omitempty"`
	TeacherID   *string  `json:"teacher_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ProjectResponse wire form of a project.
type ProjectResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	SchoolID    *string   `json:"school_id,omitempty"`
	TeacherID   *string   `json:"teacher_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProjectResponse maps a project to its wire form.
func NewProjectResponse(p *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		SchoolID:    p.SchoolID,
		TeacherID:   p.TeacherID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Status:      string(p.Status),
		Tags:        p.Tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewProjectResponses maps a slice.
func NewProjectResponses(projects []*domain.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
