package domain

import "time"

// ProjectStatus enumerates lifecycle states for student projects.
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project is a student work item, optionally supervised by a teacher.
type Project struct {
	ID          string
	OwnerID     string
	SchoolID    *string
	TeacherID   *string
	Title       string
	Description string
	Category    string
	Status      ProjectStatus
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
