package domain

import "time"

// ResourceType enumerates library record kinds.
type ResourceType string

const (
	ResourceTypeArticle  ResourceType = "article"
	ResourceTypeVideo    ResourceType = "video"
	ResourceTypeDocument ResourceType = "document"
	ResourceTypeLink     ResourceType = "link"
)

// Resource is a library record published by a teacher, consultant or admin.
type Resource struct {
	ID          string
	AuthorID    string
	Title       string
	Description string
	Type        ResourceType
	URL         string
	Subject     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
