package dto

import (
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ResourceRequest payload for create/update of library records.
type ResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Subject     string `json:"subject"`
}

// ResourceResponse wire form of a library record.
type ResourceResponse struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Subject     string    `json:"subject,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewResourceResponse maps a record to its wire form.
func NewResourceResponse(r *domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		Title:       r.Title,
		Description: r.Description,
		Type:        string(r.Type),
		URL:         r.URL,
		Subject:     r.Subject,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// NewResourceResponses maps a slice.
func NewResourceResponses(resources []*domain.Resource) []*ResourceResponse {
	out := make([]*ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, NewResourceResponse(r))
	}
	return out
}

// GalleryCreateRequest payload for gallery uploads.
type GalleryCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	ProjectID   *string `json:"project_id,omitempty"`
}

// GalleryItemResponse wire form of a gallery item.
type GalleryItemResponse struct {
	ID          string    `json:"id"`
	UploaderID  string    `json:"uploader_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	ProjectID   *string   `json:"project_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGalleryItemResponse maps an item to its wire form.
func NewGalleryItemResponse(item *domain.GalleryItem) *GalleryItemResponse {
	return &GalleryItemResponse{
		ID:          item.ID,
		UploaderID:  item.UploaderID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		ProjectID:   item.ProjectID,
		CreatedAt:   item.CreatedAt,
	}
}

// NewGalleryItemResponses maps a slice.
func NewGalleryItemResponses(items []*domain.GalleryItem) []*GalleryItemResponse {
	out := make([]*GalleryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewGalleryItemResponse(item))
	}
	return out
}
