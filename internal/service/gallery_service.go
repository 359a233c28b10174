package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	apperrors "github.com/InnovationLadders/myprojectplateform12-sub002/pkg/util"
)

// GalleryService manages showcase items. Uploads are gated to teachers,
// schools and admins; browsing is open to any authenticated account.
type GalleryService struct {
	gallery repository.GalleryRepository
}

// NewGalleryService constructs the service.
func NewGalleryService(gallery repository.GalleryRepository) *GalleryService {
	return &GalleryService{gallery: gallery}
}

// GalleryInput describes an upload.
type GalleryInput struct {
	Title       string
	Description string
	ImageURL    string
	ProjectID   *string
}

// Create adds a gallery item.
func (s *GalleryService) Create(ctx context.Context, actor *domain.Profile, input GalleryInput) (*domain.GalleryItem, error) {
	if !actor.HasRole(domain.RoleTeacher, domain.RoleSchool, domain.RoleAdmin) {
		return nil, apperrors.NewForbidden("role cannot upload to gallery")
	}
	if input.ImageURL == "" {
		return nil, apperrors.NewValidationError("image_url required", nil)
	}

	item := &domain.GalleryItem{
		ID:          uuid.NewString(),
		UploaderID:  actor.ID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ProjectID:   input.ProjectID,
	}
	if err := s.gallery.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns gallery items.
func (s *GalleryService) List(ctx context.Context, filter repository.GalleryFilter) ([]*domain.GalleryItem, error) {
	return s.gallery.List(ctx, filter)
}

// Delete removes an item the caller uploaded (admins delete any).
func (s *GalleryService) Delete(ctx context.Context, actor *domain.Profile, id string) error {
	item, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("gallery item", nil)
		}
		return err
	}
	if item.UploaderID != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("not the uploader")
	}
	return s.gallery.Delete(ctx, id)
}
