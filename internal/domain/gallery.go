package domain

import "time"

// GalleryItem is a showcase record (project photos, school events).
type GalleryItem struct {
	ID          string
	UploaderID  string
	Title       string
	Description string
	ImageURL    string
	ProjectID   *string
	CreatedAt   time.Time
}
