package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// GalleryFilter scopes gallery listings.
type GalleryFilter struct {
	UploaderID *string
	ProjectID  *string
	Limit      int
	Offset     int
}

// GalleryRepository defines persistence access for gallery items.
type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	GetByID(ctx context.Context, id string) (*domain.GalleryItem, error)
	List(ctx context.Context, filter GalleryFilter) ([]*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type galleryRepository struct {
	pool *pgxpool.Pool
}

// NewGalleryRepository returns a Postgres-backed implementation.
func NewGalleryRepository(pool *pgxpool.Pool) GalleryRepository {
	return &galleryRepository{pool: pool}
}

const galleryColumns = `id, uploader_id, title, description, image_url, project_id, created_at`

func (r *galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	const query = `
        INSERT INTO gallery_items (id, uploader_id, title, description, image_url, project_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		item.ID, item.UploaderID, item.Title, item.Description, item.ImageURL, item.ProjectID,
	).Scan(&item.CreatedAt)
	return classify("gallery.create", err)
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryItem, error) {
	const query = `SELECT ` + galleryColumns + ` FROM gallery_items WHERE id=$1`

	var item domain.GalleryItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.UploaderID, &item.Title, &item.Description, &item.ImageURL,
		&item.ProjectID, &item.CreatedAt,
	); err != nil {
		return nil, classify("gallery.get_by_id", err)
	}
	return &item, nil
}

func (r *galleryRepository) List(ctx context.Context, filter GalleryFilter) ([]*domain.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items WHERE 1=1`
	args := []any{}
	if filter.UploaderID != nil {
		args = append(args, *filter.UploaderID)
		query += fmt.Sprintf(` AND uploader_id=$%d`, len(args))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		query += fmt.Sprintf(` AND project_id=$%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("gallery.list", err)
	}
	defer rows.Close()

	var items []*domain.GalleryItem
	for rows.Next() {
		var item domain.GalleryItem
		if err := rows.Scan(
			&item.ID, &item.UploaderID, &item.Title, &item.Description, &item.ImageURL,
			&item.ProjectID, &item.CreatedAt,
		); err != nil {
			return nil, classify("gallery.list", err)
		}
		items = append(items, &item)
	}
	return items, classify("gallery.list", rows.Err())
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM gallery_items WHERE id=$1`, id)
	if err != nil {
		return classify("gallery.delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "gallery.delete"}
	}
	return nil
}
