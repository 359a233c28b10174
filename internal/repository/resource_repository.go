package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ResourceFilter scopes library listings.
type ResourceFilter struct {
	AuthorID *string
	Type     *domain.ResourceType
	Subject  *string
	Limit    int
	Offset   int
}

// ResourceRepository defines persistence access for library records.
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	Update(ctx context.Context, resource *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type resourceRepository struct {
	pool *pgxpool.Pool
}

// NewResourceRepository returns a Postgres-backed implementation.
func NewResourceRepository(pool *pgxpool.Pool) ResourceRepository {
	return &resourceRepository{pool: pool}
}

const resourceColumns = `
        id, author_id, title, description, type, url, subject, created_at, updated_at`

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	const query = `
        INSERT INTO resources (id, author_id, title, description, type, url, subject)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		res.ID, res.AuthorID, res.Title, res.Description, res.Type, res.URL, res.Subject,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
	return classify("resources.create", err)
}

func (r *resourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	const query = `
        UPDATE resources SET title=$1, description=$2, type=$3, url=$4, subject=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		res.Title, res.Description, res.Type, res.URL, res.Subject, res.ID,
	)
	if err != nil {
		return classify("resources.update", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "resources.update"}
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	const query = `SELECT ` + resourceColumns + ` FROM resources WHERE id=$1`

	var res domain.Resource
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.AuthorID, &res.Title, &res.Description, &res.Type, &res.URL,
		&res.Subject, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, classify("resources.get_by_id", err)
	}
	return &res, nil
}

func (r *resourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE 1=1`
	args := []any{}
	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		query += fmt.Sprintf(` AND author_id=$%d`, len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(` AND type=$%d`, len(args))
	}
	if filter.Subject != nil {
		args = append(args, *filter.Subject)
		query += fmt.Sprintf(` AND subject=$%d`, len(args))
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
		return nil, classify("resources.list", err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(
			&res.ID, &res.AuthorID, &res.Title, &res.Description, &res.Type, &res.URL,
			&res.Subject, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, classify("resources.list", err)
		}
		resources = append(resources, &res)
	}
	return resources, classify("resources.list", rows.Err())
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id=$1`, id)
	if err != nil {
		return classify("resources.delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "resources.delete"}
	}
	return nil
}
