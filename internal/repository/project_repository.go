package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ProjectFilter scopes project listings.
type ProjectFilter struct {
	OwnerID  *string
	SchoolID *string
	Status   *domain.ProjectStatus
	Category *string
	Limit    int
	Offset   int
}

// ProjectRepository defines persistence access for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository returns a Postgres-backed implementation.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `
        id, owner_id, school_id, teacher_id, title, description, category,
        status, tags, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (id, owner_id, school_id, teacher_id, title, description, category, status, tags)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		project.ID,
		project.OwnerID,
		project.SchoolID,
		project.TeacherID,
		project.Title,
		project.Description,
		project.Category,
		project.Status,
		project.Tags,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	return classify("projects.create", err)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET title=$1, description=$2, category=$3, status=$4,
            teacher_id=$5, tags=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		project.Title,
		project.Description,
		project.Category,
		project.Status,
		project.TeacherID,
		project.Tags,
		project.ID,
	)
	if err != nil {
		return classify("projects.update", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "projects.update"}
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`

	var p domain.Project
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.SchoolID, &p.TeacherID, &p.Title, &p.Description,
		&p.Category, &p.Status, &p.Tags, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, classify("projects.get_by_id", err)
	}
	return &p, nil
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []any{}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		query += fmt.Sprintf(` AND owner_id=$%d`, len(args))
	}
	if filter.SchoolID != nil {
		args = append(args, *filter.SchoolID)
		query += fmt.Sprintf(` AND school_id=$%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(` AND status=$%d`, len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(` AND category=$%d`, len(args))
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
		return nil, classify("projects.list", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.SchoolID, &p.TeacherID, &p.Title, &p.Description,
			&p.Category, &p.Status, &p.Tags, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, classify("projects.list", err)
		}
		projects = append(projects, &p)
	}
	return projects, classify("projects.list", rows.Err())
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return classify("projects.delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "projects.delete"}
	}
	return nil
}
