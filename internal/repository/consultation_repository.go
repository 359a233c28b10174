package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ConsultationFilter scopes booking listings.
type ConsultationFilter struct {
	StudentID    *string
	ConsultantID *string
	Status       *domain.ConsultationStatus
	Limit        int
	Offset       int
}

// ConsultationRepository defines persistence access for bookings.
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *domain.Consultation) error
	Update(ctx context.Context, consultation *domain.Consultation) error
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
	List(ctx context.Context, filter ConsultationFilter) ([]*domain.Consultation, error)
}

type consultationRepository struct {
	pool *pgxpool.Pool
}

// NewConsultationRepository returns a Postgres-backed implementation.
func NewConsultationRepository(pool *pgxpool.Pool) ConsultationRepository {
	return &consultationRepository{pool: pool}
}

const consultationColumns = `
        id, student_id, consultant_id, topic, notes, scheduled_at, duration_min,
        status, created_at, updated_at`

func (r *consultationRepository) Create(ctx context.Context, c *domain.Consultation) error {
	const query = `
        INSERT INTO consultations (id, student_id, consultant_id, topic, notes, scheduled_at, duration_min, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		c.ID,
		c.StudentID,
		c.ConsultantID,
		c.Topic,
		c.Notes,
		c.ScheduledAt,
		c.DurationMin,
		c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return classify("consultations.create", err)
}

func (r *consultationRepository) Update(ctx context.Context, c *domain.Consultation) error {
	const query = `
        UPDATE consultations SET topic=$1, notes=$2, scheduled_at=$3, duration_min=$4,
            status=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		c.Topic, c.Notes, c.ScheduledAt, c.DurationMin, c.Status, c.ID,
	)
	if err != nil {
		return classify("consultations.update", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "consultations.update"}
	}
	return nil
}

func (r *consultationRepository) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	const query = `SELECT ` + consultationColumns + ` FROM consultations WHERE id=$1`

	var c domain.Consultation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.StudentID, &c.ConsultantID, &c.Topic, &c.Notes, &c.ScheduledAt,
		&c.DurationMin, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, classify("consultations.get_by_id", err)
	}
	return &c, nil
}

func (r *consultationRepository) List(ctx context.Context, filter ConsultationFilter) ([]*domain.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE 1=1`
	args := []any{}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(` AND student_id=$%d`, len(args))
	}
	if filter.ConsultantID != nil {
		args = append(args, *filter.ConsultantID)
		query += fmt.Sprintf(` AND consultant_id=$%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(` AND status=$%d`, len(args))
	}
	query += ` ORDER BY scheduled_at DESC`
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
		return nil, classify("consultations.list", err)
	}
	defer rows.Close()

	var consultations []*domain.Consultation
	for rows.Next() {
		var c domain.Consultation
		if err := rows.Scan(
			&c.ID, &c.StudentID, &c.ConsultantID, &c.Topic, &c.Notes, &c.ScheduledAt,
			&c.DurationMin, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, classify("consultations.list", err)
		}
		consultations = append(consultations, &c)
	}
	return consultations, classify("consultations.list", rows.Err())
}
