package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// ProfileFilter narrows admin listings.
type ProfileFilter struct {
	Role   *domain.Role
	Status *domain.AccountStatus
	Limit  int
	Offset int
}

// ProfileRepository defines persistence access for account profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context, filter ProfileFilter) ([]*domain.Profile, error)
	Delete(ctx context.Context, id string) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

const profileColumns = `
        id, email, name, photo_url, password_hash, role, status,
        school_id, grade, subject, school_address, school_license,
        specializations, experience_years, hourly_rate, rating, reviews_count,
        created_at, updated_at, approved_at, approved_by, rejected_at, rejected_by,
        rejection_reason`

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (
            id, email, name, photo_url, password_hash, role, status,
            school_id, grade, subject, school_address, school_license,
            specializations, experience_years, hourly_rate, rating, reviews_count)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING created_at, updated_at`

	row := flattenProfile(profile)
	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Email,
		profile.Name,
		profile.PhotoURL,
		profile.PasswordHash,
		profile.Role,
		profile.Status,
		row.schoolID,
		row.grade,
		row.subject,
		row.schoolAddress,
		row.schoolLicense,
		row.specializations,
		row.experienceYears,
		row.hourlyRate,
		row.rating,
		row.reviewsCount,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	return classify("profiles.create", err)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	// Role is intentionally absent from the SET list: it is fixed at creation.
	const query = `
        UPDATE profiles SET
            email=$1, name=$2, photo_url=$3, password_hash=$4, status=$5,
            school_id=$6, grade=$7, subject=$8, school_address=$9, school_license=$10,
            specializations=$11, experience_years=$12, hourly_rate=$13, rating=$14,
            reviews_count=$15, approved_at=$16, approved_by=$17, rejected_at=$18,
            rejected_by=$19, rejection_reason=$20, updated_at=NOW()
        WHERE id=$21`

	row := flattenProfile(profile)
	cmd, err := r.pool.Exec(ctx, query,
		profile.Email,
		profile.Name,
		profile.PhotoURL,
		profile.PasswordHash,
		profile.Status,
		row.schoolID,
		row.grade,
		row.subject,
		row.schoolAddress,
		row.schoolLicense,
		row.specializations,
		row.experienceYears,
		row.hourlyRate,
		row.rating,
		row.reviewsCount,
		profile.ApprovedAt,
		profile.ApprovedBy,
		profile.RejectedAt,
		profile.RejectedBy,
		profile.RejectionReason,
		profile.ID,
	)
	if err != nil {
		return classify("profiles.update", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "profiles.update"}
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE id=$1`
	return r.scanOne(ctx, "profiles.get_by_id", query, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE email=$1`
	return r.scanOne(ctx, "profiles.get_by_email", query, email)
}

func (r *profileRepository) List(ctx context.Context, filter ProfileFilter) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE 1=1`
	args := []any{}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		query += fmt.Sprintf(` AND role=$%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(` AND status=$%d`, len(args))
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
		return nil, classify("profiles.list", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, classify("profiles.list", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, classify("profiles.list", rows.Err())
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id=$1`, id)
	if err != nil {
		return classify("profiles.delete", err)
	}
	if cmd.RowsAffected() == 0 {
		return &StoreError{Kind: KindNotFound, Op: "profiles.delete"}
	}
	return nil
}

func (r *profileRepository) scanOne(ctx context.Context, op, query string, arg any) (*domain.Profile, error) {
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, classify(op, err)
	}
	return profile, nil
}

// profileRow holds the nullable role-conditional columns in flat form.
type profileRow struct {
	schoolID        *string
	grade           *string
	subject         *string
	schoolAddress   *string
	schoolLicense   *string
	specializations []string
	experienceYears *int
	hourlyRate      *float64
	rating          *float64
	reviewsCount    *int
}

func flattenProfile(p *domain.Profile) profileRow {
	var row profileRow
	switch {
	case p.Student != nil:
		row.schoolID = &p.Student.SchoolID
		row.grade = &p.Student.Grade
	case p.Teacher != nil:
		row.schoolID = &p.Teacher.SchoolID
		row.subject = &p.Teacher.Subject
	case p.School != nil:
		row.schoolAddress = &p.School.Address
		row.schoolLicense = &p.School.LicenseNumber
	case p.Consultant != nil:
		row.specializations = p.Consultant.Specializations
		row.experienceYears = &p.Consultant.ExperienceYears
		row.hourlyRate = &p.Consultant.HourlyRate
		row.rating = &p.Consultant.Rating
		row.reviewsCount = &p.Consultant.ReviewsCount
	}
	return row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		p   domain.Profile
		flt profileRow
	)
	if err := row.Scan(
		&p.ID,
		&p.Email,
		&p.Name,
		&p.PhotoURL,
		&p.PasswordHash,
		&p.Role,
		&p.Status,
		&flt.schoolID,
		&flt.grade,
		&flt.subject,
		&flt.schoolAddress,
		&flt.schoolLicense,
		&flt.specializations,
		&flt.experienceYears,
		&flt.hourlyRate,
		&flt.rating,
		&flt.reviewsCount,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ApprovedAt,
		&p.ApprovedBy,
		&p.RejectedAt,
		&p.RejectedBy,
		&p.RejectionReason,
	); err != nil {
		return nil, err
	}
	inflateProfile(&p, flt)
	return &p, nil
}

func inflateProfile(p *domain.Profile, row profileRow) {
	switch p.Role {
	case domain.RoleStudent:
		attrs := &domain.StudentAttrs{}
		if row.schoolID != nil {
			attrs.SchoolID = *row.schoolID
		}
		if row.grade != nil {
			attrs.Grade = *row.grade
		}
		p.Student = attrs
	case domain.RoleTeacher:
		attrs := &domain.TeacherAttrs{}
		if row.schoolID != nil {
			attrs.SchoolID = *row.schoolID
		}
		if row.subject != nil {
			attrs.Subject = *row.subject
		}
		p.Teacher = attrs
	case domain.RoleSchool:
		attrs := &domain.SchoolAttrs{}
		if row.schoolAddress != nil {
			attrs.Address = *row.schoolAddress
		}
		if row.schoolLicense != nil {
			attrs.LicenseNumber = *row.schoolLicense
		}
		p.School = attrs
	case domain.RoleConsultant:
		attrs := &domain.ConsultantAttrs{Specializations: row.specializations}
		if row.experienceYears != nil {
			attrs.ExperienceYears = *row.experienceYears
		}
		if row.hourlyRate != nil {
			attrs.HourlyRate = *row.hourlyRate
		}
		if row.rating != nil {
			attrs.Rating = *row.rating
		}
		if row.reviewsCount != nil {
			attrs.ReviewsCount = *row.reviewsCount
		}
		p.Consultant = attrs
	}
}
