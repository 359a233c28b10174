package dto

import (
	"time"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

// RegisterRequest payload for new accounts. Only the attribute block
// matching the requested role may be present.
type RegisterRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Role       string           `json:"role"`
	Student    *StudentAttrs    `json:"student,omitempty"`
	Teacher    *TeacherAttrs    `json:"teacher,omitempty"`
	School     *SchoolAttrs     `json:"school,omitempty"`
	Consultant *ConsultantAttrs `json:"consultant,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StudentAttrs mirrors domain.StudentAttrs on the wire.
type StudentAttrs struct {
	SchoolID string `json:"school_id"`
	Grade    string `json:"grade"`
}

// TeacherAttrs mirrors domain.TeacherAttrs on the wire.
type TeacherAttrs struct {
	SchoolID string `json:"school_id"`
	Subject  string `json:"subject"`
}

// SchoolAttrs mirrors domain.SchoolAttrs on the wire.
type SchoolAttrs struct {
	Address       string `json:"address"`
	LicenseNumber string `json:"license_number"`
}

// ConsultantAttrs mirrors domain.ConsultantAttrs on the wire.
type ConsultantAttrs struct {
	Specializations []string `json:"specializations"`
	ExperienceYears int      `json:"experience_years"`
	HourlyRate      float64  `json:"hourly_rate"`
	Rating          float64  `json:"rating"`
	ReviewsCount    int      `json:"reviews_count"`
}

// ProfileResponse is the wire form of a profile. Role-conditional blocks are
// present only for the matching role.
type ProfileResponse struct {
	ID         string           `json:"id"`
	Email      string           `json:"email"`
	Name       string           `json:"name"`
	PhotoURL   string           `json:"photo_url,omitempty"`
	Role       string           `json:"role"`
	Status     string           `json:"status"`
	Student    *StudentAttrs    `json:"student,omitempty"`
	Teacher    *TeacherAttrs    `json:"teacher,omitempty"`
	School     *SchoolAttrs     `json:"school,omitempty"`
	Consultant *ConsultantAttrs `json:"consultant,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	ApprovedAt *time.Time       `json:"approved_at,omitempty"`
	RejectedAt *time.Time       `json:"rejected_at,omitempty"`
	// RejectionReason lets the activation page tell a rejected user why.
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

// SessionResponse is the read-only session view exposed at /auth/me.
type SessionResponse struct {
	Profile *ProfileResponse `json:"profile"`
	Offline bool             `json:"offline"`
}

// PasswordResetRequest asks for a reset token.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirm redeems a reset token.
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest rotates a password for the authenticated account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// SettingsRequest carries owner-editable fields.
type SettingsRequest struct {
	Name       *string          `json:"name,omitempty"`
	PhotoURL   *string          `json:"photo_url,omitempty"`
	Student    *StudentAttrs    `json:"student,omitempty"`
	Teacher    *TeacherAttrs    `json:"teacher,omitempty"`
	School     *SchoolAttrs     `json:"school,omitempty"`
	Consultant *ConsultantAttrs `json:"consultant,omitempty"`
}

// NewProfileResponse maps a domain profile to its wire form.
func NewProfileResponse(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	resp := &ProfileResponse{
		ID:              p.ID,
		Email:           p.Email,
		Name:            p.Name,
		PhotoURL:        p.PhotoURL,
		Role:            string(p.Role),
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		ApprovedAt:      p.ApprovedAt,
		RejectedAt:      p.RejectedAt,
		RejectionReason: p.RejectionReason,
	}
	if p.Student != nil {
		resp.Student = &StudentAttrs{SchoolID: p.Student.SchoolID, Grade: p.Student.Grade}
	}
	if p.Teacher != nil {
		resp.Teacher = &TeacherAttrs{SchoolID: p.Teacher.SchoolID, Subject: p.Teacher.Subject}
	}
	if p.School != nil {
		resp.School = &SchoolAttrs{Address: p.School.Address, LicenseNumber: p.School.LicenseNumber}
	}
	if p.Consultant != nil {
		resp.Consultant = &ConsultantAttrs{
			Specializations: p.Consultant.Specializations,
			ExperienceYears: p.Consultant.ExperienceYears,
			HourlyRate:      p.Consultant.HourlyRate,
			Rating:          p.Consultant.Rating,
			ReviewsCount:    p.Consultant.ReviewsCount,
		}
	}
	return resp
}

// DomainAttrs converts the wire attribute blocks to domain form.
func (r RegisterRequest) DomainAttrs() (*domain.StudentAttrs, *domain.TeacherAttrs, *domain.SchoolAttrs, *domain.ConsultantAttrs) {
	return toDomainAttrs(r.Student, r.Teacher, r.School, r.Consultant)
}

// DomainAttrs converts the wire attribute blocks to domain form.
func (r SettingsRequest) DomainAttrs() (*domain.StudentAttrs, *domain.TeacherAttrs, *domain.SchoolAttrs, *domain.ConsultantAttrs) {
	return toDomainAttrs(r.Student, r.Teacher, r.School, r.Consultant)
}

func toDomainAttrs(st *StudentAttrs, te *TeacherAttrs, sc *SchoolAttrs, co *ConsultantAttrs) (*domain.StudentAttrs, *domain.TeacherAttrs, *domain.SchoolAttrs, *domain.ConsultantAttrs) {
	var (
		student    *domain.StudentAttrs
		teacher    *domain.TeacherAttrs
		school     *domain.SchoolAttrs
		consultant *domain.ConsultantAttrs
	)
	if st != nil {
		student = &domain.StudentAttrs{SchoolID: st.SchoolID, Grade: st.Grade}
	}
	if te != nil {
		teacher = &domain.TeacherAttrs{SchoolID: te.SchoolID, Subject: te.Subject}
	}
	if sc != nil {
		school = &domain.SchoolAttrs{Address: sc.Address, LicenseNumber: sc.LicenseNumber}
	}
	if co != nil {
		consultant = &domain.ConsultantAttrs{
			Specializations: co.Specializations,
			ExperienceYears: co.ExperienceYears,
			HourlyRate:      co.HourlyRate,
			Rating:          co.Rating,
			ReviewsCount:    co.ReviewsCount,
		}
	}
	return student, teacher, school, consultant
}
