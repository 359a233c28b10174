package domain

import "time"

// Role is the functional category of a profile, fixed at creation.
type Role string

const (
	RoleStudent    Role = "student"
	RoleTeacher    Role = "teacher"
	RoleSchool     Role = "school"
	RoleConsultant Role = "consultant"
	RoleAdmin      Role = "admin"
)

// Valid reports whether the role is one of the known categories.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleSchool, RoleConsultant, RoleAdmin:
		return true
	}
	return false
}

// AccountStatus is the activation lifecycle value of a profile.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusPending   AccountStatus = "pending"
	StatusRejected  AccountStatus = "rejected"
	StatusSuspended AccountStatus = "suspended"
)

// EntryStatus returns the status a freshly registered profile starts in.
// School and consultant accounts wait for admin approval; everyone else is live
// immediately.
func EntryStatus(role Role) AccountStatus {
	if role == RoleSchool || role == RoleConsultant {
		return StatusPending
	}
	return StatusActive
}

// StudentAttrs carries fields meaningful only for student profiles.
type StudentAttrs struct {
	SchoolID string
	Grade    string
}

// TeacherAttrs carries fields meaningful only for teacher profiles.
type TeacherAttrs struct {
	SchoolID string
	Subject  string
}

// SchoolAttrs carries fields meaningful only for school profiles.
type SchoolAttrs struct {
	Address       string
	LicenseNumber string
}

// ConsultantAttrs carries fields meaningful only for consultant profiles.
type ConsultantAttrs struct {
	Specializations []string
	ExperienceYears int
	HourlyRate      float64
	Rating          float64
	ReviewsCount    int
}

// Profile is the durable record describing role, status and role-specific
// attributes for an identity. Exactly the attribute struct matching Role may be
// non-nil; the others must stay nil.
type Profile struct {
	ID           string
	Email        string
	Name         string
	PhotoURL     string
	PasswordHash string
	Role         Role
	Status       AccountStatus

	Student    *StudentAttrs
	Teacher    *TeacherAttrs
	School     *SchoolAttrs
	Consultant *ConsultantAttrs

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	ApprovedBy *string
	RejectedAt *time.Time
	RejectedBy *string
	// RejectionReason is set alongside RejectedAt so the pending-activation
	// page can tell the user why.
	RejectionReason *string
}

// IsAdmin reports whether the profile holds the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// HasRole reports whether the profile's role is in the allowed set. An empty
// set allows any role.
func (p *Profile) HasRole(allowed ...Role) bool {
	if p == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, role := range allowed {
		if p.Role == role {
			return true
		}
	}
	return false
}
