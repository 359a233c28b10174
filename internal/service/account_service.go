package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/config"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// AccountService coordinates registration, login and self-service profile
// flows. Admin-only activation transitions live in AdminService.
type AccountService struct {
	profiles   repository.ProfileRepository
	cache      repository.ProfileCache
	resets     repository.PasswordResetRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	resetTTL   time.Duration
}

// AccountDependencies encapsulates repo requirements for the account service.
type AccountDependencies struct {
	ProfileRepo       repository.ProfileRepository
	ProfileCache      repository.ProfileCache
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		profiles:   deps.ProfileRepo,
		cache:      deps.ProfileCache,
		resets:     deps.PasswordResetRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Register creates a new account. School and consultant registrations enter
// pending and wait for admin approval; everyone else starts active. Admin
// accounts are seeded out of band, never through public registration.
func (s *AccountService) Register(ctx context.Context, input session.RegisterInput) (*domain.Profile, error) {
	if !input.Role.Valid() || input.Role == domain.RoleAdmin {
		return nil, &session.AuthError{Kind: AuthErrValidation, Message: "role not open for registration"}
	}
	if input.Email == "" || input.Password == "" {
		return nil, &session.AuthError{Kind: AuthErrValidation, Message: "email and password required"}
	}
	if err := validateAttrs(input); err != nil {
		return nil, err
	}

	if _, err := s.profiles.GetByEmail(ctx, input.Email); err == nil {
		return nil, &session.AuthError{Kind: session.AuthErrConflict, Message: "email already registered"}
	} else if !repository.IsNotFound(err) {
		return nil, mapStoreErr(err, "register lookup failed")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = session.DefaultDisplayName
	}

	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         name,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       domain.EntryStatus(input.Role),
		Student:      input.Student,
		Teacher:      input.Teacher,
		School:       input.School,
		Consultant:   input.Consultant,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, mapStoreErr(err, "register failed")
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAccountRegistered,
		SubjectID: profile.ID,
		Actor:     events.Actor{ProfileID: profile.ID, Role: profile.Role},
		Timestamp: time.Now(),
		Payload: events.AccountRegisteredPayload{
			Email:  profile.Email,
			Role:   profile.Role,
			Status: profile.Status,
		},
	})
	return profile, nil
}

// Authenticate checks credentials and returns the identity for session
// resolution. Bad credentials and unknown accounts are indistinguishable to
// the caller.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, &session.AuthError{Kind: session.AuthErrCredential, Message: "invalid credentials"}
		}
		return nil, mapStoreErr(err, "login lookup failed")
	}
	if err := auth.ComparePassword(profile.PasswordHash, password); err != nil {
		return nil, &session.AuthError{Kind: session.AuthErrCredential, Message: "invalid credentials"}
	}
	return &domain.Identity{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.Name,
		PhotoURL:    profile.PhotoURL,
	}, nil
}

// IssueToken signs an access token for the profile.
func (s *AccountService) IssueToken(profile *domain.Profile) (string, time.Time, error) {
	return s.tokenMgr.GenerateToken(profile.ID, profile.Role)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// SettingsInput carries the owner-editable profile fields. Role and status
// are deliberately absent: neither is self-changeable.
type SettingsInput struct {
	Name       *string
	PhotoURL   *string
	Student    *domain.StudentAttrs
	Teacher    *domain.TeacherAttrs
	School     *domain.SchoolAttrs
	Consultant *domain.ConsultantAttrs
}

// UpdateSettings lets the owner change non-role, non-status fields. Attribute
// updates must match the profile's existing role.
func (s *AccountService) UpdateSettings(ctx context.Context, profileID string, input SettingsInput) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, mapStoreErr(err, "settings lookup failed")
	}

	if input.Name != nil && *input.Name != "" {
		profile.Name = *input.Name
	}
	if input.PhotoURL != nil {
		profile.PhotoURL = *input.PhotoURL
	}
	switch profile.Role {
	case domain.RoleStudent:
		if input.Student != nil {
			profile.Student = input.Student
		}
	case domain.RoleTeacher:
		if input.Teacher != nil {
			profile.Teacher = input.Teacher
		}
	case domain.RoleSchool:
		if input.School != nil {
			profile.School = input.School
		}
	case domain.RoleConsultant:
		if input.Consultant != nil {
			profile.Consultant = input.Consultant
		}
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, mapStoreErr(err, "settings update failed")
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, profile.ID)
	}
	return profile, nil
}

// RequestPasswordReset persists a reset token for the account email.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) (*repository.PasswordResetToken, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return nil, mapStoreErr(err, "reset lookup failed")
	}

	token := &repository.PasswordResetToken{
		ProfileID: profile.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return nil, mapStoreErr(err, "reset create failed")
	}
	return token, nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AccountService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		return mapStoreErr(err, "reset token lookup failed")
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return &session.AuthError{Kind: session.AuthErrCredential, Message: "token expired or used"}
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	profile, err := s.profiles.GetByID(ctx, token.ProfileID)
	if err != nil {
		return mapStoreErr(err, "reset profile lookup failed")
	}
	profile.PasswordHash = hash
	if err := s.profiles.Update(ctx, profile); err != nil {
		return mapStoreErr(err, "reset update failed")
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, profile.ID)
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// ChangePassword verifies the current password before updating to a new hash.
func (s *AccountService) ChangePassword(ctx context.Context, profileID, currentPassword, newPassword string) error {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return mapStoreErr(err, "change password lookup failed")
	}
	if err := auth.ComparePassword(profile.PasswordHash, currentPassword); err != nil {
		return &session.AuthError{Kind: session.AuthErrCredential, Message: "invalid credentials"}
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	profile.PasswordHash = hash
	if err := s.profiles.Update(ctx, profile); err != nil {
		return mapStoreErr(err, "change password update failed")
	}
	return nil
}

func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, event)
	}
}

// AuthErrValidation tags malformed registration input.
const AuthErrValidation session.AuthErrorKind = "VALIDATION"

func validateAttrs(input session.RegisterInput) error {
	mismatch := func() error {
		return &session.AuthError{Kind: AuthErrValidation, Message: "attributes do not match role"}
	}
	if input.Student != nil && input.Role != domain.RoleStudent {
		return mismatch()
	}
	if input.Teacher != nil && input.Role != domain.RoleTeacher {
		return mismatch()
	}
	if input.School != nil && input.Role != domain.RoleSchool {
		return mismatch()
	}
	if input.Consultant != nil && input.Role != domain.RoleConsultant {
		return mismatch()
	}
	return nil
}

// mapStoreErr converts store failures to tagged auth boundary errors so
// transports never have to sniff error text.
func mapStoreErr(err error, message string) error {
	switch repository.KindOf(err) {
	case repository.KindNotFound:
		return &session.AuthError{Kind: session.AuthErrCredential, Message: "account not found", Err: err}
	case repository.KindNetworkUnavailable:
		return &session.AuthError{Kind: session.AuthErrNetwork, Message: message, Err: err}
	case repository.KindPermissionDenied:
		return &session.AuthError{Kind: session.AuthErrUnknown, Message: "permission denied", Err: err}
	default:
		return &session.AuthError{Kind: session.AuthErrUnknown, Message: message, Err: err}
	}
}
