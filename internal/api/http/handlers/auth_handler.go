package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/api/dto"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/auth"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/service"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// AuthHandler exposes registration, login and session endpoints. Each login
// runs through a fresh session object so the authoritative status re-read
// and the offline degrade behavior apply uniformly.
type AuthHandler struct {
	accounts *service.AccountService
	provider session.IdentityProvider
	resolver *session.Resolver
	logger   *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(accounts *service.AccountService, provider session.IdentityProvider, resolver *session.Resolver, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, provider: provider, resolver: resolver, logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	student, teacher, school, consultant := req.DomainAttrs()
	sess := session.New(h.provider, h.resolver, h.logger)
	profile, err := sess.Register(c.UserContext(), session.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       domain.Role(req.Role),
		Student:    student,
		Teacher:    teacher,
		School:     school,
		Consultant: consultant,
	})
	if err != nil {
		return err
	}

	token, exp, err := h.accounts.IssueToken(profile)
	if err != nil {
		return err
	}

	snap := sess.Snapshot()
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"profile": dto.NewProfileResponse(profile),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
			"offline": snap.Offline,
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	sess := session.New(h.provider, h.resolver, h.logger)
	profile, err := sess.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, exp, err := h.accounts.IssueToken(profile)
	if err != nil {
		return err
	}

	snap := sess.Snapshot()
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"profile": dto.NewProfileResponse(profile),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
			"offline": snap.Offline,
		},
	})
}

// Logout handles POST /auth/logout. Tokens are stateless; the provider just
// emits the sign-out so subscribed sessions clear.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var identityID string
	if profile, ok := auth.ProfileFromContext(c); ok {
		identityID = profile.ID
	}
	_ = h.provider.SignOut(c.UserContext(), identityID)
	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /auth/me: the read-only session snapshot.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	snap, ok := auth.SnapshotFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(dto.SessionResponse{
		Profile: dto.NewProfileResponse(snap.Profile),
		Offline: snap.Offline,
	})
}

// UpdateSettings handles PATCH /auth/settings.
func (h *AuthHandler) UpdateSettings(c *fiber.Ctx) error {
	profile, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	student, teacher, school, consultant := req.DomainAttrs()
	updated, err := h.accounts.UpdateSettings(c.UserContext(), profile.ID, service.SettingsInput{
		Name:       req.Name,
		PhotoURL:   req.PhotoURL,
		Student:    student,
		Teacher:    teacher,
		School:     school,
		Consultant: consultant,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(updated)})
}

// RequestPasswordReset handles POST /auth/password/reset/request.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	token, err := h.accounts.RequestPasswordReset(c.UserContext(), req.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		if session.AuthKindOf(err) == session.AuthErrCredential {
			return c.SendStatus(http.StatusAccepted)
		}
		return err
	}
	h.logger.Info("password reset requested", zap.String("profile_id", token.ProfileID))
	return c.SendStatus(http.StatusAccepted)
}

// ConfirmPasswordReset handles POST /auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirm
	if err := c.BodyParser(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "token and new_password required")
	}
	if err := h.accounts.ConfirmPasswordReset(c.UserContext(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	profile, ok := auth.ProfileFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "current_password and new_password required")
	}
	if err := h.accounts.ChangePassword(c.UserContext(), profile.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
