package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/repository"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError, mapping the tagged
// auth and store error kinds to their HTTP shapes.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Kind {
		case session.AuthErrCredential:
			return NewDomainError("INVALID_CREDENTIALS", authErr.Message, http.StatusUnauthorized, nil)
		case session.AuthErrConflict:
			return NewDomainError("CONFLICT", authErr.Message, http.StatusConflict, nil)
		case session.AuthErrNetwork:
			return NewDomainError("SERVICE_UNAVAILABLE", authErr.Message, http.StatusServiceUnavailable, nil)
		default:
			return NewDomainError("AUTH_FAILED", authErr.Message, http.StatusBadRequest, nil)
		}
	}

	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) {
		switch storeErr.Kind {
		case repository.KindNotFound:
			return ToDomainError(NewNotFound("resource", nil))
		case repository.KindPermissionDenied:
			return ToDomainError(NewForbidden("permission denied"))
		case repository.KindConflict:
			return ToDomainError(NewConflict("conflict", nil))
		case repository.KindNetworkUnavailable:
			return NewDomainError("SERVICE_UNAVAILABLE", "storage unreachable", http.StatusServiceUnavailable, nil)
		}
	}

	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
