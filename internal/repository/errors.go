package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind classifies store failures so callers never have to sniff error
// text to decide policy.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindNetworkUnavailable ErrorKind = "NETWORK_UNAVAILABLE"
	KindPermissionDenied   ErrorKind = "PERMISSION_DENIED"
	KindConflict           ErrorKind = "CONFLICT"
	KindUnknown            ErrorKind = "UNKNOWN"
)

// StoreError is the tagged error every repository returns.
type StoreError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// KindOf extracts the kind from an error, defaulting to KindUnknown.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a tagged not-found.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsNetworkUnavailable reports whether err is a tagged connectivity failure.
func IsNetworkUnavailable(err error) bool {
	return KindOf(err) == KindNetworkUnavailable
}

// classify wraps a raw pgx error into a StoreError with a structured kind.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &StoreError{Kind: KindNotFound, Op: op, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &StoreError{Kind: KindNetworkUnavailable, Op: op, Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return &StoreError{Kind: KindConflict, Op: op, Err: err}
		case "42501": // insufficient_privilege
			return &StoreError{Kind: KindPermissionDenied, Op: op, Err: err}
		case "08000", "08003", "08006", "57P01": // connection class
			return &StoreError{Kind: KindNetworkUnavailable, Op: op, Err: err}
		}
	}
	return &StoreError{Kind: KindUnknown, Op: op, Err: err}
}
