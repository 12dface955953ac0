package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a requested account does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials covers both unknown identifiers and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidCode is the root of every one-time code failure.
	ErrInvalidCode = errors.New("invalid or expired code")
	// ErrCodeExpired is returned when the outstanding code is past its expiry.
	ErrCodeExpired = fmt.Errorf("%w: code has expired", ErrInvalidCode)
	// ErrNoPendingCode is returned when no code is outstanding.
	ErrNoPendingCode = fmt.Errorf("%w: no code outstanding", ErrInvalidCode)
	// ErrExternalProvider is returned when an identity token cannot be verified.
	ErrExternalProvider = errors.New("external identity provider error")

	// ErrDuplicateName is returned when the name is already taken.
	ErrDuplicateName = &DuplicateError{Field: "name"}
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = &DuplicateError{Field: "email"}
)

// DuplicateError reports a uniqueness violation on Field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	switch e.Field {
	case "name":
		return "username already taken"
	case "email":
		return "email already registered"
	default:
		return fmt.Sprintf("%s already taken", e.Field)
	}
}

// ValidationError reports malformed input or a policy violation.
type ValidationError struct {
	Field    string
	Problems []string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field string, problems ...string) *ValidationError {
	return &ValidationError{Field: field, Problems: problems}
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, strings.Join(e.Problems, "; "))
}
