package blogportal

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("admin access required")
	ErrUnauthorized        = errors.New("login required")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateIdentity   = errors.New("username or email already exists")
	ErrDuplicateSubscriber = errors.New("email already subscribed")
	ErrSlugConflict        = errors.New("a post with this title already exists")
)

// ValidationError describes a rejected input field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
