package db

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

const (
	codeUniqueViolation = "23505"

	ConstraintUsername       = "users_username_key"
	ConstraintUserEmail      = "users_email_key"
	ConstraintPostSlug       = "posts_slug_key"
	ConstraintSubscriberMail = "subscribers_email_key"
)

// UniqueViolation reports whether err is a unique_violation and returns the
// name of the violated constraint.
func UniqueViolation(err error) (string, bool) {
	var pgErr pg.Error
	if !errors.As(err, &pgErr) {
		return "", false
	}

	if pgErr.Field('C') != codeUniqueViolation {
		return "", false
	}

	return pgErr.Field('n'), true
}

// IsUniqueViolation reports whether err violates the named unique constraint.
func IsUniqueViolation(err error, constraint string) bool {
	name, ok := UniqueViolation(err)
	return ok && name == constraint
}
