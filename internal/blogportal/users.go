package blogportal

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Register creates a regular user account.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := m.createUser(ctx, in, false)
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "user registered", "userId", user.ID, "username", user.Username)
	return user, nil
}

func (m *Manager) createUser(ctx context.Context, in RegisterInput, isAdmin bool) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    m.now(),
	}

	err = m.db.InTransaction(ctx, func(repo *db.Repository) error {
		usernameTaken, emailTaken, err := repo.IdentityTaken(ctx, user.Username, user.Email)
		if err != nil {
			return err
		}

		switch {
		case usernameTaken:
			return fmt.Errorf("%w: username %q", ErrDuplicateIdentity, user.Username)
		case emailTaken:
			return fmt.Errorf("%w: email %q", ErrDuplicateIdentity, user.Email)
		}

		return repo.InsertUser(ctx, user)
	})

	switch {
	case errors.Is(err, ErrDuplicateIdentity):
		return nil, err
	case db.IsUniqueViolation(err, db.ConstraintUsername), db.IsUniqueViolation(err, db.ConstraintUserEmail):
		return nil, fmt.Errorf("%w: %v", ErrDuplicateIdentity, err)
	case err != nil:
		return nil, fmt.Errorf("db create user: %w", err)
	}

	return NewUser(user), nil
}

// Authenticate returns the user when the password matches the stored hash.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return NewUser(user), nil
}

// UserByID returns nil when the user does not exist.
func (m *Manager) UserByID(ctx context.Context, userID int) (*User, error) {
	user, err := m.db.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	}

	return NewUser(user), nil
}
