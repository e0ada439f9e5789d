package blogportal

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

// EnsureTags creates the missing tags and returns all tags with the names.
func (m *Manager) EnsureTags(ctx context.Context, names []string) ([]Tag, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len([]rune(name)) > 50 {
			return nil, newValidationError("name", "must be at most 50 characters")
		}
		cleaned = append(cleaned, name)
	}

	list, err := m.db.EnsureTags(ctx, cleaned)
	if err != nil {
		return nil, fmt.Errorf("db ensure tags: %w", err)
	}

	return NewTags(list), nil
}

// Subscribe adds an email to the newsletter.
func (m *Manager) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}

	inserted, err := m.db.InsertSubscriber(ctx, email, m.now())
	if err != nil {
		return fmt.Errorf("db insert subscriber: %w", err)
	} else if !inserted {
		return ErrDuplicateSubscriber
	}

	m.logger.InfoContext(ctx, "newsletter subscription", "email", email)
	return nil
}

// Dashboard returns the administrator overview.
func (m *Manager) Dashboard(ctx context.Context) (*Dashboard, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var (
		d   Dashboard
		err error
	)

	if d.PostsCount, err = m.db.PostsCount(ctx); err != nil {
		return nil, fmt.Errorf("db count posts: %w", err)
	}

	if d.UsersCount, err = m.db.UsersCount(ctx); err != nil {
		return nil, fmt.Errorf("db count users: %w", err)
	}

	if d.CommentsCount, err = m.db.CommentsCount(ctx, false); err != nil {
		return nil, fmt.Errorf("db count comments: %w", err)
	}

	if d.PendingComments, err = m.db.CommentsCount(ctx, true); err != nil {
		return nil, fmt.Errorf("db count pending comments: %w", err)
	}

	if d.SubscribersCount, err = m.db.SubscribersCount(ctx); err != nil {
		return nil, fmt.Errorf("db count subscribers: %w", err)
	}

	recent, _, err := m.db.Posts(ctx, db.PostSearch{Limit: dashboardRecent})
	if err != nil {
		return nil, fmt.Errorf("db get recent posts: %w", err)
	}

	if d.RecentPosts, err = m.withTags(ctx, NewPosts(recent)); err != nil {
		return nil, err
	}

	return &d, nil
}

// Seed creates the administrator account and the default categories unless
// they already exist.
func (m *Manager) Seed(ctx context.Context, cfg SeedConfig) error {
	if cfg.AdminUsername != "" {
		admin, err := m.db.UserByUsername(ctx, cfg.AdminUsername)
		if err != nil {
			return fmt.Errorf("db get admin: %w", err)
		}

		if admin == nil {
			in := RegisterInput{Username: cfg.AdminUsername, Email: cfg.AdminEmail, Password: cfg.AdminPassword}
			in.normalize()
			if err := in.validate(); err != nil {
				return fmt.Errorf("admin account: %w", err)
			}

			user, err := m.createUser(ctx, in, true)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			m.logger.InfoContext(ctx, "admin user created", "userId", user.ID, "username", user.Username)
		}
	}

	for _, c := range cfg.Categories {
		inserted, err := m.db.InsertCategory(ctx, c.Name, strPtrOrNil(c.Description))
		if err != nil {
			return fmt.Errorf("db insert category: %w", err)
		}

		if inserted {
			m.logger.InfoContext(ctx, "category created", "name", c.Name)
		}
	}

	return nil
}
