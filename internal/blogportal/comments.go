package blogportal

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// AddComment stores a comment by the caller on a post and returns it with the
// post slug. Blank content is ignored: no comment and no error are returned.
// Comments by administrators are approved immediately.
func (m *Manager) AddComment(ctx context.Context, postID int, content string) (*Comment, string, error) {
	identity, err := RequireUser(ctx)
	if err != nil {
		return nil, "", err
	}

	post, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, "", fmt.Errorf("db get post: %w", err)
	} else if post == nil {
		return nil, "", ErrNotFound
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, post.Slug, nil
	}

	comment := &db.Comment{
		Content:    content,
		CreatedAt:  m.now(),
		IsApproved: identity.IsAdmin,
		UserID:     identity.UserID,
		PostID:     postID,
	}

	if err := m.db.InsertComment(ctx, comment); err != nil {
		return nil, "", fmt.Errorf("db insert comment: %w", err)
	}

	m.logger.InfoContext(ctx, "comment added", "commentId", comment.ID, "postId", postID, "approved", comment.IsApproved)
	return &Comment{Comment: *comment}, post.Slug, nil
}

func (m *Manager) ApproveComment(ctx context.Context, commentID int) error {
	if _, err := RequireAdmin(ctx); err != nil {
		return err
	}

	found, err := m.db.ApproveComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("db approve comment: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}

func (m *Manager) DeleteComment(ctx context.Context, commentID int) error {
	if _, err := RequireAdmin(ctx); err != nil {
		return err
	}

	found, err := m.db.DeleteComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("db delete comment: %w", err)
	} else if !found {
		return ErrNotFound
	}

	return nil
}

// AdminComments returns every comment with author and post, newest first.
func (m *Manager) AdminComments(ctx context.Context) ([]Comment, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	list, err := m.db.Comments(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	return NewComments(list), nil
}
