package blogportal

import (
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/media"
)

const (
	defaultPageSize = 9
	maxPageSize     = 100

	featuredLimit     = 3
	recentLimit       = 6
	relatedLimit      = 3
	dashboardRecent   = 5
	adminPostsNoLimit = 0
)

type Manager struct {
	db      *db.Repository
	storage media.Storage
	logger  *slog.Logger
	now     func() time.Time
}

func NewManager(repo *db.Repository, storage media.Storage, logger *slog.Logger) *Manager {
	return &Manager{
		db:      repo,
		storage: storage,
		logger:  logger,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

// removeImage deletes a stored image, logging failures. Orphaned files are
// harmless so the error is not returned.
func (m *Manager) removeImage(ctx context.Context, path *string) {
	if path == nil || *path == "" {
		return
	}

	if err := m.storage.Remove(ctx, *path); err != nil {
		m.logger.WarnContext(ctx, "failed to remove image", "path", *path, "error", err)
	}
}
