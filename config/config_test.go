package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[Database]
Addr = "db:5432"
User = "blog"
Database = "blog"
PoolSize = 7

[App]
Port = 8080

[Session]
Secret = "s3cret"
TTL = "2h"

[Media]
Backend = "s3"

[Media.S3]
Bucket = "images"

[Seed]
AdminUsername = "root"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db:5432", cfg.Database.Addr)
	assert.Equal(t, 7, cfg.Database.PoolSize)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, "s3", cfg.Media.Backend)
	assert.Equal(t, "images", cfg.Media.S3.Bucket)
	assert.Equal(t, "uploads", cfg.Media.URLPrefix)
	assert.Equal(t, "root", cfg.SeedConfig().AdminUsername)
	assert.Equal(t, blogportal.DefaultCategories, cfg.SeedConfig().Categories)

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestApplyDatabaseURL(t *testing.T) {
	cfg := Defaults()
	cfg.Database.PoolSize = 4

	require.NoError(t, cfg.ApplyDatabaseURL("postgres://u:p@pg.local:6432/blog?sslmode=disable"))
	assert.Equal(t, "pg.local:6432", cfg.Database.Addr)
	assert.Equal(t, "u", cfg.Database.User)
	assert.Equal(t, "p", cfg.Database.Password)
	assert.Equal(t, "blog", cfg.Database.Database)
	assert.Equal(t, 4, cfg.Database.PoolSize)
	assert.Equal(t, 3, cfg.Database.MaxRetries)

	assert.Error(t, cfg.ApplyDatabaseURL("mysql://nope"))
}
