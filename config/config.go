package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/media"
	"github.com/daniilsolovey/blog-portal/internal/session"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Session session.Config
	Media   media.Config
	Seed    Seed
}

type Seed struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load decodes the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %q: %w", path, err)
	}

	return cfg, nil
}

func Defaults() Config {
	var cfg Config
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000
	cfg.Session.TTL = 7 * 24 * time.Hour
	cfg.Session.CookieName = "session"
	cfg.Media.Backend = media.BackendLocal
	cfg.Media.Root = "static/uploads"
	cfg.Media.URLPrefix = "uploads"
	return cfg
}

// ApplyDatabaseURL replaces the database options with the ones parsed from
// url, keeping the configured pool settings.
func (c *Config) ApplyDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	if c.Database.PoolSize > 0 {
		opt.PoolSize = c.Database.PoolSize
	}
	opt.MaxConnAge = c.Database.MaxConnAge

	c.Database = *opt
	return nil
}

// SeedConfig returns the start-up seed with the default categories.
func (c Config) SeedConfig() blogportal.SeedConfig {
	return blogportal.SeedConfig{
		AdminUsername: c.Seed.AdminUsername,
		AdminEmail:    c.Seed.AdminEmail,
		AdminPassword: c.Seed.AdminPassword,
		Categories:    blogportal.DefaultCategories,
	}
}
