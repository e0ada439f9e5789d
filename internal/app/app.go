package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/media"
	"github.com/daniilsolovey/blog-portal/internal/rest"
	"github.com/daniilsolovey/blog-portal/internal/rpc"
	"github.com/daniilsolovey/blog-portal/internal/session"
)

type App struct {
	DB      *db.Repository
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
	Manager *blogportal.Manager
}

// New migrates the database, seeds the admin account and the default
// categories, and wires the HTTP and JSON-RPC handlers.
func New(ctx context.Context, cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if err := db.Migrate(ctx, &cfg.Database, logger); err != nil {
		return nil, err
	}

	storage, err := media.New(cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("init media storage: %w", err)
	}

	sessions, err := session.NewManager(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("init sessions: %w", err)
	}

	repo := db.New(dbConnect)
	manager := blogportal.NewManager(repo, storage, logger)

	if err := manager.Seed(ctx, cfg.SeedConfig()); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	opts := rest.Options{RPC: rpc.New(logger, manager)}
	if local, ok := storage.(*media.LocalStorage); ok {
		opts.UploadsDir = local.Root()
		opts.UploadsPrefix = local.Prefix()
	}

	handler := rest.NewHandler(manager, sessions, repo, logger, opts)

	return &App{
		DB:      repo,
		Logger:  logger,
		Echo:    handler.RegisterRoutes(),
		Config:  cfg,
		Manager: manager,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.InfoContext(ctx, "http server started", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
