package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-portal/config"
	_ "github.com/daniilsolovey/blog-portal/docs"
	"github.com/daniilsolovey/blog-portal/internal/app"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flLogQueries  = flag.Bool("db-log-queries", false, "log executed SQL queries (DB_LOG_QUERIES)")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blog Portal API
// @version 1.0
// @description Blog with posts, comments, newsletter and an admin area
// @host localhost:3000
// @BasePath /

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.ApplyDatabaseURL(*flDatabaseURL))
	}

	dbc := pg.Connect(&cfg.Database)
	if *flLogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
		lg.Info("SQL query logging enabled")
	}

	ctx := context.Background()
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	defer dbc.Close()

	service, err := app.New(ctx, cfg, dbc, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
