package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrate applies the embedded goose migrations to the database described by opt.
func Migrate(ctx context.Context, opt *pg.Options, logger *slog.Logger) error {
	config, err := connConfig(opt)
	if err != nil {
		return fmt.Errorf("build connection config: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func connConfig(opt *pg.Options) (pgx.ConnConfig, error) {
	addr := opt.Addr
	if addr == "" {
		addr = "localhost:5432"
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("split addr %q: %w", addr, err)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return pgx.ConnConfig{}, fmt.Errorf("parse port %q: %w", portStr, err)
	}

	return pgx.ConnConfig{
		Host:      host,
		Port:      uint16(port),
		Database:  opt.Database,
		User:      opt.User,
		Password:  opt.Password,
		TLSConfig: opt.TLSConfig,
	}, nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	log *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
	os.Exit(1)
}
