// Package app initializes and runs the terminal application: it wires the
// configured user store, the audit recorder, and the auth service, and
// hands control to the interactive CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akoreshkova/patternlock/internal/audit"
	"github.com/akoreshkova/patternlock/internal/auth"
	"github.com/akoreshkova/patternlock/internal/cli"
	"github.com/akoreshkova/patternlock/internal/config"
	"github.com/akoreshkova/patternlock/internal/logging"
	"github.com/akoreshkova/patternlock/internal/repositories/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	service *auth.Service
	db      *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	var (
		repo users.Repository
		db   *sql.DB
		err  error
	)
	switch cfg.StoreBackend {
	case "memory":
		repo = users.NewInMemoryRepository()
	case "sqlite":
		repo, db, err = users.OpenSQLite(ctx, cfg.DatabaseDSN)
	case "postgres":
		repo, db, err = users.OpenPostgres(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	recorder := audit.NewSlogRecorder(logger)
	service := auth.NewService(repo, recorder, cfg)

	return &App{config: cfg, logger: logger, service: service, db: db}, nil
}

func (app *App) Close() {
	if app.db != nil {
		_ = app.db.Close()
	}
}

// Run starts the CLI loop. SIGINT/SIGTERM cancel the context and end the
// loop at the next prompt.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.logger.Info(ctx, "starting patternlock",
		"store", app.config.StoreBackend,
		"tolerance", app.config.Tolerance,
		"max_attempts", app.config.MaxAttempts,
		"hardened", app.config.Hardened,
	)

	return cli.NewApp(app.service, os.Stdin, os.Stdout).Run(ctx)
}
