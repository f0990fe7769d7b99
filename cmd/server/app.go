package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/xanderson/homebank-api/internal/config"
	"github.com/xanderson/homebank-api/internal/platform/metrics"
	"github.com/xanderson/homebank-api/internal/platform/postgres"
	"github.com/xanderson/homebank-api/internal/service"
	"github.com/xanderson/homebank-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	userStore   store.UserStore
	userService service.UserService
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.userService = service.NewUserService(
		app.userStore,
		store.NewDBTxRunner(db),
		metrics.PrometheusRecorder{},
		logger,
	)

	logger.Info("Application initialized successfully")
	return app
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives, then
// releases the application's resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
