package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xanderson/homebank-api/internal/config"
	"github.com/xanderson/homebank-api/internal/platform/postgres"
)

// runMigrations opens the database and runs one goose command against it.
func runMigrations(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	command string,
	args ...string,
) error {
	logger.Info("Executing migrations", "command", command)

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, logger, args...); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	logger.Info("Migrations completed", "command", command)
	return nil
}
