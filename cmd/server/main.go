// Package main implements the entry point for the homebank API server, which
// stores bank users with their accounts and serves them over HTTP.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xanderson/homebank-api/internal/platform/postgres"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "homebank: %v\n", err)
		os.Exit(1)
	}
}

// newCLI builds the command tree. serve is the default action.
func newCLI() *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file path (YAML, TOML or JSON); environment variables still override it",
		EnvVars: []string{"HOMEBANK_CONFIG"},
	}

	return &cli.App{
		Name:                   "homebank",
		Usage:                  "Bank user REST API",
		Version:                version,
		UseShortOptionHandling: true,
		Flags:                  []cli.Flag{configFlag},
		Action:                 serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server",
				Action: serveAction,
			},
			{
				Name:      "migrate",
				Usage:     "Run database migrations",
				ArgsUsage: "<" + strings.Join(postgres.MigrationCommands, "|") + ">",
				Action:    migrateAction,
			},
		},
	}
}

func serveAction(c *cli.Context) error {
	cfg, err := loadAppConfig(c.String("config"))
	if err != nil {
		return err
	}

	logger, closeLog, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog.Close() }()

	db, err := setupAppDatabase(c.Context, cfg, logger)
	if err != nil {
		logger.Error("database setup failed", "error", err)
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(c.Context, db, "up", logger); err != nil {
			_ = db.Close()
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	app := newApplication(cfg, logger, db)
	return app.Run(c.Context)
}

func migrateAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit(fmt.Sprintf("migrate requires a command: %s",
			strings.Join(postgres.MigrationCommands, ", ")), 2)
	}

	cfg, err := loadAppConfig(c.String("config"))
	if err != nil {
		return err
	}

	logger, closeLog, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog.Close() }()

	return runMigrations(c.Context, cfg, logger, c.Args().First(), c.Args().Tail()...)
}
