package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xanderson/homebank-api/internal/config"
	"github.com/xanderson/homebank-api/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
// The returned closer flushes the rotating log file, if one is configured.
func setupAppLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	l, closer, err := logger.Setup(logger.LoggerConfig{
		Level:      cfg.Server.LogLevel,
		Format:     cfg.Server.LogFormat,
		FilePath:   cfg.Server.LogFile,
		MaxSizeMB:  cfg.Server.LogFileMaxSizeMB,
		MaxBackups: cfg.Server.LogFileMaxBackups,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)
	l.Debug("Database configuration",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"auto_migrate", cfg.Database.AutoMigrate)

	return l, closer, nil
}
