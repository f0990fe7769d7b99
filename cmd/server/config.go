package main

import (
	"fmt"

	"github.com/xanderson/homebank-api/internal/config"
)

// loadAppConfig loads the configuration from path (when non-empty) and the
// HOMEBANK_ environment variables.
func loadAppConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
