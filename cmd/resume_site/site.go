package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/store"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// defaultConfig holds the built-in fallbacks applied after file and env.
var defaultConfig = config.Config{
	Port:        8080,
	StoragePath: "resume_data.json",
}

// loadSiteConfig assembles configuration in precedence order: config file,
// then environment, then built-in defaults.
func loadSiteConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(defaultConfig)
	return &merged, nil
}

// openBackend constructs the snapshot backend named by the configuration.
// The database backend wins when both are configured; the returned cleanup
// releases its pool.
func openBackend(ctx context.Context, cfg *config.Config) (store.Backend, func(), error) {
	if cfg.DatabaseURL != "" {
		backend, err := store.NewPostgresBackend(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database backend: %w", err)
		}
		return backend, backend.Close, nil
	}

	backend, err := store.NewFileBackend(cfg.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file backend: %w", err)
	}
	return backend, func() {}, nil
}
