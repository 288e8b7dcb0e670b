package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/polish"
	"github.com/jonathan/resume-site/internal/server"
	"github.com/jonathan/resume-site/internal/session"
	"github.com/jonathan/resume-site/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the résumé site server",
	Long:  `Start an HTTP server that renders the résumé page and exposes the admin editing endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	backend, cleanup, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	st := store.Open(ctx, backend)
	sessions := session.NewManager(cfg)
	polisher := polish.NewService(ctx, cfg.APIKey)
	defer func() { _ = polisher.Close() }()

	srv, err := server.New(server.Config{Port: cfg.Port}, st, sessions, polisher)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
