package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the current document as JSON",
	Long:  `Print the stored document to stdout. When no valid snapshot exists this prints the compiled-in default, matching what the site would serve.`,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	backend, cleanup, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	st := store.Open(ctx, backend)
	data, err := json.MarshalIndent(st.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	cmd.Println(string(data))
	return nil
}
