package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/resume"
	"github.com/jonathan/resume-site/internal/schemas"
	"github.com/jonathan/resume-site/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored document with a JSON file",
	Long:  `Validate a document JSON file against the document schema and write it to the configured backend.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	if err := schemas.ValidateDocument(data); err != nil {
		return err
	}

	var doc resume.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document JSON: %w", err)
	}

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
	if err := st.Replace(ctx, &doc); err != nil {
		return fmt.Errorf("failed to import document: %w", err)
	}

	fmt.Println("Imported document.")
	return nil
}
