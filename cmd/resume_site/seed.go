package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/resume"
	"github.com/jonathan/resume-site/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default document to the configured backend",
	Long:  `Replace the stored snapshot with the compiled-in default document. Useful for first deploys and for recovering from a broken snapshot.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
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
	if err := st.Replace(ctx, resume.DefaultDocument()); err != nil {
		return fmt.Errorf("failed to seed document: %w", err)
	}

	fmt.Println("Seeded default document.")
	return nil
}
