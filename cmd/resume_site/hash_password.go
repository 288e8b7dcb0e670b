package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long:  `Hash an admin password so the plaintext secret does not have to live in the environment or config file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	pc, err := config.NewPasswordConfig()
	if err != nil {
		return err
	}

	hash, err := pc.HashPassword(args[0])
	if err != nil {
		return err
	}

	cmd.Println(hash)
	return nil
}
