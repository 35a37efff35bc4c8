package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "painel-cli",
	Short: "Painel administration tool",
	Long: `painel-cli manages the accounts that can sign in to Painel.

Available commands:
  user add       Create an account in the configured credentials store
  check-email    Check addresses against the login form's email rule
  version        Print the version

Use "painel-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
