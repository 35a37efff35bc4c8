package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/painel/internal/loginform"
	"github.com/spf13/cobra"
)

var errInvalidEmails = errors.New("some addresses were rejected")

var checkEmailCmd = &cobra.Command{
	Use:   "check-email <address>...",
	Short: "Check addresses against the login form's email rule",
	Long: `Reports, for each address, whether the login form would accept it.
The command exits with a non-zero status when any address is rejected.

Examples:
  painel-cli check-email ana@example.com
  painel-cli check-email ana@example.com ana.example.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false
		for _, addr := range args {
			if err := loginform.ValidateEmail(addr); err != nil {
				failed = true
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid: %v\n", addr, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tok\n", addr)
		}
		if failed {
			return errInvalidEmails
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkEmailCmd)
}
