package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nfrund/painel/internal/config"
	"github.com/nfrund/painel/internal/database"
	"github.com/nfrund/painel/internal/domain"
	"github.com/nfrund/painel/internal/loginform"
	"github.com/spf13/cobra"
)

var (
	userEmail    string
	userPassword string
	userName     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an account in the SurrealDB credentials store",
	Long: `Creates an account that can sign in through the login form. The
connection settings are read from the environment (and .env) exactly as the
server reads them; USER_STORE must be "surreal" since the in-memory store does
not outlive the process.

Example:
  painel-cli user add --email ana@example.com --password 's3cret' --name Ana`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loginform.ValidateEmail(userEmail); err != nil {
			return fmt.Errorf("--email: %w", err)
		}
		if userPassword == "" {
			return errors.New("--password is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.GetUserStore() != config.UserStoreSurreal {
			return fmt.Errorf("USER_STORE is %q; user add needs %q", cfg.GetUserStore(), config.UserStoreSurreal)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close(context.Background())

		return addUser(ctx, cmd, database.NewSurrealUserStore(db))
	},
}

func addUser(ctx context.Context, cmd *cobra.Command, store domain.CredentialsStore) error {
	user := &domain.User{Email: userEmail}
	if userName != "" {
		user.Name = &userName
	}

	err := store.CreateUser(ctx, user, userPassword)
	if errors.Is(err, domain.ErrUserAlreadyExists) {
		return fmt.Errorf("%s already has an account", userEmail)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", user.Email, user.ID)
	return nil
}

func init() {
	userAddCmd.Flags().StringVar(&userEmail, "email", "", "email address used to sign in")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "initial password")
	userAddCmd.Flags().StringVar(&userName, "name", "", "display name")
	_ = userAddCmd.MarkFlagRequired("email")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}
