// Package database provides the credentials stores used by the credentials
// auth provider.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/nfrund/painel/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// NewDB creates and configures a new SurrealDB connection.
func NewDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb at %s: %w", redactDBURL(cfg.GetDBURL()), err)
	}

	authData := &surrealdb.Auth{
		Username: cfg.GetDBUser(),
		Password: cfg.GetDBPass(),
	}
	if _, err = db.SignIn(ctx, authData); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.InfoContext(ctx, "Connected to SurrealDB",
		"db_url", redactDBURL(cfg.GetDBURL()),
		"namespace", cfg.GetDBNs(),
		"database", cfg.GetDBDb(),
	)
	return db, nil
}

// redactDBURL returns dbURL with any password replaced, for logging.
func redactDBURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	return parsed.Redacted()
}
