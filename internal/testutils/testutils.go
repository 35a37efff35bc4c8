// Package testutils holds helpers shared by integration tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/painel/internal/config"
)

// SurrealConfigForTests returns the SurrealDB settings for integration tests.
// Values come from .env.test at the project root, when present, and the
// environment. The test is skipped in -short mode or when SURREAL_URL is
// unset.
func SurrealConfigForTests(t *testing.T) config.Provider {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	if root, ok := projectRoot(); ok {
		env, err := godotenv.Read(filepath.Join(root, ".env.test"))
		if err != nil {
			t.Log("No .env.test file found, relying on environment variables.")
		}
		// t.Setenv restores the previous values when the test ends.
		for key, value := range env {
			t.Setenv(key, value)
		}
	}

	if os.Getenv("SURREAL_URL") == "" {
		t.Skip("SURREAL_URL not set")
	}

	return &config.Config{
		UserStore: config.UserStoreSurreal,
		DBUrl:     os.Getenv("SURREAL_URL"),
		DBUser:    os.Getenv("SURREAL_USER"),
		DBPass:    os.Getenv("SURREAL_PASS"),
		DBNs:      os.Getenv("SURREAL_NS"),
		DBDb:      os.Getenv("SURREAL_DB"),
	}
}

// projectRoot walks up from the working directory to the directory holding
// go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
