package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/painel/internal/config"
	"github.com/nfrund/painel/internal/logging"
	"github.com/nfrund/painel/internal/server"
)

func main() {
	// config.Load reads .env, which may set LOG_FORMAT and LOG_LEVEL.
	cfg, err := config.Load()
	logging.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	s.RegisterRoutes()

	if err := s.Start(cfg.GetAppAddr()); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
