package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server until an interrupt or terminate signal arrives,
// then shuts it down gracefully.
func (s *Server) Start(addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.DB != nil {
		if err := s.DB.Close(ctx); err != nil {
			slog.Warn("Failed to close database connection", "error", err)
		}
	}
	return s.E.Shutdown(ctx)
}
