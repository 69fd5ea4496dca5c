// Package server exposes the generation flows over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rankcraft/internal/app"
)

const shutdownTimeout = 30 * time.Second

// Run serves the API until the context is cancelled or a termination signal
// arrives, then shuts down gracefully.
func Run(ctx context.Context, svc *app.Service) error {
	router := NewRouter(NewHandler(svc))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", svc.Config.Server.Port),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", svc.Config.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case <-ctx.Done():
		return shutdownServer(srv)

	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return shutdownServer(srv)
	}

	return nil
}

func shutdownServer(srv *http.Server) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		if closeErr := srv.Close(); closeErr != nil {
			return fmt.Errorf("stop server: shutdown error: %v, close error: %v", err, closeErr)
		}
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	slog.Info("Server stopped cleanly")
	return nil
}
