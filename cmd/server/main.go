package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aimecol/cwsms/internal/api"
	"github.com/Aimecol/cwsms/internal/config"
	"github.com/Aimecol/cwsms/internal/storage/sqlite"
	"github.com/Aimecol/cwsms/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup()

	// A missing or broken schema is fatal: nothing can run without it.
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	server := api.NewServer(store)
	handler := server.Handler(api.Options{
		CORSOrigin:     cfg.CORSOrigin,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
