package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olegrjumin/phishlens/internal/config"
	"github.com/olegrjumin/phishlens/internal/history"
	"github.com/olegrjumin/phishlens/internal/httpapi"
	"github.com/olegrjumin/phishlens/internal/logging"
	"github.com/olegrjumin/phishlens/internal/service"
)

func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	// Pick the history store: Postgres when configured, in-memory otherwise
	var repo history.Repository
	if cfg.DatabaseURL != "" {
		pool, err := history.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		repo = history.NewPostgresStore(pool)
		logger.Info("Using Postgres scan history")
	} else {
		repo = history.NewMemoryStore()
		logger.Info("Using in-memory scan history")
	}

	// Initialize the assessment service
	svc := service.New(logger, repo, cfg.BatchWorkers)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Port)
	server := httpapi.NewServer(addr, logger, svc, repo)

	// Channel to listen for OS signals (Ctrl+C, kill, etc.)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "batch_workers", cfg.BatchWorkers)
		if err := server.ListenAndServe(); err != nil {
			logger.Error("Server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	logger.Info("Shutting down server...")

	// Attempt graceful shutdown with a timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
