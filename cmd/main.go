package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	config2 "github.com/grossvaternick/skills-getting-started-with-github-copilot/pkg/config"

	_ "github.com/grossvaternick/skills-getting-started-with-github-copilot/docs"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/handler"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/repository"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/router"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Mergington High School Activities API
// @version 1.0
// @description API for viewing and signing up for extracurricular activities
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Load seed catalog
	seed, err := repository.SeedActivities()
	if err != nil {
		slog.Error("failed to load seed catalog", "error", err)
		os.Exit(1)
	}

	// Initialize repository
	catalogRepo := repository.NewCatalogRepository(seed)

	slog.Info("catalog seeded", "activities", len(seed))

	// Initialize validator
	validate := validator.New()

	// Initialize services
	activityService := service.NewActivityService(catalogRepo)

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService, validate)
	healthHandler := handler.NewHealthHandler()

	// Setup router
	r := router.SetupRouter(activityHandler, healthHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
