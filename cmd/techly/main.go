// Package main is the entry point for the blog API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"techly/internal/auth"
	"techly/internal/blog"
	"techly/internal/config"
	"techly/internal/database"
	"techly/internal/handlers"
	"techly/internal/middleware"
	"techly/internal/router"
	"techly/internal/store"
	"techly/internal/valkey"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for login throttling. The API works without it;
	// the limiter fails open.
	var valkeyClient *redis.Client
	if client, err := valkey.Connect(cfg.ValkeyAddr(), cfg.ValkeyPassword); err != nil {
		slog.Warn("valkey unavailable, login throttling disabled", "error", err)
	} else {
		valkeyClient = client
		defer valkeyClient.Close()
	}

	// Initialize data stores and the façade service.
	userStore := store.NewUserStore(db)
	postStore := store.NewPostStore(db)
	categoryStore := store.NewCategoryStore(db)
	svc := blog.NewService(postStore, categoryStore)

	// Session token manager.
	tokens := auth.NewManager(cfg.JWTSecret)

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(userStore, tokens)
	postHandlers := handlers.NewPosts(svc)
	categoryHandlers := handlers.NewCategories(svc)

	// Rate limiters: a general per-IP limit on every request plus a tighter
	// Valkey-backed one on login attempts. The general limiter runs a cleanup
	// goroutine stopped on shutdown.
	generalLimiter := middleware.NewRateLimiter(300, time.Minute)
	defer generalLimiter.Stop()
	loginLimiter := middleware.NewLoginLimiter(valkeyClient, 10, 15*time.Minute)

	// Set up the Chi router with all middleware and routes.
	r := router.New(tokens, authHandlers, postHandlers, categoryHandlers, generalLimiter, loginLimiter)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
