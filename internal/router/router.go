// Package router sets up all HTTP routes and middleware chains for the
// blog API. It organizes routes into public and admin-protected groups.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"techly/internal/auth"
	"techly/internal/handlers"
	"techly/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. generalLimiter rate-limits every request;
// loginLimiter throttles credential guessing on the login route. Both are
// owned by the caller, which is responsible for their lifecycle.
func New(tokens *auth.Manager, authHandlers *handlers.Auth, posts *handlers.Posts, categories *handlers.Categories, generalLimiter *middleware.RateLimiter, loginLimiter *middleware.LoginLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(generalLimiter.Middleware)

	// Health check, no auth.
	r.Get("/health", healthHandler)

	// Login, throttled separately.
	r.With(loginLimiter.Middleware).Post("/auth/login", authHandlers.Login)

	// Public read routes.
	r.Get("/categories", categories.List)
	r.Get("/posts", posts.List)
	r.Get("/posts/{slugOrId}", posts.Get)

	// Admin routes — bearer token plus admin role required.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))
		r.Use(middleware.RequireAdmin)

		r.Get("/admin/posts", posts.AdminList)
		r.Post("/posts", posts.Create)
		r.Put("/posts/{id}", posts.Update)
		r.Delete("/posts/{id}", posts.Delete)

		r.Post("/categories", categories.Create)
		r.Put("/categories/{id}", categories.Update)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
