// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
// The integration tests live in an external test package so they can wire
// the full router without creating an import cycle.
package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"techly/internal/auth"
	"techly/internal/blog"
	"techly/internal/database"
	"techly/internal/handlers"
	"techly/internal/middleware"
	"techly/internal/models"
	"techly/internal/router"
	"techly/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "techly")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "techly")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds the wired application for handler integration tests.
type testEnv struct {
	DB         *sql.DB
	Users      *store.UserStore
	Posts      *store.PostStore
	Categories *store.CategoryStore
	Tokens     *auth.Manager
	Router     chi.Router

	adminEmail    string
	adminPassword string
}

// newTestEnv wires stores, service, handler groups and the router against
// the test database, and provisions an admin account for the run.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	users := store.NewUserStore(db)
	posts := store.NewPostStore(db)
	categories := store.NewCategoryStore(db)
	tokens := auth.NewManager("handler_test_secret")
	svc := blog.NewService(posts, categories)

	env := &testEnv{
		DB:            db,
		Users:         users,
		Posts:         posts,
		Categories:    categories,
		Tokens:        tokens,
		adminEmail:    "test-admin-" + time.Now().Format("150405.000000") + "@example.com",
		adminPassword: "password123",
	}

	if _, err := users.Create(env.adminEmail, env.adminPassword, "Test Admin", models.RoleAdmin); err != nil {
		t.Fatalf("create test admin: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM users WHERE email = $1", env.adminEmail) })

	// A roomy general limit so tests never trip it; no Valkey, so the login
	// limiter is a pass-through.
	generalLimiter := middleware.NewRateLimiter(10000, time.Minute)
	t.Cleanup(generalLimiter.Stop)
	loginLimiter := middleware.NewLoginLimiter(nil, 10, 15*time.Minute)

	env.Router = router.New(tokens, handlers.NewAuth(users, tokens), handlers.NewPosts(svc), handlers.NewCategories(svc), generalLimiter, loginLimiter)
	return env
}

// adminToken logs the provisioned admin in through the real handler and
// returns the issued bearer token.
func (env *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    env.adminEmail,
		"password": env.adminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	decodeBody(t, rec, &body)
	if body.Data.Token == "" {
		t.Fatal("login response has no token")
	}
	return body.Data.Token
}

// do performs a request against the test router. A non-nil payload is sent
// as JSON; a non-empty token goes into the Authorization header.
func (env *testEnv) do(t *testing.T, method, target, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// envelope mirrors the API response wrapper for assertions.
type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func readEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var e envelopeBody
	decodeBody(t, rec, &e)
	return e
}

// cleanPosts removes test posts by slug.
func cleanPosts(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM posts WHERE slug = $1", s)
	}
}

// cleanCategories removes test categories by slug.
func cleanCategories(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM categories WHERE slug = $1", s)
	}
}
