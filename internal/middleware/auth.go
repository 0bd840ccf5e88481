// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"techly/internal/apperr"
	"techly/internal/auth"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// identityKey is the context key for the verified token identity.
const identityKey contextKey = "identity"

// RequireAuth extracts and verifies the bearer token from the Authorization
// header. A missing or malformed header is rejected as unauthenticated; a
// token that fails signature or expiry verification is rejected as invalid.
// On success the decoded identity is stored in the request context; the
// gate itself performs no repository calls.
func RequireAuth(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeAppError(w, apperr.Unauthenticated("Unauthorized: No token provided"))
				return
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeAppError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated callers whose role is not admin.
// Must be applied after RequireAuth in the middleware chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromCtx(r.Context())
		if identity == nil || !identity.IsAdmin() {
			writeAppError(w, apperr.Forbidden("Forbidden: Admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IdentityFromCtx extracts the verified identity from the request context.
// Returns nil if the request did not pass RequireAuth.
func IdentityFromCtx(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

// writeAppError writes a taxonomy error in the API response envelope.
func writeAppError(w http.ResponseWriter, err error) {
	writeJSONError(w, apperr.HTTPStatus(err), apperr.Message(err))
}

// writeJSONError writes the {success:false, error} envelope.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}
