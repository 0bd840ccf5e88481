// Package handlers implements the JSON API handler groups. Every response
// uses the {success, data, error} envelope; taxonomy errors map to their
// HTTP status and anything else becomes an opaque 500.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"techly/internal/apperr"
)

// envelope is the wire shape of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respondData writes a successful envelope with the given status code.
func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondError writes an error envelope. Taxonomy errors carry their own
// message and status; everything else is logged and masked.
func respondError(w http.ResponseWriter, err error) {
	if !apperr.IsApp(err) {
		slog.Error("internal error", "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.HTTPStatus(err))
	json.NewEncoder(w).Encode(envelope{Success: false, Error: apperr.Message(err)})
}

// decodeJSON reads the request body into dst, rejecting malformed JSON as
// a validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}
