// Package apperr defines the application error taxonomy and its mapping to
// HTTP status codes. Handlers translate these into the API response envelope;
// anything outside the taxonomy is treated as an internal error and never
// exposed to callers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindValidation is malformed input, rejected before any store access.
	KindValidation Kind = iota
	// KindInvalidCredentials is a login failure. The cause (unknown email
	// vs wrong password) is intentionally not distinguished.
	KindInvalidCredentials
	// KindUnauthenticated is a missing or malformed bearer token.
	KindUnauthenticated
	// KindInvalidToken is a token whose signature or expiry failed.
	KindInvalidToken
	// KindForbidden is a role mismatch on a protected operation.
	KindForbidden
	// KindNotFound is an absent target entity.
	KindNotFound
	// KindConflict is a unique-constraint violation, e.g. a slug collision.
	KindConflict
	// KindStoreUnavailable is a transport or connection failure to the store.
	KindStoreUnavailable
)

// Error is an application error carrying a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two application errors by kind, so errors.Is(err, apperr.NotFound(""))
// works regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Validation returns a malformed-input error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// InvalidCredentials returns the undifferentiated login failure.
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}
}

// Unauthenticated returns a missing/malformed-token error.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

// InvalidToken returns a failed token verification error.
func InvalidToken(msg string) *Error {
	return &Error{Kind: KindInvalidToken, Message: msg}
}

// Forbidden returns a role-mismatch error.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound returns an absent-entity error. The message names the entity,
// e.g. "Post not found".
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict returns a unique-constraint violation error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// StoreUnavailable wraps a transport-level store failure.
func StoreUnavailable(err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "Service temporarily unavailable", Err: err}
}

// KindOf extracts the kind from an error chain. The second return is false
// if the chain contains no application error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsApp reports whether err belongs to the application taxonomy.
func IsApp(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// HTTPStatus maps an error to its HTTP status code. Errors outside the
// taxonomy map to 500.
func HTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidToken, KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-visible message for an error. Errors outside the
// taxonomy get a generic message so internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal Server Error"
}
