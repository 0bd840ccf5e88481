// Package auth issues and verifies the signed session tokens used as bearer
// credentials. Tokens are HS256-signed JWTs carrying the user's id, email,
// and role with a fixed 24-hour expiry. No server-side session state exists;
// validity is purely the signature plus the expiry claim.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"techly/internal/apperr"
	"techly/internal/models"
)

// TokenTTL is how long an issued session token remains valid.
const TokenTTL = 24 * time.Hour

// Claims is the JWT payload. The user id travels in the registered
// "sub" claim.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the decoded subject of a verified token, made available to
// protected operations through the request context.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

// IsAdmin returns true if the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Manager signs and verifies session tokens with a server-held secret.
type Manager struct {
	secret []byte
}

// NewManager creates a token manager using the given signing secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue creates a signed session token for the user, expiring TokenTTL
// from now.
func (m *Manager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// identity. All failures map to the invalid-token error; the caller cannot
// tell a forged token from an expired one.
func (m *Manager) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.InvalidToken("Forbidden: Invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperr.InvalidToken("Forbidden: Invalid token")
	}

	return &Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
