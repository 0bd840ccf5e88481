// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"techly/internal/apperr"
	"techly/internal/auth"
	"techly/internal/models"
	"techly/internal/store"
)

// Auth groups the authentication handlers.
type Auth struct {
	users  *store.UserStore
	tokens *auth.Manager
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *store.UserStore, tokens *auth.Manager) *Auth {
	return &Auth{users: users, tokens: tokens}
}

// loginRequest is the POST /auth/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse pairs the issued token with the public user fields.
type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login exchanges email and password for a signed session token. Input is
// validated before the store is touched, and unknown-email and
// wrong-password failures return the identical error so accounts cannot be
// enumerated.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if !validEmail(req.Email) {
		respondError(w, apperr.Validation("A valid email address is required"))
		return
	}
	if !validPassword(req.Password) {
		respondError(w, apperr.Validation("Password must be at least 6 characters"))
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil {
		respondError(w, apperr.StoreUnavailable(err))
		return
	}

	if user == nil || !a.users.CheckPassword(user, req.Password) {
		respondError(w, apperr.InvalidCredentials())
		return
	}

	token, err := a.tokens.Issue(user)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, loginResponse{Token: token, User: user})
}
