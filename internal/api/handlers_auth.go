// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/plexroulette/internal/auth"
	"github.com/tomtom215/plexroulette/internal/models"
)

// Register creates a local account
//
// @Summary Register a user
// @Description Creates an account. All four fields are required. Log in afterwards to obtain a token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body auth.RegisterInput true "New account"
// @Success 201 {object} models.APIResponse{data=models.User}
// @Failure 400 {object} models.APIResponse "Validation error or username/email taken"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Accounts are disabled", ErrAccountsDisabled)
		return
	}

	var req auth.RegisterInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		respondError(w, r, http.StatusBadRequest, "USER_EXISTS", "Username or email already registered", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to register user", err)
		return
	}

	respondSuccess(w, http.StatusCreated, user, time.Time{})
}

// Login checks credentials and issues a token
//
// @Summary Log in
// @Description Returns a signed token, its expiry and the user. The token is also set as an HttpOnly cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body auth.LoginInput true "Credentials"
// @Success 200 {object} models.APIResponse{data=models.AuthResult}
// @Failure 401 {object} models.APIResponse "Invalid username or password"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Accounts are disabled", ErrAccountsDisabled)
		return
	}

	var req auth.LoginInput
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.auth.Login(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.config != nil && h.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	respondSuccess(w, http.StatusOK, result, time.Time{})
}

// Me returns the authenticated user
//
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.User}
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse "User no longer exists"
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	if h.auth == nil {
		respondSuccess(w, http.StatusOK, &models.User{
			ID:          claims.UserID,
			Username:    claims.Username,
			DisplayName: claims.DisplayName,
		}, time.Time{})
		return
	}

	user, err := h.auth.Me(r.Context(), claims.UserID)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load user", err)
		return
	}
	respondSuccess(w, http.StatusOK, user, time.Time{})
}
