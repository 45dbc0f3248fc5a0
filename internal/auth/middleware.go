// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/models"
)

type contextKey string

// ClaimsContextKey is the request context key holding *Claims.
const ClaimsContextKey contextKey = "claims"

// Auth modes accepted by NewMiddleware.
const (
	ModeJWT  = "jwt"
	ModeNone = "none"
)

// LocalUserID identifies the single user of auth mode "none".
const LocalUserID = "local"

// Middleware authenticates requests.
type Middleware struct {
	jwtManager *JWTManager
	authMode   string
}

// NewMiddleware creates the authentication middleware. jwtManager may be nil
// in mode "none".
func NewMiddleware(jwtManager *JWTManager, authMode string) *Middleware {
	if authMode == "" {
		authMode = ModeJWT
	}
	return &Middleware{jwtManager: jwtManager, authMode: authMode}
}

// AuthMode returns the configured mode.
func (m *Middleware) AuthMode() string {
	return m.authMode
}

// Authenticate rejects requests without a valid token. In mode "none" every
// request runs as the local user.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == ModeNone {
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), localClaims())))
			return
		}

		token, ok := extractToken(r)
		if !ok {
			writeUnauthorized(w, "Authentication required")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			writeUnauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// Identify attaches the caller's claims when a valid token is present and
// otherwise passes the request through anonymously. Public catalog routes use
// it so that excludeWatched can consult the caller's watched list.
func (m *Middleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == ModeNone {
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), localClaims())))
			return
		}

		if token, ok := extractToken(r); ok && m.jwtManager != nil {
			if claims, err := m.jwtManager.ValidateToken(token); err == nil {
				r = r.WithContext(withClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the authenticated caller, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, ClaimsContextKey, claims)
	return logging.ContextWithUserID(ctx, claims.UserID)
}

func localClaims() *Claims {
	return &Claims{UserID: LocalUserID, Username: LocalUserID, DisplayName: "Local User"}
}

// extractToken reads a Bearer header, falling back to the "token" cookie.
func extractToken(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", false
		}
		return strings.TrimSpace(token), true
	}

	cookie, err := r.Cookie("token")
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="plexroulette"`)
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // the status is already written
	json.NewEncoder(w).Encode(&models.APIResponse{
		Status: "error",
		Error:  &models.APIError{Code: "UNAUTHORIZED", Message: message},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
