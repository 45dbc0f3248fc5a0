// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/plexroulette/internal/auth"
	"github.com/tomtom215/plexroulette/internal/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username":    "ana",
		"email":       "Ana@Example.com",
		"password":    "correct horse",
		"displayName": "Ana",
	}, "")

	var user models.User
	decodeData(t, rec, http.StatusCreated, &user)
	if user.ID == "" || user.Username != "ana" || user.Email != "ana@example.com" || user.DisplayName != "Ana" {
		t.Errorf("user = %+v", user)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("response exposes password data: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "token") {
		t.Error("register must not issue a token")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ana")

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username":    "ana",
		"email":       "other@example.com",
		"password":    "correct horse",
		"displayName": "Other",
	}, "")
	expectError(t, rec, http.StatusBadRequest, "USER_EXISTS")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "ana",
		"email":    "not-an-email",
		"password": "short",
	}, "")
	apiErr := expectError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	fields, ok := apiErr.Details["fields"]
	if !ok {
		t.Fatalf("details = %v, want per-field errors", apiErr.Details)
	}
	for _, name := range []string{"email", "password", "displayName"} {
		if !strings.Contains(strings.ToLower(toString(fields)), strings.ToLower(name)) {
			t.Errorf("field errors %v do not mention %s", fields, name)
		}
	}
}

func toString(v interface{}) string {
	var b strings.Builder
	switch x := v.(type) {
	case map[string]interface{}:
		for k, val := range x {
			b.WriteString(k + "=" + toString(val) + ";")
		}
	case []interface{}:
		for _, val := range x {
			b.WriteString(toString(val) + ";")
		}
	case string:
		b.WriteString(x)
	}
	return b.String()
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ana")

	rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "ana", "password": "correct horse"}, "")
	var result models.AuthResult
	decodeData(t, rec, http.StatusOK, &result)

	if result.Token == "" || result.User == nil || result.User.Username != "ana" {
		t.Fatalf("result = %+v", result)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != result.Token || !cookie.HttpOnly {
		t.Errorf("token cookie = %+v", cookie)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "ana")

	for _, creds := range []map[string]string{
		{"username": "ana", "password": "battery staple"},
		{"username": "bob", "password": "correct horse"},
	} {
		rec := env.do(t, http.MethodPost, "/api/auth/login", creds, "")
		expectError(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	expectError(t, env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "ana"}, ""), http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "ana")

	var user models.User
	decodeData(t, env.do(t, http.MethodGet, "/api/auth/me", nil, token), http.StatusOK, &user)
	if user.Username != "ana" {
		t.Errorf("me = %+v", user)
	}

	// The login cookie works in place of the header.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	decodeData(t, rec, http.StatusOK, nil)

	expectError(t, env.do(t, http.MethodGet, "/api/auth/me", nil, ""), http.StatusUnauthorized, "UNAUTHORIZED")
	expectError(t, env.do(t, http.MethodGet, "/api/auth/me", nil, "garbage"), http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestAuthModeNone(t *testing.T) {
	env := newTestEnv(t, withAuthMode(auth.ModeNone))

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "ana", "email": "ana@example.com", "password": "correct horse", "displayName": "Ana",
	}, "")
	expectError(t, rec, http.StatusNotFound, "NOT_FOUND")
	expectError(t, env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "a", "password": "b"}, ""), http.StatusNotFound, "NOT_FOUND")

	var me models.User
	decodeData(t, env.do(t, http.MethodGet, "/api/auth/me", nil, ""), http.StatusOK, &me)
	if me.ID != auth.LocalUserID {
		t.Errorf("me = %+v, want the local user", me)
	}

	// Per-user routes work without a token.
	rec = env.do(t, http.MethodPost, "/api/user/favorites", map[string]interface{}{"ratingKey": "1", "data": map[string]string{"title": "Alien"}}, "")
	decodeData(t, rec, http.StatusOK, nil)

	var favorites []models.Favorite
	decodeData(t, env.do(t, http.MethodGet, "/api/user/favorites", nil, ""), http.StatusOK, &favorites)
	if len(favorites) != 1 {
		t.Errorf("got %d favorites, want 1", len(favorites))
	}
}
