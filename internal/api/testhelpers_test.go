// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"bytes"
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/plexroulette/internal/auth"
	"github.com/tomtom215/plexroulette/internal/catalog"
	"github.com/tomtom215/plexroulette/internal/config"
	"github.com/tomtom215/plexroulette/internal/database"
	"github.com/tomtom215/plexroulette/internal/models"
	"github.com/tomtom215/plexroulette/internal/plex"
	"github.com/tomtom215/plexroulette/internal/watched"
)

// testDBSemaphore limits concurrent DuckDB instances.
var testDBSemaphore = make(chan struct{}, 2)

const testJWTSecret = "api-test-secret-with-more-than-32-characters"

// stubPlex is an in-memory plex.LibraryClient.
type stubPlex struct {
	mu       sync.Mutex
	items    []plex.RawItem
	sections []plex.Directory
	err      error
}

func (s *stubPlex) GetServerIdentity(context.Context) (*plex.IdentityContainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &plex.IdentityContainer{MachineIdentifier: "abc123"}, nil
}

func (s *stubPlex) GetLibrarySections(context.Context) ([]plex.Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sections, s.err
}

func (s *stubPlex) GetLibraryItems(context.Context, string, int) ([]plex.RawItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, s.err
}

func (s *stubPlex) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// sampleLibrary has six movies:
//
//	1 Alien         1979 8.5 Horror, Sci-Fi  unwatched
//	2 Heat          1995 8.3 Crime           watched
//	3 Arrival       2016 7.9 Sci-Fi          unwatched
//	4 Paddington 2  2017 7.8 Comedy          unwatched
//	5 Hereditary    2018 7.3 Horror          unwatched
//	6 Tenet         2020 7.3 Sci-Fi, Action  watched
func sampleLibrary() []plex.RawItem {
	movie := func(key, title, year, rating, viewCount string, genres ...string) plex.RawItem {
		tags := make([]plex.Tag, len(genres))
		for i, g := range genres {
			tags[i] = plex.Tag{Tag: g}
		}
		return plex.RawItem{
			RatingKey: key,
			Key:       "/library/metadata/" + key,
			Title:     title,
			Year:      year,
			Rating:    rating,
			Type:      "movie",
			Thumb:     "/library/metadata/" + key + "/thumb",
			ViewCount: viewCount,
			Genres:    tags,
		}
	}
	return []plex.RawItem{
		movie("1", "Alien", "1979", "8.5", "", "Horror", "Science Fiction"),
		movie("2", "Heat", "1995", "8.3", "2", "Crime"),
		movie("3", "Arrival", "2016", "7.9", "0", "Science Fiction"),
		movie("4", "Paddington 2", "2017", "7.8", "", "Comedy"),
		movie("5", "Hereditary", "2018", "7.3", "", "Horror"),
		movie("6", "Tenet", "2020", "7.3", "1", "Science Fiction", "Action"),
	}
}

type testEnv struct {
	router  http.Handler
	handler *Handler
	plex    *stubPlex
	db      *database.DB
	watched *watched.Store
	jwt     *auth.JWTManager
	cfg     *config.Config
}

type envOption func(*config.Config)

func withAuthMode(mode string) envOption {
	return func(c *config.Config) { c.Security.AuthMode = mode }
}

func withRateLimit() envOption {
	return func(c *config.Config) { c.Security.RateLimitDisabled = false }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Plex: config.PlexConfig{URL: "http://plex.local:32400", Token: "secret-token"},
		Server: config.ServerConfig{
			StaticDir: t.TempDir(),
		},
		Database: config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1},
		Security: config.SecurityConfig{
			AuthMode:          auth.ModeJWT,
			JWTSecret:         testJWTSecret,
			SessionTimeout:    time.Hour,
			BcryptCost:        bcrypt.MinCost,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"http://localhost:5173"},
		},
		Catalog: config.CatalogConfig{DefaultCount: 3, RouletteCandidates: 4, HistoryLimit: 50},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&cfg.Database)
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store, err := watched.OpenInMemory()
	if err != nil {
		t.Fatalf("watched.OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	stub := &stubPlex{
		items: sampleLibrary(),
		sections: []plex.Directory{
			{Key: "1", Title: "Movies", Type: "movie"},
			{Key: "2", Title: "TV Shows", Type: "show"},
		},
	}

	catalogSvc := catalog.NewService(stub, catalog.Config{
		Upstream:           catalog.Upstream{BaseURL: cfg.PlexBaseURL(), Token: cfg.Plex.Token},
		Identity:           catalog.ResolveIdentity(context.Background(), stub),
		DefaultCount:       cfg.Catalog.DefaultCount,
		MaxCount:           cfg.Catalog.MaxCount,
		RouletteCandidates: cfg.Catalog.RouletteCandidates,
		Selector:           catalog.NewSelector(rand.NewPCG(7, 7)),
	})

	env := &testEnv{plex: stub, db: db, watched: store, cfg: cfg}

	var authSvc *auth.Service
	if cfg.Security.AuthMode == auth.ModeJWT {
		env.jwt, err = auth.NewJWTManager(&cfg.Security)
		if err != nil {
			t.Fatalf("NewJWTManager() error = %v", err)
		}
		authSvc = auth.NewService(db, env.jwt, cfg.Security.BcryptCost)
	}

	env.handler = NewHandler(cfg, catalogSvc, stub, db, store, authSvc)
	env.router = NewRouter(env.handler, auth.NewMiddleware(env.jwt, cfg.Security.AuthMode)).SetupChi()
	return env
}

// envelope mirrors models.APIResponse with Data left raw for typed decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response (status %d): %v\n%s", rec.Code, err, rec.Body.String())
	}
	return env
}

// decodeData asserts a success envelope with the given status and decodes data.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, dst interface{}) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d\n%s", rec.Code, wantStatus, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("envelope status = %q, want success", env.Status)
	}
	if dst != nil {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("decode data: %v\n%s", err, env.Data)
		}
	}
}

// expectError asserts an error envelope with the given status and code.
func expectError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) *models.APIError {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d\n%s", rec.Code, wantStatus, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != wantCode {
		t.Errorf("error code = %q, want %q (%s)", env.Error.Code, wantCode, env.Error.Message)
	}
	return env.Error
}

// registerAndLogin creates an account and returns its token.
func (e *testEnv) registerAndLogin(t *testing.T, username string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username":    username,
		"email":       username + "@example.com",
		"password":    "correct horse",
		"displayName": username,
	}, "")
	decodeData(t, rec, http.StatusCreated, nil)

	rec = e.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": "correct horse",
	}, "")
	var result models.AuthResult
	decodeData(t, rec, http.StatusOK, &result)
	return result.Token
}

func writeStaticFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
