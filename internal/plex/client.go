// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/metrics"
)

// maxResponseBytes caps a single XML document. Large libraries produce a few
// megabytes at most.
const maxResponseBytes = 64 << 20

// LibraryClient is the set of Plex calls the catalog depends on.
// Client and CircuitBreakerClient both implement it.
type LibraryClient interface {
	GetServerIdentity(ctx context.Context) (*IdentityContainer, error)
	GetLibrarySections(ctx context.Context) ([]Directory, error)
	GetLibraryItems(ctx context.Context, sectionKey string, containerSize int) ([]RawItem, error)
}

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// RequestsPerSecond paces outbound requests; zero or less disables pacing.
	RequestsPerSecond float64
	Burst             int

	// HTTPClient overrides the default client. Tests use it with httptest servers.
	HTTPClient *http.Client
}

// Client talks to one Plex Media Server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a Plex client. BaseURL must not have a trailing slash.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logging.WithComponent("plex"),
	}
}

// StatusError is returned when Plex answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("plex %s: unexpected status: %s", e.Path, e.Status)
}

type requestConfig struct {
	endpoint string // metrics label
	path     string
	query    url.Values
}

// doRequest performs a GET and decodes the XML body into result.
func (c *Client) doRequest(ctx context.Context, cfg requestConfig, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("plex %s: wait for rate limiter: %w", cfg.path, err)
	}

	query := url.Values{}
	for k, v := range cfg.query {
		query[k] = v
	}
	query.Set("X-Plex-Token", c.token)

	reqURL := c.baseURL + cfg.path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("plex %s: create request: %w", cfg.path, err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "text/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordPlexRequest(cfg.endpoint, 0, time.Since(start))
		c.logger.Debug().Err(redact(err, c.token)).Str("path", cfg.path).Msg("Plex request failed")
		return fmt.Errorf("plex %s: %w", cfg.path, redact(err, c.token))
	}
	defer resp.Body.Close()
	metrics.RecordPlexRequest(cfg.endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Path: cfg.path}
	}

	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(result); err != nil {
		return fmt.Errorf("plex %s: decode response: %w", cfg.path, err)
	}

	c.logger.Debug().
		Str("path", cfg.path).
		Dur("duration", time.Since(start)).
		Msg("Plex request completed")
	return nil
}

// redact strips the token from transport errors, which embed the request URL.
func redact(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), token, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// GetServerIdentity fetches the server's root container, which carries the
// machineIdentifier used to build web UI deep links.
func (c *Client) GetServerIdentity(ctx context.Context) (*IdentityContainer, error) {
	var identity IdentityContainer
	if err := c.doRequest(ctx, requestConfig{endpoint: "identity", path: "/"}, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// GetLibrarySections lists the server's library sections.
func (c *Client) GetLibrarySections(ctx context.Context) ([]Directory, error) {
	var container SectionsContainer
	if err := c.doRequest(ctx, requestConfig{endpoint: "sections", path: "/library/sections"}, &container); err != nil {
		return nil, err
	}
	if container.Directories == nil {
		return []Directory{}, nil
	}
	return container.Directories, nil
}

// GetLibraryItems fetches every item element in a section. A positive
// containerSize is sent as X-Plex-Container-Size; zero leaves paging to Plex.
func (c *Client) GetLibraryItems(ctx context.Context, sectionKey string, containerSize int) ([]RawItem, error) {
	query := url.Values{}
	if containerSize > 0 {
		query.Set("X-Plex-Container-Start", "0")
		query.Set("X-Plex-Container-Size", strconv.Itoa(containerSize))
	}

	var container LibraryContainer
	err := c.doRequest(ctx, requestConfig{
		endpoint: "library_items",
		path:     "/library/sections/" + url.PathEscape(sectionKey) + "/all",
		query:    query,
	}, &container)
	if err != nil {
		return nil, err
	}
	return container.Items(), nil
}
