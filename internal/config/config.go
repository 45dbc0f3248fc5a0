// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package config

import (
	"time"
)

// Config holds all application configuration.
// Fields are populated by LoadWithKoanf from defaults, an optional YAML file,
// and environment variables, in that order of precedence.
type Config struct {
	Plex     PlexConfig     `koanf:"plex"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Watched  WatchedConfig  `koanf:"watched"`
	Security SecurityConfig `koanf:"security"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// PlexConfig holds the upstream Plex Media Server connection settings.
type PlexConfig struct {
	URL   string `koanf:"url"`
	Token string `koanf:"token"`

	// ContainerSize is the X-Plex-Container-Size hint sent by the browse-all operation.
	ContainerSize int `koanf:"container_size"`

	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond paces outbound requests. Zero disables pacing.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
	StaticDir   string        `koanf:"static_dir"`
}

// DatabaseConfig holds DuckDB settings for users, favorites and history.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// WatchedConfig holds the BadgerDB settings for per-user watched flags.
type WatchedConfig struct {
	Path       string        `koanf:"path"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// SecurityConfig holds authentication and request limiting settings.
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"`
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CatalogConfig holds the random selection defaults.
type CatalogConfig struct {
	DefaultCount       int `koanf:"default_count"`
	MaxCount           int `koanf:"max_count"` // 0 = no cap
	RouletteCandidates int `koanf:"roulette_candidates"`
	HistoryLimit       int `koanf:"history_limit"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
