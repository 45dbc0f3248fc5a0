// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package models

import (
	"time"
)

// APIResponse is the envelope used by every JSON endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
//	{
//	  "status": "success",
//	  "data": {"total": 3, "items": [...]},
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "query_time_ms": 180}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing. QueryTimeMS covers the upstream fetch and
// the normalize/filter/select transform for catalog endpoints.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError describes a failed request.
//
// Codes in use: VALIDATION_ERROR, UNAUTHORIZED, INVALID_CREDENTIALS,
// USER_EXISTS, NOT_FOUND, RATE_LIMITED, PLEX_ERROR, DATABASE_ERROR,
// WATCHED_STORE_ERROR, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status            string    `json:"status"`
	Version           string    `json:"version"`
	PlexReachable     bool      `json:"plex_reachable"`
	DatabaseConnected bool      `json:"database_connected"`
	IdentityResolved  bool      `json:"identity_resolved"`
	Uptime            float64   `json:"uptime_seconds"`
	Timestamp         time.Time `json:"timestamp"`
}
