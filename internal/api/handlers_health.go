// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/plexroulette/internal/models"
)

// Version is reported by the health endpoints. Overridden at build time.
var Version = "dev"

const plexProbeTimeout = 5 * time.Second

func (h *Handler) databaseConnected(ctx context.Context) bool {
	return h.db != nil && h.db.Ping(ctx) == nil
}

func (h *Handler) plexReachable(ctx context.Context) bool {
	if h.plex == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, plexProbeTimeout)
	defer cancel()
	_, err := h.plex.GetServerIdentity(ctx)
	return err == nil
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns database connectivity, Plex reachability, whether the server identity was resolved at startup, and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.databaseConnected(r.Context())
	plexReachable := h.plexReachable(r.Context())

	status := "healthy"
	if !dbConnected || !plexReachable {
		status = "degraded"
	}

	identityResolved := h.catalog != nil && h.catalog.Identity().Resolved()

	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:            status,
		Version:           Version,
		PlexReachable:     plexReachable,
		DatabaseConnected: dbConnected,
		IdentityResolved:  identityResolved,
		Uptime:            time.Since(h.startTime).Seconds(),
		Timestamp:         time.Now(),
	}, time.Time{})
}

// HealthLive handles liveness probe requests
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady handles readiness probe requests
//
// Plex being down does not make the service unready: catalog requests fail
// with PLEX_ERROR but accounts, favorites and history keep working.
//
// @Summary Readiness probe
// @Description Returns 200 OK when the database is reachable, 503 otherwise
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.databaseConnected(r.Context()) {
		respondError(w, r, http.StatusServiceUnavailable, "DATABASE_ERROR", "Database not connected", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"ready": true}, time.Time{})
}

// ServerConfig returns what the client needs to build Plex deep links
//
// machineIdentifier is null when the identity could not be resolved at startup.
//
// @Summary Get server configuration
// @Description Returns the Plex base URL and machine identifier. Never includes the token.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ServerConfig}
// @Router /config [get]
func (h *Handler) ServerConfig(w http.ResponseWriter, _ *http.Request) {
	result := models.ServerConfig{}
	if h.config != nil {
		result.PlexURL = h.config.PlexBaseURL()
	}
	if h.catalog != nil {
		if identity := h.catalog.Identity(); identity.Resolved() {
			id := identity.MachineIdentifier()
			result.MachineIdentifier = &id
		}
	}
	respondSuccess(w, http.StatusOK, result, time.Time{})
}
