// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

/*
Package metrics provides Prometheus metrics for Plex Roulette.

Metrics are registered with the default registry through promauto and exposed
at /metrics by the API router.

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Plex upstream:
  - plex_requests_total{endpoint, status}
  - plex_request_duration_seconds{endpoint}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Catalog:
  - catalog_operations_total{operation, result}
  - catalog_library_items{operation}
  - catalog_filtered_items{operation}

Storage:
  - duckdb_query_duration_seconds{operation, table}
  - duckdb_query_errors_total{operation, table, error_type}
  - watched_store_operations_total{operation, result}
  - watched_store_gc_runs_total{result}

Auth:
  - auth_attempts_total{operation, result}
*/
package metrics
