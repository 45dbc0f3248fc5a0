// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package catalog

import (
	"context"

	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/plex"
)

// ServerIdentity holds the Plex machineIdentifier. It is resolved once at
// startup and never changes afterwards.
type ServerIdentity struct {
	machineIdentifier string
}

// NewServerIdentity wraps a known machine identifier. An empty id yields an
// unresolved identity.
func NewServerIdentity(machineIdentifier string) ServerIdentity {
	return ServerIdentity{machineIdentifier: machineIdentifier}
}

// MachineIdentifier returns the identifier, or "" when resolution failed.
func (s ServerIdentity) MachineIdentifier() string {
	return s.machineIdentifier
}

// Resolved reports whether the identifier is known.
func (s ServerIdentity) Resolved() bool {
	return s.machineIdentifier != ""
}

// segment is the value used in web UI links.
func (s ServerIdentity) segment() string {
	if !s.Resolved() {
		return "null"
	}
	return s.machineIdentifier
}

// IdentitySource is the Plex call needed to resolve a ServerIdentity.
type IdentitySource interface {
	GetServerIdentity(ctx context.Context) (*plex.IdentityContainer, error)
}

// ResolveIdentity asks Plex for its machineIdentifier. Failure is logged and
// returns an unresolved identity; startup continues either way.
func ResolveIdentity(ctx context.Context, source IdentitySource) ServerIdentity {
	container, err := source.GetServerIdentity(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Could not resolve Plex machine identifier, web links will be degraded")
		return ServerIdentity{}
	}
	if container.MachineIdentifier == "" {
		logging.Warn().Msg("Plex returned an empty machine identifier, web links will be degraded")
		return ServerIdentity{}
	}

	logging.Info().
		Str("machine_identifier", container.MachineIdentifier).
		Str("server", container.FriendlyName).
		Msg("Resolved Plex machine identifier")
	return ServerIdentity{machineIdentifier: container.MachineIdentifier}
}
