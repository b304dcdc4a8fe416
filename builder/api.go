// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates nw, resolves cfg, runs cons in order.
//   - Apply runs constructors against an existing network with a fresh cfg.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical networks.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/network"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before inserting anything and return sentinel errors.
//   - Draw segment IDs from cfg.nextID so that composed constructors never collide.
//   - Preserve determinism for the same config and call order.
type Constructor func(nw *network.Network, cfg builderConfig) error

// BuildNetwork creates a new network.Network, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildNetwork: %w" and
// returned immediately together with a nil network.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	nw := network.New()
	if err := apply(nw, bopts, cons); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return nw, nil
}

// Apply runs constructors against an existing network. Segments inserted
// before the failing constructor stay in place.
func Apply(nw *network.Network, bopts []BuilderOption, cons ...Constructor) error {
	if nw == nil {
		return fmt.Errorf("Apply: nil network: %w", ErrConstructFailed)
	}
	if err := apply(nw, bopts, cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(nw *network.Network, bopts []BuilderOption, cons []Constructor) error {
	cfg := newBuilderConfig(bopts...)
	if err := cfg.validate(); err != nil {
		return err
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nw, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Topology factories, implemented in impl_*.go:
//
//   Path(n)             n ≥ 2 intersections on a horizontal line, n-1 segments.
//   Ring(n)             n ≥ 3 intersections on a circle, n segments.
//   Wheel(n)            Ring(n-1) plus a hub at the centre with n-1 spokes.
//   Star(n)             a hub and n-1 leaves on a circle, n-1 segments.
//   Grid(rows, cols)    4-neighbourhood lattice, rows*(cols-1) + cols*(rows-1) segments.
//   RandomSparse(n, p)  n scattered intersections, each pair joined with probability p.
