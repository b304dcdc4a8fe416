// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn    = SymbolNumberIDFn("s")  ("s0","s1",...)
//   - origin  = (0,0)
//   - spacing = DefaultSpacing
//   - jitter  = 0
//   - rng     = nil (pure/deterministic unless seeded)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roadnet/geo"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; only the ID counter is shared.
type builderConfig struct {
	// Segment ID strategy: sequence number -> ID (deterministic).
	idFn IDFn
	// seq counts segments issued by this build across all constructors.
	seq *int

	// origin is the anchor every constructor lays its intersections out from.
	origin geo.Coord
	// spacing is the distance between neighbouring lattice points.
	spacing int
	// jitter is the maximal random offset applied to each coordinate axis.
	jitter int

	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    SymbolNumberIDFn(DefaultIDPrefix),
		seq:     new(int),
		origin:  geo.Coord{},
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks option combinations that cannot be judged one option at a time.
func (cfg builderConfig) validate() error {
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("jitter=%d: %w", cfg.jitter, ErrNeedRandSource)
	}
	// keeps jittered lattice points distinct
	if 2*cfg.jitter >= cfg.spacing {
		return fmt.Errorf("jitter=%d must be < spacing/2 (spacing=%d): %w", cfg.jitter, cfg.spacing, ErrOptionViolation)
	}

	return nil
}

// nextID issues the next segment ID of this build.
func (cfg builderConfig) nextID() string {
	id := cfg.idFn(*cfg.seq)
	*cfg.seq++

	return id
}

// at returns the intersection for lattice position (col,row): origin plus
// spacing steps, shifted by a random offset in [0,jitter] on each axis.
func (cfg builderConfig) at(col, row int) geo.Coord {
	c := geo.Coord{
		X: cfg.origin.X + col*cfg.spacing,
		Y: cfg.origin.Y + row*cfg.spacing,
	}

	return cfg.shake(c)
}

// shake applies the configured jitter to c.
func (cfg builderConfig) shake(c geo.Coord) geo.Coord {
	if cfg.jitter == 0 {
		return c
	}
	c.X += cfg.rng.Intn(cfg.jitter + 1)
	c.Y += cfg.rng.Intn(cfg.jitter + 1)

	return c
}
