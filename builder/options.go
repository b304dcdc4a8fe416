// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/roadnet/geo"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic segment ID generator: seq -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix names segments prefix+"0", prefix+"1", ...
// Panics on an empty prefix, which would collide with other schemes.
func WithIDPrefix(prefix string) BuilderOption {
	if prefix == "" {
		panic("builder: WithIDPrefix(\"\")")
	}

	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithOrigin moves the anchor of every constructor. Panics on geo.NoCoord.
func WithOrigin(c geo.Coord) BuilderOption {
	if c.IsNone() {
		panic("builder: WithOrigin(NoCoord)")
	}
	return func(cfg *builderConfig) {
		cfg.origin = c
	}
}

// WithSpacing sets the distance between neighbouring lattice points.
// Panics if d <= 0.
func WithSpacing(d int) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithJitter shifts every generated intersection by a random offset in
// [0,max] on each axis, which makes segment lengths unequal. Requires an RNG
// (WithSeed/WithRand) and max < spacing/2; both are checked at build time.
// Panics if max < 0.
func WithJitter(max int) BuilderOption {
	if max < 0 {
		panic("builder: WithJitter(max<0)")
	}
	return func(c *builderConfig) {
		c.jitter = max
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
