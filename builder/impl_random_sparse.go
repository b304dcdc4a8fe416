// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//   - Intersection i sits at lattice position (i, rng.Intn(n)): the X column
//     is unique per intersection, so no two coincide.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); positions are random
//     even when p ∈ {0,1}.
//   - Intersections that end up without segments do not exist in the network.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: fixed trial order (i asc, j asc) ⇒ same seed, same network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// RandomSparse returns a Constructor that samples a random road network over
// n scattered intersections with independent segment probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		pts := make([]geo.Coord, n)
		for i := range pts {
			pts[i] = cfg.at(i, cfg.rng.Intn(n))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := insert(MethodRandomSparse, nw, cfg, pts[i], pts[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
