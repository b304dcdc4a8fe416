// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Intersection i sits at lattice position (i, 0).
//   - Emits segments i-1 → i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// Path returns a Constructor that builds a straight road of n intersections.
func Path(n int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		pts := make([]geo.Coord, n)
		for i := range pts {
			pts[i] = cfg.at(i, 0)
		}
		for i := 1; i < n; i++ {
			if err := insert(MethodPath, nw, cfg, pts[i-1], pts[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
