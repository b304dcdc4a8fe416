// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_ring.go - implementation of Ring(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Intersections lie on a circle of radius n*spacing around the origin,
//     counter-clockwise from angle 0. That radius keeps neighbouring
//     intersections at least 4*spacing apart, so rounding never merges them.
//   - Emits segments i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n).

package builder

import (
	"math"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// Ring returns a Constructor that builds a closed ring road of n intersections.
func Ring(n int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if err := validateMin(MethodRing, n, MinRingNodes); err != nil {
			return err
		}

		pts := circle(cfg, n)
		for i := 0; i < n; i++ {
			if err := insert(MethodRing, nw, cfg, pts[i], pts[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// circle places n points evenly on a circle of radius n*spacing around the origin.
func circle(cfg builderConfig, n int) []geo.Coord {
	r := float64(n * cfg.spacing)
	pts := make([]geo.Coord, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = cfg.shake(geo.Coord{
			X: cfg.origin.X + int(math.Round(r*math.Cos(theta))),
			Y: cfg.origin.Y + int(math.Round(r*math.Sin(theta))),
		})
	}

	return pts
}
