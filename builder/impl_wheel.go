// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim is Ring(n-1).
//   - The hub sits at the origin; spokes are emitted hub → rim[i] in ring order
//     after the rim segments.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/network"
)

// Wheel returns a Constructor that builds a ring of n-1 intersections and a
// hub joined to each of them.
func Wheel(n int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rim := circle(cfg, n-1)
		for i := range rim {
			if err := insert(MethodWheel, nw, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return fmt.Errorf("rim: %w", err)
			}
		}
		hub := cfg.shake(cfg.origin)
		for _, p := range rim {
			if err := insert(MethodWheel, nw, cfg, hub, p); err != nil {
				return fmt.Errorf("spoke: %w", err)
			}
		}

		return nil
	}
}
