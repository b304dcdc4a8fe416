// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub sits at the origin, the n-1 leaves on a circle around it.
//   - Emits spokes hub → leaf[i] in increasing leaf order.
//
// Complexity: O(n).

package builder

import (
	"github.com/katalvlaran/roadnet/network"
)

// Star returns a Constructor that builds a hub with n-1 dead-end roads.
func Star(n int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		hub := cfg.shake(cfg.origin)
		leaves := n - 1
		if leaves < MinRingNodes {
			// circle() needs 3 points to stay off the hub; pad and drop the extras.
			leaves = MinRingNodes
		}
		rim := circle(cfg, leaves)
		for i := 0; i < n-1; i++ {
			if err := insert(MethodStar, nw, cfg, hub, rim[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
