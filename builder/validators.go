// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// validateMin ensures that got ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// insert adds a straight segment u→v under the next ID of the build.
func insert(method string, nw *network.Network, cfg builderConfig, u, v geo.Coord) error {
	id := cfg.nextID()
	if err := nw.InsertSegment(network.SegmentID(id), []geo.Coord{u, v}); err != nil {
		return fmt.Errorf("%s: InsertSegment(%s, %v→%v): %w: %w", method, id, u, v, ErrConstructFailed, err)
	}

	return nil
}
