// SPDX-License-Identifier: MIT

// Trim removes every segment that is not needed to keep the intersections of
// a component connected: loops, parallel duplicates and every segment that
// closes a cycle. Among the segments of a cycle the longest ones go first
// (ties: the higher ID goes), so what remains is the minimum-length forest.

package trim

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// SpanningForest computes the minimum spanning forest without modifying the
// network.
//
// Errors: ErrNetworkNil, ErrUnknownMethod.
func SpanningForest(nw *network.Network, opts ...Option) (Forest, error) {
	if nw == nil {
		return Forest{}, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return kruskal(nw)
	case MethodPrim:
		return prim(nw)
	default:
		return Forest{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// Trim deletes every redundant segment, exactly as network.RemoveSegment
// would, and returns their total length. Intersections that were mutually
// reachable stay mutually reachable. An empty or already acyclic network
// yields 0.
//
// The forest is computed before anything is removed, so an error leaves the
// network untouched.
func Trim(nw *network.Network, opts ...Option) (geo.Distance, error) {
	f, err := SpanningForest(nw, opts...)
	if err != nil {
		return 0, err
	}
	for _, id := range f.Redundant {
		if err = nw.RemoveSegment(id); err != nil {
			return 0, fmt.Errorf("trim: %w", err)
		}
	}

	return f.RedundantLength, nil
}
