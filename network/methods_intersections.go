// SPDX-License-Identifier: MIT
//
// File: methods_intersections.go
// Role: Read-only intersection queries used by the search packages.
// Determinism:
//   - Intersections() is sorted by geo.Less.
//   - Connections(c) is sorted by neighbor (geo.Less), then by segment ID.
//   - SegmentsTouching(c) is sorted by segment ID.
//   Searches expand neighbors in Connections order, which is what makes their
//   tie-breaks reproducible.

package network

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/roadnet/geo"
)

// HasIntersection reports whether an intersection exists at c.
func (n *Network) HasIntersection(c geo.Coord) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.intersections[c]

	return ok
}

// Intersections returns every intersection coordinate in coordinate order.
func (n *Network) Intersections() []geo.Coord {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]geo.Coord, 0, len(n.intersections))
	for c := range n.intersections {
		out = append(out, c)
	}
	slices.SortFunc(out, geo.Compare)

	return out
}

// IntersectionCount returns the number of intersections.
func (n *Network) IntersectionCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.intersections)
}

// Connections returns a sorted copy of the connections at c, or nil if no
// intersection exists there. A loop segment appears twice.
//
// Complexity: O(d log d) where d is the degree of c.
func (n *Network) Connections(c geo.Coord) []Connection {
	n.mu.RLock()
	defer n.mu.RUnlock()

	x, ok := n.intersections[c]
	if !ok {
		return nil
	}
	out := slices.Clone(x.connections)
	slices.SortStableFunc(out, compareConnections)

	return out
}

// Degree returns the number of connection entries at c.
func (n *Network) Degree(c geo.Coord) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if x, ok := n.intersections[c]; ok {
		return len(x.connections)
	}

	return 0
}

// SegmentsTouching lists, for every segment incident to c, its ID and its
// other endpoint. A loop is listed once, with c as its other endpoint.
// The result is empty when no intersection exists at c.
func (n *Network) SegmentsTouching(c geo.Coord) []Touch {
	n.mu.RLock()
	defer n.mu.RUnlock()

	x, ok := n.intersections[c]
	if !ok {
		return []Touch{}
	}
	out := make([]Touch, 0, len(x.connections))
	seen := make(map[SegmentID]struct{}, len(x.connections))
	for _, conn := range x.connections {
		if _, dup := seen[conn.Segment]; dup {
			continue
		}
		seen[conn.Segment] = struct{}{}
		out = append(out, Touch{Segment: conn.Segment, Other: conn.Neighbor})
	}
	slices.SortFunc(out, func(a, b Touch) int { return cmp.Compare(a.Segment, b.Segment) })

	return out
}

func compareConnections(a, b Connection) int {
	if c := geo.Compare(a.Neighbor, b.Neighbor); c != 0 {
		return c
	}

	return cmp.Compare(a.Segment, b.Segment)
}
