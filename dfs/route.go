// Package dfs implements the depth-first searches over a network.Network.
//
// RouteAny returns some route between two intersections. The search is
// seeded at the destination and walks backward with an explicit stack,
// recording for every intersection the neighbor and segment it was first
// reached from. It halts the moment the origin is discovered, and the route
// is then read forward from the origin by following those links.
//
// Complexity:
//
//   - Time:   O(V + E log d) (d = max degree; Connections sorts per call)
//   - Memory: O(V + E) for colors, links and the stack.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// anyWalker holds the state of one RouteAny search.
type anyWalker struct {
	nw    *network.Network
	avoid network.SegmentID // never traversed; NoSegment avoids nothing
	color map[geo.Coord]int
	links map[geo.Coord]network.Link
}

func newAnyWalker(nw *network.Network, avoid network.SegmentID) *anyWalker {
	return &anyWalker{
		nw:    nw,
		avoid: avoid,
		color: make(map[geo.Coord]int),
		links: make(map[geo.Coord]network.Link),
	}
}

// RouteAny returns a route from `from` to `to`. The route is not necessarily
// the shortest; it is acyclic and every step carries the segment actually
// travelled to reach it, with the distance accumulated so far.
//
// If from == to the route is the single step (from, NoSegment, 0).
//
// Errors: ErrNetworkNil, ErrIntersectionNotFound, ErrNoRoute.
func RouteAny(nw *network.Network, from, to geo.Coord) ([]network.Step, error) {
	if nw == nil {
		return nil, ErrNetworkNil
	}
	if !nw.HasIntersection(from) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, from)
	}
	if !nw.HasIntersection(to) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, to)
	}
	if from == to {
		return nw.Steps(from, nil)
	}

	w := newAnyWalker(nw, network.NoSegment)
	if !w.search(to, from) {
		return nil, ErrNoRoute
	}

	legs, ok := network.FollowLinks(w.links, from, to)
	if !ok {
		return nil, fmt.Errorf("dfs: broken link chain from %v", from)
	}

	return nw.Steps(from, legs)
}

// search runs the stack-driven traversal from root and reports whether
// target was discovered.
//
// An intersection is pushed again when it is first expanded so that popping
// it a second time marks it Black. A White intersection may be pushed by
// several neighbors; its link is the one written last before it turns Gray.
func (w *anyWalker) search(root, target geo.Coord) bool {
	stack := []geo.Coord{root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.color[u] != White {
			w.color[u] = Black
			continue
		}
		w.color[u] = Gray
		stack = append(stack, u)

		for _, conn := range w.nw.Connections(u) {
			v := conn.Neighbor
			if conn.Segment == w.avoid || w.color[v] != White {
				continue
			}
			w.links[v] = network.Link{Prev: u, Segment: conn.Segment}
			if v == target {
				return true
			}
			stack = append(stack, v)
		}
	}

	return false
}
