package dfs

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// frame is one entry of the explicit path stack used by CycleFrom.
type frame struct {
	at    geo.Coord            // intersection on the current path
	via   network.SegmentID    // segment used to arrive at it
	conns []network.Connection // its connections, in Connections order
	next  int                  // index of the next connection to expand
}

// CycleFrom returns a walk from `from` that ends by revisiting an
// intersection already on the walk.
//
// When `from` lies on a cycle the walk is closed: it starts and ends at
// `from` and repeats no other intersection. It is found by trying the
// connections of `from` in Connections order; for each one the walk leaves
// over that segment and returns over a route that never uses it. A loop at
// `from` is a closed walk of one segment, and a parallel segment closes a
// walk of two.
//
// When `from` is on no cycle, an iterative DFS with an explicit path stack
// looks for any cycle in its component. The segment used to arrive at an
// intersection is never taken back, so a there-and-back over one segment is
// not a cycle. The walk then leads from `from` to the cycle and ends at the
// first repeated intersection.
//
// Every step carries the segment used to reach it; the first carries NoSegment.
//
// Errors: ErrNetworkNil, ErrIntersectionNotFound, ErrNoCycle.
//
// Complexity: O(deg(from)·(V + E log d)) time, O(V + E) memory.
func CycleFrom(nw *network.Network, from geo.Coord) ([]network.CycleStep, error) {
	if nw == nil {
		return nil, ErrNetworkNil
	}
	if !nw.HasIntersection(from) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, from)
	}
	if walk, ok := closedWalk(nw, from); ok {
		return walk, nil
	}

	return lasso(nw, from)
}

// closedWalk returns a cycle through from, if there is one.
func closedWalk(nw *network.Network, from geo.Coord) ([]network.CycleStep, bool) {
	for _, out := range nw.Connections(from) {
		if out.Neighbor == from {
			return []network.CycleStep{
				{Coord: from, Segment: network.NoSegment},
				{Coord: from, Segment: out.Segment},
			}, true
		}

		// a route from `from` to the neighbor that avoids out.Segment,
		// read backward, is the way home
		w := newAnyWalker(nw, out.Segment)
		if !w.search(from, out.Neighbor) {
			continue
		}
		back, ok := network.FollowLinks(w.links, out.Neighbor, from)
		if !ok {
			continue
		}

		walk := make([]network.CycleStep, 0, len(back)+2)
		walk = append(walk,
			network.CycleStep{Coord: from, Segment: network.NoSegment},
			network.CycleStep{Coord: out.Neighbor, Segment: out.Segment})
		for _, leg := range back {
			walk = append(walk, network.CycleStep{Coord: leg.To, Segment: leg.Segment})
		}

		return walk, true
	}

	return nil, false
}

// lasso finds any cycle in the component of from with a path-stack DFS and
// returns the walk from `from` to its first repeated intersection.
func lasso(nw *network.Network, from geo.Coord) ([]network.CycleStep, error) {
	state := make(map[geo.Coord]int)
	onPath := make(map[geo.Coord]struct{})
	stack := []frame{{at: from, via: network.NoSegment, conns: nw.Connections(from)}}
	state[from] = Gray
	onPath[from] = struct{}{}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// all connections expanded: backtrack
		if top.next == len(top.conns) {
			delete(onPath, top.at)
			state[top.at] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		conn := top.conns[top.next]
		top.next++
		if conn.Segment == top.via {
			continue
		}
		if _, ok := onPath[conn.Neighbor]; ok {
			return closeCycle(stack, conn), nil
		}
		if state[conn.Neighbor] == Black {
			continue
		}

		state[conn.Neighbor] = Gray
		onPath[conn.Neighbor] = struct{}{}
		stack = append(stack, frame{
			at:    conn.Neighbor,
			via:   conn.Segment,
			conns: nw.Connections(conn.Neighbor),
		})
	}

	return nil, ErrNoCycle
}

// closeCycle turns the path stack plus the closing connection into the result.
func closeCycle(stack []frame, closing network.Connection) []network.CycleStep {
	out := make([]network.CycleStep, 0, len(stack)+1)
	for _, f := range stack {
		out = append(out, network.CycleStep{Coord: f.at, Segment: f.via})
	}

	return append(out, network.CycleStep{Coord: closing.Neighbor, Segment: closing.Segment})
}
