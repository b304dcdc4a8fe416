// Package dijkstra implements Dijkstra's shortest-path algorithm on the road network.
//
// Notes on implementation choices:
//
//   - Segment lengths are non-negative by construction, so no pre-scan is needed.
//   - Zero-length segments are fine: an intersection is settled once, and a
//     relaxation must be a strict improvement.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries of intersections that are already settled.
//   - The search stops as soon as the destination is settled.
//
// Tie-break: the heap orders equal distances by coordinate (geo.Less) and an
// intersection's link only changes on a strictly shorter distance. Among
// routes of equal length the winner is the one whose last link was recorded
// first.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// ShortestDistance returns a route from `from` to `to` of minimum total length.
// The first step is (from, NoSegment, 0); every other step carries the
// segment travelled and the distance accumulated so far, so the last step's
// distance is the length of the route.
//
// Errors: ErrNetworkNil, ErrIntersectionNotFound, ErrNoRoute.
func ShortestDistance(nw *network.Network, from, to geo.Coord, opts ...Option) ([]network.Step, error) {
	if nw == nil {
		return nil, ErrNetworkNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !nw.HasIntersection(from) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, from)
	}
	if !nw.HasIntersection(to) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, to)
	}

	V := nw.IntersectionCount()
	r := &runner{
		nw:      nw,
		options: cfg,
		dist:    make(map[geo.Coord]geo.Distance, V),
		links:   make(map[geo.Coord]network.Link, V),
		settled: make(map[geo.Coord]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if err := r.run(from, to); err != nil {
		return nil, err
	}
	if !r.settled[to] {
		return nil, ErrNoRoute
	}

	legs, ok := network.UnwindLinks(r.links, from, to)
	if !ok {
		return nil, fmt.Errorf("dijkstra: broken link chain to %v", to)
	}

	return nw.Steps(from, legs)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	nw      *network.Network           // read-only within Dijkstra
	options Options                    // configuration
	dist    map[geo.Coord]geo.Distance // best known distance from the origin
	links   map[geo.Coord]network.Link // predecessor on the best known route
	settled map[geo.Coord]bool         // distance is final
	pq      nodePQ                     // min-heap for lazy decrease-key
}

// run pops intersections in order of distance until target is settled, the
// heap drains, or the next distance exceeds MaxDistance.
func (r *runner) run(source, target geo.Coord) error {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{at: source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.at] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.at] = true
		if item.at == target {
			return nil
		}
		if err := r.relax(item.at); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of the settled u.
func (r *runner) relax(u geo.Coord) error {
	for _, conn := range r.nw.Connections(u) {
		v := conn.Neighbor
		if r.settled[v] {
			continue
		}
		w, err := r.nw.SegmentLength(conn.Segment)
		if err != nil {
			return fmt.Errorf("dijkstra: relax %v: %w", u, err)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.links[v] = network.Link{Prev: u, Segment: conn.Segment}
		heap.Push(&r.pq, &nodeItem{at: v, dist: newDist})
	}

	return nil
}

// nodeItem represents an intersection and its tentative distance.
type nodeItem struct {
	at   geo.Coord
	dist geo.Distance
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by coordinate.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to coordinate order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return geo.Less(pq[i].at, pq[j].at)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
