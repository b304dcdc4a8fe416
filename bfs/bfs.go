// Package bfs provides breadth-first search over a network.Network,
// returning the route that crosses the fewest segments.
//
// Intersections are explored in increasing hop count from the origin. The
// first time the destination is dequeued its predecessor links describe a
// fewest-hops route.
//
// Tie-break: neighbors are enqueued in network.Connections order (lowest
// neighbor coordinate first, then lowest segment ID), and an intersection
// keeps the link of whoever enqueued it first. Among routes with equal hop
// counts the result is therefore always the same one.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// queueItem pairs an intersection with its hop count.
type queueItem struct {
	at   geo.Coord
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	nw      *network.Network
	opts    Options
	queue   []queueItem
	visited map[geo.Coord]bool
	links   map[geo.Coord]network.Link
}

// FewestHops returns a route from `from` to `to` with the minimum number of
// segments. The first step is (from, NoSegment, 0); every other step carries
// the segment travelled and the distance accumulated so far.
//
// Errors: ErrNetworkNil, ErrOptionViolation, ErrIntersectionNotFound,
// ErrNoRoute, or any OnVisit error.
//
// Complexity: O(V + E log d) time, O(V) memory.
func FewestHops(nw *network.Network, from, to geo.Coord, opts ...Option) ([]network.Step, error) {
	if nw == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !nw.HasIntersection(from) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, from)
	}
	if !nw.HasIntersection(to) {
		return nil, fmt.Errorf("%w: %v", ErrIntersectionNotFound, to)
	}

	n := nw.IntersectionCount()
	w := &walker{
		nw:      nw,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[geo.Coord]bool, n),
		links:   make(map[geo.Coord]network.Link, n),
	}

	found, err := w.run(from, to)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoRoute
	}

	legs, ok := network.UnwindLinks(w.links, from, to)
	if !ok {
		return nil, fmt.Errorf("bfs: broken link chain to %v", to)
	}

	return nw.Steps(from, legs)
}

// run processes the queue until the target is dequeued or the queue drains.
func (w *walker) run(root, target geo.Coord) (bool, error) {
	w.visited[root] = true
	w.queue = append(w.queue, queueItem{at: root})

	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(item.at, item.hops); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
		}
		if item.at == target {
			return true, nil
		}
		w.enqueueNeighbors(item)
	}

	return false, nil
}

// enqueueNeighbors applies MaxHops and enqueues every unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return
	}
	for _, conn := range w.nw.Connections(item.at) {
		if w.visited[conn.Neighbor] {
			continue
		}
		w.visited[conn.Neighbor] = true
		w.links[conn.Neighbor] = network.Link{Prev: item.at, Segment: conn.Segment}
		w.queue = append(w.queue, queueItem{at: conn.Neighbor, hops: next})
	}
}
