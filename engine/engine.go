// Package engine is the in-process facade over the road network and its
// collaborators. It exposes the query surface with sentinel-valued results
// instead of errors:
//
//   - mutations report success as a bool;
//   - lookups of unknown keys return {geo.NoCoord} or empty slices;
//   - routes return a single (NoCoord, NoSegment, NoDistance) step when an
//     endpoint is unknown, and an empty slice when no route exists.
//
// The engine never logs. Callers needing the underlying error use the
// algorithm packages (dfs, bfs, dijkstra, trim) on Network() directly.
package engine

import (
	"errors"

	"github.com/katalvlaran/roadnet/areas"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
	"github.com/katalvlaran/roadnet/places"
	"github.com/katalvlaran/roadnet/trim"
)

// Options configures an Engine.
type Options struct {
	// TrimMethod selects the spanning forest algorithm used by Trim.
	TrimMethod string
}

// Option configures Options.
type Option func(*Options)

// WithTrimMethod selects trim.MethodKruskal or trim.MethodPrim.
// Panics on any other value.
func WithTrimMethod(m string) Option {
	if m != trim.MethodKruskal && m != trim.MethodPrim {
		panic("engine: WithTrimMethod(" + m + ")")
	}
	return func(o *Options) {
		o.TrimMethod = m
	}
}

// DefaultOptions returns Options with Kruskal trimming.
func DefaultOptions() Options {
	return Options{TrimMethod: trim.MethodKruskal}
}

// Engine owns one road network, one place store and one area hierarchy.
// The three share only the coordinate type.
type Engine struct {
	opts   Options
	nw     *network.Network
	places *places.Store
	areas  *areas.Hierarchy
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		opts:   o,
		nw:     network.New(),
		places: places.New(),
		areas:  areas.New(),
	}
}

// Network returns the underlying road network.
func (e *Engine) Network() *network.Network { return e.nw }

// Places returns the point-of-interest store.
func (e *Engine) Places() *places.Store { return e.places }

// Areas returns the area hierarchy.
func (e *Engine) Areas() *areas.Hierarchy { return e.areas }

// InsertSegment adds a segment; false if the id exists or the input is invalid.
func (e *Engine) InsertSegment(id network.SegmentID, coords []geo.Coord) bool {
	return e.nw.InsertSegment(id, coords) == nil
}

// RemoveSegment deletes a segment; false if it does not exist.
func (e *Engine) RemoveSegment(id network.SegmentID) bool {
	return e.nw.RemoveSegment(id) == nil
}

// SegmentsTouching lists every segment with an endpoint at c and its other
// endpoint, ordered by segment id. Empty when c is not an intersection.
func (e *Engine) SegmentsTouching(c geo.Coord) []network.Touch {
	return e.nw.SegmentsTouching(c)
}

// SegmentCoords returns the polyline of a segment, or {geo.NoCoord}.
func (e *Engine) SegmentCoords(id network.SegmentID) []geo.Coord {
	coords, err := e.nw.SegmentCoords(id)
	if err != nil {
		return []geo.Coord{geo.NoCoord}
	}

	return coords
}

// AllSegments returns every segment id in ascending order.
func (e *Engine) AllSegments() []network.SegmentID {
	return e.nw.Segments()
}

// Clear drops every segment and intersection. Places and areas are kept.
func (e *Engine) Clear() {
	e.nw.Clear()
}

// ClearAll drops the network, the places and the areas.
func (e *Engine) ClearAll() {
	e.nw.Clear()
	e.places.Clear()
	e.areas.Clear()
}

// RouteAny returns some acyclic route from `from` to `to`.
func (e *Engine) RouteAny(from, to geo.Coord) []network.Step {
	steps, err := dfs.RouteAny(e.nw, from, to)

	return routeResult(steps, err, dfs.ErrNoRoute)
}

// RouteFewestHops returns a route crossing the fewest segments.
func (e *Engine) RouteFewestHops(from, to geo.Coord) []network.Step {
	steps, err := bfs.FewestHops(e.nw, from, to)

	return routeResult(steps, err, bfs.ErrNoRoute)
}

// RouteShortestDistance returns a route of minimum total length.
func (e *Engine) RouteShortestDistance(from, to geo.Coord) []network.Step {
	steps, err := dijkstra.ShortestDistance(e.nw, from, to)

	return routeResult(steps, err, dijkstra.ErrNoRoute)
}

// RouteWithCycle returns a walk from `from` that ends on an intersection it
// already visited (see dfs.CycleFrom), a single (NoCoord, NoSegment) step
// when `from` is unknown, or an empty slice when its component is acyclic.
func (e *Engine) RouteWithCycle(from geo.Coord) []network.CycleStep {
	steps, err := dfs.CycleFrom(e.nw, from)
	switch {
	case err == nil:
		return steps
	case errors.Is(err, dfs.ErrNoCycle):
		return []network.CycleStep{}
	default:
		return []network.CycleStep{{Coord: geo.NoCoord, Segment: network.NoSegment}}
	}
}

// Trim reduces every component to its minimum spanning tree and returns
// the total length of the removed segments.
func (e *Engine) Trim() geo.Distance {
	removed, err := trim.Trim(e.nw, trim.WithMethod(e.opts.TrimMethod))
	if err != nil {
		// unreachable: the network is non-nil and the method validated
		return geo.NoDistance
	}

	return removed
}

// routeResult maps a search outcome to the sentinel convention.
func routeResult(steps []network.Step, err, noRoute error) []network.Step {
	switch {
	case err == nil:
		return steps
	case errors.Is(err, noRoute):
		return []network.Step{}
	default:
		return []network.Step{{Coord: geo.NoCoord, Segment: network.NoSegment, Distance: geo.NoDistance}}
	}
}
