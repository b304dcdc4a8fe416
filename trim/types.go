package trim

import (
	"errors"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// ErrNetworkNil indicates that a nil *network.Network was passed.
var ErrNetworkNil = errors.New("trim: network is nil")

// ErrUnknownMethod indicates that Options.Method names no known algorithm.
var ErrUnknownMethod = errors.New("trim: unknown spanning forest method")

// MethodPrim selects Prim's algorithm (grow each component from its lowest
// intersection using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all segments and union-find).
const MethodKruskal = "kruskal"

// Options configures which spanning forest algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Both methods order segments by (Length, ID). That order is strict, so the
// minimum spanning forest is unique and both methods return the same one.
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options initialized for Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Forest partitions the segments of a network into a minimum spanning forest
// and the redundant remainder. Both ID lists are sorted ascending.
type Forest struct {
	Kept      []network.SegmentID
	Redundant []network.SegmentID

	KeptLength      geo.Distance
	RedundantLength geo.Distance
}

// edge is a segment seen as a weighted undirected edge.
type edge struct {
	id     network.SegmentID
	from   geo.Coord
	to     geo.Coord
	length geo.Distance
}

// lessEdge is the strict (Length, ID) order shared by both methods.
func lessEdge(a, b edge) bool {
	if a.length != b.length {
		return a.length < b.length
	}

	return a.id < b.id
}
