// Package network defines the road-network graph: a segment registry keyed by
// SegmentID and an intersection registry keyed by coordinate.
//
// Intersections are never created directly. Inserting a segment creates the
// intersections at its two endpoints if they are missing and removing the last
// segment touching an intersection deletes it. Intersections refer to their
// neighbors and segments by identifier only, so removing a segment can never
// leave a dangling link behind.
//
// Errors:
//
//	ErrEmptySegmentID    - segment ID is the empty string.
//	ErrReservedSegmentID - segment ID equals the NoSegment sentinel.
//	ErrTooFewCoords      - polyline has fewer than two points.
//	ErrReservedCoord     - polyline contains the NoCoord sentinel.
//	ErrDuplicateSegment  - a segment with the same ID already exists.
//	ErrSegmentNotFound   - requested segment does not exist.
package network

import (
	"errors"
	"sync"

	"github.com/katalvlaran/roadnet/geo"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptySegmentID indicates that the provided segment ID is empty.
	ErrEmptySegmentID = errors.New("network: segment ID is empty")

	// ErrReservedSegmentID indicates that the provided segment ID is the NoSegment sentinel.
	ErrReservedSegmentID = errors.New("network: segment ID is reserved")

	// ErrTooFewCoords indicates that a segment polyline has fewer than two points.
	ErrTooFewCoords = errors.New("network: segment needs at least two coordinates")

	// ErrReservedCoord indicates that a polyline contains the NoCoord sentinel.
	ErrReservedCoord = errors.New("network: coordinate is reserved")

	// ErrDuplicateSegment indicates an insert with an ID that is already registered.
	ErrDuplicateSegment = errors.New("network: segment already exists")

	// ErrSegmentNotFound indicates an operation referenced a non-existent segment.
	ErrSegmentNotFound = errors.New("network: segment not found")
)

// SegmentID identifies a segment.
type SegmentID string

// NoSegment is returned in place of a segment ID that does not exist, and
// marks the first step of a route, which arrives over no segment.
const NoSegment SegmentID = "!!No way!!"

// Segment is a road between two intersections.
//
// Coords is the polyline; its first and last points are the endpoints.
// Length is the polyline length, computed once on insertion.
type Segment struct {
	ID     SegmentID
	Coords []geo.Coord
	Length geo.Distance
}

// From returns the first endpoint.
func (s Segment) From() geo.Coord { return s.Coords[0] }

// To returns the last endpoint.
func (s Segment) To() geo.Coord { return s.Coords[len(s.Coords)-1] }

// IsLoop reports whether both endpoints coincide.
func (s Segment) IsLoop() bool { return s.From() == s.To() }

// Connection is one segment incident to an intersection, together with the
// intersection found at the other end.
type Connection struct {
	Neighbor geo.Coord
	Segment  SegmentID
}

// Touch is one entry of SegmentsTouching: a segment and its other endpoint.
type Touch struct {
	Segment SegmentID
	Other   geo.Coord
}

// Step is one element of a route: the intersection reached, the segment used
// to reach it (NoSegment for the first step) and the distance travelled so far.
type Step struct {
	Coord    geo.Coord
	Segment  SegmentID
	Distance geo.Distance
}

// CycleStep is one element of a cyclic route: the intersection reached and
// the segment used to reach it (NoSegment for the first step).
type CycleStep struct {
	Coord   geo.Coord
	Segment SegmentID
}

// intersection holds the connections of one coordinate, in insertion order.
type intersection struct {
	coord       geo.Coord
	connections []Connection
}

// Network is the in-memory road graph.
//
// mu guards both registries. Every exported method takes the lock for its own
// duration only; a traversal made of several calls is not atomic, so callers
// must not mutate the network while a search runs.
type Network struct {
	mu sync.RWMutex

	segments      map[SegmentID]*Segment       // segment ID → record
	intersections map[geo.Coord]*intersection // coordinate → record
}

// New creates an empty Network.
// Complexity: O(1)
func New() *Network {
	return &Network{
		segments:      make(map[SegmentID]*Segment),
		intersections: make(map[geo.Coord]*intersection),
	}
}
