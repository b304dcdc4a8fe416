// SPDX-License-Identifier: MIT
//
// File: methods_segments.go
// Role: Segment lifecycle: InsertSegment / RemoveSegment / Clear, and the
//       segment-side lookups Segment / SegmentCoords / Segments / SegmentCount.
// Determinism:
//   - Segments() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under mu write lock, lookups under mu read lock.

package network

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/roadnet/geo"
)

// InsertSegment registers a segment with the given polyline.
//
// Steps:
//  1. Validate id and coords; nothing is mutated on failure.
//  2. Compute the polyline length.
//  3. Create the endpoint intersections if absent.
//  4. Add one connection on each endpoint (two on the same intersection for a loop).
//
// Complexity: O(len(coords)).
func (n *Network) InsertSegment(id SegmentID, coords []geo.Coord) error {
	if id == "" {
		return ErrEmptySegmentID
	}
	if id == NoSegment {
		return ErrReservedSegmentID
	}
	if len(coords) < 2 {
		return fmt.Errorf("%w: segment %q has %d", ErrTooFewCoords, id, len(coords))
	}
	for _, c := range coords {
		if c.IsNone() {
			return fmt.Errorf("%w: segment %q", ErrReservedCoord, id)
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.segments[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSegment, id)
	}

	seg := &Segment{
		ID:     id,
		Coords: slices.Clone(coords),
		Length: geo.PolylineLength(coords),
	}
	n.segments[id] = seg

	from, to := seg.From(), seg.To()
	head := n.ensureIntersection(from)
	head.connections = append(head.connections, Connection{Neighbor: to, Segment: id})
	// for a loop tail is head again and receives its second entry
	tail := n.ensureIntersection(to)
	tail.connections = append(tail.connections, Connection{Neighbor: from, Segment: id})

	return nil
}

// RemoveSegment deletes the segment and every connection referring to it.
// Endpoint intersections left without connections are deleted as well.
//
// Complexity: O(deg(from) + deg(to)).
func (n *Network) RemoveSegment(id SegmentID) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	seg, ok := n.segments[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSegmentNotFound, id)
	}
	delete(n.segments, id)

	n.detach(seg.From(), id)
	if !seg.IsLoop() {
		n.detach(seg.To(), id)
	}

	return nil
}

// Clear drops every segment and intersection.
func (n *Network) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.segments = make(map[SegmentID]*Segment)
	n.intersections = make(map[geo.Coord]*intersection)
}

// Segment returns a copy of the segment record.
func (n *Network) Segment(id SegmentID) (Segment, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	seg, ok := n.segments[id]
	if !ok {
		return Segment{}, fmt.Errorf("%w: %q", ErrSegmentNotFound, id)
	}
	out := *seg
	out.Coords = slices.Clone(seg.Coords)

	return out, nil
}

// SegmentCoords returns a copy of the polyline exactly as inserted.
func (n *Network) SegmentCoords(id SegmentID) ([]geo.Coord, error) {
	seg, err := n.Segment(id)
	if err != nil {
		return nil, err
	}

	return seg.Coords, nil
}

// SegmentLength returns the derived length of the segment.
func (n *Network) SegmentLength(id SegmentID) (geo.Distance, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	seg, ok := n.segments[id]
	if !ok {
		return geo.NoDistance, fmt.Errorf("%w: %q", ErrSegmentNotFound, id)
	}

	return seg.Length, nil
}

// HasSegment reports whether id is registered.
func (n *Network) HasSegment(id SegmentID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := n.segments[id]

	return ok
}

// Segments returns all segment IDs sorted ascending.
func (n *Network) Segments() []SegmentID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]SegmentID, 0, len(n.segments))
	for id := range n.segments {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// SegmentCount returns the number of registered segments.
func (n *Network) SegmentCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.segments)
}

// ensureIntersection returns the record at c, creating it if absent.
// Caller must hold the write lock.
func (n *Network) ensureIntersection(c geo.Coord) *intersection {
	x, ok := n.intersections[c]
	if !ok {
		x = &intersection{coord: c}
		n.intersections[c] = x
	}

	return x
}

// detach removes every connection of id at c and prunes c if it became empty.
// Caller must hold the write lock.
func (n *Network) detach(c geo.Coord, id SegmentID) {
	x, ok := n.intersections[c]
	if !ok {
		return
	}
	x.connections = slices.DeleteFunc(x.connections, func(conn Connection) bool {
		return conn.Segment == id
	})
	if len(x.connections) == 0 {
		delete(n.intersections, c)
	}
}
