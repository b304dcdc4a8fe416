package network

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
)

// Link records how a search reached an intersection: the intersection it
// came from and the segment it travelled.
type Link struct {
	Prev    geo.Coord
	Segment SegmentID
}

// Leg is one hop of a route: the segment taken and the intersection it ends at.
type Leg struct {
	Segment SegmentID
	To      geo.Coord
}

// FollowLinks walks links from start until root and returns the legs in
// walking order. Every links[v].Prev must lead one hop closer to root.
// It reports false when the chain is broken or loops.
func FollowLinks(links map[geo.Coord]Link, start, root geo.Coord) ([]Leg, bool) {
	var legs []Leg
	cur := start
	for cur != root {
		if len(legs) > len(links) {
			return nil, false
		}
		l, ok := links[cur]
		if !ok {
			return nil, false
		}
		legs = append(legs, Leg{Segment: l.Segment, To: l.Prev})
		cur = l.Prev
	}

	return legs, true
}

// UnwindLinks returns the legs leading from root to target, for links that
// point back toward root (as recorded by a search started at root).
func UnwindLinks(links map[geo.Coord]Link, root, target geo.Coord) ([]Leg, bool) {
	back, ok := FollowLinks(links, target, root)
	if !ok {
		return nil, false
	}
	k := len(back)
	out := make([]Leg, k)
	for i := 0; i < k; i++ {
		j := k - 1 - i
		to := target
		if j > 0 {
			to = back[j-1].To
		}
		out[i] = Leg{Segment: back[j].Segment, To: to}
	}

	return out, true
}

// Steps turns legs into a route starting at start, accumulating segment
// lengths. The first step is (start, NoSegment, 0).
func (n *Network) Steps(start geo.Coord, legs []Leg) ([]Step, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Step, 0, len(legs)+1)
	out = append(out, Step{Coord: start, Segment: NoSegment, Distance: 0})
	var total geo.Distance
	for _, leg := range legs {
		seg, ok := n.segments[leg.Segment]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSegmentNotFound, leg.Segment)
		}
		total += seg.Length
		out = append(out, Step{Coord: leg.To, Segment: leg.Segment, Distance: total})
	}

	return out, nil
}
