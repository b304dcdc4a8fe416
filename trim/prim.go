package trim

import (
	"container/heap"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// prim computes the minimum spanning forest by growing a tree from the lowest
// unvisited intersection of each component with a min-heap of candidate
// segments.
//
// Steps:
//  1. For every intersection in coordinate order that is not yet visited,
//     mark it visited and push its connections.
//  2. Pop the smallest (Length, ID) candidate; skip it if its far end is visited.
//  3. Otherwise keep the segment, visit the far end and push its connections.
//  4. Every segment never kept is redundant.
//
// Complexity: O(E log E) time, O(V + E) memory.
func prim(nw *network.Network) (Forest, error) {
	all, err := collectEdges(nw)
	if err != nil {
		return Forest{}, err
	}
	length := make(map[network.SegmentID]geo.Distance, len(all))
	for _, e := range all {
		length[e.id] = e.length
	}

	visited := make(map[geo.Coord]bool, nw.IntersectionCount())
	kept := make(map[network.SegmentID]bool, len(all))
	pq := &edgePQ{}

	push := func(u geo.Coord) {
		for _, conn := range nw.Connections(u) {
			if !visited[conn.Neighbor] {
				heap.Push(pq, edge{id: conn.Segment, from: u, to: conn.Neighbor, length: length[conn.Segment]})
			}
		}
	}

	for _, root := range nw.Intersections() {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)
		for pq.Len() > 0 {
			e := heap.Pop(pq).(edge)
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			kept[e.id] = true
			push(e.to)
		}
	}

	var f Forest
	for _, e := range all {
		if kept[e.id] {
			f.Kept = append(f.Kept, e.id)
			f.KeptLength += e.length
		} else {
			f.Redundant = append(f.Redundant, e.id)
			f.RedundantLength += e.length
		}
	}

	return f, nil
}

// edgePQ implements heap.Interface for a min-heap of edges in (Length, ID) order.
type edgePQ []edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq edgePQ) Less(i, j int) bool { return lessEdge(pq[i], pq[j]) }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edge)) }

// Pop removes and returns the last edge. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
