package trim

import (
	"sort"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// kruskal computes the minimum spanning forest of the network.
// It uses a disjoint-set (union-find) structure with path compression and
// union by rank.
//
// Steps:
//  1. Collect every segment as an edge (loops included).
//  2. Sort edges by (Length, ID).
//  3. Initialize one DSU set per intersection.
//  4. For each edge (u,v): if find(u) != find(v), union and keep it;
//     otherwise it closes a cycle (a loop always does) and is redundant.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func kruskal(nw *network.Network) (Forest, error) {
	edges, err := collectEdges(nw)
	if err != nil {
		return Forest{}, err
	}
	sort.Slice(edges, func(i, j int) bool { return lessEdge(edges[i], edges[j]) })

	vertices := nw.Intersections()
	parent := make(map[geo.Coord]geo.Coord, len(vertices))
	rank := make(map[geo.Coord]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u geo.Coord) geo.Coord {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v; it reports false if they were already one.
	union := func(u, v geo.Coord) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		// Attach smaller-rank tree under larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}

		return true
	}

	var f Forest
	for _, e := range edges {
		if union(e.from, e.to) {
			f.Kept = append(f.Kept, e.id)
			f.KeptLength += e.length
		} else {
			f.Redundant = append(f.Redundant, e.id)
			f.RedundantLength += e.length
		}
	}
	sortIDs(f.Kept)
	sortIDs(f.Redundant)

	return f, nil
}

// collectEdges snapshots every segment of the network, ordered by ID.
func collectEdges(nw *network.Network) ([]edge, error) {
	ids := nw.Segments()
	edges := make([]edge, 0, len(ids))
	for _, id := range ids {
		seg, err := nw.Segment(id)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge{id: id, from: seg.From(), to: seg.To(), length: seg.Length})
	}

	return edges, nil
}

func sortIDs(ids []network.SegmentID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
