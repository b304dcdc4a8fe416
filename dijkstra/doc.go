// Package dijkstra finds shortest-distance routes in a road network.
//
// Overview:
//
//   - ShortestDistance computes the route of minimum total length between two
//     intersections in O((V + E) log V) time, using segment lengths as weights.
//   - It relies on a min-heap (priority queue) to always settle the
//     next-closest intersection, and stops once the destination is settled.
//   - Zero-length segments (coincident endpoints) are handled without loops.
//
// When to use:
//
//   - When the length of a route matters more than how many segments it crosses
//     (see package bfs for the fewest-hops variant).
//
// Options:
//
//   - WithMaxDistance(d) stop settling intersections farther than d.
//
// Example:
//
//	steps, err := dijkstra.ShortestDistance(nw, geo.Coord{X: 0, Y: 0}, geo.Coord{X: 5, Y: 5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("length:", steps[len(steps)-1].Distance)
package dijkstra
