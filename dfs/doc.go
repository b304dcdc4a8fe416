// Package dfs implements the depth-first searches of the road network.
//
// What:
//
//   - RouteAny: some route between two intersections, not necessarily the
//     shortest. Each step reports the intersection reached, the segment
//     travelled to reach it and the distance accumulated so far.
//   - CycleFrom: a closed walk through an intersection when it lies on a
//     cycle; otherwise a walk from it into the nearest cycle of its
//     component, or ErrNoCycle when the component is a tree.
//
// Both traversals are iterative with explicit stacks, so arbitrarily long
// roads cannot exhaust the goroutine stack. Neighbors are expanded in
// network.Connections order, which makes every result deterministic.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation states.
//
// Complexity:
//
//   - RouteAny:  Time O(V + E log d), Memory O(V + E)
//   - CycleFrom: Time O(deg(from)·(V + E log d)), Memory O(V + E)
//
// Errors:
//
//   - ErrNetworkNil            network pointer is nil
//   - ErrIntersectionNotFound  an endpoint is not an intersection
//   - ErrNoRoute               endpoints exist but are disconnected
//   - ErrNoCycle               start component is acyclic
package dfs
