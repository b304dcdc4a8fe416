// Package bfs finds fewest-hops routes in a road network.
//
// FewestHops answers "which route crosses the fewest segments?" regardless of
// their lengths, which is the natural question when every crossing costs the
// same (a stop sign, a toll, a transfer).
//
// Options:
//
//   - WithMaxHops(n)  give up on routes longer than n segments (n ≥ 0, 0 = unlimited).
//   - WithOnVisit(fn) hook called on every dequeued intersection; an error aborts.
//
// Complexity: Time O(V + E log d), Memory O(V).
package bfs
