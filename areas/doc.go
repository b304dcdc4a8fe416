// Package areas keeps a forest of named geographic areas: each area may be
// a subarea of at most one parent, and the parent links never form a loop.
//
// An area has an ID, a name and a boundary polyline. Boundaries are stored
// as given and are not checked against each other or the road network;
// containment is whatever AddSubarea declares.
//
// Lookups of a missing area return the sentinels NoName and {geo.NoCoord};
// CommonAncestor returns NoArea when there is no answer.
//
// Complexity:
//
//	Add, Coords    - O(len(boundary)) for the copy.
//	AddSubarea     - O(depth(parent)) for the loop check.
//	Ancestors      - O(depth).
//	Descendants    - O(size of the subtree), iterative.
//	CommonAncestor - O(depth(a) + depth(b)).
//
// Errors:
//
//	ErrDuplicateArea - an area with the same ID already exists.
//	ErrAreaNotFound  - requested area does not exist.
//	ErrReservedID    - the ID equals the NoArea sentinel.
//	ErrHasParent     - the subarea already belongs to another area.
//	ErrLoop          - the link would make an area its own ancestor.
package areas
