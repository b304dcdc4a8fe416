// Package trim simplifies a road network without breaking connectivity.
//
// What:
//
//   - SpanningForest: the minimum spanning forest of the network (segment
//     length as weight), computed with Kruskal (default) or Prim.
//   - Trim: delete every segment outside that forest and report the total
//     length deleted.
//
// Why:
//
//   - Keep the cheapest set of roads that still connects every intersection
//     that was connected before (maintenance budgets, evacuation skeletons).
//
// Tie-break:
//
//   - Segments are ordered by (Length, ID). The order is strict, so the forest
//     is unique: Kruskal and Prim always agree, and of two equally long
//     segments closing the same cycle the one with the higher ID is removed.
//
// Complexity:
//
//   - Kruskal: O(E log E + α(V)·E)
//   - Prim:    O(E log E)
//   - Trim:    forest + O(sum of degrees of the removed segments' endpoints)
//
// Example:
//
//	removed, err := trim.Trim(nw, trim.WithMethod(trim.MethodPrim))
package trim
