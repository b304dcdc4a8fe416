// Package places stores named points of interest (fire pits, shelters,
// parkings, peaks, bays, areas) and answers ordering and proximity queries.
//
// A place has an ID, a name, a Type and a coordinate. The store is
// independent of the road network: it shares only geo.Coord with it, and
// routing never consults it.
//
// Lookups of a missing place return the sentinels NoName, TypeNone and
// geo.NoCoord; mutations of a missing place return ErrPlaceNotFound.
package places
