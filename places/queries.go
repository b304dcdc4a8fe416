// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Ordered listings and searches over the Store.
// Determinism:
//   - Every result is fully ordered; ties fall back to ascending ID.
// Complexity:
//   - O(P log P) for orderings, O(P) for filters (P = place count).

package places

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/roadnet/geo"
)

// MaxClosest is the number of places ClosestTo returns at most.
const MaxClosest = 3

// Alphabetically returns every ID ordered by name, then ID.
func (s *Store) Alphabetically() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.idsLocked(func(*place) bool { return true })
	slices.SortFunc(ids, func(a, b ID) int {
		if c := cmp.Compare(s.places[a].name, s.places[b].name); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return ids
}

// CoordOrder returns every ID ordered by Euclidean distance from (0,0), then
// by Y, then by ID.
func (s *Store) CoordOrder() []ID {
	return s.closest(geo.Coord{}, TypeNone, -1)
}

// ClosestTo returns up to MaxClosest IDs nearest to c, ordered by distance,
// then Y, then ID. TypeNone matches every type.
func (s *Store) ClosestTo(c geo.Coord, typ Type) []ID {
	return s.closest(c, typ, MaxClosest)
}

// FindByName returns the IDs whose name equals name exactly, ascending.
func (s *Store) FindByName(name string) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.idsLocked(func(p *place) bool { return p.name == name })
	slices.Sort(ids)

	return ids
}

// FindByType returns the IDs of type typ, ascending. TypeNone matches nothing.
func (s *Store) FindByType(typ Type) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.idsLocked(func(p *place) bool { return p.typ == typ })
	slices.Sort(ids)

	return ids
}

// closest ranks places of the given type (TypeNone: any) by distance from c.
// A negative limit returns all of them.
func (s *Store) closest(c geo.Coord, typ Type, limit int) []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type ranked struct {
		id   ID
		dist float64
		y    int
	}
	var rs []ranked
	for id, p := range s.places {
		if typ != TypeNone && p.typ != typ {
			continue
		}
		rs = append(rs, ranked{id: id, dist: geo.Euclid(c, p.coord), y: p.coord.Y})
	}
	slices.SortFunc(rs, func(a, b ranked) int {
		if d := cmp.Compare(a.dist, b.dist); d != 0 {
			return d
		}
		if d := cmp.Compare(a.y, b.y); d != 0 {
			return d
		}
		return cmp.Compare(a.id, b.id)
	})
	if limit >= 0 && len(rs) > limit {
		rs = rs[:limit]
	}

	ids := make([]ID, len(rs))
	for i, r := range rs {
		ids[i] = r.id
	}

	return ids
}

// idsLocked collects the IDs whose record satisfies keep. Caller holds mu.
func (s *Store) idsLocked(keep func(*place) bool) []ID {
	ids := make([]ID, 0, len(s.places))
	for id, p := range s.places {
		if keep(p) {
			ids = append(ids, id)
		}
	}

	return ids
}
