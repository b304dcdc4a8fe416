package places

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/roadnet/geo"
)

// Add stores a place. Any name, type other than TypeNone and coordinate is
// accepted; the ID must be new.
func (s *Store) Add(id ID, name string, typ Type, c geo.Coord) error {
	if id == NoPlace {
		return ErrReservedID
	}
	if typ == TypeNone {
		typ = TypeOther
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicatePlace, id)
	}
	s.places[id] = &place{name: name, typ: typ, coord: c}

	return nil
}

// NameType returns the name and type of a place, or (NoName, TypeNone).
func (s *Store) NameType(id ID) (string, Type) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.places[id]
	if !ok {
		return NoName, TypeNone
	}

	return p.name, p.typ
}

// Coord returns the coordinate of a place, or geo.NoCoord.
func (s *Store) Coord(id ID) geo.Coord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.places[id]
	if !ok {
		return geo.NoCoord
	}

	return p.coord
}

// ChangeName renames a place.
func (s *Store) ChangeName(id ID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.places[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPlaceNotFound, id)
	}
	p.name = name

	return nil
}

// ChangeCoord moves a place.
func (s *Store) ChangeCoord(id ID, c geo.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.places[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPlaceNotFound, id)
	}
	p.coord = c

	return nil
}

// Remove deletes a place.
func (s *Store) Remove(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return fmt.Errorf("%w: %d", ErrPlaceNotFound, id)
	}
	delete(s.places, id)

	return nil
}

// Count returns the number of stored places.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.places)
}

// All returns every ID in ascending order.
func (s *Store) All() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]ID, 0, len(s.places))
	for id := range s.places {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Clear drops every place.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.places = make(map[ID]*place)
}
