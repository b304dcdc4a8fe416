// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Place identifiers, place types, sentinels and the Store container.

package places

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/roadnet/geo"
)

// Sentinel errors.
var (
	// ErrDuplicatePlace indicates that the place ID is already stored.
	ErrDuplicatePlace = errors.New("places: duplicate place id")

	// ErrPlaceNotFound indicates that no place has the given ID.
	ErrPlaceNotFound = errors.New("places: place not found")

	// ErrReservedID indicates an attempt to store the NoPlace sentinel.
	ErrReservedID = errors.New("places: id is reserved")

	// ErrUnknownType indicates that a type name does not parse.
	ErrUnknownType = errors.New("places: unknown place type")
)

// ID identifies a place.
type ID int64

// NoPlace is returned in place of an ID that does not exist.
const NoPlace ID = -1

// NoName is returned in place of a name that does not exist.
const NoName = "!!NO_NAME!!"

// Type classifies a place.
type Type int

// Place types. TypeNone is never stored; it is returned for absent places and
// means "any type" as a query filter.
const (
	TypeOther Type = iota
	TypeFirepit
	TypeShelter
	TypeParking
	TypePeak
	TypeBay
	TypeArea
	TypeNone
)

var typeNames = [...]string{"other", "firepit", "shelter", "parking", "peak", "bay", "area", "none"}

// String returns the lower-case name of t.
func (t Type) String() string {
	if t < TypeOther || t > TypeNone {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// ParseType maps a case-insensitive name back to its Type.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}

	return TypeNone, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// place is the stored record.
type place struct {
	name  string
	typ   Type
	coord geo.Coord
}

// Store holds named points of interest.
//
// mu guards places. Every exported method is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	places map[ID]*place
}

// New creates an empty Store.
func New() *Store {
	return &Store{places: make(map[ID]*place)}
}
