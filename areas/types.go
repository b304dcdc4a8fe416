package areas

import (
	"errors"
	"sync"

	"github.com/katalvlaran/roadnet/geo"
)

var (
	// ErrDuplicateArea indicates that the area ID is already stored.
	ErrDuplicateArea = errors.New("areas: duplicate area id")

	// ErrAreaNotFound indicates that no area has the given ID.
	ErrAreaNotFound = errors.New("areas: area not found")

	// ErrReservedID indicates an attempt to store the NoArea sentinel.
	ErrReservedID = errors.New("areas: id is reserved")

	// ErrHasParent indicates that the subarea already belongs to an area.
	ErrHasParent = errors.New("areas: area already has a parent")

	// ErrLoop indicates that the link would make an area its own ancestor.
	ErrLoop = errors.New("areas: link would create a loop")
)

// ID identifies an area.
type ID int64

// NoArea is returned in place of an area that does not exist.
const NoArea ID = -1

// NoName is returned in place of a name that does not exist.
const NoName = "!!NO_NAME!!"

// area is the stored record. Links are by ID.
type area struct {
	name     string
	coords   []geo.Coord
	parent   ID   // NoArea for a root
	children []ID // in link order
}

// Hierarchy stores areas and their parent/child links.
//
// mu guards areas. Every exported method is safe for concurrent use.
type Hierarchy struct {
	mu    sync.RWMutex
	areas map[ID]*area
}

// New creates an empty Hierarchy.
func New() *Hierarchy {
	return &Hierarchy{areas: make(map[ID]*area)}
}
