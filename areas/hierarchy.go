package areas

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/roadnet/geo"
)

// Add stores a root area with a copy of its boundary coordinates.
func (h *Hierarchy) Add(id ID, name string, coords []geo.Coord) error {
	if id == NoArea {
		return ErrReservedID
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.areas[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateArea, id)
	}
	h.areas[id] = &area{name: name, coords: slices.Clone(coords), parent: NoArea}

	return nil
}

// Name returns the name of an area, or NoName.
func (h *Hierarchy) Name(id ID) string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	a, ok := h.areas[id]
	if !ok {
		return NoName
	}

	return a.name
}

// Coords returns a copy of the boundary of an area, or {geo.NoCoord}.
func (h *Hierarchy) Coords(id ID) []geo.Coord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	a, ok := h.areas[id]
	if !ok {
		return []geo.Coord{geo.NoCoord}
	}

	return slices.Clone(a.coords)
}

// All returns every area ID in ascending order.
func (h *Hierarchy) All() []ID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]ID, 0, len(h.areas))
	for id := range h.areas {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Count returns the number of stored areas.
func (h *Hierarchy) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.areas)
}

// AddSubarea makes child a direct subarea of parent.
//
// Errors:
//   - ErrAreaNotFound if either ID is unknown.
//   - ErrHasParent if child already has a parent.
//   - ErrLoop if child is parent or one of parent's ancestors.
//
// Complexity: O(depth of parent).
func (h *Hierarchy) AddSubarea(child, parent ID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.areas[child]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAreaNotFound, child)
	}
	p, ok := h.areas[parent]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAreaNotFound, parent)
	}
	if c.parent != NoArea {
		return fmt.Errorf("%w: %d is in %d", ErrHasParent, child, c.parent)
	}
	for at := parent; at != NoArea; at = h.areas[at].parent {
		if at == child {
			return fmt.Errorf("%w: %d -> %d", ErrLoop, child, parent)
		}
	}

	c.parent = parent
	p.children = append(p.children, child)

	return nil
}

// Ancestors returns the chain of areas containing id, nearest first.
// A root area yields an empty slice.
func (h *Hierarchy) Ancestors(id ID) ([]ID, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.areas[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrAreaNotFound, id)
	}

	return h.ancestorsLocked(id), nil
}

// Descendants returns every area contained in id, directly or indirectly,
// in depth-first pre-order with children in link order.
//
// Complexity: O(size of the subtree), iterative.
func (h *Hierarchy) Descendants(id ID) ([]ID, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	a, ok := h.areas[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAreaNotFound, id)
	}

	out := []ID{}
	stack := reversed(a.children)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		stack = append(stack, reversed(h.areas[cur].children)...)
	}

	return out, nil
}

// CommonAncestor returns the nearest area that contains both a and b, or
// NoArea when either is unknown or they share no ancestor. An area is not
// its own ancestor.
//
// Complexity: O(depth(a) + depth(b)).
func (h *Hierarchy) CommonAncestor(a, b ID) ID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.areas[a]; !ok {
		return NoArea
	}
	if _, ok := h.areas[b]; !ok {
		return NoArea
	}

	ofB := make(map[ID]struct{})
	for _, id := range h.ancestorsLocked(b) {
		ofB[id] = struct{}{}
	}
	for _, id := range h.ancestorsLocked(a) {
		if _, ok := ofB[id]; ok {
			return id
		}
	}

	return NoArea
}

// Clear drops every area.
func (h *Hierarchy) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.areas = make(map[ID]*area)
}

func (h *Hierarchy) ancestorsLocked(id ID) []ID {
	out := []ID{}
	for at := h.areas[id].parent; at != NoArea; at = h.areas[at].parent {
		out = append(out, at)
	}

	return out
}

func reversed(ids []ID) []ID {
	out := slices.Clone(ids)
	slices.Reverse(out)

	return out
}
