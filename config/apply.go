package config

import (
	"fmt"

	"github.com/katalvlaran/roadnet/areas"
	"github.com/katalvlaran/roadnet/engine"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
	"github.com/katalvlaran/roadnet/places"
)

// Apply validates the file, then loads it into e: segments, then places,
// then areas, then the area links in file order. An invalid file changes
// nothing. Otherwise Apply stops at the first entry e rejects; entries
// applied before it stay in place.
func (f *File) Apply(e *engine.Engine) error {
	if err := f.Validate(); err != nil {
		return err
	}

	nw := e.Network()
	for _, s := range f.Segments {
		if err := nw.InsertSegment(network.SegmentID(s.ID), toCoords(s.Coords)); err != nil {
			return fmt.Errorf("config: segment %q: %w", s.ID, err)
		}
	}

	for _, p := range f.Places {
		typ := places.TypeOther
		if p.Type != "" {
			var err error
			if typ, err = places.ParseType(p.Type); err != nil {
				return fmt.Errorf("config: place %d: %w", p.ID, err)
			}
		}
		if err := e.Places().Add(places.ID(p.ID), p.Name, typ, geo.Coord(p.Coord)); err != nil {
			return fmt.Errorf("config: place %d: %w", p.ID, err)
		}
	}

	for _, a := range f.Areas {
		if err := e.Areas().Add(areas.ID(a.ID), a.Name, toCoords(a.Coords)); err != nil {
			return fmt.Errorf("config: area %d: %w", a.ID, err)
		}
	}
	for _, a := range f.Areas {
		if a.Parent == nil {
			continue
		}
		if err := e.Areas().AddSubarea(areas.ID(a.ID), areas.ID(*a.Parent)); err != nil {
			return fmt.Errorf("config: area %d in %d: %w", a.ID, *a.Parent, err)
		}
	}

	return nil
}
