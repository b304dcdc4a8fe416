package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
	"github.com/katalvlaran/roadnet/places"
)

// fileValidate is the validator instance for network files.
// Initialized in init() with custom validators.
var fileValidate *validator.Validate

func init() {
	fileValidate = validator.New()

	// segment ids must not collide with the "no segment" marker
	_ = fileValidate.RegisterValidation("segmentid", func(fl validator.FieldLevel) bool {
		return fl.Field().String() != string(network.NoSegment)
	})
	_ = fileValidate.RegisterValidation("placetype", func(fl validator.FieldLevel) bool {
		t, err := places.ParseType(fl.Field().String())
		return err == nil && t != places.TypeNone
	})
	// the "no coordinate" marker is reserved wherever a point appears
	fileValidate.RegisterStructValidation(func(sl validator.StructLevel) {
		if p := sl.Current().Interface().(Point); p == Point(geo.NoCoord) {
			sl.ReportError(p, "Point", "Point", "coord", "")
		}
	}, Point{})
}

// Validate checks struct tags, then the rules that span entries: unique
// segment, place and area IDs, and declared parents.
func (f *File) Validate() error {
	if err := fileValidate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	segs := make(map[string]struct{}, len(f.Segments))
	for _, s := range f.Segments {
		if _, dup := segs[s.ID]; dup {
			return fmt.Errorf("%w: %w: segment %q", ErrInvalid, ErrDuplicateID, s.ID)
		}
		segs[s.ID] = struct{}{}
	}

	pls := make(map[int64]struct{}, len(f.Places))
	for _, p := range f.Places {
		if _, dup := pls[p.ID]; dup {
			return fmt.Errorf("%w: %w: place %d", ErrInvalid, ErrDuplicateID, p.ID)
		}
		pls[p.ID] = struct{}{}
	}

	ars := make(map[int64]struct{}, len(f.Areas))
	for _, a := range f.Areas {
		if _, dup := ars[a.ID]; dup {
			return fmt.Errorf("%w: %w: area %d", ErrInvalid, ErrDuplicateID, a.ID)
		}
		ars[a.ID] = struct{}{}
	}
	for _, a := range f.Areas {
		if a.Parent == nil {
			continue
		}
		if _, ok := ars[*a.Parent]; !ok {
			return fmt.Errorf("%w: %w: area %d -> %d", ErrInvalid, ErrUnknownParent, a.ID, *a.Parent)
		}
	}

	return nil
}
