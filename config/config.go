// Package config reads and writes the YAML network file used by the roadnet
// CLI and applies it to an engine.
//
// File layout:
//
//	segments:
//	  - id: main            # optional; a UUID is assigned when omitted
//	    coords: [[0, 0], [0, 30], [40, 30]]
//	places:
//	  - {id: 1, name: Hut, type: shelter, coord: [3, 4]}
//	areas:
//	  - {id: 1, name: Park, coords: [[0, 0], [9, 0], [9, 9]]}
//	  - {id: 2, name: Pond, coords: [[1, 1], [2, 2]], parent: 1}
//
// Files ending in .msgpack or .mpk hold the same structure in MessagePack.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

var (
	// ErrInvalid wraps every structural or validation failure of a file.
	ErrInvalid = errors.New("config: invalid network file")

	// ErrDuplicateID indicates that two entries of one kind share an ID.
	ErrDuplicateID = errors.New("config: duplicate id")

	// ErrUnknownParent indicates an area whose parent is not declared.
	ErrUnknownParent = errors.New("config: unknown parent area")
)

// File is the decoded network file.
type File struct {
	Segments []Segment `yaml:"segments" msgpack:"segments" validate:"dive"`
	Places   []Place   `yaml:"places,omitempty" msgpack:"places,omitempty" validate:"dive"`
	Areas    []Area    `yaml:"areas,omitempty" msgpack:"areas,omitempty" validate:"dive"`
}

// Segment is one road segment.
type Segment struct {
	ID     string  `yaml:"id,omitempty" msgpack:"id,omitempty" validate:"omitempty,segmentid"`
	Coords []Point `yaml:"coords" msgpack:"coords" validate:"min=2,dive"`
}

// Place is one point of interest.
type Place struct {
	ID    int64  `yaml:"id" msgpack:"id" validate:"gte=0"`
	Name  string `yaml:"name" msgpack:"name" validate:"required"`
	Type  string `yaml:"type,omitempty" msgpack:"type,omitempty" validate:"omitempty,placetype"`
	Coord Point  `yaml:"coord" msgpack:"coord"`
}

// Area is one geographic area, optionally inside a parent area.
type Area struct {
	ID     int64   `yaml:"id" msgpack:"id" validate:"gte=0"`
	Name   string  `yaml:"name" msgpack:"name" validate:"required"`
	Coords []Point `yaml:"coords,omitempty" msgpack:"coords,omitempty" validate:"dive"`
	Parent *int64  `yaml:"parent,omitempty" msgpack:"parent,omitempty" validate:"omitempty,gte=0"`
}

// Format is an on-disk encoding of File.
type Format int

const (
	FormatYAML Format = iota
	FormatMsgpack
)

// FormatFor picks the format from the file extension; anything other than
// .msgpack or .mpk is YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatYAML
	}
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Decode(data, FormatFor(path))
}

// Parse decodes a YAML network file.
func Parse(data []byte) (*File, error) {
	return Decode(data, FormatYAML)
}

// Decode decodes a network file, assigns IDs to unnamed segments and
// validates the result. Unknown YAML keys are rejected.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	f.EnsureDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// EnsureDefaults gives every segment without an ID a fresh UUID.
func (f *File) EnsureDefaults() {
	for i := range f.Segments {
		if f.Segments[i].ID == "" {
			f.Segments[i].ID = uuid.NewString()
		}
	}
}

// Write encodes f as YAML with two-space indentation.
func (f *File) Write(w io.Writer) error {
	return f.Encode(w, FormatYAML)
}

// Encode writes f to w in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	if format == FormatMsgpack {
		if err := msgpack.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("config: encode: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

// Save writes f to path in the format its extension names.
func (f *File) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = f.Encode(out, FormatFor(path)); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// FromNetwork snapshots the segments of nw, ordered by ID.
func FromNetwork(nw *network.Network) (*File, error) {
	f := &File{Segments: []Segment{}}
	for _, id := range nw.Segments() {
		coords, err := nw.SegmentCoords(id)
		if err != nil {
			return nil, fmt.Errorf("config: snapshot: %w", err)
		}
		f.Segments = append(f.Segments, Segment{ID: string(id), Coords: toPoints(coords)})
	}

	return f, nil
}

func toPoints(coords []geo.Coord) []Point {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point(c)
	}

	return pts
}

func toCoords(pts []Point) []geo.Coord {
	coords := make([]geo.Coord, len(pts))
	for i, p := range pts {
		coords[i] = geo.Coord(p)
	}

	return coords
}
