package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/areas"
	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/engine"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
	"github.com/katalvlaran/roadnet/places"
)

const sample = `
segments:
  - id: main
    coords: [[0, 0], [0, 30], [40, 30]]
  - id: short
    coords: [[0, 0], [40, 30]]
  - coords: [[40, 30], [40, 60]]
places:
  - {id: 1, name: Hut, type: Shelter, coord: [3, 4]}
  - {id: 2, name: Car park, coord: [40, 30]}
areas:
  - {id: 1, name: Park, coords: [[0, 0], [90, 0], [90, 90]]}
  - {id: 2, name: Pond, coords: [[1, 1], [2, 2]], parent: 1}
  - {id: 3, name: Meadow, parent: 1}
`

func TestParse_Sample(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Segments, 3)
	assert.Equal(t, "main", f.Segments[0].ID)
	assert.Equal(t, config.Point{X: 40, Y: 30}, f.Segments[0].Coords[2])

	// unnamed segments get a UUID
	_, err = uuid.Parse(f.Segments[2].ID)
	assert.NoError(t, err)

	require.Len(t, f.Places, 2)
	assert.Equal(t, "Shelter", f.Places[0].Type)
	require.Len(t, f.Areas, 3)
	require.NotNil(t, f.Areas[1].Parent)
	assert.Equal(t, int64(1), *f.Areas[1].Parent)
	assert.Nil(t, f.Areas[0].Parent)
}

func TestParse_Empty(t *testing.T) {
	f, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Segments)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"one coord":       "segments: [{id: a, coords: [[0, 0]]}]",
		"bad point":       "segments: [{id: a, coords: [[0, 0], [1, 2, 3]]}]",
		"reserved id":     "segments: [{id: '!!No way!!', coords: [[0, 0], [1, 1]]}]",
		"duplicate seg":   "segments: [{id: a, coords: [[0, 0], [1, 1]]}, {id: a, coords: [[1, 1], [2, 2]]}]",
		"unknown key":     "segments: [{id: a, coords: [[0, 0], [1, 1]], speed: 3}]",
		"place no name":   "places: [{id: 1, coord: [0, 0]}]",
		"place bad type":  "places: [{id: 1, name: X, type: castle, coord: [0, 0]}]",
		"place none type": "places: [{id: 1, name: X, type: none, coord: [0, 0]}]",
		"negative id":     "places: [{id: -1, name: X, coord: [0, 0]}]",
		"duplicate place": "places: [{id: 1, name: X, coord: [0, 0]}, {id: 1, name: Y, coord: [1, 1]}]",
		"duplicate area":  "areas: [{id: 1, name: X}, {id: 1, name: Y}]",
		"unknown parent":  "areas: [{id: 1, name: X, parent: 7}]",
		"not yaml":        "segments: [",
		"reserved coord":  "segments: [{id: a, coords: [[0, 0], [-9223372036854775808, -9223372036854775808]]}]",
		"place no coord":  "places: [{id: 1, name: X, coord: [-9223372036854775808, -9223372036854775808]}]",
		"area no coord":   "areas: [{id: 1, name: X, coords: [[-9223372036854775808, -9223372036854775808]]}]",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_DuplicateIsDistinguishable(t *testing.T) {
	_, err := config.Parse([]byte("areas: [{id: 1, name: X}, {id: 1, name: Y}]"))
	assert.ErrorIs(t, err, config.ErrDuplicateID)

	_, err = config.Parse([]byte("areas: [{id: 1, name: X, parent: 2}]"))
	assert.ErrorIs(t, err, config.ErrUnknownParent)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Segments, 3)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	e := engine.New()
	require.NoError(t, f.Apply(e))

	assert.Equal(t, 3, e.Network().SegmentCount())
	steps := e.RouteShortestDistance(geo.Coord{X: 0, Y: 0}, geo.Coord{X: 40, Y: 60})
	require.Len(t, steps, 3)
	assert.Equal(t, network.SegmentID("short"), steps[1].Segment)
	assert.Equal(t, geo.Distance(80), steps[2].Distance)

	name, typ := e.Places().NameType(1)
	assert.Equal(t, "Hut", name)
	assert.Equal(t, places.TypeShelter, typ)
	_, typ = e.Places().NameType(2)
	assert.Equal(t, places.TypeOther, typ)

	anc, err := e.Areas().Ancestors(2)
	require.NoError(t, err)
	assert.Equal(t, []areas.ID{1}, anc)
	assert.Equal(t, areas.ID(1), e.Areas().CommonAncestor(2, 3))
}

func TestApply_Conflict(t *testing.T) {
	f, err := config.Parse([]byte("segments: [{id: a, coords: [[0, 0], [1, 1]]}]"))
	require.NoError(t, err)

	e := engine.New()
	require.NoError(t, f.Apply(e))
	err = f.Apply(e)
	assert.ErrorIs(t, err, network.ErrDuplicateSegment)
}

func TestApply_ReservedCoordLoadsNothing(t *testing.T) {
	f := &config.File{
		Segments: []config.Segment{{ID: "a", Coords: []config.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
		Places:   []config.Place{{ID: 1, Name: "X", Coord: config.Point(geo.NoCoord)}},
	}
	err := f.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), `"coord"`)

	e := engine.New()
	assert.ErrorIs(t, f.Apply(e), config.ErrInvalid)
	assert.Empty(t, e.AllSegments())
	assert.Zero(t, e.Places().Count())

	// a component equal to the marker on its own is still a coordinate
	f.Places[0].Coord = config.Point{X: geo.NoValue, Y: 0}
	require.NoError(t, f.Apply(e))
	assert.Equal(t, []network.SegmentID{"a"}, e.AllSegments())
}

func TestWriteRoundTrip(t *testing.T) {
	nw := network.New()
	require.NoError(t, nw.InsertSegment("b", []geo.Coord{{X: 1, Y: 1}, {X: 4, Y: 5}}))
	require.NoError(t, nw.InsertSegment("a", []geo.Coord{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 1}}))

	f, err := config.FromNetwork(nw)
	require.NoError(t, err)
	require.Len(t, f.Segments, 2)
	assert.Equal(t, "a", f.Segments[0].ID)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	assert.Contains(t, buf.String(), "- [0, 2]")

	back, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, f.Segments, back.Segments)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, config.FormatYAML, config.FormatFor("net.yaml"))
	assert.Equal(t, config.FormatYAML, config.FormatFor("net"))
	assert.Equal(t, config.FormatMsgpack, config.FormatFor("net.msgpack"))
	assert.Equal(t, config.FormatMsgpack, config.FormatFor("NET.MPK"))
}

func TestMsgpackRoundTrip(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "net.msgpack")
	require.NoError(t, f.Save(path))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, f, back)

	// the same file read as YAML is rejected
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = config.Decode(raw, config.FormatYAML)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestMsgpackInvalid(t *testing.T) {
	_, err := config.Decode([]byte{0xc1}, config.FormatMsgpack)
	assert.ErrorIs(t, err, config.ErrInvalid)

	// a segment with a single point passes decoding but fails validation
	var buf bytes.Buffer
	one := &config.File{Segments: []config.Segment{{ID: "a", Coords: []config.Point{{X: 1, Y: 1}}}}}
	require.NoError(t, one.Encode(&buf, config.FormatMsgpack))
	_, err = config.Decode(buf.Bytes(), config.FormatMsgpack)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
