package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// TestBuilders_Functional runs table-driven checks of the counts and cycle
// structure of each topology.
func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int  // intersections
		wantE     int  // segments
		wantCycle bool // whether the network contains a cycle
	}{
		{"Path(5)", builder.Path(5), 5, 4, false},
		{"Ring(6)", builder.Ring(6), 6, 6, true},
		{"Wheel(5)", builder.Wheel(5), 5, 8, true},
		{"Star(4)", builder.Star(4), 4, 3, false},
		{"Star(2)", builder.Star(2), 2, 1, false},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, true},
		{"Grid(1,3)", builder.Grid(1, 3), 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nw, err := builder.BuildNetwork(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, nw.IntersectionCount())
			assert.Equal(t, tc.wantE, nw.SegmentCount())

			_, err = dfs.CycleFrom(nw, nw.Intersections()[0])
			if tc.wantCycle {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, dfs.ErrNoCycle)
			}

			// every generated network is connected
			first := nw.Intersections()[0]
			for _, c := range nw.Intersections() {
				_, err := dfs.RouteAny(nw, first, c)
				assert.NoError(t, err, "%v unreachable", c)
			}
		})
	}
}

func TestPath_Layout(t *testing.T) {
	nw, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSpacing(10), builder.WithOrigin(geo.Coord{X: 5, Y: 5})},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []geo.Coord{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 25, Y: 5}}, nw.Intersections())
	assert.Equal(t, []network.SegmentID{"s0", "s1"}, nw.Segments())

	coords, err := nw.SegmentCoords("s1")
	require.NoError(t, err)
	assert.Equal(t, []geo.Coord{{X: 15, Y: 5}, {X: 25, Y: 5}}, coords)
}

func TestGrid_LengthsFollowSpacing(t *testing.T) {
	nw, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSpacing(25)}, builder.Grid(3, 3))
	require.NoError(t, err)
	for _, id := range nw.Segments() {
		l, err := nw.SegmentLength(id)
		require.NoError(t, err)
		assert.Equal(t, geo.Distance(25), l)
	}
}

func TestBuildNetwork_ComposedConstructorsGetDistinctIDs(t *testing.T) {
	nw, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithIDPrefix("r")},
		builder.Path(3),
		builder.Ring(4),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, nw.SegmentCount())
	assert.True(t, nw.HasSegment("r0"))
	assert.True(t, nw.HasSegment("r5"))
}

func TestBuildNetwork_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(9), builder.WithJitter(30)}
	}
	a, err := builder.BuildNetwork(opts(), builder.Grid(4, 4), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildNetwork(opts(), builder.Grid(4, 4), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Intersections(), b.Intersections())
	require.Equal(t, a.Segments(), b.Segments())
	for _, id := range a.Segments() {
		ca, _ := a.SegmentCoords(id)
		cb, _ := b.SegmentCoords(id)
		assert.Equal(t, ca, cb)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	full, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.SegmentCount())
	assert.Equal(t, 6, full.IntersectionCount())

	empty, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.SegmentCount())
}

func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Ring(2)", nil, builder.Ring(2), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Grid(1,1)", nil, builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"Grid(0,5)", nil, builder.Grid(0, 5), builder.ErrTooFewVertices},
		{"RandomSparse no rng", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomSparse p>1", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"jitter without rng", []builder.BuilderOption{builder.WithJitter(3)}, builder.Path(3), builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nw, err := builder.BuildNetwork(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, nw)
		})
	}
}

func TestApply_DuplicateIDsFail(t *testing.T) {
	nw := network.New()
	require.NoError(t, builder.Apply(nw, nil, builder.Path(3)))
	// a second build restarts the counter at s0
	err := builder.Apply(nw, nil, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, network.ErrDuplicateSegment)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
	assert.NoError(t, builder.Apply(nw, []builder.BuilderOption{builder.WithIDPrefix("x")}, builder.Path(3)))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithIDPrefix("") })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithOrigin(geo.NoCoord) })
}

func TestIDScheme(t *testing.T) {
	tests := []struct {
		scheme string
		prefix string
		in     int
		want   string
	}{
		{builder.SchemeDecimal, "", 42, "42"},
		{builder.SchemeDecimal, "seg-", 7, "seg-7"},
		{builder.SchemeBase36, "", 36, "10"},
		{builder.SchemeBase36, "r", 35, "rz"},
		{builder.SchemeLetters, "", 0, "A"},
		{builder.SchemeLetters, "", 25, "Z"},
		{builder.SchemeLetters, "x", 26, "xAA"},
		{builder.SchemeLetters, "", 701, "ZZ"},
		{builder.SchemeLetters, "", 702, "AAA"},
	}
	for _, tc := range tests {
		t.Run(tc.scheme+"/"+tc.want, func(t *testing.T) {
			fn, err := builder.IDScheme(tc.scheme, tc.prefix)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fn(tc.in))
		})
	}

	assert.Equal(t, "seg-7", builder.SymbolNumberIDFn("seg-")(7))

	_, err := builder.IDScheme("roman", "")
	assert.ErrorIs(t, err, builder.ErrUnknownIDScheme)

	fn, err := builder.IDScheme(builder.SchemeLetters, "")
	require.NoError(t, err)
	assert.Panics(t, func() { fn(-1) })
}

func TestIDScheme_NamesSegments(t *testing.T) {
	fn, err := builder.IDScheme(builder.SchemeLetters, "")
	require.NoError(t, err)
	nw, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithIDScheme(fn)}, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []network.SegmentID{"A", "B", "C"}, nw.Segments())
}
