package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

var (
	a = geo.Coord{X: 0, Y: 0}
	b = geo.Coord{X: 3, Y: 0}
	c = geo.Coord{X: 3, Y: 4}
	d = geo.Coord{X: -5, Y: 0}
	z = geo.Coord{X: 50, Y: 50}
)

// triangle builds A-B (3), B-C (4), A-C (5).
func triangle(t *testing.T) *network.Network {
	t.Helper()
	nw := network.New()
	require.NoError(t, nw.InsertSegment("ab", []geo.Coord{a, b}))
	require.NoError(t, nw.InsertSegment("bc", []geo.Coord{b, c}))
	require.NoError(t, nw.InsertSegment("ac", []geo.Coord{a, c}))

	return nw
}

// requireValidRoute checks that every step is reached over the segment it
// names and that distances accumulate segment lengths.
func requireValidRoute(t *testing.T, nw *network.Network, route []network.Step, from, to geo.Coord) {
	t.Helper()
	require.NotEmpty(t, route)
	assert.Equal(t, from, route[0].Coord)
	assert.Equal(t, network.NoSegment, route[0].Segment)
	assert.Equal(t, geo.Distance(0), route[0].Distance)
	assert.Equal(t, to, route[len(route)-1].Coord)

	seen := map[geo.Coord]bool{from: true}
	for i := 1; i < len(route); i++ {
		seg, err := nw.Segment(route[i].Segment)
		require.NoError(t, err)
		ends := []geo.Coord{seg.From(), seg.To()}
		assert.Contains(t, ends, route[i-1].Coord)
		assert.Contains(t, ends, route[i].Coord)
		assert.Equal(t, route[i-1].Distance+seg.Length, route[i].Distance)
		assert.False(t, seen[route[i].Coord], "route revisits %v", route[i].Coord)
		seen[route[i].Coord] = true
	}
}

func TestRouteAny_Triangle(t *testing.T) {
	nw := triangle(t)
	for _, pair := range [][2]geo.Coord{{a, c}, {c, a}, {b, c}, {a, b}} {
		route, err := dfs.RouteAny(nw, pair[0], pair[1])
		require.NoError(t, err)
		requireValidRoute(t, nw, route, pair[0], pair[1])
	}
}

func TestRouteAny_SameEndpoints(t *testing.T) {
	nw := triangle(t)
	route, err := dfs.RouteAny(nw, b, b)
	require.NoError(t, err)
	assert.Equal(t, []network.Step{{Coord: b, Segment: network.NoSegment, Distance: 0}}, route)
}

func TestRouteAny_Errors(t *testing.T) {
	nw := triangle(t)
	require.NoError(t, nw.InsertSegment("island", []geo.Coord{z, {X: 60, Y: 50}}))

	_, err := dfs.RouteAny(nil, a, b)
	assert.ErrorIs(t, err, dfs.ErrNetworkNil)

	_, err = dfs.RouteAny(nw, a, geo.Coord{X: 1, Y: 1})
	assert.ErrorIs(t, err, dfs.ErrIntersectionNotFound)

	_, err = dfs.RouteAny(nw, geo.Coord{X: 1, Y: 1}, a)
	assert.ErrorIs(t, err, dfs.ErrIntersectionNotFound)

	_, err = dfs.RouteAny(nw, a, z)
	assert.ErrorIs(t, err, dfs.ErrNoRoute)
}

func TestRouteAny_BrokenByRemoval(t *testing.T) {
	nw := network.New()
	require.NoError(t, nw.InsertSegment("ab", []geo.Coord{a, b}))
	require.NoError(t, nw.InsertSegment("bc", []geo.Coord{b, c}))

	_, err := dfs.RouteAny(nw, a, c)
	require.NoError(t, err)

	require.NoError(t, nw.InsertSegment("cz", []geo.Coord{c, z}))
	require.NoError(t, nw.RemoveSegment("bc"))
	_, err = dfs.RouteAny(nw, a, b)
	require.NoError(t, err)
	_, err = dfs.RouteAny(nw, a, c)
	assert.ErrorIs(t, err, dfs.ErrNoRoute)

	// an intersection left without segments disappears
	require.NoError(t, nw.RemoveSegment("cz"))
	_, err = dfs.RouteAny(nw, a, c)
	assert.ErrorIs(t, err, dfs.ErrIntersectionNotFound)
}

func TestRouteAny_LongPath(t *testing.T) {
	// deep enough to overflow a naive recursive walk
	const n = 20000
	nw := network.New()
	for i := 0; i < n; i++ {
		id := network.SegmentID(geo.Coord{X: i, Y: 0}.String())
		require.NoError(t, nw.InsertSegment(id, []geo.Coord{{X: i, Y: 0}, {X: i + 1, Y: 0}}))
	}

	route, err := dfs.RouteAny(nw, geo.Coord{X: 0, Y: 0}, geo.Coord{X: n, Y: 0})
	require.NoError(t, err)
	assert.Len(t, route, n+1)
	assert.Equal(t, geo.Distance(n), route[n].Distance)
}

func TestCycleFrom_TriangleFromEveryCorner(t *testing.T) {
	nw := triangle(t)
	for _, start := range []geo.Coord{a, b, c} {
		cycle, err := dfs.CycleFrom(nw, start)
		require.NoError(t, err)
		require.Len(t, cycle, 4)
		assert.Equal(t, start, cycle[0].Coord)
		assert.Equal(t, network.NoSegment, cycle[0].Segment)
		assert.Equal(t, start, cycle[3].Coord)

		used := map[network.SegmentID]bool{}
		for _, s := range cycle[1:] {
			assert.False(t, used[s.Segment], "segment %q used twice", s.Segment)
			used[s.Segment] = true
		}
		assert.Len(t, used, 3)
	}
}

func TestCycleFrom_ExactWalk(t *testing.T) {
	nw := triangle(t)
	cycle, err := dfs.CycleFrom(nw, a)
	require.NoError(t, err)
	assert.Equal(t, []network.CycleStep{
		{Coord: a, Segment: network.NoSegment},
		{Coord: b, Segment: "ab"},
		{Coord: c, Segment: "bc"},
		{Coord: a, Segment: "ac"},
	}, cycle)
}

// bowtie builds triangle A-B-C and triangle B-D-E sharing B.
func bowtie(t *testing.T) (*network.Network, map[string]geo.Coord) {
	t.Helper()
	p := map[string]geo.Coord{
		"A": {X: 0, Y: 0}, "B": {X: 10, Y: 0}, "C": {X: 0, Y: 10},
		"D": {X: 20, Y: 0}, "E": {X: 20, Y: 5},
	}
	nw := network.New()
	for _, s := range []struct {
		id   network.SegmentID
		u, v string
	}{
		{"ab", "A", "B"}, {"bc", "B", "C"}, {"ac", "A", "C"},
		{"bd", "B", "D"}, {"de", "D", "E"}, {"eb", "E", "B"},
	} {
		require.NoError(t, nw.InsertSegment(s.id, []geo.Coord{p[s.u], p[s.v]}))
	}

	return nw, p
}

// requireClosedWalk checks that a walk starts and ends at start, uses each
// segment at most once, follows real segments and repeats no other intersection.
func requireClosedWalk(t *testing.T, nw *network.Network, walk []network.CycleStep, start geo.Coord) {
	t.Helper()
	require.GreaterOrEqual(t, len(walk), 2)
	assert.Equal(t, network.CycleStep{Coord: start, Segment: network.NoSegment}, walk[0])
	assert.Equal(t, start, walk[len(walk)-1].Coord)

	usedSeg := map[network.SegmentID]bool{}
	seen := map[geo.Coord]bool{}
	for i := 1; i < len(walk); i++ {
		seg, err := nw.Segment(walk[i].Segment)
		require.NoError(t, err)
		ends := []geo.Coord{seg.From(), seg.To()}
		assert.Contains(t, ends, walk[i-1].Coord)
		assert.Contains(t, ends, walk[i].Coord)
		assert.False(t, usedSeg[walk[i].Segment], "segment %q used twice", walk[i].Segment)
		usedSeg[walk[i].Segment] = true
		if i < len(walk)-1 {
			assert.NotEqual(t, start, walk[i].Coord)
			assert.False(t, seen[walk[i].Coord], "walk revisits %v", walk[i].Coord)
			seen[walk[i].Coord] = true
		}
	}
}

func TestCycleFrom_StartOnCycleNextToAnother(t *testing.T) {
	nw, p := bowtie(t)

	cycle, err := dfs.CycleFrom(nw, p["A"])
	require.NoError(t, err)
	assert.Equal(t, []network.CycleStep{
		{Coord: p["A"], Segment: network.NoSegment},
		{Coord: p["B"], Segment: "ab"},
		{Coord: p["C"], Segment: "bc"},
		{Coord: p["A"], Segment: "ac"},
	}, cycle)

	for name, start := range p {
		cycle, err = dfs.CycleFrom(nw, start)
		require.NoError(t, err, name)
		requireClosedWalk(t, nw, cycle, start)
	}
}

func TestCycleFrom_BridgeBeforeCycle(t *testing.T) {
	// the first connection of A is a bridge to a dead end; the triangle
	// through A is still found
	nw := triangle(t)
	require.NoError(t, nw.InsertSegment("dead", []geo.Coord{a, {X: 0, Y: -9}}))

	cycle, err := dfs.CycleFrom(nw, a)
	require.NoError(t, err)
	requireClosedWalk(t, nw, cycle, a)
	assert.Len(t, cycle, 4)
}

func TestCycleFrom_TreeHasNoCycle(t *testing.T) {
	nw := network.New()
	require.NoError(t, nw.InsertSegment("ab", []geo.Coord{a, b}))
	require.NoError(t, nw.InsertSegment("bc", []geo.Coord{b, c}))
	require.NoError(t, nw.InsertSegment("da", []geo.Coord{d, a}))

	for _, start := range []geo.Coord{a, b, c, d} {
		_, err := dfs.CycleFrom(nw, start)
		assert.ErrorIs(t, err, dfs.ErrNoCycle)
	}
}

func TestCycleFrom_TailLeadsIntoCycle(t *testing.T) {
	nw := triangle(t)
	require.NoError(t, nw.InsertSegment("da", []geo.Coord{d, a}))

	cycle, err := dfs.CycleFrom(nw, d)
	require.NoError(t, err)
	assert.Equal(t, []network.CycleStep{
		{Coord: d, Segment: network.NoSegment},
		{Coord: a, Segment: "da"},
		{Coord: b, Segment: "ab"},
		{Coord: c, Segment: "bc"},
		{Coord: a, Segment: "ac"},
	}, cycle)
}

func TestCycleFrom_LoopAndParallel(t *testing.T) {
	loop := network.New()
	require.NoError(t, loop.InsertSegment("o", []geo.Coord{a, {X: 1, Y: 1}, {X: 0, Y: 2}, a}))
	cycle, err := dfs.CycleFrom(loop, a)
	require.NoError(t, err)
	assert.Equal(t, []network.CycleStep{
		{Coord: a, Segment: network.NoSegment},
		{Coord: a, Segment: "o"},
	}, cycle)

	par := network.New()
	require.NoError(t, par.InsertSegment("p1", []geo.Coord{a, b}))
	require.NoError(t, par.InsertSegment("p2", []geo.Coord{a, {X: 0, Y: 5}, b}))
	cycle, err = dfs.CycleFrom(par, a)
	require.NoError(t, err)
	assert.Equal(t, []network.CycleStep{
		{Coord: a, Segment: network.NoSegment},
		{Coord: b, Segment: "p1"},
		{Coord: a, Segment: "p2"},
	}, cycle)
}

func TestCycleFrom_Errors(t *testing.T) {
	_, err := dfs.CycleFrom(nil, a)
	assert.ErrorIs(t, err, dfs.ErrNetworkNil)

	_, err = dfs.CycleFrom(triangle(t), z)
	assert.ErrorIs(t, err, dfs.ErrIntersectionNotFound)
}
