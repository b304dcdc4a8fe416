package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// ExampleFewestHops picks the ring road over two short streets because it
// crosses fewer segments, even though it is longer.
func ExampleFewestHops() {
	nw := network.New()
	_ = nw.InsertSegment("ring", []geo.Coord{{X: 0, Y: 0}, {X: 0, Y: 50}, {X: 10, Y: 50}, {X: 10, Y: 0}})
	_ = nw.InsertSegment("s1", []geo.Coord{{X: 0, Y: 0}, {X: 5, Y: 1}})
	_ = nw.InsertSegment("s2", []geo.Coord{{X: 5, Y: 1}, {X: 10, Y: 0}})

	route, err := bfs.FewestHops(nw, geo.Coord{X: 0, Y: 0}, geo.Coord{X: 10, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range route[1:] {
		fmt.Println(s.Coord, s.Segment, s.Distance)
	}
	// Output:
	// (10,0) ring 110
}
