// Package geo defines the planar coordinate and distance types shared by the
// road network, the place store and the area hierarchy.
//
// Coordinates are integer grid points (metres). Distances are integers too:
// the length of a single leg is the Euclidean distance truncated toward zero,
// and a polyline's length is the sum of its truncated legs.
//
// Sentinels:
//
//	NoValue    - smallest int, never a valid coordinate component.
//	NoCoord    - {NoValue, NoValue}, returned where a coordinate is absent.
//	NoDistance - NoValue, returned where a distance is unknown.
package geo

import (
	"fmt"
	"math"
)

// NoValue marks an absent integer value.
const NoValue = math.MinInt

// Distance is a length in metres.
type Distance int

// NoDistance is returned in place of a distance that does not exist.
const NoDistance Distance = NoValue

// Coord is an (X, Y) point on the map.
type Coord struct {
	X int
	Y int
}

// NoCoord is returned in place of a coordinate that does not exist.
var NoCoord = Coord{X: NoValue, Y: NoValue}

// IsNone reports whether c is the NoCoord sentinel.
func (c Coord) IsNone() bool { return c == NoCoord }

// String renders c as "(x,y)".
func (c Coord) String() string {
	if c.IsNone() {
		return "(--,--)"
	}

	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates by Y first, then by X.
func Less(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// Compare returns -1, 0 or +1 following the order defined by Less.
// It is suitable for slices.SortFunc.
func Compare(a, b Coord) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// Euclid returns the straight-line distance between a and b as a float.
// Components are converted before subtracting, so far-apart points do not
// wrap around.
func Euclid(a, b Coord) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Leg returns the truncated straight-line distance between a and b.
func Leg(a, b Coord) Distance {
	return Distance(Euclid(a, b))
}

// PolylineLength sums the truncated legs between consecutive points.
// Fewer than two points yield 0.
func PolylineLength(pts []Coord) Distance {
	var total Distance
	for i := 1; i < len(pts); i++ {
		total += Leg(pts[i-1], pts[i])
	}

	return total
}

// FromOrigin returns the float distance of c from (0,0).
func FromOrigin(c Coord) float64 {
	return Euclid(Coord{}, c)
}
