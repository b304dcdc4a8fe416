// Package dijkstra defines core types and configuration options
// for the shortest-distance search over a network.Network.
//
// Dijkstra computes the minimum-length route between two intersections,
// using segment lengths as non-negative edge weights. The algorithm
// maintains a priority queue of intersections to settle and relaxes their
// connections in increasing order of distance from the origin.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |intersections|, E = |segments|
//	   • Each intersection is settled at most once.
//	   • Each relaxation may push into the priority queue (up to 2E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and link maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance: optional cap; intersections farther than this are not settled.
//
// Errors (sentinel):
//
//	– ErrNetworkNil           if the provided network pointer is nil.
//	– ErrIntersectionNotFound if an endpoint is not an intersection.
//	– ErrNoRoute              if the endpoints are not connected (within MaxDistance).
//	– ErrBadMaxDistance       if MaxDistance < 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/roadnet/geo"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNetworkNil indicates that a nil *network.Network was passed.
	ErrNetworkNil = errors.New("dijkstra: network is nil")

	// ErrIntersectionNotFound indicates that an endpoint coordinate is not
	// an intersection of the network.
	ErrIntersectionNotFound = errors.New("dijkstra: intersection not found")

	// ErrNoRoute indicates that the destination cannot be reached.
	ErrNoRoute = errors.New("dijkstra: no route")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – intersections whose distance would exceed it are not settled.
// Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	MaxDistance geo.Distance
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Passing a negative value panics with ErrBadMaxDistance; invalid
// configuration is a programming error.
func WithMaxDistance(max geo.Distance) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
	}
}
