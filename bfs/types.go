// Package bfs provides tunable options and error definitions
// for the fewest-hops search over a network.Network.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
)

// Sentinel errors for BFS execution.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrIntersectionNotFound is returned when an endpoint is not an intersection.
	ErrIntersectionNotFound = errors.New("bfs: intersection not found")

	// ErrNoRoute is returned when the endpoints are not connected
	// (or not within MaxHops of each other).
	ErrNoRoute = errors.New("bfs: no route")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative hop limit), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of a fewest-hops search.
type Options struct {
	// OnVisit is called when an intersection is dequeued, with its hop count.
	// Returning an error aborts the search and propagates that error.
	OnVisit func(c geo.Coord, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many segments.
	// 0 disables the limit.
	MaxHops int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hop limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(geo.Coord, int) error { return nil },
		MaxHops: 0,
	}
}

// WithOnVisit registers a callback run on every dequeued intersection.
func WithOnVisit(fn func(c geo.Coord, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the search to routes of at most n segments.
//
//	n > 0: limit to n hops
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}
