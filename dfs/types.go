// Package dfs defines the visitation states and sentinel errors shared by
// the depth-first any-path search and the cycle finder.
package dfs

import "errors"

// Visitation states of an intersection during a search.
const (
	White = iota // White: not discovered yet.
	Gray         // Gray: discovered, its connections are being expanded.
	Black        // Black: every connection has been expanded.
)

var (
	// ErrNetworkNil is returned when a nil *network.Network is passed.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrIntersectionNotFound indicates that an endpoint coordinate is not
	// an intersection of the network.
	ErrIntersectionNotFound = errors.New("dfs: intersection not found")

	// ErrNoRoute indicates that both endpoints exist but are not connected.
	ErrNoRoute = errors.New("dfs: no route")

	// ErrNoCycle indicates that the component of the start intersection is acyclic.
	ErrNoCycle = errors.New("dfs: no cycle")
)
