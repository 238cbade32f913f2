// Package hillclimb defines core types, options, and sentinel errors
// for height-map route finding.
package hillclimb

import (
	"errors"
)

// Sentinel errors for hillclimb operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("hillclimb: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("hillclimb: all rows must have the same length")
	// ErrBadHeight indicates a cell character outside a..z, S, E.
	ErrBadHeight = errors.New("hillclimb: invalid height marker")
	// ErrMissingStart indicates there is not exactly one 'S'.
	ErrMissingStart = errors.New("hillclimb: map needs exactly one start 'S'")
	// ErrMissingEnd indicates there is not exactly one 'E'.
	ErrMissingEnd = errors.New("hillclimb: map needs exactly one summit 'E'")
	// ErrNoRoute indicates the summit is unreachable from every requested start.
	ErrNoRoute = errors.New("hillclimb: no route to the summit")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate; X grows right, Y grows down.
type Cell struct {
	X, Y int
}

// Options contains tunable parameters for the climbing rules.
type Options struct {
	// MaxClimb is the largest allowed height gain per step.
	MaxClimb int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with MaxClimb=1, Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		MaxClimb: 1,
		Conn:     Conn4,
	}
}
