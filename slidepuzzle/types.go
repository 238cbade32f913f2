// SPDX-License-Identifier: MIT
// Package slidepuzzle: sentinel errors, State, and the State identity.

package slidepuzzle

import (
	"bytes"
	"errors"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvlsearch/core"
)

// Blank is the tile value of the empty cell.
const Blank byte = 0

// MaxSize bounds the side length so every tile value fits a byte.
const MaxSize = 15

var (
	// ErrBadSize indicates a side length outside [2, MaxSize].
	ErrBadSize = errors.New("slidepuzzle: size out of range")

	// ErrBadTiles indicates tiles that are not a permutation of 0..n²-1,
	// or a Blank index that does not point at tile 0.
	ErrBadTiles = errors.New("slidepuzzle: tiles are not a valid board")

	// ErrUnsolvable indicates a start state that cannot reach the goal.
	ErrUnsolvable = errors.New("slidepuzzle: board cannot reach the goal")
)

// State is one board configuration.
// Tiles is row-major; Blank is the index of the 0 tile in Tiles.
type State struct {
	Tiles []byte
	Blank int
}

// NewState builds a State from tiles, locating the blank.
// The tiles are copied.
func NewState(tiles []byte) (State, error) {
	blank := bytes.IndexByte(tiles, Blank)
	if blank < 0 {
		return State{}, ErrBadTiles
	}

	return State{Tiles: bytes.Clone(tiles), Blank: blank}, nil
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{Tiles: bytes.Clone(s.Tiles), Blank: s.Blank}
}

// Identity returns the node identity for States: blank index and tiles must
// match; the hash is xxhash over the tile bytes.
func Identity() core.Identity[State] {
	return core.Identity[State]{
		Equal: func(x, y State) bool {
			return x.Blank == y.Blank && bytes.Equal(x.Tiles, y.Tiles)
		},
		Hash: func(x State) uint64 {
			return xxhash.Sum64(x.Tiles)
		},
	}
}
