// SPDX-License-Identifier: MIT
// Package slidepuzzle_test: construction, parsing, solvability, rendering
// and end-to-end solving with both search algorithms.

package slidepuzzle_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/idastar"
	"github.com/katalvlaran/lvlsearch/slidepuzzle"
)

// newGraph builds a canonical-goal graph of the given side.
func newGraph(t *testing.T, size int) *slidepuzzle.Graph {
	t.Helper()
	goal, err := slidepuzzle.Goal(size)
	require.NoError(t, err)
	g, err := slidepuzzle.NewGraph(size, goal)
	require.NoError(t, err)

	return g
}

func mustParse(t *testing.T, size int, text string) slidepuzzle.State {
	t.Helper()
	s, err := slidepuzzle.Parse(size, text)
	require.NoError(t, err)

	return s
}

// ------------------------------------------------------------------------
// 1. Construction and parsing
// ------------------------------------------------------------------------

func TestGoal(t *testing.T) {
	goal, err := slidepuzzle.Goal(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 0}, goal.Tiles)
	assert.Equal(t, 8, goal.Blank)

	_, err = slidepuzzle.Goal(1)
	assert.ErrorIs(t, err, slidepuzzle.ErrBadSize)
	_, err = slidepuzzle.Goal(slidepuzzle.MaxSize + 1)
	assert.ErrorIs(t, err, slidepuzzle.ErrBadSize)
}

func TestNewGraph_BadGoal(t *testing.T) {
	_, err := slidepuzzle.NewGraph(3, slidepuzzle.State{Tiles: []byte{1, 2, 3}, Blank: 0})
	assert.ErrorIs(t, err, slidepuzzle.ErrBadTiles)

	_, err = slidepuzzle.NewGraph(0, slidepuzzle.State{})
	assert.ErrorIs(t, err, slidepuzzle.ErrBadSize)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		text  string
		tiles []byte
		blank int
	}{
		{"Spaces", 3, "2 7 1 5 4 3 8 6 0", []byte{2, 7, 1, 5, 4, 3, 8, 6, 0}, 8},
		{"Commas", 3, "1,2,3, 4,0,6, 7,5,8", []byte{1, 2, 3, 4, 0, 6, 7, 5, 8}, 4},
		{"Compact", 3, "271543860", []byte{2, 7, 1, 5, 4, 3, 8, 6, 0}, 8},
		{"CompactHex", 4, "3DBC42A9156F78E0",
			[]byte{3, 13, 11, 12, 4, 2, 10, 9, 1, 5, 6, 15, 7, 8, 14, 0}, 15},
		{"Separated4x4", 4, "10 11 2 5 9 1 14 8 4 7 15 3 0 12 13 6",
			[]byte{10, 11, 2, 5, 9, 1, 14, 8, 4, 7, 15, 3, 0, 12, 13, 6}, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := slidepuzzle.Parse(tc.size, tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.tiles, s.Tiles)
			assert.Equal(t, tc.blank, s.Blank)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		size int
		text string
		err  error
	}{
		{"TooFew", 3, "1 2 3", slidepuzzle.ErrBadTiles},
		{"Duplicate", 3, "1 1 3 4 5 6 7 8 0", slidepuzzle.ErrBadTiles},
		{"OutOfRange", 3, "1 2 3 4 5 6 7 9 0", slidepuzzle.ErrBadTiles},
		{"NoBlank", 3, "1 2 3 4 5 6 7 8 9", slidepuzzle.ErrBadTiles},
		{"NotANumber", 3, "1 2 3 4 x 6 7 8 0", slidepuzzle.ErrBadTiles},
		{"BadSize", 1, "0", slidepuzzle.ErrBadSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := slidepuzzle.Parse(tc.size, tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Graph contract
// ------------------------------------------------------------------------

func TestIdentity(t *testing.T) {
	id := slidepuzzle.Identity()
	require.NoError(t, id.Validate())

	a := slidepuzzle.State{Tiles: []byte{1, 2, 3, 0}, Blank: 3}
	b := a.Clone()
	assert.True(t, id.Equal(a, b))
	assert.Equal(t, id.Hash(a), id.Hash(b))

	b.Tiles[2], b.Tiles[3], b.Blank = 0, 3, 2
	assert.False(t, id.Equal(a, b))
}

func TestNeighbors(t *testing.T) {
	g := newGraph(t, 3)
	center := mustParse(t, 3, "1 2 3 4 0 5 6 7 8")

	var blanks []int
	for n := range g.Neighbors(center) {
		blanks = append(blanks, n.Blank)
		assert.Equal(t, slidepuzzle.Blank, n.Tiles[n.Blank])
		assert.Equal(t, 1, g.MoveCost(center, n))
	}
	// left, right, up, down
	assert.Equal(t, []int{3, 5, 1, 7}, blanks)
	// the source state is untouched
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 5, 6, 7, 8}, center.Tiles)

	corner := g.End()
	blanks = blanks[:0]
	for n := range g.Neighbors(corner) {
		blanks = append(blanks, n.Blank)
	}
	assert.Equal(t, []int{7, 5}, blanks)
}

func TestHeuristicToEnd(t *testing.T) {
	g := newGraph(t, 3)
	assert.Equal(t, 0, g.HeuristicToEnd(g.End()))
	// 7 and 8 are each one cell right of home; the blank does not count.
	assert.Equal(t, 2, g.HeuristicToEnd(mustParse(t, 3, "1 2 3 4 5 6 0 7 8")))
	// 2 7 1 / 5 4 3 / 8 6 _
	assert.Equal(t, 12, g.HeuristicToEnd(mustParse(t, 3, "271543860")))
}

func TestSolvable(t *testing.T) {
	g3 := newGraph(t, 3)
	assert.True(t, g3.Solvable(mustParse(t, 3, "271543860")))
	assert.False(t, g3.Solvable(mustParse(t, 3, "1 2 3 4 5 6 8 7 0")))
	assert.ErrorIs(t, g3.Check(mustParse(t, 3, "1 2 3 4 5 6 8 7 0")), slidepuzzle.ErrUnsolvable)

	g4 := newGraph(t, 4)
	assert.True(t, g4.Solvable(mustParse(t, 4, "123456789ABCD0EF")))
	// blank moved up one row: still solvable on an even side
	assert.True(t, g4.Solvable(mustParse(t, 4, "123456789AB0DEFC")))
	assert.False(t, g4.Solvable(mustParse(t, 4, "213456789ABCDEF0")))
}

// ------------------------------------------------------------------------
// 3. Rendering
// ------------------------------------------------------------------------

func TestString(t *testing.T) {
	goal, err := slidepuzzle.Goal(3)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n4 5 6\n7 8 _", goal.String())

	goal4, err := slidepuzzle.Goal(4)
	require.NoError(t, err)
	assert.Equal(t, " 1  2  3  4\n 5  6  7  8\n 9 10 11 12\n13 14 15  _", goal4.String())
}

func TestMoves(t *testing.T) {
	a := mustParse(t, 3, "1 2 3 4 0 5 6 7 8")
	b := mustParse(t, 3, "1 2 3 0 4 5 6 7 8") // left
	c := mustParse(t, 3, "0 2 3 1 4 5 6 7 8") // up
	d := mustParse(t, 3, "2 0 3 1 4 5 6 7 8") // right
	e := mustParse(t, 3, "2 4 3 1 0 5 6 7 8") // down
	assert.Equal(t, "←↑→↓", slidepuzzle.Moves([]slidepuzzle.State{a, b, c, d, e}))
	assert.Empty(t, slidepuzzle.Moves([]slidepuzzle.State{a}))
}

// ------------------------------------------------------------------------
// 4. Solving
// ------------------------------------------------------------------------

func TestSolve_TwoMoves(t *testing.T) {
	g := newGraph(t, 3)
	start := mustParse(t, 3, "1 2 3 4 5 6 0 7 8")

	path, cost, err := astar.Search[slidepuzzle.State](g, slidepuzzle.Identity(), start)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Len(t, path, 3)
	assert.Equal(t, "→→", slidepuzzle.Moves(path))

	path, cost, err = idastar.Search[slidepuzzle.State](g, slidepuzzle.Identity(), start)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Len(t, path, 3)
	assert.Equal(t, g.End().Tiles, path[2].Tiles)
}

func TestSolve_KnownBoards(t *testing.T) {
	boards := []struct {
		text string
		cost int
	}{
		{"271543860", 18},
		{"472861350", 26},
		{"271384650", 24},
		{"462817350", 26},
		{"267185340", 24},
		{"315642870", 22},
		{"467813250", 24},
		{"354278160", 18},
	}
	g := newGraph(t, 3)
	id := slidepuzzle.Identity()
	for _, b := range boards {
		t.Run(b.text, func(t *testing.T) {
			start := mustParse(t, 3, b.text)
			require.NoError(t, g.Check(start))

			apath, acost, err := astar.Search[slidepuzzle.State](g, id, start)
			require.NoError(t, err)
			assert.Equal(t, b.cost, acost)
			sum, err := core.PathCost[slidepuzzle.State](g, id, apath)
			require.NoError(t, err)
			assert.Equal(t, acost, sum)

			ipath, icost, err := idastar.Search[slidepuzzle.State](g, id, start)
			require.NoError(t, err)
			assert.Equal(t, b.cost, icost)
			assert.Len(t, ipath, icost+1)
			assert.Equal(t, icost, utf8.RuneCountInString(slidepuzzle.Moves(ipath)))
		})
	}
}

func TestSolve_FourByFour(t *testing.T) {
	g := newGraph(t, 4)
	start := mustParse(t, 4, "123456789ABCD0EF")

	path, cost, err := idastar.Search[slidepuzzle.State](g, slidepuzzle.Identity(), start,
		idastar.WithPathMembership[slidepuzzle.State](idastar.LinearScan))
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, "→→", slidepuzzle.Moves(path))
}
