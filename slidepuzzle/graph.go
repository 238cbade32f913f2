// SPDX-License-Identifier: MIT
// Package slidepuzzle: Graph construction, validation, parsing and the
// core.Graph implementation.

package slidepuzzle

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Graph is the sliding puzzle graph of side Size towards a fixed goal.
// It is read-only after NewGraph and safe to share between searches.
type Graph struct {
	size int
	goal State

	coords  [][2]int // cell index → (x, y)
	goalPos []int    // tile → goal cell index
	dist    []int    // dist[cell*n² + goalCell] Manhattan distance
}

// Goal returns the canonical goal of side size: 1..n²-1 then the blank.
func Goal(size int) (State, error) {
	if size < 2 || size > MaxSize {
		return State{}, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	n2 := size * size
	tiles := make([]byte, n2)
	for i := 0; i < n2-1; i++ {
		tiles[i] = byte(i + 1)
	}
	tiles[n2-1] = Blank

	return State{Tiles: tiles, Blank: n2 - 1}, nil
}

// NewGraph validates goal and precomputes the coordinate, goal-position and
// distance tables.
//
// Complexity: O(n⁴) time and memory for the distance table.
func NewGraph(size int, goal State) (*Graph, error) {
	if size < 2 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	g := &Graph{size: size}
	if err := g.Validate(goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	g.goal = goal.Clone()

	n2 := size * size
	g.coords = make([][2]int, n2)
	for i := range g.coords {
		g.coords[i] = [2]int{i % size, i / size}
	}
	g.goalPos = make([]int, n2)
	for i, t := range g.goal.Tiles {
		g.goalPos[t] = i
	}
	g.dist = make([]int, n2*n2)
	for i := 0; i < n2; i++ {
		for j := 0; j < n2; j++ {
			g.dist[i*n2+j] = abs(g.coords[i][0]-g.coords[j][0]) + abs(g.coords[i][1]-g.coords[j][1])
		}
	}

	return g, nil
}

// Size returns the side length.
func (g *Graph) Size() int { return g.size }

// Validate reports ErrBadTiles unless s is a permutation of 0..n²-1 with
// s.Blank pointing at tile 0.
func (g *Graph) Validate(s State) error {
	n2 := g.size * g.size
	if len(s.Tiles) != n2 {
		return fmt.Errorf("%w: %d tiles, want %d", ErrBadTiles, len(s.Tiles), n2)
	}
	seen := make([]bool, n2)
	for i, t := range s.Tiles {
		if int(t) >= n2 {
			return fmt.Errorf("%w: tile %d at %d out of range", ErrBadTiles, t, i)
		}
		if seen[t] {
			return fmt.Errorf("%w: tile %d repeated", ErrBadTiles, t)
		}
		seen[t] = true
	}
	if s.Blank < 0 || s.Blank >= n2 || s.Tiles[s.Blank] != Blank {
		return fmt.Errorf("%w: blank index %d", ErrBadTiles, s.Blank)
	}

	return nil
}

// Solvable reports whether s can reach the goal: both permutations must
// share the same parity. For odd sides the parity is that of the inversion
// count; for even sides the blank's row counted from the bottom is added.
func (g *Graph) Solvable(s State) bool {
	return g.parity(s) == g.parity(g.goal)
}

func (g *Graph) parity(s State) int {
	inv := 0
	for i := 0; i < len(s.Tiles); i++ {
		if s.Tiles[i] == Blank {
			continue
		}
		for j := i + 1; j < len(s.Tiles); j++ {
			if s.Tiles[j] != Blank && s.Tiles[j] < s.Tiles[i] {
				inv++
			}
		}
	}
	if g.size%2 == 0 {
		inv += g.size - s.Blank/g.size
	}

	return inv % 2
}

// Check validates s and its solvability against the goal.
func (g *Graph) Check(s State) error {
	if err := g.Validate(s); err != nil {
		return err
	}
	if !g.Solvable(s) {
		return ErrUnsolvable
	}

	return nil
}

// Parse reads a board of side size. Tiles are either separated by spaces or
// commas, or given compactly as one base-36 digit per tile.
func Parse(size int, text string) (State, error) {
	if size < 2 || size > MaxSize {
		return State{}, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	n2 := size * size
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	base := 10
	if len(fields) == 1 && len(fields[0]) == n2 {
		fields = strings.Split(fields[0], "")
		base = 36
	}
	if len(fields) != n2 {
		return State{}, fmt.Errorf("%w: %d tiles, want %d", ErrBadTiles, len(fields), n2)
	}

	tiles := make([]byte, n2)
	for i, f := range fields {
		v, err := strconv.ParseUint(f, base, 8)
		if err != nil {
			return State{}, fmt.Errorf("%w: tile %q: %v", ErrBadTiles, f, err)
		}
		tiles[i] = byte(v)
	}
	s, err := NewState(tiles)
	if err != nil {
		return State{}, err
	}
	g := Graph{size: size}
	if err = g.Validate(s); err != nil {
		return State{}, err
	}

	return s, nil
}

// End implements core.Graph.
func (g *Graph) End() State { return g.goal }

// MoveCost implements core.Graph; every slide costs 1.
func (g *Graph) MoveCost(_, _ State) int { return 1 }

// Neighbors implements core.Graph. The blank moves left, right, up, down;
// every yielded State owns a fresh tile slice.
func (g *Graph) Neighbors(a State) iter.Seq[State] {
	return func(yield func(State) bool) {
		x, y := g.coords[a.Blank][0], g.coords[a.Blank][1]
		if x > 0 && !yield(swapBlank(a, a.Blank-1)) {
			return
		}
		if x < g.size-1 && !yield(swapBlank(a, a.Blank+1)) {
			return
		}
		if y > 0 && !yield(swapBlank(a, a.Blank-g.size)) {
			return
		}
		if y < g.size-1 {
			yield(swapBlank(a, a.Blank+g.size))
		}
	}
}

// HeuristicToEnd implements core.Graph: summed Manhattan distance of every
// non-blank tile to its goal cell.
func (g *Graph) HeuristicToEnd(a State) int {
	n2 := g.size * g.size
	h := 0
	for i, t := range a.Tiles {
		if t == Blank {
			continue
		}
		h += g.dist[i*n2+g.goalPos[t]]
	}

	return h
}

// swapBlank returns a copy of s with the blank moved to cell i.
func swapBlank(s State, i int) State {
	out := State{Tiles: make([]byte, len(s.Tiles)), Blank: i}
	copy(out.Tiles, s.Tiles)
	out.Tiles[s.Blank], out.Tiles[i] = s.Tiles[i], Blank

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
