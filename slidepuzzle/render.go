// SPDX-License-Identifier: MIT
// Package slidepuzzle: text rendering of boards and solutions.

package slidepuzzle

import (
	"math"
	"strconv"
	"strings"
)

// Arrows for blank moves, as rendered by Moves.
const (
	Left  = '←'
	Right = '→'
	Up    = '↑'
	Down  = '↓'
)

// side infers the board side from the tile count.
func side(tiles int) int {
	return int(math.Sqrt(float64(tiles)))
}

// String renders s as a grid, one row per line, blank shown as "_".
// Cells are right-aligned to the widest tile.
func (s State) String() string {
	n := side(len(s.Tiles))
	if n == 0 {
		return ""
	}
	width := len(strconv.Itoa(len(s.Tiles) - 1))

	var b strings.Builder
	for i, t := range s.Tiles {
		cell := "_"
		if t != Blank {
			cell = strconv.Itoa(int(t))
		}
		if i%n != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat(" ", width-len(cell)))
		b.WriteString(cell)
		if i%n == n-1 && i != len(s.Tiles)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Moves renders a solution path as the sequence of blank moves, one arrow
// per step. Steps that are not a single slide are skipped.
func Moves(path []State) string {
	if len(path) < 2 {
		return ""
	}
	n := side(len(path[0].Tiles))

	var b strings.Builder
	for i := 1; i < len(path); i++ {
		switch path[i].Blank - path[i-1].Blank {
		case -1:
			b.WriteRune(Left)
		case 1:
			b.WriteRune(Right)
		case -n:
			b.WriteRune(Up)
		case n:
			b.WriteRune(Down)
		}
	}

	return b.String()
}
