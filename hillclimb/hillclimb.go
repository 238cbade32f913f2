// Package hillclimb parses elevation maps and exposes them as core.Graph[Cell].
package hillclimb

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/katalvlaran/lvlsearch/core"
)

// Height bounds of the alphabet encoding.
const (
	Lowest  = 0  // 'a' and 'S'
	Highest = 25 // 'z' and 'E'
)

// Map is an immutable elevation grid with its start and summit.
// Heights[y][x] holds 0..25 for 'a'..'z'.
type Map struct {
	Width, Height int
	Heights       [][]int
	MaxClimb      int
	Conn          Connectivity

	start, end      Cell
	id              core.Identity[Cell]
	neighborOffsets [][2]int
}

// ParseString is Parse over a string.
func ParseString(text string, opts Options) (*Map, error) {
	return Parse(strings.NewReader(text), opts)
}

// Parse reads a map from r. Trailing blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadHeight, ErrMissingStart or
// ErrMissingEnd for malformed input.
// Algorithmic complexity: O(W×H) time and memory.
func Parse(r io.Reader, opts Options) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("hillclimb: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(lines), len(lines[0])
	m := &Map{
		Width:    w,
		Height:   h,
		Heights:  make([][]int, h),
		MaxClimb: opts.MaxClimb,
		Conn:     opts.Conn,
		id:       core.ComparableIdentity[Cell](),
	}
	starts, ends := 0, 0
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		m.Heights[y] = make([]int, w)
		for x := 0; x < w; x++ {
			ch := line[x]
			switch {
			case ch == 'S':
				m.start, starts = Cell{x, y}, starts+1
				ch = 'a'
			case ch == 'E':
				m.end, ends = Cell{x, y}, ends+1
				ch = 'z'
			case ch < 'a' || ch > 'z':
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadHeight, ch, x, y)
			}
			m.Heights[y][x] = int(ch - 'a')
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMissingStart, starts)
	}
	if ends != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMissingEnd, ends)
	}

	// Precompute neighbor offsets based on connectivity
	if opts.Conn == Conn8 {
		m.neighborOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		m.neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return m, nil
}

// Start returns the 'S' cell.
func (m *Map) Start() Cell { return m.start }

// Identity returns the node identity used for every search on m.
func (m *Map) Identity() core.Identity[Cell] { return m.id }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// HeightAt returns the height of c. c must be in bounds.
func (m *Map) HeightAt(c Cell) int {
	return m.Heights[c.Y][c.X]
}

// Lows returns every cell at the lowest height in row-major order,
// the start included.
func (m *Map) Lows() []Cell {
	var out []Cell
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Heights[y][x] == Lowest {
				out = append(out, Cell{x, y})
			}
		}
	}

	return out
}

// End implements core.Graph.
func (m *Map) End() Cell { return m.end }

// MoveCost implements core.Graph; every step costs 1.
func (m *Map) MoveCost(_, _ Cell) int { return 1 }

// Neighbors implements core.Graph: in-bounds cells at most MaxClimb higher.
func (m *Map) Neighbors(a Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		limit := m.HeightAt(a) + m.MaxClimb
		for _, d := range m.neighborOffsets {
			nx, ny := a.X+d[0], a.Y+d[1]
			if !m.InBounds(nx, ny) || m.Heights[ny][nx] > limit {
				continue
			}
			if !yield(Cell{nx, ny}) {
				return
			}
		}
	}
}

// HeuristicToEnd implements core.Graph: the grid distance to the summit,
// ignoring heights.
func (m *Map) HeuristicToEnd(a Cell) int {
	dx, dy := abs(m.end.X-a.X), abs(m.end.Y-a.Y)
	if m.Conn == Conn8 {
		return max(dx, dy)
	}

	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
