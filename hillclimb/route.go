package hillclimb

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
)

// FewestSteps returns the fewest steps from Start to the summit.
// Returns ErrNoRoute if the summit is unreachable.
func (m *Map) FewestSteps() (int, error) {
	return m.StepsFrom(m.start)
}

// StepsFrom returns the fewest steps from c to the summit using A*.
func (m *Map) StepsFrom(c Cell) (int, error) {
	if !m.InBounds(c.X, c.Y) {
		return 0, fmt.Errorf("hillclimb: cell %d,%d out of bounds", c.X, c.Y)
	}
	_, cost, err := astar.Search[Cell](m, m.id, c)
	if err != nil {
		return 0, err
	}
	if cost == core.NoPath {
		return 0, fmt.Errorf("%w: from %d,%d", ErrNoRoute, c.X, c.Y)
	}

	return cost, nil
}

// FewestStepsFromLowest returns the fewest steps to the summit from any
// lowest cell. Lows that cannot reach the summit are ignored; ErrNoRoute is
// returned only when none can.
func (m *Map) FewestStepsFromLowest() (int, error) {
	best := core.NoPath
	for _, c := range m.Lows() {
		steps, err := m.StepsFrom(c)
		if err != nil {
			continue
		}
		if best == core.NoPath || steps < best {
			best = steps
		}
	}
	if best == core.NoPath {
		return 0, ErrNoRoute
	}

	return best, nil
}
