// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path validation against a Graph.

package core

import "fmt"

// PathCost checks that every consecutive pair (path[i], path[i+1]) is an edge
// produced by g.Neighbors(path[i]) and returns the sum of their MoveCost.
//
// A single-node path is valid and costs 0.
//
// Errors:
//   - ErrNilGraph           if g is nil.
//   - ErrIncompleteIdentity if id is incomplete.
//   - ErrEmptyPath          if len(path) == 0.
//   - ErrNotAnEdge          (wrapped with the failing index) if a pair is not an edge.
//
// Complexity: O(Σ deg(path[i])) Neighbors evaluations.
func PathCost[N any](g Graph[N], id Identity[N], path []N) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if err := id.Validate(); err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	total := 0
	for i := 0; i+1 < len(path); i++ {
		if !hasEdge(g, id, path[i], path[i+1]) {
			return 0, fmt.Errorf("%w: step %d→%d", ErrNotAnEdge, i, i+1)
		}
		total += g.MoveCost(path[i], path[i+1])
	}

	return total, nil
}

// hasEdge reports whether to is among the successors of from.
func hasEdge[N any](g Graph[N], id Identity[N], from, to N) bool {
	for nb := range g.Neighbors(from) {
		if id.Equal(nb, to) {
			return true
		}
	}

	return false
}
