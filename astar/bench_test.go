package astar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsearch/adjacency"
	"github.com/katalvlaran/lvlsearch/astar"
)

// buildLattice creates an undirected n×n lattice "x,y" with unit costs and a
// Manhattan heuristic towards the far corner.
func buildLattice(b *testing.B, n int) *adjacency.Graph {
	b.Helper()
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }
	g, err := adjacency.New(id(n-1, n-1), adjacency.WithDirected(false))
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				_ = g.AddEdge(id(x, y), id(x+1, y), 1)
			}
			if y+1 < n {
				_ = g.AddEdge(id(x, y), id(x, y+1), 1)
			}
			_ = g.SetHeuristic(id(x, y), (n-1-x)+(n-1-y))
		}
	}

	return g
}

// BenchmarkSearch_Lattice100 measures A* corner-to-corner on a 100×100 lattice.
// Graph construction is excluded from timing.
func BenchmarkSearch_Lattice100(b *testing.B) {
	g := buildLattice(b, 100)
	id := g.Identity()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = astar.Search(g, id, "0,0")
	}
}
