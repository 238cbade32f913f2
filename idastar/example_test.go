package idastar_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsearch/adjacency"
	"github.com/katalvlaran/lvlsearch/idastar"
)

// ExampleSearch runs IDA* on the same road network as astar's example and
// prints every bound the iterations went through.
//
//	Home ─4─ Mill ─3─ Market
//	  │        │
//	  2        1
//	  │        │
//	 Ford ─2─ Bridge ─6─ Market
func ExampleSearch() {
	g, _ := adjacency.New("Market", adjacency.WithDirected(false))
	_ = g.AddEdge("Home", "Mill", 4)
	_ = g.AddEdge("Mill", "Market", 3)
	_ = g.AddEdge("Home", "Ford", 2)
	_ = g.AddEdge("Ford", "Bridge", 2)
	_ = g.AddEdge("Bridge", "Mill", 1)
	_ = g.AddEdge("Bridge", "Market", 6)
	_ = g.SetHeuristic("Mill", 3)
	_ = g.SetHeuristic("Bridge", 4)
	_ = g.SetHeuristic("Ford", 5)
	_ = g.SetHeuristic("Home", 7)

	var bounds []int
	path, cost, err := idastar.Search(g, g.Identity(), "Home",
		idastar.WithOnIteration[string](func(b int) { bounds = append(bounds, b) }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(path, " → "), cost, bounds)

	// Output:
	// Home → Mill → Market 7 [7]
}

// ExampleSearch_exhausted shows that an unreachable goal surfaces as ErrNoPath.
func ExampleSearch_exhausted() {
	g, _ := adjacency.New("Island")
	_ = g.AddEdge("Port", "Lighthouse", 1)

	path, cost, err := idastar.Search(g, g.Identity(), "Port")
	fmt.Println(len(path), cost, err)

	// Output:
	// 0 -1 idastar: search space exhausted without reaching the goal
}
