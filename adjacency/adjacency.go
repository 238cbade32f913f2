package adjacency

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/lvlsearch/core"
)

// Sentinel errors for adjacency graph construction.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("adjacency: vertex ID is empty")

	// ErrNegativeCost indicates a negative edge cost or heuristic value.
	ErrNegativeCost = errors.New("adjacency: negative cost")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("adjacency: vertex not found")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge creates one-way (true) or two-way (false) edges.
// Default is directed.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// arc is one outgoing edge in the adjacency list.
type arc struct {
	to   string
	cost int
}

// Graph is an explicit weighted graph whose goal vertex is fixed at creation.
type Graph struct {
	directed  bool
	end       string
	adjacency map[string][]arc // from → outgoing arcs in insertion order
	heuristic map[string]int   // vertex → estimate to end
}

// New creates a Graph targeting end. The end vertex is added immediately.
func New(end string, opts ...GraphOption) (*Graph, error) {
	if end == "" {
		return nil, ErrEmptyVertexID
	}
	g := &Graph{
		directed:  true,
		end:       end,
		adjacency: make(map[string][]arc),
		heuristic: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency[end] = nil

	return g, nil
}

// Identity returns the node identity for string vertex IDs.
func (g *Graph) Identity() core.Identity[string] {
	return core.ComparableIdentity[string]()
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts a vertex if missing (idempotent).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge adds from→to with the given cost, creating missing vertices.
// Undirected graphs also add to→from. Parallel edges are kept as given;
// MoveCost then reports the cheapest one.
func (g *Graph) AddEdge(from, to string, cost int) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 {
		return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNegativeCost, from, to, cost)
	}
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)
	g.adjacency[from] = append(g.adjacency[from], arc{to: to, cost: cost})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], arc{to: from, cost: cost})
	}

	return nil
}

// SetHeuristic records the estimate from id to End.
func (g *Graph) SetHeuristic(id string, h int) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if h < 0 {
		return fmt.Errorf("%w: heuristic for %q=%d", ErrNegativeCost, id, h)
	}
	g.heuristic[id] = h

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// End implements core.Graph.
func (g *Graph) End() string { return g.end }

// MoveCost implements core.Graph. It returns the cheapest a→b arc.
// Calling it for a pair that is not an edge violates the contract and
// returns 0.
func (g *Graph) MoveCost(a, b string) int {
	best, found := 0, false
	for _, e := range g.adjacency[a] {
		if e.to == b && (!found || e.cost < best) {
			best, found = e.cost, true
		}
	}

	return best
}

// Neighbors implements core.Graph, yielding successors in insertion order.
// A successor reachable through parallel arcs is yielded once per arc.
func (g *Graph) Neighbors(a string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range g.adjacency[a] {
			if !yield(e.to) {
				return
			}
		}
	}
}

// HeuristicToEnd implements core.Graph.
func (g *Graph) HeuristicToEnd(a string) int { return g.heuristic[a] }
