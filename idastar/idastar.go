// Package idastar implements iterative-deepening A* on core.Graph.
//
// Key features:
//   - Search(g, id, start, opts...): repeated bounded depth-first probes
//   - Successors ordered by ascending heuristic (stable for equal estimates)
//   - Cycle avoidance against the current path (hashed set or linear scan)
//   - Hooks: OnIteration (bound per probe) and OnExpand (per expanded node)
//
// Complexity:
//
//   - Memory: O(depth × branching) for the path and pending successor lists.
//
// Errors:
//
//   - ErrNoPath                  if no pruned branch remains and End was not reached.
//   - core.ErrNilGraph           if g is nil.
//   - core.ErrIncompleteIdentity if id is incomplete.
package idastar

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlsearch/core"
)

// unbounded is the probe result when no branch was pruned below a node.
const unbounded = math.MaxInt

// prober encapsulates state during IDA*.
type prober[N any] struct {
	graph core.Graph[N]    // underlying graph
	id    core.Identity[N] // node equality and hashing
	opts  Options[N]       // search options
	end   N                // cached graph.End()

	path     []N              // current exploration stack, start first
	onPath   *core.NodeSet[N] // mirror of path; nil under LinearScan
	goalCost int              // g of End when found
}

// successor is a neighbor paired with its heuristic estimate.
type successor[N any] struct {
	node N
	h    int
}

// Search runs IDA* from start towards g.End().
//
// Returns:
//
//   - path: start-to-goal inclusive; [start] when start already equals End.
//   - cost: the path cost. With an admissible heuristic it equals the bound
//     of the iteration that reached the goal.
//   - err:  ErrNoPath when the space is exhausted, or an argument error.
func Search[N any](g core.Graph[N], id core.Identity[N], start N, opts ...Option[N]) ([]N, int, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, core.NoPath, fmt.Errorf("idastar: %w", core.ErrNilGraph)
	}
	if err := id.Validate(); err != nil {
		return nil, core.NoPath, fmt.Errorf("idastar: %w", err)
	}

	// 2. Apply options
	iopts := DefaultOptions[N]()
	var fn Option[N]
	for _, fn = range opts {
		fn(&iopts)
	}

	// 3. Initialize per-call state
	p := &prober[N]{
		graph: g,
		id:    id,
		opts:  iopts,
		end:   g.End(),
		path:  []N{start},
	}
	if iopts.Membership == PathSet {
		p.onPath = core.NewNodeSet[N](id)
		p.onPath.Add(start)
	}

	// 4. Iterate with increasing bounds
	h0 := g.HeuristicToEnd(start)
	bound := h0
	for {
		if iopts.OnIteration != nil {
			iopts.OnIteration(bound)
		}
		next, found := p.probe(0, h0, bound)
		if found {
			return slices.Clone(p.path), p.goalCost, nil
		}
		if next == unbounded {
			return nil, core.NoPath, ErrNoPath
		}
		bound = next
	}
}

// probe explores below the top of the path with accumulated cost g and the
// top's heuristic h. It returns (next bound candidate, false) or (_, true)
// when End was reached; on success the path is left ending at End.
func (p *prober[N]) probe(g, h, bound int) (int, bool) {
	// 1. Prune over-bound branches
	f := g + h
	if f > bound {
		return f, false
	}

	// 2. Goal test
	cur := p.path[len(p.path)-1]
	if p.id.Equal(cur, p.end) {
		p.goalCost = g

		return f, true
	}

	if p.opts.OnExpand != nil {
		p.opts.OnExpand(cur)
	}

	// 3. Explore successors cheapest-estimate first
	minNext := unbounded
	for _, s := range p.successors(cur) {
		if p.contains(s.node) {
			continue
		}
		p.push(s.node)
		t, found := p.probe(g+p.graph.MoveCost(cur, s.node), s.h, bound)
		if found {
			return t, true
		}
		if t < minNext {
			minNext = t
		}
		p.pop()
	}

	return minNext, false
}

// successors materializes the neighbors of n sorted by ascending heuristic.
// The slice lives only for the duration of one probe frame.
func (p *prober[N]) successors(n N) []successor[N] {
	var out []successor[N]
	for nb := range p.graph.Neighbors(n) {
		out = append(out, successor[N]{node: nb, h: p.graph.HeuristicToEnd(nb)})
	}
	slices.SortStableFunc(out, func(a, b successor[N]) int { return cmp.Compare(a.h, b.h) })

	return out
}

// contains reports whether n is already on the current path.
func (p *prober[N]) contains(n N) bool {
	if p.onPath != nil {
		return p.onPath.Has(n)
	}

	return slices.ContainsFunc(p.path, func(x N) bool { return p.id.Equal(x, n) })
}

// push appends n to the path.
func (p *prober[N]) push(n N) {
	p.path = append(p.path, n)
	if p.onPath != nil {
		p.onPath.Add(n)
	}
}

// pop removes the top of the path.
func (p *prober[N]) pop() {
	top := p.path[len(p.path)-1]
	var zero N
	p.path[len(p.path)-1] = zero
	p.path = p.path[:len(p.path)-1]
	if p.onPath != nil {
		p.onPath.Remove(top)
	}
}
