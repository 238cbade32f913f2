// Package astar implements A* best-first search on core.Graph.
//
// A* keeps a frontier ordered by estimated total cost f = g + h, a closed set
// of nodes whose cost is final, and a predecessor map for path recovery.
//
// Notes on implementation choices:
//
//   - The frontier is a gods priority queue of frontierItem values ordered by
//     (f, seq). seq is a per-call insertion counter that makes equal-f pops FIFO.
//   - We use a "lazy" decrease-key strategy: improved nodes are pushed again
//     and stale entries are skipped when popped.
//   - No validation of costs or heuristic is performed; a contract violation
//     yields a suboptimal result, never an error.
package astar

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/lvlsearch/core"
)

// Search finds a minimum-cost path from start to g.End().
//
// Returns:
//
//   - path: start-to-goal inclusive. [start] when start already equals End.
//     nil when the goal is unreachable.
//   - cost: best-known cost of End, or core.NoPath when unreachable.
//   - err:  only for invalid arguments (nil graph, incomplete identity).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. id must have Equal and Hash (core.ErrIncompleteIdentity).
//
// Complexity:
//
//   - Time:  O(E log E) heap operations plus Neighbors/Heuristic evaluations.
//   - Space: O(V + E)
func Search[N any](g core.Graph[N], id core.Identity[N], start N, opts ...Option[N]) ([]N, int, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, core.NoPath, fmt.Errorf("astar: %w", core.ErrNilGraph)
	}
	if err := id.Validate(); err != nil {
		return nil, core.NoPath, fmt.Errorf("astar: %w", err)
	}

	// 2) Apply options
	cfg := DefaultOptions[N]()
	var opt Option[N]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Build per-call state and run
	r := &runner[N]{
		g:        g,
		id:       id,
		options:  cfg,
		end:      g.End(),
		gScore:   core.NewNodeMap[N, int](id),
		fScore:   core.NewNodeMap[N, int](id),
		cameFrom: core.NewNodeMap[N, N](id),
		closed:   core.NewNodeSet[N](id),
		open:     priorityqueue.NewWith(byEstimate[N]),
	}
	r.init(start)

	path, cost := r.process()

	return path, cost, nil
}

// runner holds the mutable state for a single A* execution.
type runner[N any] struct {
	g       core.Graph[N]    // read-only within Search
	id      core.Identity[N] // node equality and hashing
	options Options[N]
	end     N // cached g.End()

	gScore   *core.NodeMap[N, int] // node → best-known cost from start
	fScore   *core.NodeMap[N, int] // node → gScore + heuristic at last improvement
	cameFrom *core.NodeMap[N, N]   // node → predecessor on the best-known path
	closed   *core.NodeSet[N]      // nodes whose cost is final
	open     *priorityqueue.Queue  // frontierItem values keyed by f
	seq      uint64                // insertion counter for FIFO tie-breaking
}

// frontierItem is one (possibly stale) frontier entry.
type frontierItem[N any] struct {
	node N
	f    int
	seq  uint64
}

// byEstimate orders frontier entries by f, then by insertion order.
func byEstimate[N any](a, b interface{}) int {
	x, y := a.(frontierItem[N]), b.(frontierItem[N])
	if c := cmp.Compare(x.f, y.f); c != 0 {
		return c
	}

	return cmp.Compare(x.seq, y.seq)
}

// init seeds g(start)=0 and f(start)=h(start).
func (r *runner[N]) init(start N) {
	h := r.g.HeuristicToEnd(start)
	r.gScore.Put(start, 0)
	r.fScore.Put(start, h)
	r.push(start, h)
}

// push enqueues n with estimate f.
func (r *runner[N]) push(n N, f int) {
	r.open.Enqueue(frontierItem[N]{node: n, f: f, seq: r.seq})
	r.seq++
}

// process is the main loop. It returns the reconstructed path and its cost,
// or (nil, core.NoPath) once the frontier is exhausted.
func (r *runner[N]) process() ([]N, int) {
	for !r.open.Empty() {
		// 1) Pop the lowest-estimate entry.
		v, _ := r.open.Dequeue()
		item := v.(frontierItem[N])
		cur := item.node

		// 2) Discard stale entries: already closed, or superseded by a better push.
		if r.closed.Has(cur) {
			continue
		}
		if f, ok := r.fScore.Get(cur); ok && item.f > f {
			continue
		}

		// 3) Close it; its cost is now final.
		r.closed.Add(cur)
		if r.options.OnExpand != nil {
			r.options.OnExpand(cur)
		}

		// 4) Goal test.
		if r.id.Equal(cur, r.end) {
			cost, _ := r.gScore.Get(cur)

			return r.reconstruct(cur), cost
		}

		// 5) Relax outgoing edges.
		r.relax(cur)
	}

	return nil, core.NoPath
}

// relax tries to improve every non-closed successor of cur.
// Uses "<" so equal-cost alternatives never displace the recorded predecessor.
func (r *runner[N]) relax(cur N) {
	gCur, _ := r.gScore.Get(cur)
	for nb := range r.g.Neighbors(cur) {
		if r.closed.Has(nb) {
			continue
		}
		candidate := gCur + r.g.MoveCost(cur, nb)
		if known, ok := r.gScore.Get(nb); ok && candidate >= known {
			continue
		}
		f := candidate + r.g.HeuristicToEnd(nb)
		r.cameFrom.Put(nb, cur)
		r.gScore.Put(nb, candidate)
		r.fScore.Put(nb, f)
		r.push(nb, f)
	}
}

// reconstruct walks predecessors back from goal to the start and reverses.
// The start node has no predecessor: it is closed before any relaxation.
func (r *runner[N]) reconstruct(goal N) []N {
	path := []N{goal}
	cur := goal
	for {
		prev, ok := r.cameFrom.Get(cur)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path
}
