// Package astar provides best-first A* search over any core.Graph.
//
// Overview:
//
//   - A* finds a minimum-cost path from a start node to the graph's fixed
//     goal node (Graph.End) by always expanding the frontier node with the
//     lowest estimated total cost f = g + h, where g is the best-known cost
//     from the start and h is Graph.HeuristicToEnd.
//   - Nodes are compared and hashed through a caller-supplied core.Identity,
//     so array-backed states work without any built-in equality.
//   - When h is admissible, the first time the goal is popped its cost is optimal.
//
// When to use:
//
//   - Moderate state spaces where an open/closed set fits in memory.
//   - Terrain and grid routing, small puzzles, any graph where a good
//     admissible heuristic is cheap. For factorial-sized spaces prefer idastar.
//
// Key behaviors:
//
//   - Lazy decrease-key: an improved node is pushed again; stale entries are
//     discarded on pop (closed already, or f above the recorded estimate).
//   - Unreachable goal is an expected outcome, not an error: Search returns an
//     empty path and core.NoPath.
//   - Ties among equal f are broken by insertion order. Callers must not rely
//     on which of several optimal paths is returned.
//
// Performance and complexity:
//
//   - Time:  O(E log E) heap work in the worst case (E = relaxations performed).
//   - Space: O(V + E) for the cost/predecessor maps and the frontier.
//
// Error handling (sentinel errors, wrapped with an "astar:" prefix):
//
//   - core.ErrNilGraph           graph is nil.
//   - core.ErrIncompleteIdentity identity lacks Equal or Hash.
//
// Thread safety:
//
//   - All bookkeeping is allocated per call. Concurrent searches on the same
//     Graph are safe as long as the Graph itself is read-only during search.
//
// API reference:
//
//	func Search[N any](
//	    g core.Graph[N],
//	    id core.Identity[N],
//	    start N,
//	    opts ...Option[N],
//	) (path []N, cost int, err error)
package astar
