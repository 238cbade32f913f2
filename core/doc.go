// SPDX-License-Identifier: MIT

// Package core defines the contract shared by every search algorithm in
// lvlsearch: the Graph a caller implements, the Identity that tells two node
// values apart, and the hashed containers the algorithms keep their per-call
// bookkeeping in.
//
// What:
//
//   - Graph[N]: move cost, lazy neighbor enumeration, the fixed goal node
//     (End) and an admissible heuristic towards it.
//   - Identity[N]: a consistent Equal/Hash pair supplied per search call.
//     Node values such as array-backed puzzle states have no built-in
//     structural equality, so the caller decides what "same node" means.
//   - NodeMap[N, V] and NodeSet[N]: hash maps keyed through an Identity.
//   - PathCost: validates a returned path against the graph and sums its cost.
//
// Why:
//
//   - Searches stay domain-agnostic: sliding puzzles, terrain grids and
//     arithmetic riddles all plug into the same astar.Search / idastar.Search.
//
// Contract (trusted, never verified by the algorithms):
//
//   - MoveCost(a, b) ≥ 0 for every edge a→b produced by Neighbors(a).
//   - 0 ≤ HeuristicToEnd(a) ≤ true remaining cost (admissible).
//   - Neighbors(a) is finite, restartable and side-effect free; it returns
//     new node values and never mutates a.
//   - Identity.Equal(x, y) implies Identity.Hash(x) == Identity.Hash(y).
//
// Errors:
//
//   - ErrNilGraph             graph is nil
//   - ErrIncompleteIdentity   Identity.Equal or Identity.Hash is nil
//   - ErrEmptyPath            PathCost on an empty path
//   - ErrNotAnEdge            PathCost found a pair that is not an edge
package core
