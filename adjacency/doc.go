// Package adjacency provides an explicit, in-memory weighted graph with string
// vertex IDs that satisfies core.Graph[string].
//
// What:
//
//   - Vertices identified by non-empty strings; edges carry a non-negative
//     integer cost; edges are directed or undirected per graph (WithDirected).
//   - A per-vertex heuristic table (SetHeuristic) supplies HeuristicToEnd.
//     Vertices without an entry estimate 0, which is always admissible.
//   - The goal vertex is fixed at construction, matching the search contract.
//
// Why:
//
//   - Hand-built graphs for route tables, tests and examples where the state
//     space is small and listed explicitly rather than generated.
//
// Complexity:
//
//   - AddVertex, AddEdge, SetHeuristic: O(1) amortized.
//   - Neighbors: O(deg) to enumerate. Vertices: O(V log V) (sorted).
//
// Errors:
//
//   - ErrEmptyVertexID   vertex ID is the empty string.
//   - ErrNegativeCost    edge cost or heuristic is negative.
//   - ErrVertexNotFound  SetHeuristic on an unknown vertex.
//
// Thread safety:
//
//   - Build first, then search. Mutating methods are not synchronized; a
//     fully built Graph is read-only and safe to share between searches.
package adjacency
