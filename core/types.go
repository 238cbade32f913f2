// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Identity contracts, sentinel errors, NoPath sentinel.

package core

import (
	"errors"
	"hash/maphash"
	"iter"
)

// NoPath is the cost reported when no path from start to End exists.
const NoPath = -1

// Sentinel errors for core contract checks.
var (
	// ErrNilGraph indicates a nil Graph was passed to a search or helper.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrIncompleteIdentity indicates an Identity with a nil Equal or Hash func.
	ErrIncompleteIdentity = errors.New("core: identity requires both Equal and Hash")

	// ErrEmptyPath indicates a path with no nodes at all.
	ErrEmptyPath = errors.New("core: path is empty")

	// ErrNotAnEdge indicates two consecutive path nodes that are not joined by an edge.
	ErrNotAnEdge = errors.New("core: consecutive path nodes are not an edge")
)

// Graph is the contract every search client implements.
//
// The goal node is fixed per Graph instance: searches always run towards End().
// Implementations may hold precomputed read-only tables (goal positions,
// distance lookups) but must not change engine-visible state during a search,
// which makes one Graph safe to share between concurrent searches.
type Graph[N any] interface {
	// End returns the single search target.
	End() N

	// MoveCost returns the cost of the edge a→aNeighbor, where aNeighbor was
	// produced by Neighbors(a). Must be non-negative.
	MoveCost(a, aNeighbor N) int

	// Neighbors lazily yields every successor reachable from a in one step.
	// Order carries no meaning for correctness.
	Neighbors(a N) iter.Seq[N]

	// HeuristicToEnd estimates the remaining cost from a to End.
	// Must be non-negative and must never overestimate.
	HeuristicToEnd(a N) int
}

// Identity decides node equality and hashing for a search call.
// Equal nodes must hash identically.
type Identity[N any] struct {
	Equal func(x, y N) bool
	Hash  func(x N) uint64
}

// Validate reports ErrIncompleteIdentity if either func is missing.
func (id Identity[N]) Validate() error {
	if id.Equal == nil || id.Hash == nil {
		return ErrIncompleteIdentity
	}

	return nil
}

// ComparableIdentity returns an Identity for comparable node types:
// Equal is ==, Hash is maphash.Comparable under a seed chosen once per Identity.
//
// Complexity: O(1) to build; Hash costs O(size of N).
func ComparableIdentity[N comparable]() Identity[N] {
	seed := maphash.MakeSeed()

	return Identity[N]{
		Equal: func(x, y N) bool { return x == y },
		Hash:  func(x N) uint64 { return maphash.Comparable(seed, x) },
	}
}
