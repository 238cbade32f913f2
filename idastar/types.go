// Package idastar defines types and options for iterative-deepening A*,
// including the path membership strategy and per-iteration diagnostics hooks.
package idastar

import (
	"errors"
)

// ErrNoPath indicates the search space reachable from start was exhausted
// without reaching the goal. Unlike astar, where an unreachable goal is a
// plain result, IDA* reports it as an error: the bound only grows until a
// solution is found or no pruned branch remains.
var ErrNoPath = errors.New("idastar: search space exhausted without reaching the goal")

// Membership selects how the probe checks whether a node is already on the path.
type Membership int

const (
	// PathSet keeps a hashed set in sync with the path stack (O(1) checks).
	PathSet Membership = iota
	// LinearScan compares against every node on the path (O(depth) checks).
	LinearScan
)

// String returns the option name.
func (m Membership) String() string {
	switch m {
	case PathSet:
		return "path-set"
	case LinearScan:
		return "linear-scan"
	default:
		return "unknown"
	}
}

// Option configures optional behavior of Search.
type Option[N any] func(*Options[N])

// Options holds configurable parameters for Search.
type Options[N any] struct {
	// Membership selects the cycle-check strategy. Default PathSet.
	Membership Membership

	// OnIteration, if non-nil, is invoked before each bounded probe with the
	// bound in force for that iteration.
	OnIteration func(bound int)

	// OnExpand, if non-nil, is invoked for every node whose successors are
	// enumerated (f within bound and not the goal).
	OnExpand func(n N)
}

// DefaultOptions returns Options with:
//   - PathSet membership
//   - No hooks
func DefaultOptions[N any]() Options[N] {
	return Options[N]{
		Membership:  PathSet,
		OnIteration: nil,
		OnExpand:    nil,
	}
}

// WithPathMembership returns an Option that selects the membership strategy.
func WithPathMembership[N any](m Membership) Option[N] {
	return func(o *Options[N]) {
		o.Membership = m
	}
}

// WithOnIteration returns an Option that installs fn as the per-iteration hook.
func WithOnIteration[N any](fn func(bound int)) Option[N] {
	return func(o *Options[N]) {
		o.OnIteration = fn
	}
}

// WithOnExpand returns an Option that installs fn as the expansion hook.
func WithOnExpand[N any](fn func(n N)) Option[N] {
	return func(o *Options[N]) {
		o.OnExpand = fn
	}
}
