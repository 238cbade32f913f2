// Package astar defines configuration options for A* search.
//
// Options:
//
//	– OnExpand: hook invoked once per node moved to the closed set, in
//	  expansion order. Useful for counting work or tracing a search.
//
// Example usage:
//
//	expanded := 0
//	path, cost, err := astar.Search(g, id, start,
//	    astar.WithOnExpand(func(int) { expanded++ }),
//	)
package astar

// Options configures the behavior of Search.
type Options[N any] struct {
	// OnExpand, if non-nil, is called for each node when it is closed,
	// including the goal node itself.
	OnExpand func(n N)
}

// Option represents a functional option for configuring Search.
type Option[N any] func(*Options[N])

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand[N any](fn func(n N)) Option[N] {
	return func(o *Options[N]) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions[N any]() Options[N] {
	return Options[N]{OnExpand: nil}
}
