// Package idastar implements iterative-deepening A* (IDA*) over any core.Graph.
//
// What:
//
//   - IDA* runs a depth-first probe bounded by an estimated-total-cost
//     threshold f = g + h, starting at h(start). Every branch whose f exceeds
//     the bound is pruned and its f becomes a candidate for the next bound.
//     Each iteration raises the bound to the smallest pruned f, until the
//     goal is reached or nothing was pruned at all.
//   - Successors are explored in ascending order of their own heuristic
//     estimate, which tends to reach the goal earlier within an iteration.
//   - A node already on the current path is never pushed again, so cycles
//     (even two-node ping-pong) cannot cause unbounded recursion.
//
// Why:
//
//   - Auxiliary memory is proportional to path depth, not frontier size.
//     This makes IDA* the right tool for factorial-sized spaces such as
//     sliding tile puzzles, where an A* open/closed set would not fit.
//   - The price is re-exploring shallow nodes on every bound increase.
//
// Path membership:
//
//   - PathSet (default): a core.NodeSet mirrors the path stack; O(1) checks.
//   - LinearScan: scans the stack with Identity.Equal; no extra hashing.
//
// Complexity:
//
//   - Time:   exponential in solution depth in the worst case, like any
//     uninformed tree search; a good heuristic keeps iterations few.
//   - Memory: O(d·b) for the path and the sorted successor lists on the
//     recursion stack (d = depth, b = branching factor).
//
// Errors:
//
//   - ErrNoPath               the bound could not be raised any further:
//     the whole acyclic search space was explored without reaching End.
//   - core.ErrNilGraph        graph is nil.
//   - core.ErrIncompleteIdentity identity lacks Equal or Hash.
//
// Functions:
//
//   - Search(g, id, start, opts...) ([]N, int, error)
//   - WithPathMembership(), WithOnIteration(), WithOnExpand()
package idastar
