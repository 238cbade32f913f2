// Package riddle solves "reach a target number" puzzles such as
// "from 11 to 25 using *2, -3": every application of an operation is one
// move, and the fewest moves win.
//
// A Riddle is a core.Graph[int] over the integers in [0, Ceiling]; values an
// operation would push outside that range are not neighbors. Riddles are
// written in a tiny language parsed with participle:
//
//	from <int> to <int> using <op> {, <op>} [within <int>]
//	<op> = *k | xk | +c | -c      (k ≥ 2, c ≥ 1)
//
// When "within" is omitted the ceiling is max(from, to)·k + c + d + 16, with
// k the largest multiplier, c the largest increment and d the largest
// decrement, and at least 4·max(from, to) + 16. A route that needs to climb
// above it must be given an explicit "within".
//
// The heuristic never overestimates: above the target it counts how many of
// the largest decrements the gap needs; below it counts how many
// applications of the fastest growing operation reach the target.
package riddle
