// Package hillclimb treats an elevation map of letters as a search graph
// and finds the fewest steps from the start marker to the summit.
//
// What:
//
//   - Rows of 'a'..'z' heights; 'S' marks the start (height a), 'E' the
//     summit (height z).
//   - A step moves to an orthogonal neighbor (or any of eight with Conn8)
//     that is at most MaxClimb higher; descending any amount is allowed.
//   - Map implements core.Graph[Cell] with unit costs and a distance
//     heuristic (Manhattan for Conn4, Chebyshev for Conn8).
//
// Why:
//
//   - A small real-world client for the search engines: comparable nodes,
//     a lazily generated neighborhood and an admissible heuristic.
//
// Complexity:
//
//   - Parse:                  O(W×H) time and memory.
//   - FewestSteps:            one A* run, O(W×H·log(W×H)).
//   - FewestStepsFromLowest:  one A* run per lowest cell.
//
// Errors:
//
//   - ErrEmptyGrid       no rows or no columns.
//   - ErrNonRectangular  rows of differing lengths.
//   - ErrBadHeight       a character other than a..z, S, E.
//   - ErrMissingStart, ErrMissingEnd  marker absent (or repeated).
//   - ErrNoRoute         the summit cannot be reached.
package hillclimb
