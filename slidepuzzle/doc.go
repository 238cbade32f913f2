// SPDX-License-Identifier: MIT
//
// Package slidepuzzle models the n×n sliding tile puzzle (8-puzzle, 15-puzzle)
// as a core.Graph so it can be solved with astar or idastar.
//
// What:
//
//   - State is a row-major tile array plus the index of the blank (tile 0).
//     States are slices, so searches use the package Identity
//     (bytes.Equal + xxhash) instead of ==.
//   - Graph moves the blank one cell left, right, up or down; every move costs 1.
//   - HeuristicToEnd is the summed Manhattan distance of every non-blank tile
//     to its goal cell, read from a table built once in NewGraph.
//
// Why:
//
//   - The 3×3 space has 9!/2 reachable states and the 4×4 space 16!/2: IDA*
//     is the natural solver there, A* works well for 3×3.
//   - Solvable rejects the unreachable half of the permutations up front,
//     where either search would otherwise explore the whole component.
//
// Text formats (Parse):
//
//   - Separated: "2 7 1 5 4 3 8 6 0" (spaces or commas).
//   - Compact:   "271543860" or "3DBC42A9156F78E0", one base-36 digit per tile.
//
// Errors:
//
//   - ErrBadSize     size < 2 or too large for byte tiles.
//   - ErrBadTiles    wrong tile count, duplicates, out-of-range values, bad blank index.
//   - ErrUnsolvable  start and goal permutations have different parity.
package slidepuzzle
