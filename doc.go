// Package lvlsearch is a generic heuristic graph search toolkit: A* and IDA*
// over any node type, plus a few puzzle graphs to run them on.
//
// 🚀 What is lvlsearch?
//
//	A small library where the graph is an interface you implement:
//		• Graph contract: End, MoveCost, Neighbors (iter.Seq), HeuristicToEnd
//		• Node identity: caller-supplied Equal + Hash, so slices and structs work as nodes
//		• A*: priority-queue search with lazy deletion and FIFO ties
//		• IDA*: iterative deepening with path-only memory
//		• Puzzle graphs: sliding tiles, hill climbing maps, number riddles
//
// ✨ Why choose lvlsearch?
//
//   - Nodes are values you already have: no vertex registry, no string IDs
//   - Neighbors are generated lazily, so implicit graphs never materialize
//   - Searches keep no global state and may run concurrently on one graph
//   - Hooks (OnExpand, OnIteration) for tracing and metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        Graph[N] and Identity[N] contracts, NodeMap/NodeSet, PathCost
//	astar/       A* search
//	idastar/     IDA* search
//	adjacency/   explicit weighted graph with per-vertex heuristics
//	slidepuzzle/ n×n sliding tile puzzle with Manhattan heuristic
//	hillclimb/   height map route finding
//	riddle/      reach a number with *, +, - operations
//	cmd/lvlsearch YAML job runner with metrics and hot reload
//
// Quick ASCII example:
//
//	    S──1──A──3──G
//	    └──1──B──4──┘
//
//	with h(A)=3, h(B)=4 A* expands S, A and settles G at cost 4.
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
