// Package lvlmaze generates perfect mazes over rectangular grids and
// solves them with deterministic breadth-first search.
//
// 🚀 What is lvlmaze?
//
//	A small, pure-Go library built from three focused subpackages:
//		• Grid model: per-cell wall flags with a symmetric-edge invariant
//		• Generation: randomized iterative DFS carving a spanning tree
//		• Solving: BFS shortest paths, one-shot or resumable step-by-step
//
// ✨ Why choose lvlmaze?
//
//   - Deterministic – inject the RNG, replay any maze and any search
//   - Observable – OnCarve/OnEnqueue/OnDequeue hooks and a stepwise
//     solver feed visualizers without coupling the core to rendering
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	maze/  — Cell, Direction, Grid and Maze types (walls, bounds, start/end)
//	carve/ — spanning-tree generation (every maze has exactly one solution)
//	solve/ — BFS engine, stepwise driver, and path reconstruction
//
// Quick ASCII example, a carved 3×3 maze and its shortest path:
//
//	┌───────┐
//	│ S   ╷ │
//	│ ╶─┐ │ │
//	│ ╷ ╵ E │
//	└───────┘
//
// Start at S, end at E; because the passage graph is a spanning tree,
// the path BFS returns is the only path.
//
//	go get github.com/katalvlaran/lvlmaze
package lvlmaze
