// Package carve generates perfect mazes by randomized iterative
// depth-first traversal with backtracking.
//
// What:
//
//   - Carve(m, opts...) mutates m's grid from fully walled to a perfect
//     maze: the open passages form a spanning tree of the cell graph, so
//     every pair of cells is joined by exactly one simple path.
//   - An explicit stack drives the walk: extend into a uniformly chosen
//     unvisited neighbor, removing the wall between; pop on dead ends;
//     stop when the stack drains — at which point every cell is visited.
//   - Neighbor inspection always runs Up, Right, Down, Left, so the
//     injected RNG is the sole source of run-to-run variation.
//
// Why:
//
//   - A perfect maze gives BFS a unique solution, which keeps solver
//     results and visualizations unambiguous.
//   - Explicit RNG injection (WithSeed / WithRand) makes fixtures
//     replayable: one seed, one wall layout, forever.
//
// Determinism:
//
//	Carving with WithSeed(s) on equal dimensions and start produces a
//	byte-identical wall configuration on every run. The default options
//	use a fixed seed as well; pass WithRand for varied mazes.
//
// Complexity:
//
//   - Time:   O(W×H) — each cell is pushed and popped exactly once.
//   - Memory: O(W×H) for the stack and the visited matrix.
//
// Options:
//
//   - WithSeed(s):        fresh deterministic RNG from seed s.
//   - WithRand(r):        caller-supplied *rand.Rand.
//   - WithOnCarve(fn):    hook per removed wall (from, to).
//   - WithOnBacktrack(fn): hook per dead-end pop.
//
// Errors:
//
//   - ErrNilMaze if the maze pointer is nil. Carving has no other
//     failure modes.
package carve
