// Package solve finds shortest paths through mazes with breadth-first
// search over the passage graph: adjacent cells are connected iff no
// wall separates them.
//
// What
//
//   - Solve(m, opts...): synchronous search; returns a Result with the
//     dequeue Order, a Depth map, a Parent map (map absence marks the
//     start's "no predecessor"), the shortest Path, and Found.
//   - NewStepper(m, opts...) / Step(): the same search advanced one
//     expansion per call; each Step yields the dequeued cell plus deep
//     snapshots of the visited matrix and parent map, for observers that
//     render progress.
//   - ReconstructPath(parent, start, end): predecessor-link walk shared
//     by the solver and by external snapshot holders.
//
// Both drivers run one unexported expansion rule, so the stepwise
// dequeue sequence equals the synchronous one cell for cell.
//
// Determinism
//
//	Neighbor expansion always runs Up, Right, Down, Left, and the
//	frontier is strictly FIFO, so for a fixed maze the full traversal
//	order — and hence the recorded path when several shortest paths
//	exist — is reproducible.
//
// End-of-search semantics
//
//	The end cell is yielded (Done=true) but never expanded; the search
//	is complete the moment it pops. Snapshots therefore reflect cells
//	dequeued strictly before the end plus the frontier as enqueued. An
//	unreachable end is a normal outcome: Found=false, nil Path, no
//	error. Under WithFullTraversal the end does not stop the search and
//	the Depth map becomes a complete distance field for the start's
//	component; obtain paths via Result.PathTo.
//
// Complexity (W×H cells)
//
//   - Time:   O(W×H) — each cell dequeued at most once, four sides each.
//   - Memory: O(W×H) for the queue, visited matrix, and maps; each
//     Stepper.Step adds O(W×H) for its snapshots.
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, early exit at end.
//   - WithContext(ctx):    cancellation for the synchronous solver.
//   - WithOnEnqueue(fn):   hook as a cell joins the frontier.
//   - WithOnDequeue(fn):   hook as a cell leaves the frontier.
//   - WithFullTraversal(): expand the entire reachable component.
//
// Errors
//
//   - ErrNilMaze        if the maze pointer is nil.
//   - ErrMissingParent  if reconstruction is asked for a cell the search
//     never reached.
//   - The context's error if a cancelled WithContext stops Solve.
package solve
