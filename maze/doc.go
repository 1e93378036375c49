// Package maze models a rectangular grid of cells with per-side wall
// flags, the foundation the carve and solve subpackages operate on.
//
// What:
//
//   - Cell: (Row, Col) identity, comparable and map-key safe.
//   - Direction: Up, Right, Down, Left in a fixed cyclic order, with
//     Opposite and Delta helpers.
//   - Grid: height×width wall records, created fully walled; RemoveWall
//     opens both halves of an edge so wall symmetry always holds.
//   - Maze: dimensions plus fixed start/end cells wrapping a Grid.
//
// Why:
//
//   - One shared cell/grid vocabulary keeps generator and solver in
//     lockstep: the fixed direction order is what makes both reproducible.
//   - A read-only snapshot surface (CloneWalls, WallPresent) lets
//     renderers observe mazes without any way to corrupt them.
//
// Invariant:
//
//	Walls are symmetric. For any in-bounds neighbors A and B across
//	direction d: WallPresent(A,d) == WallPresent(B, d.Opposite()),
//	before and after any amount of carving.
//
// Complexity:
//
//   - NewGrid / New / CloneWalls / PassageCount: O(W×H).
//   - All other operations: O(1).
//
// Errors:
//
//   - ErrNonPositiveSize: width or height below one.
//   - ErrOutOfBounds: a coordinate operation addressed a cell outside
//     the grid extent.
package maze
