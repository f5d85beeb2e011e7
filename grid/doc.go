// Package grid models the occupancy map that the route planner searches.
//
// What:
//
//   - Grid wraps a rectangular, row-major [][]State built from a parsed
//     occupancy board (0 = traversable, nonzero = obstacle).
//   - Every read and write is bounds-checked; there is no wraparound and no
//     negative indexing.
//   - IsValidExpansionTarget is the single admissibility gate used by the
//     A* driver when it expands a node's neighbours.
//
// Coordinates:
//
//   - X is the row index, Y is the column index, matching the board file
//     (one row per line).
//   - Neighbors4 lists the axis-aligned deltas in the fixed order
//     up, left, down, right.
//
// Complexity:
//
//   - New / FromStates / Clone: O(R×C) time and memory.
//   - At / SetState / IsValidExpansionTarget: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a checked write targeted a cell outside the grid.
package grid
