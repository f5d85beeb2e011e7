// Package astar implements A* route search over a grid.Grid with unit step
// cost and 4-connected movement.
//
// Overview:
//
//   - The driver seeds an open set with the start node (g=0, h=Manhattan),
//     then repeatedly extracts the node with the lowest f = g + h, marks it
//     Path, stops if it is the goal, and otherwise inserts every neighbour
//     that passes grid.IsValidExpansionTarget with g+1.
//   - A cell is marked Closed the moment it is inserted, so no cell ever
//     enters the open set twice; the open set itself does not deduplicate.
//   - On success the start cell becomes Start and the goal cell Finish.
//     Path is written at extraction time, so the returned grid shows every
//     extracted cell, not only the final route.
//
// Tie-breaking:
//
//   - Among nodes with equal f the most recently inserted node is extracted
//     first (LIFO). Neighbours are generated in the fixed order up, left,
//     down, right. Together these make every search fully deterministic.
//   - Two OpenSet strategies are provided with identical observable order:
//     SortedOpenSet re-sorts by descending f and pops the tail;
//     HeapOpenSet is a binary heap keyed by (f asc, insertion seq desc).
//
// Outcomes:
//
//   - Result.Found == true: Result.Grid holds the annotated copy and
//     Result.Cost the accumulated g of the goal.
//   - Result.Found == false: the open set drained (or WithMaxExpansions
//     cut the search short, see Result.Truncated); Result.Grid is nil.
//     "No path" is an ordinary outcome and never an error.
//   - A non-nil error means the caller broke the contract (nil grid,
//     endpoints off the grid or on an obstacle, invalid option).
//
// Ownership:
//
//   - Search and NewStepper clone the input grid; the caller's grid is never
//     mutated and the returned grid belongs to the caller.
//   - A single search is synchronous and not safe for concurrent use; run
//     independent searches on independent goroutines (see package batch).
//
// Complexity (R×C cells, N = R·C):
//
//   - HeapOpenSet:   O(N log N) time, O(N) memory.
//   - SortedOpenSet: O(N² log N) time worst case, O(N) memory.
package astar
