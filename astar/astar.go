package astar

import "github.com/katalvlaran/routeplanner/grid"

// Search runs A* on a private copy of g from start to goal.
//
// Returns:
//
//   - Result.Found == true with the annotated grid and the goal's cost, or
//     Result.Found == false with a nil grid when no route exists.
//   - err != nil only for contract violations; see NewStepper for the
//     validation order and sentinel errors.
//
// Options customization:
//
//   - WithStrategy / WithOpenSet: open-set implementation (heap by default).
//   - WithHeuristic: replace Manhattan.
//   - WithOnInsert / WithOnExtract: instrumentation hooks.
//   - WithLogger: Debug records per extraction.
//   - WithMaxExpansions: cap the work done.
//
// Complexity: O(N log N) with the default heap, N = rows·cols.
func Search(g *grid.Grid, start, goal grid.Point, opts ...Option) (Result, error) {
	s, err := NewStepper(g, start, goal, opts...)
	if err != nil {
		return Result{Start: start, Goal: goal}, err
	}

	return s.Run(), nil
}
