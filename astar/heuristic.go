package astar

import "github.com/katalvlaran/routeplanner/grid"

// Heuristic estimates the remaining cost from one cell to another.
type Heuristic func(from, to grid.Point) int

// Manhattan returns |x2-x1| + |y2-y1|. It never overestimates the true
// remaining cost on a 4-connected unit-cost grid, and it is consistent.
func Manhattan(x1, y1, x2, y2 int) int {
	return abs(x2-x1) + abs(y2-y1)
}

// ManhattanPoints is Manhattan over grid points.
func ManhattanPoints(from, to grid.Point) int {
	return Manhattan(from.X, from.Y, to.X, to.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
