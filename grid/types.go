// Package grid defines the cell states, coordinates and sentinel errors
// used by the occupancy grid.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid construction and checked mutation.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadPoint indicates a coordinate string that is not "x,y".
	ErrBadPoint = errors.New("grid: malformed point")
)

// State is the per-cell annotation carried by a Grid.
//
// Input boards only produce Empty and Obstacle. The search moves cells
// Empty→Closed when they enter the open set, Closed→Path when they are
// extracted, and finally overwrites the endpoints with Start and Finish.
// Obstacle never changes.
type State int

const (
	// Empty is a traversable cell that has not been discovered yet.
	Empty State = iota
	// Obstacle is an impassable cell.
	Obstacle
	// Closed is a cell that has been discovered and will not be reconsidered.
	Closed
	// Path is a cell that has been extracted from the open set.
	Path
	// Start marks the search origin once a route is found.
	Start
	// Finish marks the search goal once a route is found.
	Finish
)

var stateNames = [...]string{
	Empty:    "empty",
	Obstacle: "obstacle",
	Closed:   "closed",
	Path:     "path",
	Start:    "start",
	Finish:   "finish",
}

// String returns the lower-case name of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}

	return stateNames[s]
}

// Point addresses a cell: X is the row, Y is the column.
type Point struct {
	X, Y int
}

// String formats the point as "x,y", the same form the CLI accepts.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by the delta d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neighbors4 holds the 4-connected deltas in expansion order:
// up, left, down, right.
var Neighbors4 = [4]Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Grid is a rectangular occupancy map with mutable per-cell state.
// Rows and Cols are fixed at construction; cells[x][y] holds the state of
// row x, column y. A Grid is not safe for concurrent mutation; callers that
// search in parallel must give every search its own Clone.
type Grid struct {
	rows, cols int
	cells      [][]State
}

// ParsePoint parses "x,y" (surrounding spaces allowed) into a Point.
func ParsePoint(s string) (Point, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return Point{}, fmt.Errorf("%w: %q, want \"x,y\"", ErrBadPoint, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: %q, want \"x,y\"", ErrBadPoint, s)
	}

	return Point{X: x, Y: y}, nil
}
