package grid

// New builds a Grid from a parsed occupancy board.
// A zero value becomes Empty, any other value becomes Obstacle.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if err := validateShape(len(values), func(i int) int { return len(values[i]) }); err != nil {
		return nil, err
	}
	g := alloc(len(values), len(values[0]))
	for x, row := range values {
		for y, v := range row {
			if v != 0 {
				g.cells[x][y] = Obstacle
			}
		}
	}

	return g, nil
}

// FromStates builds a Grid from an explicit state matrix.
// It deep-copies the input so later changes to states do not leak in.
// Validation matches New.
func FromStates(states [][]State) (*Grid, error) {
	if err := validateShape(len(states), func(i int) int { return len(states[i]) }); err != nil {
		return nil, err
	}
	g := alloc(len(states), len(states[0]))
	for x := range states {
		copy(g.cells[x], states[x])
	}

	return g, nil
}

// validateShape enforces the non-empty, rectangular invariant.
func validateShape(rows int, rowLen func(int) int) error {
	if rows == 0 || rowLen(0) == 0 {
		return ErrEmptyGrid
	}
	cols := rowLen(0)
	for i := 1; i < rows; i++ {
		if rowLen(i) != cols {
			return ErrNonRectangular
		}
	}

	return nil
}

// alloc creates an all-Empty grid backed by a single slice.
func alloc(rows, cols int) *Grid {
	backing := make([]State, rows*cols)
	cells := make([][]State, rows)
	for x := range cells {
		cells[x] = backing[x*cols : (x+1)*cols : (x+1)*cols]
	}

	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.rows && y >= 0 && y < g.cols
}

// At returns the state at (x,y). ok is false when (x,y) is out of bounds.
func (g *Grid) At(x, y int) (s State, ok bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}

	return g.cells[x][y], true
}

// IsValidExpansionTarget reports whether (x,y) is on the grid and exactly
// Empty. Obstacle, Closed and already annotated cells are rejected.
// This is the only gate the search uses before inserting a neighbour.
func (g *Grid) IsValidExpansionTarget(x, y int) bool {
	s, ok := g.At(x, y)

	return ok && s == Empty
}

// SetState overwrites the state at (x,y).
// Callers are expected to pass coordinates they have already validated;
// out-of-range coordinates are ignored so a stray write can never index
// outside the backing storage. Use Set for a checked variant.
func (g *Grid) SetState(x, y int, s State) {
	if g.InBounds(x, y) {
		g.cells[x][y] = s
	}
}

// Set is the checked form of SetState.
// Returns ErrOutOfBounds if p is not on the grid.
func (g *Grid) Set(p Point, s State) error {
	if !g.InBounds(p.X, p.Y) {
		return ErrOutOfBounds
	}
	g.cells[p.X][p.Y] = s

	return nil
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	c := alloc(g.rows, g.cols)
	for x := range g.cells {
		copy(c.cells[x], g.cells[x])
	}

	return c
}

// States returns a deep copy of the cell matrix.
func (g *Grid) States() [][]State {
	out := make([][]State, g.rows)
	for x := range g.cells {
		out[x] = make([]State, g.cols)
		copy(out[x], g.cells[x])
	}

	return out
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == s {
				n++
			}
		}
	}

	return n
}

// Find returns the coordinates of every cell in state s, in row-major order.
func (g *Grid) Find(s State) []Point {
	var pts []Point
	for x, row := range g.cells {
		for y, c := range row {
			if c == s {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}

	return pts
}
