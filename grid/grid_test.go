package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 1}, {0}}, grid.ErrNonRectangular},
		{"NonRectangularLonger", [][]int{{0}, {0, 0}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.values)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_MapsObstacles checks 0 → Empty and any nonzero value → Obstacle.
func TestNew_MapsObstacles(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{7, 0, -2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, [][]grid.State{
		{grid.Empty, grid.Obstacle, grid.Empty},
		{grid.Obstacle, grid.Empty, grid.Obstacle},
	}, g.States())
}

// TestFromStates_DeepCopy ensures later changes to the input do not leak in.
func TestFromStates_DeepCopy(t *testing.T) {
	in := [][]grid.State{{grid.Empty, grid.Path}}
	g, err := grid.FromStates(in)
	require.NoError(t, err)

	in[0][0] = grid.Obstacle
	s, ok := g.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, grid.Empty, s)

	_, err = grid.FromStates([][]grid.State{{grid.Empty}, {}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Bounds and admissibility
//----------------------------------------------------------------------------//

// TestIsValidExpansionTarget_Boundaries rejects every coordinate just off the grid.
func TestIsValidExpansionTarget_Boundaries(t *testing.T) {
	g, err := grid.New(make5x6(nil))
	require.NoError(t, err)

	invalid := [][2]int{{-1, 0}, {g.Rows(), 0}, {0, -1}, {0, g.Cols()}, {-1, -1}}
	for _, xy := range invalid {
		assert.False(t, g.IsValidExpansionTarget(xy[0], xy[1]), "(%d,%d)", xy[0], xy[1])
		assert.False(t, g.InBounds(xy[0], xy[1]), "(%d,%d)", xy[0], xy[1])
	}
	assert.True(t, g.IsValidExpansionTarget(0, 0))
	assert.True(t, g.IsValidExpansionTarget(g.Rows()-1, g.Cols()-1))
}

// TestIsValidExpansionTarget_States accepts only Empty cells.
func TestIsValidExpansionTarget_States(t *testing.T) {
	states := []grid.State{grid.Empty, grid.Obstacle, grid.Closed, grid.Path, grid.Start, grid.Finish}
	g, err := grid.FromStates([][]grid.State{states})
	require.NoError(t, err)

	for y, s := range states {
		assert.Equal(t, s == grid.Empty, g.IsValidExpansionTarget(0, y), "state %v", s)
	}
}

//----------------------------------------------------------------------------//
// Mutation
//----------------------------------------------------------------------------//

func TestSetState_IgnoresOutOfBounds(t *testing.T) {
	g, err := grid.New([][]int{{0, 0}})
	require.NoError(t, err)

	g.SetState(0, 1, grid.Closed)
	g.SetState(5, 5, grid.Closed)
	g.SetState(-1, 0, grid.Closed)

	assert.Equal(t, 1, g.Count(grid.Closed))
	assert.Equal(t, []grid.Point{{X: 0, Y: 1}}, g.Find(grid.Closed))
}

func TestSet_Checked(t *testing.T) {
	g, err := grid.New([][]int{{0}})
	require.NoError(t, err)

	assert.NoError(t, g.Set(grid.Point{X: 0, Y: 0}, grid.Start))
	assert.ErrorIs(t, g.Set(grid.Point{X: 1, Y: 0}, grid.Start), grid.ErrOutOfBounds)

	s, _ := g.At(0, 0)
	assert.Equal(t, grid.Start, s)
}

func TestClone_Independent(t *testing.T) {
	g, err := grid.New([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)

	c := g.Clone()
	c.SetState(1, 1, grid.Path)

	orig, _ := g.At(1, 1)
	cloned, _ := c.At(1, 1)
	assert.Equal(t, grid.Empty, orig)
	assert.Equal(t, grid.Path, cloned)
	assert.Equal(t, g.Rows(), c.Rows())
	assert.Equal(t, g.Cols(), c.Cols())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "obstacle", grid.Obstacle.String())
	assert.Equal(t, "finish", grid.Finish.String())
	assert.Equal(t, "state(42)", grid.State(42).String())
	assert.Equal(t, "4,5", grid.Point{X: 4, Y: 5}.String())
}

// TestNeighbors4_Order pins the expansion order up, left, down, right.
func TestNeighbors4_Order(t *testing.T) {
	p := grid.Point{X: 2, Y: 2}
	got := make([]grid.Point, 0, 4)
	for _, d := range grid.Neighbors4 {
		got = append(got, p.Add(d))
	}
	assert.Equal(t, []grid.Point{{1, 2}, {2, 1}, {3, 2}, {2, 3}}, got)
}

// make5x6 returns a 5×6 board with obstacles at the listed cells.
func make5x6(obstacles [][2]int) [][]int {
	values := make([][]int, 5)
	for x := range values {
		values[x] = make([]int, 6)
	}
	for _, o := range obstacles {
		values[o[0]][o[1]] = 1
	}

	return values
}

func TestParsePoint(t *testing.T) {
	p, err := grid.ParsePoint("4,5")
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 4, Y: 5}, p)

	p, err = grid.ParsePoint(" 0 , 12 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 0, Y: 12}, p)

	for _, bad := range []string{"", "4", "4;5", "a,1", "1,b"} {
		_, err := grid.ParsePoint(bad)
		assert.ErrorIs(t, err, grid.ErrBadPoint, "input %q", bad)
	}
}
