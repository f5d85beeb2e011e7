package board_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/board"
	"github.com/katalvlaran/routeplanner/grid"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []int
	}{
		{"TrailingComma", "0,1,0,0,0,0,", []int{0, 1, 0, 0, 0, 0}},
		{"NoTrailingComma", "0,1,0", []int{0, 1, 0}},
		{"Spaces", " 0 , 1 ,\t", []int{0, 1}},
		{"Nonzero", "3,-2,0,", []int{3, -2, 0}},
		{"Empty", "", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := board.ParseLine(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLine_BadToken(t *testing.T) {
	for _, line := range []string{"0,x,1", "0,,1", "1.5"} {
		_, err := board.ParseLine(line)
		assert.ErrorIs(t, err, board.ErrBadToken, "line %q", line)
	}
}

func TestParse(t *testing.T) {
	rows, err := board.Parse(strings.NewReader("0,1,\n\n1,0,\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, rows)
}

func TestParse_Errors(t *testing.T) {
	_, err := board.Parse(strings.NewReader("\n  \n"))
	assert.ErrorIs(t, err, board.ErrEmptyBoard)

	_, err = board.Parse(strings.NewReader("0,0\n0,a\n"))
	require.ErrorIs(t, err, board.ErrBadToken)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadFile(t *testing.T) {
	rows, err := board.ReadFile("testdata/1.board")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Len(t, r, 6)
	}
	assert.Equal(t, 1, rows[4][4])

	_, err = board.ReadFile("testdata/missing.board")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad(t *testing.T) {
	g, err := board.Load("testdata/wall.board")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 6, g.Cols())
	assert.Equal(t, 4, g.Count(grid.Obstacle))

	_, err = board.Load("testdata/ragged.board")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}
