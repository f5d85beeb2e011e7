package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeplanner/grid"
)

// Sentinel errors for board parsing.
var (
	// ErrEmptyBoard indicates the input contained no rows.
	ErrEmptyBoard = errors.New("board: no rows")
	// ErrBadToken indicates a cell that is not an integer.
	ErrBadToken = errors.New("board: cell is not an integer")
)

// ParseLine splits one board line into integer cells.
// Whitespace around cells is ignored and a single trailing comma is allowed.
// An empty line yields an empty row.
func ParseLine(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimSuffix(line, ",")
	if line == "" {
		return []int{}, nil
	}
	fields := strings.Split(line, ",")
	row := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: column %d %q", ErrBadToken, i, f)
		}
		row = append(row, n)
	}

	return row, nil
}

// Parse reads a whole board. Blank lines are skipped; errors carry the
// 1-based line number. Shape is not validated here, grid.New does that.
func Parse(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		row, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("board: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyBoard
	}

	return rows, nil
}

// ReadFile parses the board stored at path.
func ReadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// Load reads the board at path and builds a grid.Grid from it.
func Load(path string) (*grid.Grid, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
