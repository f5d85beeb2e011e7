// Package board reads occupancy boards from text and renders search grids
// back to text.
//
// Board format:
//
//	0,1,0,0,0,0,
//	0,1,0,0,0,0,
//	0,0,0,0,1,0,
//
// One row per line, comma-separated integers, 0 = traversable and any other
// value = obstacle. A trailing comma is optional and blank lines are skipped.
//
// Rendering maps each grid.State to a glyph (see Glyphs) and writes the grid
// row by row. Trailing padding is trimmed from every line.
package board
