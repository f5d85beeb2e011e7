package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/grid"
)

// NoPathMessage is printed by RenderResult when no route exists.
const NoPathMessage = "No path found!"

// Glyphs holds the text printed for each cell state, padding included.
type Glyphs struct {
	Empty    string
	Obstacle string
	Closed   string
	Path     string
	Start    string
	Finish   string
}

// EmojiGlyphs is the default glyph set. Closed cells print like empty ones.
var EmojiGlyphs = Glyphs{
	Empty:    "0   ",
	Obstacle: "⛰️   ",
	Closed:   "0   ",
	Path:     "🚗   ",
	Start:    "🚦   ",
	Finish:   "🏁   ",
}

// ASCIIGlyphs is a plain-text glyph set for terminals without emoji.
var ASCIIGlyphs = Glyphs{
	Empty:    ". ",
	Obstacle: "# ",
	Closed:   ". ",
	Path:     "* ",
	Start:    "S ",
	Finish:   "F ",
}

// For returns the glyph for s. Unknown states print as Empty.
func (gl Glyphs) For(s grid.State) string {
	switch s {
	case grid.Obstacle:
		return gl.Obstacle
	case grid.Closed:
		return gl.Closed
	case grid.Path:
		return gl.Path
	case grid.Start:
		return gl.Start
	case grid.Finish:
		return gl.Finish
	default:
		return gl.Empty
	}
}

// NamedGlyphs looks up a glyph set by name: "emoji" or "ascii".
func NamedGlyphs(name string) (Glyphs, bool) {
	switch name {
	case "emoji", "":
		return EmojiGlyphs, true
	case "ascii":
		return ASCIIGlyphs, true
	default:
		return Glyphs{}, false
	}
}

// CellString returns the default glyph for s.
func CellString(s grid.State) string {
	return EmojiGlyphs.For(s)
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	glyphs Glyphs
}

// WithGlyphs replaces the glyph set.
func WithGlyphs(gl Glyphs) RenderOption {
	return func(o *renderOptions) { o.glyphs = gl }
}

// Render writes g row by row, one line per row.
func Render(w io.Writer, g *grid.Grid, opts ...RenderOption) error {
	cfg := renderOptions{glyphs: EmojiGlyphs}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for x := 0; x < g.Rows(); x++ {
		line.Reset()
		for y := 0; y < g.Cols(); y++ {
			s, _ := g.At(x, y)
			line.WriteString(cfg.glyphs.For(s))
		}
		if _, err := fmt.Fprintln(bw, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RenderResult renders the annotated grid of a successful search, or
// NoPathMessage when res.Found is false.
func RenderResult(w io.Writer, res astar.Result, opts ...RenderOption) error {
	if !res.Found || res.Grid == nil {
		_, err := fmt.Fprintln(w, NoPathMessage)
		return err
	}

	return Render(w, res.Grid, opts...)
}
