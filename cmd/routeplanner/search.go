package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/board"
	"github.com/katalvlaran/routeplanner/grid"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		boardPath string
		startArg  string
		goalArg   string
		strategy  string
		glyphs    string
		maxExp    int
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a route on one board and print it",
		Example: `  routeplanner search --board 1.board --goal 4,5
  routeplanner search -b 1.board --start 0,0 --goal 4,5 --glyphs ascii --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strategy != "" {
				a.cfg.Search.Strategy = strategy
			}
			if glyphs != "" {
				a.cfg.Render.Glyphs = glyphs
			}
			if cmd.Flags().Changed("max-expansions") {
				a.cfg.Search.MaxExpansions = maxExp
			}

			start, err := grid.ParsePoint(startArg)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			goal, err := grid.ParsePoint(goalArg)
			if err != nil {
				return fmt.Errorf("--goal: %w", err)
			}
			g, err := board.Load(boardPath)
			if err != nil {
				return err
			}
			opts, err := a.searchOptions()
			if err != nil {
				return err
			}
			gl, err := a.glyphs(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var res astar.Result
			if trace {
				res, err = runTrace(out, g, start, goal, gl, opts)
			} else {
				res, err = astar.Search(g, start, goal, opts...)
			}
			if err != nil {
				return err
			}

			a.logger.Info("search finished",
				"board", boardPath,
				"found", res.Found,
				"cost", res.Cost,
				"expanded", res.Expanded,
				"truncated", res.Truncated)
			if res.Found {
				fmt.Fprintf(out, "cost: %d expanded: %d\n", res.Cost, res.Expanded)
			} else if !res.Truncated && !g.Connected(start, goal) {
				a.logger.Info("start and goal lie in different regions",
					"start", start.String(),
					"goal", goal.String(),
					"regions", len(g.Regions()))
			}

			return board.RenderResult(out, res, board.WithGlyphs(gl))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&boardPath, "board", "b", "", "board file (comma-separated rows, 0 = free)")
	f.StringVar(&startArg, "start", "0,0", "start cell as row,col")
	f.StringVar(&goalArg, "goal", "", "goal cell as row,col")
	f.StringVar(&strategy, "strategy", "", "open-set strategy: heap or sorted (overrides the config)")
	f.StringVar(&glyphs, "glyphs", "", "emoji, ascii or auto (overrides the config)")
	f.IntVar(&maxExp, "max-expansions", 0, "stop after this many extractions, 0 = unlimited")
	f.BoolVar(&trace, "trace", false, "print the board after every extraction")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

// runTrace drives a Stepper and prints the working board after each
// extraction that did not end the search.
func runTrace(w io.Writer, g *grid.Grid, start, goal grid.Point, gl board.Glyphs, opts []astar.Option) (astar.Result, error) {
	st, err := astar.NewStepper(g, start, goal, opts...)
	if err != nil {
		return astar.Result{}, err
	}
	for {
		snap := st.Step()
		if snap.Done() {
			break
		}
		c := snap.Current
		fmt.Fprintf(w, "step %d: extract %d,%d g=%d h=%d f=%d open=%d\n",
			snap.Step, c.X, c.Y, c.G, c.H, c.F(), snap.OpenLen)
		if err := board.Render(w, st.Grid(), board.WithGlyphs(gl)); err != nil {
			return astar.Result{}, err
		}
		fmt.Fprintln(w)
	}

	return st.Result(), nil
}
