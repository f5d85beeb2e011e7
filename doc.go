// Package routeplanner is a grid route planner built around A* search on
// 4-connected occupancy boards.
//
// 🚀 What is routeplanner?
//
//	A small, deterministic toolkit that brings together:
//		• Grid model: rectangular boards of Empty/Obstacle cells with
//		  per-search annotations (Closed, Path, Start, Finish)
//		• A* search: Manhattan heuristic, unit step cost, swappable open
//		  sets (binary heap or stable sort) with LIFO tie-breaking
//		• Stepper: the same search one extraction at a time, for tracing
//		• Boards: comma-separated text input and emoji or ASCII rendering
//		• Batch: concurrent independent searches with Prometheus metrics
//
// Packages:
//
//	grid/             Grid, State, Point and the fixed neighbour order
//	astar/            Search, Stepper, OpenSet strategies, Heuristic, options
//	board/            Parse/Load boards, Render/RenderResult
//	config/           YAML configuration for the CLI
//	batch/            errgroup-driven dispatch, Metrics, textfile export
//	cmd/routeplanner  the cobra CLI (search, batch, config, version)
//
// Quick example:
//
//	g, _ := board.Load("city.board")
//	res, err := astar.Search(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 5})
//	if err != nil {
//		// contract violation: nil grid, endpoint off the board or blocked
//	}
//	_ = board.RenderResult(os.Stdout, res)
//
// A search that cannot reach the goal is not an error: Result.Found is
// false and Result.Grid is nil.
//
//	go install github.com/katalvlaran/routeplanner/cmd/routeplanner@latest
package routeplanner
