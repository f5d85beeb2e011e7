package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/board"
	"github.com/katalvlaran/routeplanner/config"
)

// app carries the state shared by every subcommand: the persistent flags
// and the configuration and logger derived from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "routeplanner",
		Short: "Grid A* route planner",
		Long: `routeplanner searches rectangular occupancy boards for the cheapest
4-connected route between two cells and prints the annotated board.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a routeplanner YAML file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config)")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json (overrides the config)")

	root.AddCommand(
		newSearchCmd(a),
		newBatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
// Logs go to the command's error stream so stdout stays renderable.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Log.SlogLevel()
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(cmd.ErrOrStderr(), hopts)
	} else {
		h = slog.NewTextHandler(cmd.ErrOrStderr(), hopts)
	}

	a.cfg = cfg
	a.logger = slog.New(h)

	return nil
}

// searchOptions turns the search section of the config into astar options.
func (a *app) searchOptions() ([]astar.Option, error) {
	strategy, err := astar.ParseStrategy(a.cfg.Search.Strategy)
	if err != nil {
		return nil, err
	}

	return []astar.Option{
		astar.WithStrategy(strategy),
		astar.WithMaxExpansions(a.cfg.Search.MaxExpansions),
		astar.WithLogger(a.logger),
	}, nil
}

// glyphs resolves the configured glyph set for w. "auto" picks emoji only
// when w is a terminal.
func (a *app) glyphs(w io.Writer) (board.Glyphs, error) {
	if a.cfg.Render.Glyphs == "auto" {
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return board.EmojiGlyphs, nil
		}
		return board.ASCIIGlyphs, nil
	}
	gl, ok := board.NamedGlyphs(a.cfg.Render.Glyphs)
	if !ok {
		return board.Glyphs{}, fmt.Errorf("unknown glyph set %q", a.cfg.Render.Glyphs)
	}

	return gl, nil
}
