// Package config holds the YAML configuration of the routeplanner CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/grid"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of routeplanner.yaml.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Render RenderConfig `yaml:"render"`
	Batch  BatchConfig  `yaml:"batch"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SearchConfig maps onto astar options.
type SearchConfig struct {
	Strategy      string `yaml:"strategy"`       // heap or sorted
	MaxExpansions int    `yaml:"max_expansions"` // 0 = unlimited
}

// RenderConfig picks the glyph set used when printing grids.
type RenderConfig struct {
	Glyphs string `yaml:"glyphs"` // emoji, ascii or auto (emoji on a terminal)
}

// BatchConfig describes a set of independent searches.
type BatchConfig struct {
	Workers    int         `yaml:"workers"`     // 0 = one per CPU
	MetricsOut string      `yaml:"metrics_out"` // optional Prometheus textfile
	Jobs       []JobConfig `yaml:"jobs"`
}

// JobConfig is one search: a board file and its endpoints.
type JobConfig struct {
	Name  string `yaml:"name"`
	Board string `yaml:"board"`
	Start Coord  `yaml:"start"`
	Goal  Coord  `yaml:"goal"`
}

// Coord is a grid.Point that decodes from either "x,y" or [x, y].
type Coord grid.Point

// Point converts c to a grid.Point.
func (c Coord) Point() grid.Point { return grid.Point(c) }

// UnmarshalYAML accepts a scalar "x,y" or a two-element sequence.
func (c *Coord) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		p, err := grid.ParsePoint(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = Coord(p)
		return nil
	case yaml.SequenceNode:
		var xy []int
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: %w: want [x, y], got %d values", node.Line, grid.ErrBadPoint, len(xy))
		}
		*c = Coord{X: xy[0], Y: xy[1]}
		return nil
	default:
		return fmt.Errorf("line %d: %w: unsupported YAML node", node.Line, grid.ErrBadPoint)
	}
}

// MarshalYAML writes the coordinate as "x,y".
func (c Coord) MarshalYAML() (interface{}, error) {
	return c.Point().String(), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{Strategy: astar.StrategyHeap.String()},
		Render: RenderConfig{Glyphs: "emoji"},
		Batch:  BatchConfig{Workers: 0},
	}
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if _, err := astar.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %w", ErrInvalid, err)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be >= 0", ErrInvalid)
	}
	switch c.Render.Glyphs {
	case "emoji", "ascii", "auto":
	default:
		return fmt.Errorf("%w: render.glyphs %q (want emoji, ascii or auto)", ErrInvalid, c.Render.Glyphs)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0", ErrInvalid)
	}
	for i, j := range c.Batch.Jobs {
		if strings.TrimSpace(j.Board) == "" {
			return fmt.Errorf("%w: batch.jobs[%d]: board is required", ErrInvalid, i)
		}
	}

	return nil
}

// SlogLevel maps Level onto slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
}
