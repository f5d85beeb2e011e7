// Package astar defines nodes, results, options and sentinel errors
// for the grid A* search.
package astar

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/routeplanner/grid"
)

// Sentinel errors returned for contract violations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to the search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates the start coordinate is off the grid.
	ErrStartOutOfBounds = errors.New("astar: start is out of bounds")

	// ErrGoalOutOfBounds indicates the goal coordinate is off the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal is out of bounds")

	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = errors.New("astar: start is an obstacle")

	// ErrGoalBlocked indicates the goal cell is an obstacle.
	ErrGoalBlocked = errors.New("astar: goal is an obstacle")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrUnknownStrategy indicates an unrecognised open-set strategy name.
	ErrUnknownStrategy = errors.New("astar: unknown open-set strategy")
)

// Node is a frontier entry: a cell position plus its costs.
// X and Y address the cell by value; a Node does not own the cell.
type Node struct {
	X, Y int // row, column
	G    int // accumulated cost from the start
	H    int // heuristic estimate to the goal
}

// F returns the total estimated cost g + h used to order the open set.
func (n Node) F() int { return n.G + n.H }

// Point returns the node's cell coordinate.
func (n Node) Point() grid.Point { return grid.Point{X: n.X, Y: n.Y} }

// Result is the outcome of a search.
//
//   - Found:     the goal was extracted from the open set.
//   - Grid:      the annotated grid when Found, nil otherwise.
//   - Cost:      accumulated g of the goal node (0 when not Found).
//   - Expanded:  number of nodes extracted from the open set.
//   - Inserted:  number of nodes inserted into the open set, start included.
//   - Truncated: the search stopped at Options.MaxExpansions.
type Result struct {
	Grid      *grid.Grid
	Found     bool
	Cost      int
	Expanded  int
	Inserted  int
	Truncated bool
	Start     grid.Point
	Goal      grid.Point
}

// Strategy selects one of the built-in OpenSet implementations.
type Strategy int

const (
	// StrategyHeap uses HeapOpenSet (default).
	StrategyHeap Strategy = iota
	// StrategySorted uses SortedOpenSet.
	StrategySorted
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategySorted:
		return "sorted"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "sorted" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return StrategyHeap, nil
	case "sorted":
		return StrategySorted, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the search is started.
type Option func(*Options)

// Options holds the parameters and callbacks for one search.
type Options struct {
	// NewOpenSet builds a fresh open set for each search.
	NewOpenSet func() OpenSet

	// Heuristic estimates the remaining cost to the goal.
	Heuristic Heuristic

	// OnInsert is called after a node is inserted and its cell marked Closed.
	OnInsert func(n Node)

	// OnExtract is called after a node is extracted and its cell marked Path.
	OnExtract func(n Node)

	// Logger receives Debug records for each extraction and the outcome.
	Logger *slog.Logger

	// MaxExpansions, if > 0, stops the search after that many extractions.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with:
//   - HeapOpenSet
//   - Manhattan heuristic
//   - no-op hooks
//   - a logger that discards everything
//   - no expansion limit.
func DefaultOptions() Options {
	return Options{
		NewOpenSet: func() OpenSet { return NewHeapOpenSet() },
		Heuristic:  ManhattanPoints,
		OnInsert:   func(Node) {},
		OnExtract:  func(Node) {},
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithStrategy selects a built-in open-set implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyHeap:
			o.NewOpenSet = func() OpenSet { return NewHeapOpenSet() }
		case StrategySorted:
			o.NewOpenSet = func() OpenSet { return NewSortedOpenSet() }
		default:
			o.err = fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
		}
	}
}

// WithOpenSet installs a custom open-set factory. The factory is called once
// per search and must return an empty set.
func WithOpenSet(factory func() OpenSet) Option {
	return func(o *Options) {
		if factory != nil {
			o.NewOpenSet = factory
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. A nil h is an option violation.
// Non-admissible heuristics lose the optimality guarantee.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnInsert registers a callback run on every open-set insertion.
func WithOnInsert(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithOnExtract registers a callback run on every open-set extraction.
func WithOnExtract(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExtract = fn
		}
	}
}

// WithLogger routes search diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions caps the number of extractions.
//
//	n > 0: stop after n extractions, reported as not found with Truncated set
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
