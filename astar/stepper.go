package astar

import (
	"fmt"

	"github.com/katalvlaran/routeplanner/grid"
)

// Phase is the state of a search.
type Phase int

const (
	// PhaseInitialized: the open set holds only the start node.
	PhaseInitialized Phase = iota
	// PhaseExpanding: at least one node has been extracted, goal not reached.
	PhaseExpanding
	// PhaseFound: the goal was extracted. Terminal.
	PhaseFound
	// PhaseExhausted: the open set drained, or the expansion cap was hit. Terminal.
	PhaseExhausted
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseExpanding:
		return "expanding"
	case PhaseFound:
		return "found"
	case PhaseExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether no further steps are possible.
func (p Phase) Terminal() bool { return p == PhaseFound || p == PhaseExhausted }

// Snapshot describes the search after one Step.
type Snapshot struct {
	Current  Node  // node extracted by this step (zero when none was)
	Phase    Phase // phase after the step
	Step     int   // number of extractions so far
	OpenLen  int   // nodes still pending
	Inserted int   // total insertions so far
}

// Done reports whether the search has terminated.
func (s Snapshot) Done() bool { return s.Phase.Terminal() }

// Found reports whether the goal was reached.
func (s Snapshot) Found() bool { return s.Phase == PhaseFound }

// Stepper drives a search one extraction at a time. It owns a private clone
// of the input grid and its own open set. Search is Stepper run to completion.
type Stepper struct {
	grid        *grid.Grid
	start, goal grid.Point
	opts        Options
	open        OpenSet

	phase     Phase
	steps     int
	inserted  int
	cost      int
	truncated bool
}

// NewStepper validates the inputs, clones g and seeds the open set with the
// start node (g=0, h=heuristic(start, goal)), marking the start Closed.
//
// Validation order:
//  1. options (ErrOptionViolation, ErrUnknownStrategy)
//  2. g non-nil (ErrNilGrid)
//  3. start, goal on the grid (ErrStartOutOfBounds, ErrGoalOutOfBounds)
//  4. start, goal not obstacles (ErrStartBlocked, ErrGoalBlocked)
func NewStepper(g *grid.Grid, start, goal grid.Point, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, start, ErrStartOutOfBounds, ErrStartBlocked); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, goal, ErrGoalOutOfBounds, ErrGoalBlocked); err != nil {
		return nil, err
	}

	s := &Stepper{
		grid:  g.Clone(),
		start: start,
		goal:  goal,
		opts:  cfg,
		open:  cfg.NewOpenSet(),
		phase: PhaseInitialized,
	}
	s.insert(Node{X: start.X, Y: start.Y, G: 0, H: cfg.Heuristic(start, goal)})

	return s, nil
}

func checkEndpoint(g *grid.Grid, p grid.Point, outErr, blockedErr error) error {
	st, ok := g.At(p.X, p.Y)
	if !ok {
		return fmt.Errorf("%w: %v on %dx%d grid", outErr, p, g.Rows(), g.Cols())
	}
	if st == grid.Obstacle {
		return fmt.Errorf("%w: %v", blockedErr, p)
	}

	return nil
}

// Step performs one extraction and, unless it reached the goal, expands the
// extracted node. Calling Step after termination returns the final snapshot.
func (s *Stepper) Step() Snapshot {
	if s.phase.Terminal() {
		return s.snapshot(Node{})
	}

	// 1) Expansion cap.
	if s.opts.MaxExpansions > 0 && s.steps >= s.opts.MaxExpansions {
		s.truncated = true
		s.finish(PhaseExhausted)
		return s.snapshot(Node{})
	}

	// 2) Extract the best node, or report exhaustion.
	cur, ok := s.open.ExtractBest()
	if !ok {
		s.finish(PhaseExhausted)
		return s.snapshot(Node{})
	}
	s.steps++

	// 3) Provisionally annotate the extracted cell.
	s.grid.SetState(cur.X, cur.Y, grid.Path)
	s.opts.OnExtract(cur)
	s.opts.Logger.Debug("astar: extract",
		"x", cur.X, "y", cur.Y, "g", cur.G, "h", cur.H, "f", cur.F(), "open", s.open.Len())

	// 4) Goal test.
	if cur.X == s.goal.X && cur.Y == s.goal.Y {
		s.grid.SetState(s.start.X, s.start.Y, grid.Start)
		s.grid.SetState(s.goal.X, s.goal.Y, grid.Finish)
		s.cost = cur.G
		s.finish(PhaseFound)
		return s.snapshot(cur)
	}

	// 5) Expand neighbours in fixed order.
	s.expand(cur)
	s.phase = PhaseExpanding

	return s.snapshot(cur)
}

// expand inserts every admissible 4-neighbour of cur.
func (s *Stepper) expand(cur Node) {
	p := cur.Point()
	for _, d := range grid.Neighbors4 {
		nb := p.Add(d)
		if !s.grid.IsValidExpansionTarget(nb.X, nb.Y) {
			continue
		}
		s.insert(Node{X: nb.X, Y: nb.Y, G: cur.G + 1, H: s.opts.Heuristic(nb, s.goal)})
	}
}

// insert adds n to the open set and closes its cell in the same step,
// which is what keeps every cell to a single insertion.
func (s *Stepper) insert(n Node) {
	s.open.Insert(n)
	s.grid.SetState(n.X, n.Y, grid.Closed)
	s.inserted++
	s.opts.OnInsert(n)
}

func (s *Stepper) finish(p Phase) {
	s.phase = p
	s.opts.Logger.Debug("astar: done",
		"phase", p.String(),
		"start", s.start.String(),
		"goal", s.goal.String(),
		"expanded", s.steps,
		"inserted", s.inserted,
		"cost", s.cost,
		"truncated", s.truncated)
}

func (s *Stepper) snapshot(cur Node) Snapshot {
	return Snapshot{
		Current:  cur,
		Phase:    s.phase,
		Step:     s.steps,
		OpenLen:  s.open.Len(),
		Inserted: s.inserted,
	}
}

// Phase returns the current phase.
func (s *Stepper) Phase() Phase { return s.phase }

// Grid returns a copy of the working grid as it stands now.
// Useful for tracing intermediate Closed/Path annotations.
func (s *Stepper) Grid() *grid.Grid { return s.grid.Clone() }

// Run steps until the search terminates and returns the Result.
func (s *Stepper) Run() Result {
	for !s.Step().Done() {
	}

	return s.Result()
}

// Result returns the outcome. Before termination it reports Found=false
// with the counters accumulated so far and no grid.
func (s *Stepper) Result() Result {
	r := Result{
		Found:     s.phase == PhaseFound,
		Expanded:  s.steps,
		Inserted:  s.inserted,
		Truncated: s.truncated,
		Start:     s.start,
		Goal:      s.goal,
	}
	if r.Found {
		r.Grid = s.grid.Clone()
		r.Cost = s.cost
	}

	return r
}
