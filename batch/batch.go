package batch

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/grid"
)

// Job is one search request.
type Job struct {
	ID    string // assigned by Run when empty
	Name  string
	Grid  *grid.Grid
	Start grid.Point
	Goal  grid.Point
}

// Outcome pairs a Job with its search result.
// Err is set for contract violations and for jobs skipped after cancellation.
type Outcome struct {
	Job      Job
	Result   astar.Result
	Err      error
	Duration time.Duration
}

// Option configures Run.
type Option func(*Options)

// Options holds the Run configuration.
type Options struct {
	Workers       int
	SearchOptions []astar.Option
	Metrics       *Metrics
	Logger        *slog.Logger
}

// DefaultOptions returns one worker per CPU, no metrics and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the number of concurrent searches. n <= 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithSearchOptions passes options to every astar.Search call.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) { o.SearchOptions = append(o.SearchOptions, opts...) }
}

// WithMetrics records every outcome in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithLogger routes per-job records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Run executes jobs with at most Workers searches in flight and returns one
// Outcome per job, in input order. The returned error is non-nil only when
// ctx was cancelled before every job was dispatched; outcomes of skipped jobs
// carry ctx.Err().
func Run(ctx context.Context, jobs []Job, opts ...Option) ([]Outcome, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	outcomes := make([]Outcome, len(jobs))
	ran := make([]bool, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range jobs {
		outcomes[i].Job = jobs[i]
		if outcomes[i].Job.ID == "" {
			outcomes[i].Job.ID = uuid.NewString()
		}
	}

	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		job := outcomes[i].Job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = runOne(job, cfg)
			ran[i] = true
			return nil
		})
	}
	waitErr := g.Wait()

	var err error
	for i := range outcomes {
		if ran[i] {
			continue
		}
		if err == nil {
			err = waitErr
			if err == nil {
				err = ctx.Err()
			}
		}
		outcomes[i].Err = err
	}
	cfg.Logger.Info("batch: done", "jobs", len(jobs), "workers", cfg.Workers, "err", err)

	return outcomes, err
}

// runOne performs a single search and records it.
func runOne(job Job, cfg Options) Outcome {
	began := time.Now()
	res, err := astar.Search(job.Grid, job.Start, job.Goal, cfg.SearchOptions...)
	out := Outcome{Job: job, Result: res, Err: err, Duration: time.Since(began)}

	if cfg.Metrics != nil {
		cfg.Metrics.Observe(out)
	}
	if err != nil {
		cfg.Logger.Warn("batch: search rejected", "id", job.ID, "name", job.Name, "err", err)
		return out
	}
	cfg.Logger.Debug("batch: search finished",
		"id", job.ID,
		"name", job.Name,
		"found", res.Found,
		"cost", res.Cost,
		"expanded", res.Expanded,
		"duration", out.Duration)

	return out
}
