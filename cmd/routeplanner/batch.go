package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplanner/batch"
	"github.com/katalvlaran/routeplanner/board"
	"github.com/katalvlaran/routeplanner/config"
	"github.com/katalvlaran/routeplanner/grid"
)

var errNoJobs = errors.New("no batch jobs configured")

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers    int
		metricsOut string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every job listed under batch.jobs concurrently",
		Example: `  routeplanner batch --config routeplanner.yaml
  routeplanner batch --config routeplanner.yaml --workers 4 --metrics-out routes.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
			}
			if metricsOut != "" {
				a.cfg.Batch.MetricsOut = metricsOut
			}
			if len(a.cfg.Batch.Jobs) == 0 {
				return errNoJobs
			}

			jobs, err := loadJobs(a.cfg.Batch.Jobs)
			if err != nil {
				return err
			}
			searchOpts, err := a.searchOptions()
			if err != nil {
				return err
			}
			gl, err := a.glyphs(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := batch.NewMetrics(reg)
			if err != nil {
				return err
			}

			outcomes, err := batch.Run(cmd.Context(), jobs,
				batch.WithWorkers(a.cfg.Batch.Workers),
				batch.WithSearchOptions(searchOpts...),
				batch.WithMetrics(metrics),
				batch.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, o := range outcomes {
				fmt.Fprintf(out, "== %s\n", o.Job.Name)
				if o.Err != nil {
					failed++
					fmt.Fprintf(out, "error: %v\n", o.Err)
					continue
				}
				if o.Result.Found {
					fmt.Fprintf(out, "cost: %d expanded: %d\n", o.Result.Cost, o.Result.Expanded)
				}
				if err := board.RenderResult(out, o.Result, board.WithGlyphs(gl)); err != nil {
					return err
				}
			}

			if path := a.cfg.Batch.MetricsOut; path != "" {
				if err := batch.WriteTextfile(path, reg); err != nil {
					return err
				}
				a.logger.Info("metrics written", "path", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(outcomes))
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&workers, "workers", "w", 0, "concurrent searches, 0 = one per CPU (overrides the config)")
	f.StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this file (overrides the config)")

	return cmd
}

// loadJobs reads every referenced board once and builds the job list.
// Jobs sharing a board share its grid; searches never mutate their input.
func loadJobs(cfgs []config.JobConfig) ([]batch.Job, error) {
	boards := make(map[string]*grid.Grid)
	jobs := make([]batch.Job, 0, len(cfgs))
	for _, jc := range cfgs {
		g, ok := boards[jc.Board]
		if !ok {
			var err error
			if g, err = board.Load(jc.Board); err != nil {
				return nil, err
			}
			boards[jc.Board] = g
		}
		name := jc.Name
		if name == "" {
			name = filepath.Base(jc.Board)
		}
		jobs = append(jobs, batch.Job{
			Name:  name,
			Grid:  g,
			Start: jc.Start.Point(),
			Goal:  jc.Goal.Point(),
		})
	}

	return jobs, nil
}
