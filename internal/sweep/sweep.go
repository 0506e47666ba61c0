// Package sweep measures how long random soups take to settle. Each trial
// fills a fresh board at a given density and steps it until a step changes
// nothing or a step budget runs out.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"life-canvas/internal/core"
	"life-canvas/internal/sims/life"
)

// Options describes a survey.
type Options struct {
	Cols     int
	Rows     int
	Density  float64
	Trials   int
	MaxSteps int
	Seed     int64
	Workers  int
}

// DefaultOptions returns the survey settings used by the command-line tool.
func DefaultOptions() Options {
	return Options{
		Cols:     96,
		Rows:     64,
		Density:  life.DefaultDensity,
		Trials:   32,
		MaxSteps: 5000,
		Seed:     1337,
		Workers:  runtime.NumCPU(),
	}
}

// Validate reports options that cannot run.
func (o Options) Validate() error {
	switch {
	case o.Cols <= 0 || o.Rows <= 0:
		return fmt.Errorf("grid size %dx%d must be positive", o.Cols, o.Rows)
	case o.Density < 0 || o.Density > 1:
		return fmt.Errorf("density %g must be in [0,1]", o.Density)
	case o.Trials <= 0:
		return errors.New("trials must be positive")
	case o.MaxSteps <= 0:
		return errors.New("max steps must be positive")
	}
	return nil
}

// Trial is the outcome of one soup.
type Trial struct {
	Index      int
	Seed       int64
	Generation int
	Population int
	Stable     bool
}

// Report aggregates every trial of a survey. The generation figures cover
// stabilized trials only; trials that exhausted the step budget are counted
// in Unsettled.
type Report struct {
	Trials         []Trial
	Stabilized     int
	Unsettled      int
	MinGeneration  int
	MaxGeneration  int
	MeanGeneration float64
	MeanPopulation float64
}

// Run executes the survey. Trials are independent and each worker owns its
// board, so results do not depend on the worker count.
func Run(ctx context.Context, opts Options, logger log.Interface) (Report, error) {
	if err := opts.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = log.Log
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	trials := make([]Trial, opts.Trials)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range trials {
		g.Go(func() error {
			t, err := runTrial(ctx, opts, i)
			if err != nil {
				return err
			}
			trials[i] = t
			logger.WithFields(log.Fields{
				"trial":      t.Index,
				"generation": t.Generation,
				"population": t.Population,
				"stable":     t.Stable,
			}).Debug("trial finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}
	return summarize(trials), nil
}

// checkEvery is how many steps run between context checks.
const checkEvery = 64

func runTrial(ctx context.Context, opts Options, index int) (Trial, error) {
	seed := opts.Seed + int64(index)
	grid := life.New(opts.Cols, opts.Rows)
	grid.Randomize(core.NewRNG(seed), opts.Density)

	t := Trial{Index: index, Seed: seed}
	for step := 0; step < opts.MaxSteps; step++ {
		if step%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Trial{}, err
			}
		}
		if !grid.Step() {
			t.Stable = true
			break
		}
	}
	t.Generation = grid.Generation()
	t.Population = grid.Population()
	return t, nil
}

func summarize(trials []Trial) Report {
	r := Report{Trials: trials}
	if len(trials) == 0 {
		return r
	}
	genSum, popSum := 0, 0
	for _, t := range trials {
		popSum += t.Population
		if !t.Stable {
			r.Unsettled++
			continue
		}
		if r.Stabilized == 0 {
			r.MinGeneration = t.Generation
		}
		r.Stabilized++
		r.MinGeneration = min(r.MinGeneration, t.Generation)
		r.MaxGeneration = max(r.MaxGeneration, t.Generation)
		genSum += t.Generation
	}
	if r.Stabilized > 0 {
		r.MeanGeneration = float64(genSum) / float64(r.Stabilized)
	}
	r.MeanPopulation = float64(popSum) / float64(len(trials))
	return r
}
