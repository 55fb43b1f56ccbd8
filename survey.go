package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/utils"
)

const (
	endExtinct   = "extinct"
	endStagnant  = "stagnant"
	endExhausted = "max generations"

	// how many generations run between cancellation checks
	cancelCheckInterval = 64
)

// surveyResult describes how one random seed ended
type surveyResult struct {
	Seed        int64
	Generations int
	Population  int
	End         string
}

// runSurvey simulates count seeds starting at config.Seed and prints one row
// per seed
func runSurvey(ctx context.Context, out io.Writer, config utils.Config, count, workers int) error {
	results, err := survey(ctx, config, count, workers)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SEED\tGENERATIONS\tPOPULATION\tEND\n")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", r.Seed, r.Generations, r.Population, r.End)
	}
	return tw.Flush()
}

// survey runs every seed on its own universe, at most workers at a time.
// Results are ordered by seed.
func survey(ctx context.Context, config utils.Config, count, workers int) ([]surveyResult, error) {
	var (
		results   = make([]surveyResult, count)
		pool      = model.NewUniversePool(config.Width, config.Height)
		eg, egCtx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(workers)

	for i := range count {
		eg.Go(func() error {
			u := pool.Get()
			defer pool.Put(u)

			seed := config.Seed + int64(i)
			u.Randomize(utils.NewRNG(seed).WithDensity(config.RandomDensity))
			r, err := simulate(egCtx, u, config)
			if err != nil {
				return errors.Wrapf(err, "[survey] seed %d", seed)
			}
			r.Seed = seed
			results[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate advances u until it dies out, repeats a recent generation or hits
// the generation limit
func simulate(ctx context.Context, u *model.Universe, config utils.Config) (surveyResult, error) {
	history := model.NewHistory(config.HistoryDepth)
	for gen := 0; ; gen++ {
		if gen%cancelCheckInterval == 0 && ctx.Err() != nil {
			return surveyResult{}, ctx.Err()
		}

		population := u.Population()
		switch {
		case population == 0:
			return surveyResult{Generations: gen, End: endExtinct}, nil
		case history.Observe(u):
			return surveyResult{Generations: gen, Population: population, End: endStagnant}, nil
		case config.MaxGenerations > 0 && gen >= config.MaxGenerations:
			return surveyResult{Generations: gen, Population: population, End: endExhausted}, nil
		}
		u.Tick()
	}
}
