package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/theme"
)

// Ensemble benchmarks one parameter set over consecutive seeds in parallel.
// Runs draw onto discard surfaces, so they measure simulation cost only.
type Ensemble struct {
	Params        field.Params
	Width, Height int
	Frames        int
	Runs          int
	SeedStart     int64
	Theme         theme.Theme
}

var ErrInvalidEnsemble = errors.New("metrics: invalid ensemble")

// Result is the outcome of one ensemble run.
type Result struct {
	Seed    int64
	Summary Summary
	Elapsed time.Duration
}

func (e *Ensemble) Run(ctx context.Context) ([]Result, error) {
	if e.Runs < 1 {
		return nil, fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidEnsemble, e.Runs)
	}
	if e.Frames < 0 {
		return nil, fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidEnsemble, e.Frames)
	}
	results := make([]Result, e.Runs)
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			seed := e.SeedStart + int64(idx)
			results[idx], errs[idx] = e.runOne(ctx, seed)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (e *Ensemble) runOne(ctx context.Context, seed int64) (Result, error) {
	surface := field.Discard{Width: e.Width, Height: e.Height}
	f, err := field.New(surface, theme.Static(e.Theme), field.Config{Params: e.Params, Seed: seed})
	if err != nil {
		return Result{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	rec := NewRecorder(e.Frames)
	f.AddObserver(rec)

	start := time.Now()
	for i := 0; i < e.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		t := time.Now()
		f.Frame()
		rec.ObserveDuration(time.Since(t))
	}
	return Result{Seed: seed, Summary: rec.Summary(), Elapsed: time.Since(start)}, nil
}
