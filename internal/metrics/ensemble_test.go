package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/theme"
)

func TestEnsembleRun(t *testing.T) {
	e := &Ensemble{
		Params:    field.DefaultParams(),
		Width:     600,
		Height:    500,
		Frames:    20,
		Runs:      4,
		SeedStart: 10,
		Theme:     theme.Dark,
	}
	results, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
	for i, r := range results {
		if r.Seed != 10+int64(i) {
			t.Errorf("result %d seed = %d", i, r.Seed)
		}
		if r.Summary.Frames != 20 || r.Summary.Particles != 20 {
			t.Errorf("result %d summary = %+v", i, r.Summary)
		}
	}
}

func TestEnsembleSameSeedSameEnergy(t *testing.T) {
	e := &Ensemble{Params: field.DefaultParams(), Width: 400, Height: 400, Frames: 10, Runs: 1, SeedStart: 99}
	a, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a[0].Summary.MeanEnergy != b[0].Summary.MeanEnergy {
		t.Errorf("mean energy differs for one seed: %g vs %g", a[0].Summary.MeanEnergy, b[0].Summary.MeanEnergy)
	}
}

func TestEnsembleErrors(t *testing.T) {
	bad := field.DefaultParams()
	bad.Friction = 2
	e := &Ensemble{Params: bad, Width: 100, Height: 100, Frames: 1, Runs: 2}
	if _, err := e.Run(context.Background()); !errors.Is(err, field.ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e = &Ensemble{Params: field.DefaultParams(), Width: 100, Height: 100, Frames: 5, Runs: 2}
	if _, err := e.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestEnsembleRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name         string
		runs, frames int
	}{
		{"zero runs", 0, 10},
		{"negative runs", -2, 10},
		{"negative frames", 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Ensemble{Params: field.DefaultParams(), Width: 100, Height: 100, Frames: tt.frames, Runs: tt.runs}
			if _, err := e.Run(context.Background()); !errors.Is(err, ErrInvalidEnsemble) {
				t.Errorf("err = %v, want ErrInvalidEnsemble", err)
			}
		})
	}
}
