package main

import (
	"testing"

	"github.com/san-kum/constellation/internal/field"
)

func TestCheckRunFlags(t *testing.T) {
	tests := []struct {
		name         string
		frames, runs int
		ok           bool
	}{
		{"defaults", 600, 1, true},
		{"no frames", 0, 1, true},
		{"ensemble", 100, 4, true},
		{"negative frames", -1, 1, false},
		{"zero runs", 10, 0, false},
		{"negative runs", 10, -3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRunFlags(tt.frames, tt.runs)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBenchSurfaceDrawsNothing(t *testing.T) {
	s := benchSurface(640, 480)
	if _, ok := s.(field.Discard); !ok {
		t.Fatalf("bench surface is %T, want field.Discard", s)
	}
	if w, h := s.Size(); w != 640 || h != 480 {
		t.Errorf("size = %dx%d, want 640x480", w, h)
	}
}
