package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/constellation/internal/field"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Field != field.DefaultParams() {
		t.Errorf("unexpected field params %+v", cfg.Field)
	}
	if cfg.FPS != 60 {
		t.Errorf("expected 60 fps, got %d", cfg.FPS)
	}
	if cfg.Window.MobileBreakpoint != 768 {
		t.Errorf("expected breakpoint 768, got %d", cfg.Window.MobileBreakpoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("unexpected frame interval %v", cfg.FrameInterval())
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constellation.yaml")
	data := []byte("fps: 30\nfield:\n  density: 20000\npage:\n  counter_duration: 3s\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FPS != 30 || cfg.Field.Density != 20000 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Field.Friction != field.DefaultFriction {
		t.Errorf("unset key lost its default: friction %g", cfg.Field.Friction)
	}
	if cfg.Page.CounterDuration != 3*time.Second {
		t.Errorf("expected 3s counter, got %v", cfg.Page.CounterDuration)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadRejectsNonFiniteField(t *testing.T) {
	for _, doc := range []string{
		"field:\n  density: .nan\n",
		"field:\n  friction: .nan\n",
		"field:\n  speed: .inf\n",
		"field:\n  link_distance: -.inf\n",
	} {
		path := filepath.Join(t.TempDir(), "field.yaml")
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, field.ErrInvalidParams) {
			t.Errorf("%q: expected ErrInvalidParams, got %v", doc, err)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg, err := GetPreset("dense")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Seed = 99
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Seed != 99 || loaded.Field.Density != 7500 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("sparse")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if cfg.Field.Density != 30000 {
		t.Errorf("expected density 30000, got %f", cfg.Field.Density)
	}
	if DefaultConfig().Field.Density != field.DefaultDensity {
		t.Error("preset leaked into defaults")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, err := GetPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg, err := GetPreset(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
