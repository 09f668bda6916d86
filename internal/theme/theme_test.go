package theme

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
		err  bool
	}{
		{"", Light, false},
		{"light", Light, false},
		{"DARK", Dark, false},
		{" dark ", Dark, false},
		{"sepia", Light, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.err)
		}
		if tt.err && !errors.Is(err, ErrUnknownTheme) {
			t.Errorf("Parse(%q) error should wrap ErrUnknownTheme", tt.in)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToggleAndIcon(t *testing.T) {
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Error("toggle should swap light and dark")
	}
	if Light.Icon() != "moon" || Dark.Icon() != "sun" {
		t.Error("unexpected icons")
	}
}

func TestSample(t *testing.T) {
	if Sample(nil) != Light {
		t.Error("nil source should read as light")
	}
	if Sample(Static("neon")) != Light {
		t.Error("unknown theme should read as light")
	}
	if Sample(Static(Dark)) != Dark {
		t.Error("static dark source not honoured")
	}
}

func TestPaletteFor(t *testing.T) {
	light := PaletteFor(Light)
	if light.Particle != (RGB{0, 102, 204}) || light.ParticleAlpha != 0.6 || light.LinkAlpha != 0.05 {
		t.Errorf("unexpected light palette %+v", light)
	}
	dark := PaletteFor(Dark)
	if dark.Particle != (RGB{0, 212, 255}) || dark.ParticleAlpha != 1 || dark.LinkAlpha != 0.1 {
		t.Errorf("unexpected dark palette %+v", dark)
	}
	if dark.HeaderAlpha(true) != 0.98 || dark.HeaderAlpha(false) != 0.95 {
		t.Error("unexpected header alpha")
	}
	if light.Header.Hex() != "#f8fafc" {
		t.Errorf("header hex = %s", light.Header.Hex())
	}
}

type memStore struct {
	value   string
	loadErr error
	saved   []string
}

func (m *memStore) LoadTheme() (string, error) { return m.value, m.loadErr }
func (m *memStore) SaveTheme(v string) error {
	m.saved = append(m.saved, v)
	m.value = v
	return nil
}

func TestManagerRestoresAndPersists(t *testing.T) {
	st := &memStore{value: "dark"}
	m := NewManager(st, nil)
	if m.Current() != Dark {
		t.Fatalf("expected restored dark theme, got %s", m.Current())
	}

	var seen []Theme
	m.OnChange(func(t Theme) { seen = append(seen, t) })

	next, err := m.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if next != Light || m.Current() != Light {
		t.Errorf("expected light after toggle, got %s", m.Current())
	}
	if len(st.saved) != 1 || st.saved[0] != "light" {
		t.Errorf("expected persisted light, got %v", st.saved)
	}
	if len(seen) != 1 || seen[0] != Light {
		t.Errorf("change hook saw %v", seen)
	}
}

func TestManagerFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		store Store
	}{
		{"no store", nil},
		{"read error", &memStore{loadErr: errors.New("disk gone")}},
		{"garbage value", &memStore{value: "purple"}},
		{"empty value", &memStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.store, nil)
			if m.Current() != Light {
				t.Errorf("expected light fallback, got %s", m.Current())
			}
		})
	}
}

func TestManagerSetRejectsUnknown(t *testing.T) {
	m := NewManager(nil, nil)
	if err := m.Set(Theme("neon")); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}
