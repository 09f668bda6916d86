package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the page display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used whenever no theme has been chosen yet.
const Default = Light

var ErrUnknownTheme = errors.New("theme: unknown theme")

// Parse accepts "light" or "dark" in any case. An empty string yields the default.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Default, nil
	case string(Light):
		return Light, nil
	case string(Dark):
		return Dark, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

func (t Theme) Valid() bool { return t == Light || t == Dark }

// Toggle returns the opposite theme. Anything that is not dark toggles to dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon names the toggle button glyph: the moon offers dark mode, the sun offers light.
func (t Theme) Icon() string {
	if t == Dark {
		return "sun"
	}
	return "moon"
}

func (t Theme) String() string {
	if !t.Valid() {
		return string(Default)
	}
	return string(t)
}

// Source is read once per frame by the particle field.
type Source interface {
	Current() Theme
}

// Static always reports the same theme.
type Static Theme

func (s Static) Current() Theme { return Theme(s) }

// SourceFunc adapts a plain function to Source.
type SourceFunc func() Theme

func (f SourceFunc) Current() Theme { return f() }

// Sample reads src, falling back to the default for a nil source or an
// unrecognised value.
func Sample(src Source) Theme {
	if src == nil {
		return Default
	}
	t := src.Current()
	if !t.Valid() {
		return Default
	}
	return t
}
