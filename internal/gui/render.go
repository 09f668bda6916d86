package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/page"
	"github.com/san-kum/constellation/internal/theme"
)

// surface draws immediately with raylib; it is only used between
// BeginDrawing and EndDrawing.
type surface struct {
	screen *page.Screen
	themes theme.Source
}

func (s *surface) Size() (int, int) { return s.screen.Size() }

func (s *surface) Clear() {
	rl.ClearBackground(colorOf(theme.PaletteFor(theme.Sample(s.themes)).Background, 1))
}

func (s *surface) FillCircle(x, y, r float64, p field.Paint) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), colorOf(p.RGB, p.Alpha))
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, p field.Paint) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x0), float32(y0)),
		rl.NewVector2(float32(x1), float32(y1)),
		float32(width),
		colorOf(p.RGB, p.Alpha),
	)
}

func colorOf(c theme.RGB, alpha float64) rl.Color {
	n := field.Paint{RGB: c, Alpha: alpha}.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
