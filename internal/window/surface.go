package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/page"
	"github.com/san-kum/constellation/internal/theme"
)

// surface draws onto the screen image of the current Draw call. Its size
// is the debounced screen size, not the image bounds.
type surface struct {
	img    *ebiten.Image
	screen *page.Screen
	themes theme.Source
}

func (s *surface) Size() (int, int) { return s.screen.Size() }

func (s *surface) Clear() {
	if s.img == nil {
		return
	}
	s.img.Fill(background(s.themes))
}

func (s *surface) FillCircle(x, y, r float64, p field.Paint) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), p.NRGBA(), true)
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, p field.Paint) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), p.NRGBA(), true)
}
