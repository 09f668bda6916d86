package field

import (
	"image/color"

	"github.com/san-kum/constellation/internal/theme"
)

// Paint is a colour with a fractional alpha in [0, 1].
type Paint struct {
	theme.RGB
	Alpha float64
}

// NRGBA converts to a non-premultiplied image colour.
func (p Paint) NRGBA() color.NRGBA {
	a := p.Alpha
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(a*255 + 0.5)}
}

// Surface is the immediate-mode drawing target the field renders into.
// Coordinates are in surface units, the same units particles move in.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillCircle(x, y, r float64, p Paint)
	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
}

// FrameStats summarises one rendered frame.
type FrameStats struct {
	Frame         uint64
	Particles     int
	Links         int
	KineticEnergy float64
	Theme         theme.Theme
}

// Observer is notified after every rendered frame.
type Observer interface {
	OnFrame(FrameStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(FrameStats)

func (f ObserverFunc) OnFrame(s FrameStats) { f(s) }

// Discard is a surface of a fixed size that draws nothing, for headless runs.
type Discard struct{ Width, Height int }

func (d Discard) Size() (int, int)                                { return d.Width, d.Height }
func (Discard) Clear()                                            {}
func (Discard) FillCircle(x, y, r float64, p Paint)               {}
func (Discard) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {}
