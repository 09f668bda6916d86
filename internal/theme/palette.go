package theme

import "fmt"

// RGB is an opaque colour; alpha travels separately.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette holds the render parameters that depend on the theme.
type Palette struct {
	Theme Theme

	Particle      RGB
	ParticleAlpha float64 // multiplied with each particle's opacity
	Link          RGB
	LinkAlpha     float64 // alpha of a link at zero length

	Header         RGB
	HeaderRest     float64
	HeaderScrolled float64

	Background RGB
	Text       RGB
	Muted      RGB
	Accent     RGB
}

var (
	lightPalette = Palette{
		Theme:          Light,
		Particle:       RGB{0, 102, 204},
		ParticleAlpha:  0.6,
		Link:           RGB{0, 102, 204},
		LinkAlpha:      0.05,
		Header:         RGB{248, 250, 252},
		HeaderRest:     0.95,
		HeaderScrolled: 0.98,
		Background:     RGB{248, 250, 252},
		Text:           RGB{15, 23, 42},
		Muted:          RGB{100, 116, 139},
		Accent:         RGB{0, 102, 204},
	}

	darkPalette = Palette{
		Theme:          Dark,
		Particle:       RGB{0, 212, 255},
		ParticleAlpha:  1,
		Link:           RGB{0, 212, 255},
		LinkAlpha:      0.1,
		Header:         RGB{10, 10, 15},
		HeaderRest:     0.95,
		HeaderScrolled: 0.98,
		Background:     RGB{10, 10, 15},
		Text:           RGB{241, 245, 249},
		Muted:          RGB{148, 163, 184},
		Accent:         RGB{0, 212, 255},
	}
)

// PaletteFor returns the palette of t; invalid themes get the light palette.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}

// HeaderAlpha is the header background opacity for the given scroll state.
func (p Palette) HeaderAlpha(scrolled bool) float64 {
	if scrolled {
		return p.HeaderScrolled
	}
	return p.HeaderRest
}
