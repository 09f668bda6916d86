package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/theme"
)

// SVG is a field.Surface that keeps the most recent frame as SVG elements.
type SVG struct {
	Width, Height int
	Background    theme.RGB

	lines   []string
	circles []string
}

func NewSVG(w, h int, bg theme.RGB) *SVG {
	return &SVG{Width: w, Height: h, Background: bg}
}

func (s *SVG) Size() (int, int) { return s.Width, s.Height }

func (s *SVG) Clear() {
	s.lines = s.lines[:0]
	s.circles = s.circles[:0]
}

func (s *SVG) FillCircle(x, y, r float64, p field.Paint) {
	s.circles = append(s.circles, fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`,
		x, y, r, p.Hex(), p.Alpha))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, p field.Paint) {
	s.lines = append(s.lines, fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.4f" stroke-width="%.2f"/>`,
		x0, y0, x1, y1, p.Hex(), p.Alpha, width))
}

func (s *SVG) Circles() int { return len(s.circles) }
func (s *SVG) Lines() int   { return len(s.lines) }

// String renders the frame. Links go under particles.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g>
`, s.Width, s.Height, s.Width, s.Height, s.Background.Hex()))

	for _, l := range s.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	sb.WriteString("</g>\n<g>\n")
	for _, c := range s.circles {
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
