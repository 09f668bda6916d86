package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/theme"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille pixel grid usable as a field.Surface. One Braille
// dot covers Scale x Scale surface units, so the field sees a surface of
// (Width*2*Scale) x (Height*4*Scale).
type Canvas struct {
	Width, Height int
	Scale         float64
	Grid          [][]rune
	paint         [][]field.Paint
}

func NewCanvas(w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{Scale: scale}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid for a w x h cell terminal area.
func (c *Canvas) Resize(w, h int) {
	c.Width, c.Height = max(w, 0), max(h, 0)
	c.Grid = make([][]rune, c.Height)
	c.paint = make([][]field.Paint, c.Height)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, c.Width)
		c.paint[i] = make([]field.Paint, c.Width)
	}
	c.Clear()
}

func (c *Canvas) Size() (int, int) {
	return int(float64(c.Width*2) * c.Scale), int(float64(c.Height*4) * c.Scale)
}

// ToSurface converts a cell position (e.g. a mouse event) into surface
// units at the centre of the cell.
func (c *Canvas) ToSurface(col, row int) (float64, float64) {
	return (float64(col)*2 + 1) * c.Scale, (float64(row)*4 + 2) * c.Scale
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, p field.Paint) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if p.Alpha >= c.paint[row][col].Alpha {
		c.paint[row][col] = p
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.paint[i][j] = field.Paint{}
		}
	}
}

func (c *Canvas) subpixel(v float64) int {
	return int(math.Floor(v / c.Scale))
}

// FillCircle sets every dot within the scaled radius; tiny particles still
// light their centre dot.
func (c *Canvas) FillCircle(x, y, r float64, p field.Paint) {
	cx, cy := c.subpixel(x), c.subpixel(y)
	rad := int(r / c.Scale)
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rad*rad {
				c.Set(cx+dx, cy+dy, p)
			}
		}
	}
}

// StrokeLine draws a one-dot line using Bresenham's algorithm. The width
// is always below one dot at terminal resolution and is ignored.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, p field.Paint) {
	ax, ay := c.subpixel(x0), c.subpixel(y0)
	bx, by := c.subpixel(x1), c.subpixel(y1)

	dx := absInt(bx - ax)
	dy := absInt(by - ay)
	sx := -1
	if ax < bx {
		sx = 1
	}
	sy := -1
	if ay < by {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(ax, ay, p)
		if ax == bx && ay == by {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			ax += sx
		}
		if e2 < dx {
			err += dx
			ay += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the grid with colours blended over bg. Runs of cells with
// the same colour share one style.
func (c *Canvas) Render(bg theme.RGB) string {
	var b strings.Builder
	for r, row := range c.Grid {
		var run []rune
		var runColor string
		flush := func() {
			if len(run) == 0 {
				return
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
			if runColor != "" {
				style = style.Foreground(lipgloss.Color(runColor))
			}
			b.WriteString(style.Render(string(run)))
			run = run[:0]
		}
		for col, ch := range row {
			hex := ""
			if ch != blank {
				p := c.paint[r][col]
				hex = blend(bg, p.RGB, visibility(p.Alpha)).Hex()
			}
			if hex != runColor {
				flush()
				runColor = hex
			}
			run = append(run, ch)
		}
		flush()
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// visibility lifts the faint alphas used for links so they still show on a
// terminal while keeping their order.
func visibility(alpha float64) float64 {
	v := math.Sqrt(math.Max(alpha, 0) / 0.8)
	return math.Max(0.15, math.Min(v, 1))
}

func blend(bg, fg theme.RGB, t float64) theme.RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return theme.RGB{R: mix(bg.R, fg.R), G: mix(bg.G, fg.G), B: mix(bg.B, fg.B)}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
