package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/theme"
)

var blue = field.Paint{RGB: theme.RGB{R: 0, G: 102, B: 204}, Alpha: 0.5}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		scale        float64
		wantW, wantH int
	}{
		{"unit", 10, 5, 1, 20, 20},
		{"scaled", 10, 5, 8, 160, 160},
		{"bad scale", 4, 2, 0, 8, 8},
		{"negative", -3, -1, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.w, tt.h, tt.scale)
			w, h := c.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1, 1)
	c.Set(0, 0, blue)
	c.Set(1, 3, blue)
	c.Set(99, 99, blue)
	c.Set(-1, 0, blue)

	if got, want := c.Grid[0][0], rune(blank|0x1|0x80); got != want {
		t.Errorf("cell = %U, want %U", got, want)
	}
	if c.Grid[0][1] != blank {
		t.Errorf("untouched cell = %U, want blank", c.Grid[0][1])
	}
}

func TestCanvasKeepsStrongestPaint(t *testing.T) {
	c := NewCanvas(1, 1, 1)
	strong := field.Paint{RGB: theme.RGB{R: 255}, Alpha: 0.9}
	c.Set(0, 0, strong)
	c.Set(1, 1, blue)
	if c.paint[0][0] != strong {
		t.Errorf("paint = %+v, want %+v", c.paint[0][0], strong)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 2, 1)
	c.FillCircle(2, 2, 2, blue)
	c.Clear()
	for _, row := range c.Grid {
		for _, ch := range row {
			if ch != blank {
				t.Fatalf("cell %U survived Clear", ch)
			}
		}
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5, 2)
	// A radius below one dot still lights the centre.
	c.FillCircle(9, 9, 1, blue)
	if c.Grid[1][2] == blank {
		t.Error("tiny circle left its cell blank")
	}
}

func TestCanvasStrokeLine(t *testing.T) {
	c := NewCanvas(10, 1, 1)
	c.StrokeLine(0, 0, 19, 0, 0.5, blue)
	for col, ch := range c.Grid[0] {
		if ch&0x1 == 0 || ch&0x8 == 0 {
			t.Errorf("col %d = %U, want both top dots set", col, ch)
		}
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(4, 3, 1)
	c.Set(0, 0, blue)
	out := c.Render(theme.RGB{R: 248, G: 250, B: 252})
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, want 2", n)
	}
	if !strings.ContainsRune(out, blank|0x1) {
		t.Error("rendered output misses the set dot")
	}
}

func TestVisibility(t *testing.T) {
	alphas := []float64{0, 0.005, 0.03, 0.1, 0.3, 0.6, 1}
	prev := 0.0
	for _, a := range alphas {
		v := visibility(a)
		if v < prev || v < 0.15 || v > 1 {
			t.Errorf("visibility(%v) = %v after %v", a, v, prev)
		}
		prev = v
	}
}

func TestBlend(t *testing.T) {
	bg := theme.RGB{R: 10, G: 10, B: 15}
	fg := theme.RGB{R: 0, G: 212, B: 255}
	if got := blend(bg, fg, 0); got != bg {
		t.Errorf("blend 0 = %+v, want %+v", got, bg)
	}
	if got := blend(bg, fg, 1); got != fg {
		t.Errorf("blend 1 = %+v, want %+v", got, fg)
	}
}

func TestCanvasHostsField(t *testing.T) {
	c := NewCanvas(80, 30, 8)
	f, err := field.New(c, theme.Static(theme.Dark), field.Config{Params: field.DefaultParams(), Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	w, h := c.Size()
	if want := field.DefaultParams().Count(w, h); f.Len() != want {
		t.Fatalf("particles = %d, want %d", f.Len(), want)
	}
	if _, ok := f.Frame(); !ok {
		t.Fatal("frame not drawn")
	}
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank && r <= blank+0xff }) {
		t.Error("no particle reached the canvas")
	}
}
