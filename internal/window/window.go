// Package window hosts the particle field in a desktop window drawn with
// Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/page"
	"github.com/san-kum/constellation/internal/theme"
)

const title = "constellation"

// Game is the ebiten.Game driving one particle field.
type Game struct {
	field   *field.Field
	surface *surface
	screen  *page.Screen
	themes  *theme.Manager
	logger  *slog.Logger
}

func NewGame(cfg *config.Config, themes *theme.Manager, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{themes: themes, logger: logger}

	win := cfg.Window
	g.screen = page.NewScreen(win.Width, win.Height, win.MobileBreakpoint, win.ResizeDebounce, g.resize)
	g.surface = &surface{screen: g.screen, themes: themes}

	f, err := field.New(g.surface, themes, field.Config{Params: cfg.Field, Seed: cfg.Seed, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	g.field = f
	return g, nil
}

func (g *Game) resize(w, h int) {
	g.field.Resize(w, h)
	g.logger.Debug("window resized", "width", w, "height", h, "particles", g.field.Len())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if _, err := g.themes.Toggle(); err != nil {
			g.logger.Warn("theme not saved", "err", err)
		}
	}
	x, y := ebiten.CursorPosition()
	g.field.SetPointer(float64(x), float64(y))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen.Mobile() {
		screen.Fill(background(g.themes))
		return
	}
	g.surface.img = screen
	g.field.Frame()
	g.surface.img = nil
}

// Layout follows the window size; the field picks it up after the
// resize debounce.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screen.Observe(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Field exposes the hosted field, e.g. to attach observers.
func (g *Game) Field() *field.Field { return g.field }

func (g *Game) Close() {
	g.screen.Stop()
	g.field.Stop()
}

// Run opens the window and blocks until it is closed. Updates pause while
// the window is unfocused.
func Run(cfg *config.Config, themes *theme.Manager, logger *slog.Logger) error {
	g, err := NewGame(cfg, themes, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetRunnableOnUnfocused(false)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func background(src theme.Source) color.Color {
	bg := theme.PaletteFor(theme.Sample(src)).Background
	return color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff}
}
