// Package gui hosts the particle field in a raylib window.
package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/page"
	"github.com/san-kum/constellation/internal/theme"
)

type App struct {
	Field  *field.Field
	Themes *theme.Manager

	screen  *page.Screen
	surface *surface
	logger  *slog.Logger
	showHUD bool
}

// initWindow opens a resizable window of the configured size and caps the frame rate.
func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "constellation")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(rl.KeyEscape)
}

func NewApp(cfg *config.Config, themes *theme.Manager, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{Themes: themes, logger: logger}
	win := cfg.Window
	a.screen = page.NewScreen(win.Width, win.Height, win.MobileBreakpoint, win.ResizeDebounce, a.resize)
	a.surface = &surface{screen: a.screen, themes: themes}

	f, err := field.New(a.surface, themes, field.Config{Params: cfg.Field, Seed: cfg.Seed, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	a.Field = f
	return a, nil
}

func (a *App) resize(w, h int) {
	a.Field.Resize(w, h)
	a.logger.Debug("window resized", "width", w, "height", h, "particles", a.Field.Len())
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, themes *theme.Manager, logger *slog.Logger) error {
	a, err := NewApp(cfg, themes, logger)
	if err != nil {
		return err
	}
	initWindow(cfg)
	defer rl.CloseWindow()
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	defer a.screen.Stop()
	defer a.Field.Stop()
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.screen.Observe(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	}
	if rl.IsKeyPressed(rl.KeyT) {
		if _, err := a.Themes.Toggle(); err != nil {
			a.logger.Warn("theme not saved", "err", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.showHUD = !a.showHUD
	}
	m := rl.GetMousePosition()
	a.Field.SetPointer(float64(m.X), float64(m.Y))
}

// hidden mirrors a page that is not visible: the field is not advanced.
func (a *App) hidden() bool {
	return rl.IsWindowMinimized() || !rl.IsWindowFocused()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	switch {
	case a.screen.Mobile():
		a.surface.Clear()
	case a.hidden():
		// Keep the last frame on screen.
		return
	default:
		a.Field.Frame()
	}
	if a.showHUD {
		a.DrawHUD()
	}
}

func (a *App) DrawHUD() {
	p := theme.PaletteFor(a.Themes.Current())
	text := fmt.Sprintf("%d particles  %d fps  theme %s", a.Field.Len(), rl.GetFPS(), a.Themes.Current())
	rl.DrawText(text, 12, 12, 16, colorOf(p.Text, 0.8))
}
