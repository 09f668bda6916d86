package viz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/page"
	"github.com/san-kum/constellation/internal/theme"
)

const (
	canvasScale = 8.0 // surface units per Braille dot
	sectionPx   = 600.0
	rowPx       = 20.0
	headerPx    = 70.0
	scrollStep  = 60.0
	headerRows  = 2
	footerRows  = 1
	panelWidth  = 48
	statsOffset = 200.0 // stats block position inside the about section
	statsHeight = 100.0
)

type stage int

const (
	stageLoading stage = iota
	stagePage
)

type (
	frameMsg time.Time
	loadMsg  time.Time
)

// App is the Bubble Tea model of the terminal portfolio page.
type App struct {
	cfg    *config.Config
	themes *theme.Manager
	logger *slog.Logger
	site   page.Site

	stage      stage
	loader     *page.Loader
	loadDoneAt time.Time

	canvas *Canvas
	field  *field.Field
	width  int
	height int
	mobile bool
	hidden bool

	pointer    *page.Throttle
	scrollY    float64
	nav        *page.Nav
	revealer   *page.Revealer
	revealedAt map[string]time.Time
	counters   []*page.Counter
	typewriter page.Typewriter
	heroStart  time.Time
	form       *page.ContactForm
	editing    int // index of the focused input, -1 when not editing
	frame      int
	now        time.Time
	status     string
}

func NewApp(cfg *config.Config, themes *theme.Manager, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pc := cfg.Page
	site := page.DefaultSite(sectionPx)

	counters := make([]*page.Counter, len(site.Stats))
	for i, s := range site.Stats {
		counters[i] = page.NewCounter(s.Label, s.Value, pc.CounterDuration)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// The field stays inert until the terminal reports its size.
	inert, _ := field.New(nil, themes, field.Config{})

	return &App{
		cfg:        cfg,
		themes:     themes,
		logger:     logger,
		site:       site,
		loader:     page.NewLoader(rand.New(rand.NewSource(seed)), pc.LoadingMaxStep),
		field:      inert,
		pointer:    page.NewThrottle(cfg.FrameInterval()),
		nav:        page.NewNav(site.Sections, pc.NavOffset, pc.HeaderScrolledAt),
		revealer:   page.NewRevealer(0.1, 50),
		revealedAt: make(map[string]time.Time),
		counters:   counters,
		typewriter: page.NewTypewriter(site.Hero, pc.TypewriterDelay, pc.TypewriterSpeed),
		form:       page.NewContactForm(pc.SendingDuration, pc.SentDuration, logger, site.Fields...),
		editing:    -1,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadTick(), a.frameTick())
}

func (a *App) loadTick() tea.Cmd {
	return tea.Tick(a.cfg.Page.LoadingInterval, func(t time.Time) tea.Msg { return loadMsg(t) })
}

func (a *App) frameTick() tea.Cmd {
	return tea.Tick(a.cfg.FrameInterval(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case tea.FocusMsg:
		a.hidden = false
	case tea.BlurMsg:
		a.hidden = true
	case tea.MouseMsg:
		if a.canvas != nil && a.pointer.Allow(time.Now()) {
			x, y := a.canvas.ToSurface(msg.X, msg.Y-headerRows)
			a.field.SetPointer(x, y)
		}
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case loadMsg:
		return a, a.advanceLoading(time.Time(msg))
	case frameMsg:
		a.advanceFrame(time.Time(msg))
		return a, a.frameTick()
	}
	return a, nil
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.mobile = page.IsMobile(int(float64(w*2)*canvasScale), a.cfg.Window.MobileBreakpoint)

	cols := max(w-panelWidth, 0)
	rows := max(h-headerRows-footerRows, 0)
	if a.canvas == nil {
		a.canvas = NewCanvas(cols, rows, canvasScale)
		f, err := field.New(a.canvas, a.themes, field.Config{Params: a.cfg.Field, Seed: a.cfg.Seed, Logger: a.logger})
		if err != nil {
			a.status = err.Error()
			return
		}
		a.field.Stop()
		a.field = f
		return
	}
	a.canvas.Resize(cols, rows)
	a.field.Resize(a.canvas.Size())
}

func (a *App) advanceLoading(now time.Time) tea.Cmd {
	if a.stage != stageLoading {
		return nil
	}
	if !a.loader.Done() {
		if _, done := a.loader.Tick(); done {
			a.loadDoneAt = now
		}
		return a.loadTick()
	}
	if now.Sub(a.loadDoneAt) < a.cfg.Page.LoadingHold {
		return a.loadTick()
	}
	a.stage = stagePage
	a.heroStart = now.Add(a.cfg.Page.LoadingHold)
	a.logger.Debug("loading finished")
	return nil
}

func (a *App) advanceFrame(now time.Time) {
	a.now = now
	a.frame++
	if a.stage != stagePage {
		return
	}
	if !a.hidden && !a.mobile {
		a.field.Frame()
	}
	a.form.Update(now)

	vp := a.viewport()
	els := make([]page.Element, 0, len(a.site.Sections))
	for _, s := range a.site.Sections {
		els = append(els, page.Element{ID: s.ID, Top: s.Top, Height: s.Height})
	}
	for _, id := range a.revealer.Observe(vp, els...) {
		a.revealedAt[id] = now
	}

	about, _ := a.nav.Section("about")
	stats := page.Element{ID: "stats", Top: about.Top + statsOffset, Height: statsHeight}
	if page.VisibleFraction(stats, vp, 0) >= 0.5 {
		for _, c := range a.counters {
			c.Start(now)
		}
	}
}

func (a *App) viewport() page.Viewport {
	rows := max(a.height-headerRows-footerRows, 1)
	return page.Viewport{Top: a.scrollY, Height: float64(rows) * rowPx}
}

func (a *App) scrollTo(y float64) {
	// The last section can always be scrolled to the top.
	limit := max(a.nav.Height()-sectionPx, 0)
	a.scrollY = max(0, min(y, limit))
	a.nav.Update(a.scrollY)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	if a.editing >= 0 {
		a.handleEditKey(msg)
		return nil
	}

	switch msg.String() {
	case "q":
		return a.quit()
	case "t":
		if _, err := a.themes.Toggle(); err != nil {
			a.status = "theme not saved: " + err.Error()
		}
	case "j", "down":
		a.scrollTo(a.scrollY + scrollStep)
	case "k", "up":
		a.scrollTo(a.scrollY - scrollStep)
	case "tab":
		next := a.nav.Next(a.nav.Active())
		if y, ok := a.nav.Select(next.ID, headerPx); ok {
			a.scrollTo(y)
		}
	case "m":
		a.nav.ToggleMenu()
	case "g":
		if page.BackToTopVisible(a.scrollY, a.cfg.Page.BackToTopAt) {
			a.scrollTo(0)
		}
	case "i":
		if a.nav.Active() == "contact" && !a.form.Disabled() {
			a.focusInput(0)
		}
	case "s":
		a.form.Submit(a.now)
	}
	return nil
}

func (a *App) handleEditKey(msg tea.KeyMsg) {
	in := a.form.Inputs[a.editing]
	switch msg.Type {
	case tea.KeyEsc:
		a.form.Blur()
		a.editing = -1
	case tea.KeyTab:
		a.focusInput((a.editing + 1) % len(a.form.Inputs))
	case tea.KeyEnter:
		a.form.Blur()
		a.editing = -1
		a.form.Submit(a.now)
	case tea.KeyBackspace:
		if r := []rune(in.Value); len(r) > 0 {
			in.Value = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		in.Value += " "
	case tea.KeyRunes:
		in.Value += string(msg.Runes)
	}
}

func (a *App) focusInput(i int) {
	a.editing = i
	a.form.Focus(a.form.Inputs[i].Name)
}

func (a *App) quit() tea.Cmd {
	a.field.Stop()
	return tea.Quit
}

func (a *App) View() string {
	s := StylesFor(a.themes.Current(), a.nav.Scrolled(a.scrollY))
	if a.width == 0 {
		return "loading..."
	}
	if a.stage == stageLoading {
		return a.viewLoading(s)
	}

	header := a.viewHeader(s)
	body := a.viewPanel(s)
	if a.canvas != nil && !a.mobile && !a.hidden {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.canvas.Render(s.Palette.Background), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, a.viewFooter(s))
}

func (a *App) viewLoading(s Styles) string {
	box := lipgloss.JoinVertical(lipgloss.Center,
		s.Brand.Render(a.site.Name),
		"",
		ProgressBar(a.loader.Fraction(), 40, s),
		s.Muted.Render(fmt.Sprintf("%s %d%%", AnimatedSpinner(a.frame), a.loader.Percent())),
	)
	return Place(a.width, a.height, box)
}

func (a *App) viewHeader(s Styles) string {
	var items []string
	if a.nav.MenuOpen() || a.width >= 100 {
		for _, sec := range a.site.Sections {
			if sec.ID == a.nav.Active() {
				items = append(items, s.NavActive.Render(sec.Title))
			} else {
				items = append(items, s.NavItem.Render(sec.Title))
			}
		}
	} else {
		items = append(items, s.NavItem.Render("☰ menu (m)"))
	}
	icon := "☾"
	if a.themes.Current().Icon() == "sun" {
		icon = "☀"
	}
	line := s.Brand.Render(a.site.Name) + "  " + strings.Join(items, "") + "  " + s.Accent.Render(icon)
	return s.Header.Width(a.width).Render(line)
}

func (a *App) viewPanel(s Styles) string {
	active := a.nav.Active()
	sec, _ := a.nav.Section(active)

	var lines []string
	lines = append(lines, s.Title.Render(sec.Title), Separator(panelWidth-8, s))

	switch active {
	case "home":
		lines = append(lines, s.Body.Render(a.typewriter.Visible(a.now.Sub(a.heroStart))+"▌"))
	case "about":
		lines = append(lines, a.viewItems(active, s)...)
		lines = append(lines, "", a.viewCounters(s))
	case "contact":
		lines = append(lines, a.viewForm(s)...)
	default:
		lines = append(lines, a.viewItems(active, s)...)
	}

	rows := max(a.height-headerRows-footerRows, 0)
	w := min(panelWidth, a.width)
	if a.mobile || a.hidden || a.canvas == nil {
		w = a.width
	}
	return s.Panel.Width(max(w-4, 0)).Height(max(rows-4, 0)).Render(strings.Join(lines, "\n"))
}

func (a *App) viewItems(id string, s Styles) []string {
	block, ok := a.site.Blocks[id]
	if !ok {
		return nil
	}
	at, revealed := a.revealedAt[id]
	var out []string
	for i, item := range block.Items {
		anim := page.AnimationFor(block.Group, i)
		if !revealed || a.now.Before(at.Add(anim.Delay)) {
			out = append(out, "")
			continue
		}
		prefix := "• "
		switch anim.Effect {
		case page.SlideLeft:
			prefix = "◂ "
		case page.SlideRight:
			prefix = "▸ "
		}
		out = append(out, s.Body.Render(prefix+item))
	}
	return out
}

func (a *App) viewCounters(s Styles) string {
	cells := make([]string, len(a.counters))
	for i, c := range a.counters {
		cells[i] = lipgloss.JoinVertical(lipgloss.Center,
			s.Accent.Render(c.Text(a.now)),
			s.Muted.Render(c.Label),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(cells, "    "))
}

func (a *App) viewForm(s Styles) []string {
	var out []string
	for _, in := range a.form.Inputs {
		label := s.Label.Render(in.Name)
		if in.HasValue() {
			label = s.LabelFloat.Render(in.Name)
		}
		value := in.Value
		if in.Focused() {
			value += "▌"
		}
		out = append(out, label, s.Input.Render(value), "")
	}
	btn := s.Button
	switch a.form.State() {
	case page.FormSending:
		btn = s.ButtonBusy
	case page.FormSent:
		btn = s.ButtonDone
	}
	out = append(out, btn.Render(a.form.ButtonLabel()))
	return out
}

func (a *App) viewFooter(s Styles) string {
	hints := "t theme · j/k scroll · tab next · m menu · q quit"
	if a.nav.Active() == "contact" {
		hints = "i edit · s send · esc done · " + hints
	}
	if page.BackToTopVisible(a.scrollY, a.cfg.Page.BackToTopAt) {
		hints = "g top ↑ · " + hints
	}
	if a.status != "" {
		hints = a.status + " · " + hints
	}
	return s.KeyHint.Render(hints)
}

// Run starts the terminal page and blocks until the user quits.
func Run(cfg *config.Config, themes *theme.Manager, logger *slog.Logger) error {
	app := NewApp(cfg, themes, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	_, err := p.Run()
	app.field.Stop()
	return err
}
