package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/constellation/internal/theme"
)

// Styles is the lipgloss rendering of a theme palette.
type Styles struct {
	Palette theme.Palette

	Page       lipgloss.Style
	Header     lipgloss.Style
	Brand      lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	Title      lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Panel      lipgloss.Style
	Label      lipgloss.Style
	LabelFloat lipgloss.Style
	Input      lipgloss.Style
	Button     lipgloss.Style
	ButtonBusy lipgloss.Style
	ButtonDone lipgloss.Style
	KeyHint    lipgloss.Style
}

func color(c theme.RGB) lipgloss.Color { return lipgloss.Color(c.Hex()) }

// StylesFor builds the styles of a theme. scrolled selects the more opaque
// header background used once the page has been scrolled.
func StylesFor(t theme.Theme, scrolled bool) Styles {
	p := theme.PaletteFor(t)
	bg := color(p.Background)
	header := blend(p.Background, p.Header, p.HeaderAlpha(scrolled))

	s := Styles{Palette: p}
	s.Page = lipgloss.NewStyle().Background(bg).Foreground(color(p.Text))
	s.Header = lipgloss.NewStyle().
		Background(color(header)).
		Foreground(color(p.Text)).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(color(header))
	if scrolled {
		s.Header = s.Header.BorderForeground(color(p.Muted))
	}
	s.Brand = lipgloss.NewStyle().Bold(true).Foreground(color(p.Accent))
	s.NavItem = lipgloss.NewStyle().Foreground(color(p.Muted)).Padding(0, 1)
	s.NavActive = lipgloss.NewStyle().Foreground(color(p.Accent)).Bold(true).Underline(true).Padding(0, 1)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(color(p.Accent)).MarginBottom(1)
	s.Body = lipgloss.NewStyle().Foreground(color(p.Text))
	s.Muted = lipgloss.NewStyle().Foreground(color(p.Muted))
	s.Accent = lipgloss.NewStyle().Foreground(color(p.Accent)).Bold(true)
	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(p.Muted)).
		Padding(1, 2)
	s.Label = lipgloss.NewStyle().Foreground(color(p.Muted))
	s.LabelFloat = lipgloss.NewStyle().Foreground(color(p.Accent)).Italic(true)
	s.Input = lipgloss.NewStyle().Foreground(color(p.Text)).Underline(true)
	s.Button = lipgloss.NewStyle().Bold(true).Foreground(color(p.Background)).Background(color(p.Accent)).Padding(0, 2)
	s.ButtonBusy = s.Button.Background(color(p.Muted))
	s.ButtonDone = s.Button.Background(lipgloss.Color("#10b981"))
	s.KeyHint = lipgloss.NewStyle().Foreground(color(p.Muted)).Italic(true)
	return s
}
