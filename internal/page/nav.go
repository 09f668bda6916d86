package page

import "strings"

type Section struct {
	ID     string
	Title  string
	Top    float64
	Height float64
}

func (s Section) contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Nav tracks which section is active and whether the mobile menu is open.
type Nav struct {
	Sections   []Section
	Offset     float64 // added to scrollY before matching sections
	ScrolledAt float64

	active   string
	menuOpen bool
}

func NewNav(sections []Section, offset, scrolledAt float64) *Nav {
	n := &Nav{Sections: sections, Offset: offset, ScrolledAt: scrolledAt}
	n.Update(0)
	return n
}

// Update recomputes the active section for scrollY. When several sections
// match, the last one wins; when none does, the previous one stays active.
func (n *Nav) Update(scrollY float64) string {
	y := scrollY + n.Offset
	for _, s := range n.Sections {
		if s.contains(y) {
			n.active = s.ID
		}
	}
	return n.active
}

func (n *Nav) Active() string { return n.active }

// Scrolled reports whether the header should switch to its opaque style.
func (n *Nav) Scrolled(scrollY float64) bool {
	return scrollY > n.ScrolledAt
}

func (n *Nav) Section(id string) (Section, bool) {
	id = strings.TrimPrefix(id, "#")
	for _, s := range n.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// ScrollTarget is the scroll position that puts the section just below a
// header of the given height.
func (n *Nav) ScrollTarget(id string, headerHeight float64) (float64, bool) {
	s, ok := n.Section(id)
	if !ok {
		return 0, false
	}
	return s.Top - headerHeight, true
}

// Select follows a navigation link: it closes the menu and returns the
// scroll target. Unknown ids still close the menu.
func (n *Nav) Select(id string, headerHeight float64) (float64, bool) {
	n.menuOpen = false
	return n.ScrollTarget(id, headerHeight)
}

// Next returns the section after id, wrapping to the first.
func (n *Nav) Next(id string) Section {
	if len(n.Sections) == 0 {
		return Section{}
	}
	for i, s := range n.Sections {
		if s.ID == id {
			return n.Sections[(i+1)%len(n.Sections)]
		}
	}
	return n.Sections[0]
}

func (n *Nav) ToggleMenu() bool {
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

func (n *Nav) MenuOpen() bool { return n.menuOpen }

// Height is the total height covered by the sections.
func (n *Nav) Height() float64 {
	var bottom float64
	for _, s := range n.Sections {
		if b := s.Top + s.Height; b > bottom {
			bottom = b
		}
	}
	return bottom
}

// BackToTopVisible reports whether the back-to-top button is shown.
func BackToTopVisible(scrollY, threshold float64) bool {
	return scrollY > threshold
}

// IsMobile reports whether a viewport this wide counts as mobile. The
// particle background is hidden on mobile viewports.
func IsMobile(width, breakpoint int) bool {
	return width <= breakpoint
}
