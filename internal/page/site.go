package page

// Stat is one animated counter on the about section.
type Stat struct {
	Label string
	Value float64
}

// Block is a section body: a reveal group and its items.
type Block struct {
	Group Group
	Items []string
}

// Site is the static content the hosts lay out.
type Site struct {
	Name     string
	Hero     string
	Sections []Section
	Blocks   map[string]Block
	Stats    []Stat
	Fields   []string
}

// DefaultSite lays the sections out on a page of the given section height,
// in the same units as the host's scroll position.
func DefaultSite(sectionHeight float64) Site {
	ids := []struct{ id, title string }{
		{"home", "Home"},
		{"about", "About"},
		{"skills", "Skills"},
		{"experience", "Experience"},
		{"projects", "Projects"},
		{"certificates", "Certificates"},
		{"contact", "Contact"},
	}
	sections := make([]Section, len(ids))
	for i, s := range ids {
		sections[i] = Section{ID: s.id, Title: s.title, Top: float64(i) * sectionHeight, Height: sectionHeight}
	}

	return Site{
		Name:     "Portfolio",
		Hero:     "Building reliable systems, one frame at a time.",
		Sections: sections,
		Blocks: map[string]Block{
			"about":        {GroupAbout, []string{"Software engineer focused on simulation and tooling.", "Based wherever the terminal is."}},
			"skills":       {GroupSkills, []string{"Go", "Distributed systems", "Simulation", "Terminal UIs", "Graphics"}},
			"experience":   {GroupTimeline, []string{"2023 - now  Senior engineer", "2020 - 2023  Engineer", "2018 - 2020  Intern"}},
			"projects":     {GroupProjects, []string{"constellation: particle backgrounds", "orbit: n-body playground"}},
			"certificates": {GroupCertificates, []string{"Cloud architecture", "Kubernetes administration"}},
			"contact":      {GroupContactForm, []string{"name", "email", "message"}},
		},
		Stats: []Stat{
			{"Years", 6},
			{"Projects", 42},
			{"Rating", 4.9},
		},
		Fields: []string{"name", "email", "message"},
	}
}
