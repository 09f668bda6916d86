package page

import "time"

type Effect string

const (
	FadeIn     Effect = "fade-in"
	SlideLeft  Effect = "slide-in-left"
	SlideRight Effect = "slide-in-right"
)

// Group names the kinds of page elements that animate in.
type Group string

const (
	GroupAbout        Group = "about"
	GroupProfileCard  Group = "profile-card"
	GroupSkills       Group = "skills"
	GroupTimeline     Group = "timeline"
	GroupProjects     Group = "projects"
	GroupCertificates Group = "certificates"
	GroupProfileLinks Group = "profile-links"
	GroupContactInfo  Group = "contact-info"
	GroupContactForm  Group = "contact-form"
)

// Animation is how one element enters the viewport.
type Animation struct {
	Effect Effect
	Delay  time.Duration
}

// AnimationFor returns the entrance animation of the index-th element of
// a group. Lists are staggered; the timeline alternates sides.
func AnimationFor(g Group, index int) Animation {
	switch g {
	case GroupSkills:
		return Animation{FadeIn, time.Duration(index) * 50 * time.Millisecond}
	case GroupProjects, GroupCertificates, GroupProfileLinks:
		return Animation{FadeIn, time.Duration(index) * 100 * time.Millisecond}
	case GroupTimeline:
		if index%2 == 0 {
			return Animation{Effect: SlideLeft}
		}
		return Animation{Effect: SlideRight}
	case GroupContactInfo:
		return Animation{Effect: SlideLeft}
	case GroupContactForm:
		return Animation{Effect: SlideRight}
	}
	return Animation{Effect: FadeIn}
}

type Viewport struct {
	Top, Height float64
}

type Element struct {
	ID          string
	Top, Height float64
}

// VisibleFraction is the share of el inside the viewport after shrinking
// the viewport's bottom edge by bottomMargin.
func VisibleFraction(el Element, vp Viewport, bottomMargin float64) float64 {
	top := vp.Top
	bottom := vp.Top + vp.Height - bottomMargin
	if el.Height <= 0 {
		if el.Top >= top && el.Top <= bottom {
			return 1
		}
		return 0
	}
	lo := max(el.Top, top)
	hi := min(el.Top+el.Height, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / el.Height
}

// Revealer remembers which elements have been revealed. Reveals are
// permanent: scrolling an element back out of view does not hide it.
type Revealer struct {
	Threshold    float64
	BottomMargin float64
	revealed     map[string]bool
}

func NewRevealer(threshold, bottomMargin float64) *Revealer {
	return &Revealer{Threshold: threshold, BottomMargin: bottomMargin, revealed: make(map[string]bool)}
}

// Observe checks every element against the viewport and returns the ids
// revealed by this call.
func (r *Revealer) Observe(vp Viewport, els ...Element) []string {
	var fresh []string
	for _, el := range els {
		if r.revealed[el.ID] {
			continue
		}
		f := VisibleFraction(el, vp, r.BottomMargin)
		if f > 0 && f >= r.Threshold {
			r.revealed[el.ID] = true
			fresh = append(fresh, el.ID)
		}
	}
	return fresh
}

func (r *Revealer) Revealed(id string) bool { return r.revealed[id] }
