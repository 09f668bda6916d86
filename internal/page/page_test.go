package page_test

import (
	"math/rand"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/constellation/internal/page"
)

var _ = Describe("Loader", func() {
	It("reaches 100 and stays there", func() {
		l := page.NewLoader(rand.New(rand.NewSource(1)), 15)
		last := 0
		for i := 0; i < 1000 && !l.Done(); i++ {
			pct, _ := l.Tick()
			Expect(pct).To(BeNumerically(">=", last))
			Expect(pct).To(BeNumerically("<=", 100))
			last = pct
		}
		Expect(l.Done()).To(BeTrue())
		pct, done := l.Tick()
		Expect(pct).To(Equal(100))
		Expect(done).To(BeTrue())
		Expect(l.Fraction()).To(Equal(1.0))
	})

	It("never advances more than the max step per tick", func() {
		l := page.NewLoader(rand.New(rand.NewSource(2)), 15)
		prev := 0.0
		for !l.Done() {
			l.Tick()
			Expect(l.Fraction()*100 - prev).To(BeNumerically("<=", 15))
			prev = l.Fraction() * 100
		}
	})
})

var _ = Describe("Nav", func() {
	var nav *page.Nav

	BeforeEach(func() {
		nav = page.NewNav(page.DefaultSite(600).Sections, 100, 50)
	})

	It("highlights the section under scroll position plus offset", func() {
		Expect(nav.Active()).To(Equal("home"))
		Expect(nav.Update(499)).To(Equal("home"))
		Expect(nav.Update(500)).To(Equal("about"))
		Expect(nav.Update(1099)).To(Equal("about"))
		Expect(nav.Update(1100)).To(Equal("skills"))
	})

	It("keeps the last active section when nothing matches", func() {
		nav.Update(650)
		Expect(nav.Update(1e6)).To(Equal("about"))
	})

	It("computes scroll targets below the header", func() {
		y, ok := nav.ScrollTarget("#projects", 70)
		Expect(ok).To(BeTrue())
		Expect(y).To(Equal(4*600.0 - 70))

		_, ok = nav.ScrollTarget("#missing", 70)
		Expect(ok).To(BeFalse())
	})

	It("closes the menu when a link is selected", func() {
		Expect(nav.ToggleMenu()).To(BeTrue())
		_, ok := nav.Select("contact", 0)
		Expect(ok).To(BeTrue())
		Expect(nav.MenuOpen()).To(BeFalse())
	})

	It("switches the header style past the scroll threshold", func() {
		Expect(nav.Scrolled(50)).To(BeFalse())
		Expect(nav.Scrolled(51)).To(BeTrue())
	})

	It("cycles through sections", func() {
		Expect(nav.Next("home").ID).To(Equal("about"))
		Expect(nav.Next("contact").ID).To(Equal("home"))
	})

	It("shows back-to-top past 300", func() {
		Expect(page.BackToTopVisible(300, 300)).To(BeFalse())
		Expect(page.BackToTopVisible(301, 300)).To(BeTrue())
	})

	It("treats narrow viewports as mobile", func() {
		Expect(page.IsMobile(768, 768)).To(BeTrue())
		Expect(page.IsMobile(769, 768)).To(BeFalse())
	})
})

var _ = Describe("Typewriter", func() {
	tw := page.NewTypewriter("héllo", time.Second, 50*time.Millisecond)

	DescribeTable("visible text",
		func(elapsed time.Duration, want string) {
			Expect(tw.Visible(elapsed)).To(Equal(want))
		},
		Entry("before the delay", 999*time.Millisecond, ""),
		Entry("at the delay", time.Second, "h"),
		Entry("one step later", 1050*time.Millisecond, "hé"),
		Entry("finished", 5*time.Second, "héllo"),
	)

	It("reports completion", func() {
		Expect(tw.Done(time.Second)).To(BeFalse())
		Expect(tw.Done(1200 * time.Millisecond)).To(BeTrue())
	})
})

var _ = Describe("Reveal", func() {
	It("staggers list animations", func() {
		Expect(page.AnimationFor(page.GroupSkills, 3)).To(Equal(page.Animation{Effect: page.FadeIn, Delay: 150 * time.Millisecond}))
		Expect(page.AnimationFor(page.GroupProjects, 2).Delay).To(Equal(200 * time.Millisecond))
		Expect(page.AnimationFor(page.GroupTimeline, 0).Effect).To(Equal(page.SlideLeft))
		Expect(page.AnimationFor(page.GroupTimeline, 1).Effect).To(Equal(page.SlideRight))
		Expect(page.AnimationFor(page.GroupContactForm, 0).Effect).To(Equal(page.SlideRight))
	})

	It("measures visibility against the shrunk viewport", func() {
		vp := page.Viewport{Top: 0, Height: 500}
		Expect(page.VisibleFraction(page.Element{Top: 100, Height: 100}, vp, 50)).To(Equal(1.0))
		Expect(page.VisibleFraction(page.Element{Top: 400, Height: 100}, vp, 50)).To(Equal(0.5))
		Expect(page.VisibleFraction(page.Element{Top: 460, Height: 100}, vp, 50)).To(Equal(0.0))
	})

	It("reveals once and never hides", func() {
		r := page.NewRevealer(0.1, 50)
		el := page.Element{ID: "card", Top: 1000, Height: 200}

		Expect(r.Observe(page.Viewport{Top: 0, Height: 800}, el)).To(BeEmpty())
		Expect(r.Observe(page.Viewport{Top: 400, Height: 800}, el)).To(ConsistOf("card"))
		Expect(r.Observe(page.Viewport{Top: 400, Height: 800}, el)).To(BeEmpty())
		r.Observe(page.Viewport{Top: 0, Height: 800}, el)
		Expect(r.Revealed("card")).To(BeTrue())
	})
})

var _ = Describe("Counter", func() {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	It("eases out", func() {
		Expect(page.EaseOutCubic(0)).To(Equal(0.0))
		Expect(page.EaseOutCubic(1)).To(Equal(1.0))
		Expect(page.EaseOutCubic(0.5)).To(BeNumerically("~", 0.875, 1e-12))
	})

	It("counts whole targets in integers", func() {
		c := page.NewCounter("Projects", 42, 2*time.Second)
		Expect(c.Text(start)).To(Equal("0"))
		Expect(c.Start(start)).To(BeTrue())
		Expect(c.Text(start.Add(time.Second))).To(Equal("36"))
		Expect(c.Text(start.Add(3 * time.Second))).To(Equal("42"))
		Expect(c.Done(start.Add(2 * time.Second))).To(BeTrue())
	})

	It("counts fractional targets with one decimal", func() {
		c := page.NewCounter("Rating", 4.9, 2*time.Second)
		c.Start(start)
		Expect(c.Text(start.Add(time.Second))).To(Equal("4.3"))
		Expect(c.Text(start.Add(2 * time.Second))).To(Equal("4.9"))
	})

	It("starts only once", func() {
		c := page.NewCounter("Years", 6, time.Second)
		Expect(c.Start(start)).To(BeTrue())
		Expect(c.Start(start.Add(time.Hour))).To(BeFalse())
		Expect(c.Done(start.Add(time.Second))).To(BeTrue())
	})
})

var _ = Describe("ContactForm", func() {
	var (
		form *page.ContactForm
		t0   time.Time
	)

	BeforeEach(func() {
		form = page.NewContactForm(1500*time.Millisecond, 2*time.Second, nil, "name", "email", "message")
		t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	})

	It("floats labels for focused or filled inputs", func() {
		in := form.Input("email")
		Expect(in.HasValue()).To(BeFalse())
		form.Focus("email")
		Expect(in.HasValue()).To(BeTrue())
		form.Blur()
		Expect(in.HasValue()).To(BeFalse())
		form.Set("email", "   ")
		Expect(in.HasValue()).To(BeFalse())
		form.Set("email", "a@b.c")
		Expect(in.HasValue()).To(BeTrue())
	})

	It("walks through sending and sent back to idle", func() {
		form.Set("name", "Ada")
		Expect(form.Submit(t0)).To(BeTrue())
		Expect(form.State()).To(Equal(page.FormSending))
		Expect(form.Disabled()).To(BeTrue())
		Expect(form.ButtonLabel()).To(Equal("Sending..."))

		Expect(form.Update(t0.Add(1499 * time.Millisecond))).To(Equal(page.FormSending))
		Expect(form.Update(t0.Add(1500 * time.Millisecond))).To(Equal(page.FormSent))
		Expect(form.ButtonLabel()).To(Equal("Message Sent!"))

		Expect(form.Update(t0.Add(3400 * time.Millisecond))).To(Equal(page.FormSent))
		Expect(form.Update(t0.Add(3500 * time.Millisecond))).To(Equal(page.FormIdle))
		Expect(form.Input("name").Value).To(BeEmpty())
		Expect(form.Disabled()).To(BeFalse())
	})

	It("ignores submissions while busy", func() {
		Expect(form.Submit(t0)).To(BeTrue())
		Expect(form.Submit(t0.Add(time.Second))).To(BeFalse())
	})

	It("catches up when updates are late", func() {
		form.Submit(t0)
		Expect(form.Update(t0.Add(10 * time.Second))).To(Equal(page.FormIdle))
	})
})

var _ = Describe("Timing", func() {
	It("debounces bursts into one call", func() {
		var calls atomic.Int32
		d := page.NewDebouncer(20 * time.Millisecond)
		for i := 0; i < 5; i++ {
			d.Call(func() { calls.Add(1) })
		}
		Eventually(calls.Load).Should(Equal(int32(1)))
		Consistently(calls.Load, 60*time.Millisecond).Should(Equal(int32(1)))
	})

	It("drops pending calls on stop", func() {
		var calls atomic.Int32
		d := page.NewDebouncer(20 * time.Millisecond)
		d.Call(func() { calls.Add(1) })
		d.Stop()
		Consistently(calls.Load, 60*time.Millisecond).Should(BeZero())
	})

	It("throttles", func() {
		th := page.NewThrottle(100 * time.Millisecond)
		now := time.Now()
		Expect(th.Allow(now)).To(BeTrue())
		Expect(th.Allow(now.Add(50 * time.Millisecond))).To(BeFalse())
		Expect(th.Allow(now.Add(100 * time.Millisecond))).To(BeTrue())
	})
})

var _ = Describe("Screen", func() {
	It("applies a burst of sizes once, with the last size", func() {
		var applied atomic.Int32
		s := page.NewScreen(1280, 720, 768, 20*time.Millisecond, func(w, h int) { applied.Add(1) })
		s.Observe(1000, 700)
		s.Observe(900, 650)
		s.Observe(600, 500)

		w, _ := s.Size()
		Expect(w).To(Equal(1280))
		Eventually(applied.Load).Should(Equal(int32(1)))
		w, h := s.Size()
		Expect([]int{w, h}).To(Equal([]int{600, 500}))
		Expect(s.Mobile()).To(BeTrue())
	})

	It("ignores unchanged sizes", func() {
		var applied atomic.Int32
		s := page.NewScreen(1280, 720, 768, 10*time.Millisecond, func(w, h int) { applied.Add(1) })
		s.Observe(1280, 720)
		Consistently(applied.Load, 50*time.Millisecond).Should(BeZero())
		Expect(s.Mobile()).To(BeFalse())
	})
})
