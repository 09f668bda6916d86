package page

import "math/rand"

// Loader fakes asset loading progress with random increments.
type Loader struct {
	rng      *rand.Rand
	maxStep  float64
	progress float64
}

func NewLoader(rng *rand.Rand, maxStep float64) *Loader {
	if maxStep <= 0 {
		maxStep = 15
	}
	return &Loader{rng: rng, maxStep: maxStep}
}

// Tick advances progress by up to maxStep percent and reports whether
// loading has completed. Ticks after completion change nothing.
func (l *Loader) Tick() (percent int, done bool) {
	if l.progress < 100 {
		l.progress += l.rng.Float64() * l.maxStep
		if l.progress > 100 {
			l.progress = 100
		}
	}
	return l.Percent(), l.Done()
}

func (l *Loader) Percent() int { return int(l.progress) }

// Fraction is progress in [0, 1] for progress bars.
func (l *Loader) Fraction() float64 { return l.progress / 100 }

func (l *Loader) Done() bool { return l.progress >= 100 }
