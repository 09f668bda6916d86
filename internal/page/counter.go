package page

import (
	"math"
	"strconv"
	"time"
)

func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Counter animates a statistic from zero to its target once.
type Counter struct {
	Label    string
	Target   float64
	Duration time.Duration

	started bool
	start   time.Time
}

func NewCounter(label string, target float64, d time.Duration) *Counter {
	return &Counter{Label: label, Target: target, Duration: d}
}

// Start begins the animation. Only the first call counts.
func (c *Counter) Start(now time.Time) bool {
	if c.started {
		return false
	}
	c.started = true
	c.start = now
	return true
}

func (c *Counter) Started() bool { return c.started }

func (c *Counter) progress(now time.Time) float64 {
	if !c.started {
		return 0
	}
	if c.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(c.start)) / float64(c.Duration)
	return math.Max(0, math.Min(p, 1))
}

func (c *Counter) Value(now time.Time) float64 {
	return c.Target * EaseOutCubic(c.progress(now))
}

func (c *Counter) Done(now time.Time) bool {
	return c.started && c.progress(now) >= 1
}

// Text formats the current value: whole targets count in integers,
// fractional targets with one decimal. The last frame shows the exact target.
func (c *Counter) Text(now time.Time) string {
	whole := math.Mod(c.Target, 1) == 0
	v := c.Value(now)
	if c.Done(now) {
		v = c.Target
		if whole {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if whole {
		return strconv.Itoa(int(math.Floor(v)))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
