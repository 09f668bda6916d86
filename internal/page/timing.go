package page

import (
	"sync"
	"time"
)

// Debouncer runs only the last call made within the wait window.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Call schedules fn after the wait, cancelling any call still pending.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop drops any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttle lets at most one event through per limit.
type Throttle struct {
	limit time.Duration
	last  time.Time
}

func NewThrottle(limit time.Duration) *Throttle {
	return &Throttle{limit: limit}
}

func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.limit {
		return false
	}
	t.last = now
	return true
}
