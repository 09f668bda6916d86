package page

import (
	"sync"
	"time"
)

// Screen is the window size a host has applied to its surface. Observed
// sizes are applied after the debounce wait, so a drag-resize regenerates
// the particle field once.
type Screen struct {
	mu           sync.Mutex
	w, h         int
	seenW, seenH int
	breakpoint   int

	debounce *Debouncer
	onApply  func(w, h int)
}

// NewScreen starts at w x h. onApply runs on the debounce timer goroutine
// after the new size is stored.
func NewScreen(w, h, breakpoint int, wait time.Duration, onApply func(w, h int)) *Screen {
	return &Screen{
		w: w, h: h,
		seenW: w, seenH: h,
		breakpoint: breakpoint,
		debounce:   NewDebouncer(wait),
		onApply:    onApply,
	}
}

// Observe records the current window size and schedules it if it differs
// from the last one observed.
func (s *Screen) Observe(w, h int) {
	s.mu.Lock()
	if w == s.seenW && h == s.seenH {
		s.mu.Unlock()
		return
	}
	s.seenW, s.seenH = w, h
	s.mu.Unlock()

	s.debounce.Call(func() { s.apply(w, h) })
}

func (s *Screen) apply(w, h int) {
	s.mu.Lock()
	s.w, s.h = w, h
	s.mu.Unlock()
	if s.onApply != nil {
		s.onApply(w, h)
	}
}

func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// Mobile reports whether the applied width hides the particle field.
func (s *Screen) Mobile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IsMobile(s.w, s.breakpoint)
}

func (s *Screen) Stop() { s.debounce.Stop() }
