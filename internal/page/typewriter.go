package page

import "time"

// Typewriter reveals text one rune at a time after an initial delay.
type Typewriter struct {
	text  []rune
	delay time.Duration
	speed time.Duration
}

func NewTypewriter(text string, delay, speed time.Duration) Typewriter {
	if speed <= 0 {
		speed = 50 * time.Millisecond
	}
	return Typewriter{text: []rune(text), delay: delay, speed: speed}
}

// Visible is the typed prefix after elapsed time. The first rune appears
// exactly when the delay runs out.
func (t Typewriter) Visible(elapsed time.Duration) string {
	return string(t.text[:t.count(elapsed)])
}

func (t Typewriter) count(elapsed time.Duration) int {
	if elapsed < t.delay {
		return 0
	}
	n := int((elapsed-t.delay)/t.speed) + 1
	if n > len(t.text) {
		n = len(t.text)
	}
	return n
}

func (t Typewriter) Done(elapsed time.Duration) bool {
	return t.count(elapsed) == len(t.text)
}
