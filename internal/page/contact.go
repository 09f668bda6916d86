package page

import (
	"log/slog"
	"strings"
	"time"
)

type FormState int

const (
	FormIdle FormState = iota
	FormSending
	FormSent
)

func (s FormState) String() string {
	switch s {
	case FormSending:
		return "sending"
	case FormSent:
		return "sent"
	}
	return "idle"
}

// Input is one form field with a floating label.
type Input struct {
	Name    string
	Value   string
	focused bool
}

// HasValue reports whether the label floats above the field.
func (in *Input) HasValue() bool {
	return in.focused || strings.TrimSpace(in.Value) != ""
}

func (in *Input) Focused() bool { return in.focused }

// ContactForm simulates sending a message: nothing leaves the process.
type ContactForm struct {
	Inputs []*Input

	sending time.Duration
	sent    time.Duration
	logger  *slog.Logger

	state   FormState
	changed time.Time
}

func NewContactForm(sending, sent time.Duration, logger *slog.Logger, names ...string) *ContactForm {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	f := &ContactForm{sending: sending, sent: sent, logger: logger}
	for _, n := range names {
		f.Inputs = append(f.Inputs, &Input{Name: n})
	}
	return f
}

func (f *ContactForm) Input(name string) *Input {
	for _, in := range f.Inputs {
		if in.Name == name {
			return in
		}
	}
	return nil
}

func (f *ContactForm) Set(name, value string) {
	if in := f.Input(name); in != nil {
		in.Value = value
	}
}

func (f *ContactForm) Focus(name string) {
	for _, in := range f.Inputs {
		in.focused = in.Name == name
	}
}

func (f *ContactForm) Blur() {
	for _, in := range f.Inputs {
		in.focused = false
	}
}

func (f *ContactForm) State() FormState { return f.state }

// Disabled reports whether the submit button is disabled.
func (f *ContactForm) Disabled() bool { return f.state != FormIdle }

func (f *ContactForm) ButtonLabel() string {
	switch f.state {
	case FormSending:
		return "Sending..."
	case FormSent:
		return "Message Sent!"
	}
	return "Send Message"
}

// Values returns the submitted data keyed by field name.
func (f *ContactForm) Values() map[string]string {
	out := make(map[string]string, len(f.Inputs))
	for _, in := range f.Inputs {
		out[in.Name] = in.Value
	}
	return out
}

// Submit starts a simulated submission. It is ignored while a previous
// submission is still in flight.
func (f *ContactForm) Submit(now time.Time) bool {
	if f.state != FormIdle {
		return false
	}
	f.state = FormSending
	f.changed = now

	attrs := make([]any, 0, 2*len(f.Inputs))
	for _, in := range f.Inputs {
		attrs = append(attrs, in.Name, in.Value)
	}
	f.logger.Info("form submitted", slog.Group("data", attrs...))
	return true
}

// Update advances the form through sending and sent back to idle, clearing
// the inputs on the way out.
func (f *ContactForm) Update(now time.Time) FormState {
	switch f.state {
	case FormSending:
		if now.Sub(f.changed) >= f.sending {
			f.state = FormSent
			f.changed = f.changed.Add(f.sending)
		}
	}
	if f.state == FormSent && now.Sub(f.changed) >= f.sent {
		f.state = FormIdle
		f.changed = f.changed.Add(f.sent)
		for _, in := range f.Inputs {
			in.Value = ""
			in.focused = false
		}
	}
	return f.state
}
