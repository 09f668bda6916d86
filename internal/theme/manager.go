package theme

import (
	"log/slog"
	"sync"
)

// Store persists the chosen theme between sessions.
type Store interface {
	LoadTheme() (string, error)
	SaveTheme(string) error
}

// Manager owns the current theme. It is a Source, so hosts hand it straight
// to the particle field.
type Manager struct {
	mu      sync.RWMutex
	current Theme
	store   Store
	logger  *slog.Logger
	onSwap  []func(Theme)
}

// NewManager restores the persisted theme. A missing store, a read error or
// an unknown stored value all fall back to the default.
func NewManager(store Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{current: Default, store: store, logger: logger}
	if store == nil {
		return m
	}
	raw, err := store.LoadTheme()
	if err != nil {
		logger.Warn("theme preference unreadable", "error", err)
		return m
	}
	t, err := Parse(raw)
	if err != nil {
		logger.Warn("ignoring stored theme", "value", raw)
		return m
	}
	m.current = t
	return m
}

func (m *Manager) Current() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// OnChange registers fn to run after every switch.
func (m *Manager) OnChange(fn func(Theme)) {
	m.mu.Lock()
	m.onSwap = append(m.onSwap, fn)
	m.mu.Unlock()
}

// Set switches to t and persists it. The in-memory switch happens even if
// persisting fails; the error is returned so callers can report it.
func (m *Manager) Set(t Theme) error {
	if !t.Valid() {
		return ErrUnknownTheme
	}
	m.mu.Lock()
	m.current = t
	hooks := append([]func(Theme){}, m.onSwap...)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(t)
	}
	m.logger.Debug("theme switched", "theme", t)

	if m.store == nil {
		return nil
	}
	return m.store.SaveTheme(string(t))
}

// Toggle flips between light and dark and returns the new theme.
func (m *Manager) Toggle() (Theme, error) {
	next := m.Current().Toggle()
	return next, m.Set(next)
}
