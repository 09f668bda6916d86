package field

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/constellation/internal/theme"
)

// Config configures a Field.
type Config struct {
	Params Params // zero value means DefaultParams
	Seed   int64 // 0 seeds from the clock
	Logger *slog.Logger
}

// Field is one particle background bound to a drawing surface.
type Field struct {
	mu sync.Mutex

	surface Surface
	source  theme.Source
	params  Params
	rng     *rand.Rand
	logger  *slog.Logger

	width, height int
	particles     []Particle
	pointerX      float64
	pointerY      float64

	frame     uint64
	running   bool
	stopped   bool
	observers []Observer
}

// New builds a field covering the surface. A nil surface yields an inert
// field that never draws and never fails, so hosts without a drawing target
// can keep calling it unconditionally.
func New(surface Surface, source theme.Source, cfg Config) (*Field, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Params == (Params{}) {
		cfg.Params = DefaultParams()
	}
	f := &Field{source: source, params: cfg.Params, logger: logger}
	if surface == nil {
		return f, nil
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f.surface = surface
	f.rng = rand.New(rand.NewSource(seed))
	w, h := surface.Size()
	f.populate(w, h)
	return f, nil
}

// AddObserver registers o to receive the stats of every drawn frame.
func (f *Field) AddObserver(o Observer) {
	f.mu.Lock()
	f.observers = append(f.observers, o)
	f.mu.Unlock()
}

func (f *Field) populate(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.width, f.height = w, h
	n := f.params.Count(w, h)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = spawn(f.rng, float64(w), float64(h), f.params)
	}
}

// Resize adopts the new surface size and replaces every particle.
func (f *Field) Resize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.surface == nil {
		return
	}
	f.populate(w, h)
	f.logger.Debug("field resized", "width", f.width, "height", f.height, "particles", len(f.particles))
}

// SetPointer records the pointer position. Positions outside the surface
// are kept as given.
func (f *Field) SetPointer(x, y float64) {
	f.mu.Lock()
	f.pointerX, f.pointerY = x, y
	f.mu.Unlock()
}

// Pointer returns the last position passed to SetPointer.
func (f *Field) Pointer() (x, y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pointerX, f.pointerY
}

// Frame advances and draws one tick. It reports false when nothing was
// drawn because the field is inert or stopped.
func (f *Field) Frame() (FrameStats, bool) {
	f.mu.Lock()
	if f.surface == nil || f.stopped {
		f.mu.Unlock()
		return FrameStats{}, false
	}
	stats := f.step()
	observers := f.observers
	f.mu.Unlock()

	for _, o := range observers {
		o.OnFrame(stats)
	}
	return stats, true
}

func (f *Field) step() FrameStats {
	f.frame++
	f.surface.Clear()

	t := theme.Sample(f.source)
	pal := theme.PaletteFor(t)
	p := f.params
	w, h := float64(f.width), float64(f.height)

	stats := FrameStats{Frame: f.frame, Particles: len(f.particles), Theme: t}
	for i := range f.particles {
		pt := &f.particles[i]
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.attract(f.pointerX, f.pointerY, p.PointerRadius, p.PointerForce)
		pt.reflect(w, h)
		pt.VX *= p.Friction
		pt.VY *= p.Friction

		stats.KineticEnergy += 0.5 * (pt.VX*pt.VX + pt.VY*pt.VY)

		f.surface.FillCircle(pt.X, pt.Y, pt.Radius, Paint{RGB: pal.Particle, Alpha: pt.Opacity * pal.ParticleAlpha})

		for j := i + 1; j < len(f.particles); j++ {
			other := f.particles[j]
			d := pt.distance(other)
			if d >= p.LinkDistance {
				continue
			}
			alpha := pal.LinkAlpha * (1 - d/p.LinkDistance)
			f.surface.StrokeLine(pt.X, pt.Y, other.X, other.Y, p.LinkWidth, Paint{RGB: pal.Link, Alpha: alpha})
			stats.Links++
		}
	}
	return stats
}

// Run drives Frame once per tick until Stop is called, ctx is cancelled or
// ticks is closed.
func (f *Field) Run(ctx context.Context, ticks <-chan time.Time) error {
	f.mu.Lock()
	if f.surface == nil || f.stopped {
		f.mu.Unlock()
		return nil
	}
	if f.running {
		f.mu.Unlock()
		return ErrAlreadyRunning
	}
	f.running = true
	f.mu.Unlock()

	f.logger.Debug("frame loop started")
	defer func() {
		f.mu.Lock()
		f.running = false
		f.mu.Unlock()
		f.logger.Debug("frame loop finished")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if _, drawn := f.Frame(); !drawn {
				return nil
			}
		}
	}
}

// Stop ends the frame loop for good. Calling it again has no effect.
func (f *Field) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.stopped = true
	f.logger.Debug("field stopped", "frames", f.frame)
}

// Running reports whether a Run loop is active.
func (f *Field) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// Stopped reports whether Stop has been called.
func (f *Field) Stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// Inert reports whether the field was built without a surface.
func (f *Field) Inert() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.surface == nil
}

// Size is the surface size the particles were generated for.
func (f *Field) Size() (w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// Len is the current number of particles.
func (f *Field) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.particles)
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Params returns the parameters the field was built with.
func (f *Field) Params() Params {
	return f.params
}

// Frames is the number of frames drawn so far.
func (f *Field) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frame
}
