package metrics

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/constellation/internal/field"
	"gonum.org/v1/gonum/stat"
)

// Recorder collects per-frame statistics from a field. It satisfies
// field.Observer.
type Recorder struct {
	mu        sync.Mutex
	energy    []float64
	links     []float64
	durations []float64 // milliseconds
	particles int
}

// NewRecorder preallocates room for capacity frames; negative is treated as 0.
func NewRecorder(capacity int) *Recorder {
	capacity = max(capacity, 0)
	return &Recorder{
		energy:    make([]float64, 0, capacity),
		links:     make([]float64, 0, capacity),
		durations: make([]float64, 0, capacity),
	}
}

func (r *Recorder) OnFrame(s field.FrameStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.energy = append(r.energy, s.KineticEnergy)
	r.links = append(r.links, float64(s.Links))
	r.particles = s.Particles
}

// ObserveDuration records how long one frame took to compute and draw.
func (r *Recorder) ObserveDuration(d time.Duration) {
	r.mu.Lock()
	r.durations = append(r.durations, float64(d)/float64(time.Millisecond))
	r.mu.Unlock()
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.energy = r.energy[:0]
	r.links = r.links[:0]
	r.durations = r.durations[:0]
	r.particles = 0
}

// Energy returns a copy of the kinetic energy series.
func (r *Recorder) Energy() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.energy...)
}

type Summary struct {
	Frames      int
	Particles   int
	MeanEnergy  float64
	FinalEnergy float64
	MeanLinks   float64
	MaxLinks    float64
	MeanFrameMs float64
	StdFrameMs  float64
	P95FrameMs  float64
}

func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{Frames: len(r.energy), Particles: r.particles}
	if len(r.energy) > 0 {
		s.MeanEnergy = stat.Mean(r.energy, nil)
		s.FinalEnergy = r.energy[len(r.energy)-1]
		s.MeanLinks = stat.Mean(r.links, nil)
		for _, l := range r.links {
			s.MaxLinks = max(s.MaxLinks, l)
		}
	}
	if len(r.durations) > 0 {
		s.MeanFrameMs, s.StdFrameMs = stat.MeanStdDev(r.durations, nil)
		sorted := append([]float64(nil), r.durations...)
		sort.Float64s(sorted)
		s.P95FrameMs = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Int("particles", s.Particles),
		slog.Float64("mean_energy", s.MeanEnergy),
		slog.Float64("mean_links", s.MeanLinks),
		slog.Float64("mean_frame_ms", s.MeanFrameMs),
		slog.Float64("p95_frame_ms", s.P95FrameMs),
	)
}

// EnergyChart plots the kinetic energy series as an ASCII chart.
func (r *Recorder) EnergyChart(width, height int) string {
	data := r.Energy()
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("kinetic energy per frame"),
	)
}
