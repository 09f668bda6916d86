package field

import (
	"fmt"
	"math"
)

// Params are the tunable constants of the simulation.
type Params struct {
	Density       float64 `yaml:"density"` // surface area per particle
	Speed         float64 `yaml:"speed"`   // initial velocity lies in [-Speed, Speed)
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	OpacityMin    float64 `yaml:"opacity_min"`
	OpacityMax    float64 `yaml:"opacity_max"`
	PointerRadius float64 `yaml:"pointer_radius"`
	PointerForce  float64 `yaml:"pointer_force"`
	Friction      float64 `yaml:"friction"`
	LinkDistance  float64 `yaml:"link_distance"`
	LinkWidth     float64 `yaml:"link_width"`
}

const (
	DefaultDensity       = 15000.0
	DefaultSpeed         = 0.25
	DefaultRadiusMin     = 1.0
	DefaultRadiusMax     = 3.0
	DefaultOpacityMin    = 0.3
	DefaultOpacityMax    = 0.8
	DefaultPointerRadius = 100.0
	DefaultPointerForce  = 0.01
	DefaultFriction      = 0.99
	DefaultLinkDistance  = 100.0
	DefaultLinkWidth     = 0.5
)

func DefaultParams() Params {
	return Params{
		Density:       DefaultDensity,
		Speed:         DefaultSpeed,
		RadiusMin:     DefaultRadiusMin,
		RadiusMax:     DefaultRadiusMax,
		OpacityMin:    DefaultOpacityMin,
		OpacityMax:    DefaultOpacityMax,
		PointerRadius: DefaultPointerRadius,
		PointerForce:  DefaultPointerForce,
		Friction:      DefaultFriction,
		LinkDistance:  DefaultLinkDistance,
		LinkWidth:     DefaultLinkWidth,
	}
}

// Validate rejects non-finite values and out-of-range settings.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"density", p.Density},
		{"speed", p.Speed},
		{"radius_min", p.RadiusMin},
		{"radius_max", p.RadiusMax},
		{"opacity_min", p.OpacityMin},
		{"opacity_max", p.OpacityMax},
		{"pointer_radius", p.PointerRadius},
		{"pointer_force", p.PointerForce},
		{"friction", p.Friction},
		{"link_distance", p.LinkDistance},
		{"link_width", p.LinkWidth},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidParams, f.name, f.v)
		}
	}

	switch {
	case p.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalidParams, p.Density)
	case p.Speed < 0:
		return fmt.Errorf("%w: speed must not be negative, got %g", ErrInvalidParams, p.Speed)
	case p.RadiusMin <= 0 || p.RadiusMax < p.RadiusMin:
		return fmt.Errorf("%w: radius range [%g, %g)", ErrInvalidParams, p.RadiusMin, p.RadiusMax)
	case p.OpacityMin <= 0 || p.OpacityMax > 1 || p.OpacityMax < p.OpacityMin:
		return fmt.Errorf("%w: opacity range [%g, %g)", ErrInvalidParams, p.OpacityMin, p.OpacityMax)
	case p.PointerRadius < 0 || p.PointerForce < 0:
		return fmt.Errorf("%w: pointer radius and force must not be negative", ErrInvalidParams)
	case p.Friction <= 0 || p.Friction > 1:
		return fmt.Errorf("%w: friction must be in (0, 1], got %g", ErrInvalidParams, p.Friction)
	case p.LinkDistance <= 0 || p.LinkWidth <= 0:
		return fmt.Errorf("%w: link distance and width must be positive", ErrInvalidParams)
	}
	return nil
}

// Count is the number of particles for a w x h surface.
func (p Params) Count(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(float64(w) * float64(h) / p.Density)
}
