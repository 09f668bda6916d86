package field

import (
	"math"
	"math/rand"
)

// Particle is one point of the constellation. Radius and Opacity are fixed
// when the particle is created.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

func spawn(rng *rand.Rand, w, h float64, p Params) Particle {
	return Particle{
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		VX:      (rng.Float64()*2 - 1) * p.Speed,
		VY:      (rng.Float64()*2 - 1) * p.Speed,
		Radius:  p.RadiusMin + rng.Float64()*(p.RadiusMax-p.RadiusMin),
		Opacity: p.OpacityMin + rng.Float64()*(p.OpacityMax-p.OpacityMin),
	}
}

// Speed is the magnitude of the velocity.
func (pt Particle) Speed() float64 {
	return math.Hypot(pt.VX, pt.VY)
}

func (pt Particle) distance(o Particle) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// attract nudges the velocity toward (px, py) when the point is within
// radius. A particle sitting exactly on the point has no direction to move
// in and is left alone.
func (pt *Particle) attract(px, py, radius, strength float64) {
	dx := px - pt.X
	dy := py - pt.Y
	d := math.Hypot(dx, dy)
	if d == 0 || d >= radius {
		return
	}
	f := (radius - d) / radius * strength
	pt.VX += dx / d * f
	pt.VY += dy / d * f
}

// reflect clamps the position into [0,w]x[0,h] and flips the velocity
// component of every edge that was crossed.
func (pt *Particle) reflect(w, h float64) {
	if pt.X < 0 {
		pt.X = 0
		pt.VX = -pt.VX
	}
	if pt.X > w {
		pt.X = w
		pt.VX = -pt.VX
	}
	if pt.Y < 0 {
		pt.Y = 0
		pt.VY = -pt.VY
	}
	if pt.Y > h {
		pt.Y = h
		pt.VY = -pt.VY
	}
}
