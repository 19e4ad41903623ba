// Package generate produces internally consistent synthetic sleep,
// recovery, cycle, and workout records. Each generator samples a
// driver metric first and derives every dependent metric as
// base(driver) plus bounded noise, clamped to its physiological range,
// so correlations hold on average without leaving the declared bounds.
package generate

import "math/rand"

// Rand is the entropy source the generators draw from. Production
// uses the math/rand-backed implementation; tests may inject a
// deterministic one for exact-value assertions.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) Intn(n int) int   { return rand.Intn(n) }

// NewRand returns the default entropy source.
func NewRand() Rand { return systemRand{} }

// Generator holds the entropy source shared by the four record
// generators.
type Generator struct {
	rnd Rand
}

func New(rnd Rand) *Generator {
	return &Generator{rnd: rnd}
}

// between samples uniformly from [lo, hi).
func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

// noise samples uniformly from [-spread, spread).
func (g *Generator) noise(spread float64) float64 {
	return (g.rnd.Float64()*2 - 1) * spread
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
