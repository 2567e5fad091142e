// Package noise provides seeded, multi-octave coherent noise fields for terrain.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names accepted by New.
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// ErrUnknownKind is returned by New for an unrecognized backend name.
var ErrUnknownKind = errors.New("unknown noise kind")

// Field is a deterministic 2D coherent noise function.
// Values are within [-1, 1]; equal seeds and coordinates give equal values.
type Field interface {
	Noise2D(x, y float64) float64
}

// Params configures a fractal noise field.
type Params struct {
	Seed        int64
	Octaves     int
	Persistence float64 // Amplitude divisor per octave
	Lacunarity  float64 // Frequency multiplier per octave
}

// New creates a noise field of the given kind.
func New(kind string, p Params) (Field, error) {
	if p.Octaves <= 0 {
		return nil, fmt.Errorf("noise: octaves must be > 0, got %d", p.Octaves)
	}
	switch kind {
	case KindPerlin:
		return NewPerlin(p), nil
	case KindSimplex:
		return NewSimplex(p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Perlin is classic gradient noise summed over octaves by go-perlin.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin field.
func NewPerlin(p Params) *Perlin {
	return &Perlin{
		p: perlin.NewPerlin(p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed),
	}
}

// Noise2D implements Field.
func (f *Perlin) Noise2D(x, y float64) float64 {
	return clamp(f.p.Noise2D(x, y))
}

// Simplex is OpenSimplex noise summed over octaves and normalized by the
// total amplitude.
type Simplex struct {
	n           opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
	norm        float64
}

// NewSimplex creates an OpenSimplex field.
func NewSimplex(p Params) *Simplex {
	var total float64
	amp := 1.0
	for i := 0; i < p.Octaves; i++ {
		total += amp
		amp /= p.Persistence
	}
	return &Simplex{
		n:           opensimplex.New(p.Seed),
		octaves:     p.Octaves,
		persistence: p.Persistence,
		lacunarity:  p.Lacunarity,
		norm:        total,
	}
}

// Noise2D implements Field.
func (f *Simplex) Noise2D(x, y float64) float64 {
	var sum float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.octaves; i++ {
		sum += f.n.Eval2(x*freq, y*freq) * amp
		amp /= f.persistence
		freq *= f.lacunarity
	}
	return clamp(sum / f.norm)
}

// Constant is a flat field returning the same value everywhere.
type Constant float64

// Noise2D implements Field.
func (c Constant) Noise2D(_, _ float64) float64 {
	return clamp(float64(c))
}

// Func adapts a plain function to Field. The result is not clamped.
type Func func(x, y float64) float64

// Noise2D implements Field.
func (f Func) Noise2D(x, y float64) float64 {
	return f(x, y)
}

// clamp cuts octave overshoot so every field stays within [-1, 1].
func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
