package sim

import "math"

// UniformSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// Sampler produces independent standard-normal draws.
type Sampler interface {
	Sample() float64
}

// BoxMuller turns pairs of uniform draws into standard-normal draws:
//
//	Z = sqrt(-2·ln(R1)) · cos(2π·R2)
//
// Only the cosine branch is used, so every Sample consumes at least two uniforms.
// Not safe for concurrent use; each trial owns its own BoxMuller.
type BoxMuller struct {
	src UniformSource
}

// NewBoxMuller wraps a uniform source.
func NewBoxMuller(src UniformSource) *BoxMuller {
	return &BoxMuller{src: src}
}

// Sample returns one N(0,1) draw.
func (b *BoxMuller) Sample() float64 {
	r1 := b.src.Float64()
	r2 := b.src.Float64()
	// ln(0) is undefined
	for r1 == 0 {
		r1 = b.src.Float64()
	}
	return math.Sqrt(-2*math.Log(r1)) * math.Cos(2*math.Pi*r2)
}
