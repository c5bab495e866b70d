// Package rng provides the randomness source used by world generation.
// Generators never touch the global math/rand state; they draw from a Source
// handed to them, so a seed (or a scripted stub in tests) fully determines output.
package rng

import (
	"math"
	"math/rand"
	"time"
)

// Source yields uniform floats in [0,1)
type Source interface {
	Float64() float64
}

// Seeded is a Source backed by its own math/rand generator
type Seeded struct {
	seed int64
	r    *rand.Rand
}

// NewSeeded creates a Source that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns the next value in [0,1)
func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}

// Seed returns the seed this source was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// NewSeed returns a time-based seed, never zero (zero means "pick one" on the CLI)
func NewSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Intn returns an integer in [0,n) computed as floor(r*n).
// Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(math.Floor(unit(src.Float64()) * float64(n)))
	if v >= n {
		v = n - 1
	}
	return v
}

// Range returns an integer in [lo,hi] inclusive
func Range(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + Intn(src, hi-lo+1)
}

// Chance draws one value and reports whether it fell below p
func Chance(src Source, p float64) bool {
	return unit(src.Float64()) < p
}

// Angle returns a uniformly random angle in radians, [0, 2π)
func Angle(src Source) float64 {
	return unit(src.Float64()) * 2 * math.Pi
}

// unit clamps stray values from hand-written sources into [0,1)
func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
