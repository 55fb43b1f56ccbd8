package utils

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true with probability 0.5.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// WithDensity returns a source whose Bool is true with probability p.
func (r *RNG) WithDensity(p float64) *Density {
	return &Density{rng: r, p: p}
}

// Density draws cell states with a fixed probability of life.
type Density struct {
	rng *RNG
	p   float64
}

func (d *Density) Bool() bool {
	return d.rng.Chance(d.p)
}
