package vmath

import "math"

// FastRand is a xorshift64 generator; identical seeds give identical sequences
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; zero is remapped since xorshift has a zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), or 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Angle returns a random angle in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * TwoPi
}

// Chance reports true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Seed64 derives a child seed, used to give subsystems independent streams
func (r *FastRand) Seed64() int64 {
	return int64(r.Next() & math.MaxInt64)
}
