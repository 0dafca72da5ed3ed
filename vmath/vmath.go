// Package vmath holds the float math shared by the simulations: 2D vectors,
// range mapping and a small seeded xorshift generator
package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// Map linearly re-maps v from [inMin, inMax] to [outMin, outMax] without clamping
// A degenerate input range maps everything to outMin
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
