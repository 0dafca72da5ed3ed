package galaxy

import (
	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// Star is a fixed background star whose brightness twinkles with noise
type Star struct {
	Pos    vmath.Vec2
	Size   float64
	Color  canvas.RGB
	Offset float64 // noise phase offset
	Alpha  float64 // current twinkle alpha, 0-255
	Trail  *Trail
}

// NewStarfield scatters count stars uniformly over the canvas
func NewStarfield(width, height float64, count, trailLen int, rng *vmath.FastRand) []*Star {
	stars := make([]*Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, &Star{
			Pos:    vmath.V2(rng.Range(0, width), rng.Range(0, height)),
			Size:   rng.Range(constants.StarMinSize, constants.StarMaxSize),
			Color:  canvas.StarColor(rng, 180),
			Offset: rng.Range(0, constants.StarPhaseMax),
			Alpha:  constants.TwinkleMaxAlpha,
			Trail:  NewTrail(trailLen),
		})
	}
	return stars
}

// Twinkle maps noise at the star's position and phase to an alpha in
// [TwinkleMinAlpha, TwinkleMaxAlpha]
func (s *Star) Twinkle(src noise.Source, t float64) float64 {
	n := src.Noise(
		s.Pos.X*constants.TwinkleScale+s.Offset,
		s.Pos.Y*constants.TwinkleScale+s.Offset,
		t,
	)
	return vmath.Map(n, 0, 1, constants.TwinkleMinAlpha, constants.TwinkleMaxAlpha)
}

// Update refreshes the twinkle alpha and records the position
func (s *Star) Update(src noise.Source, t float64) {
	s.Alpha = s.Twinkle(src, t)
	s.Trail.Push(s.Pos)
}

// Hit reports whether p is within radius of the star
func (s *Star) Hit(p vmath.Vec2, radius float64) bool {
	return vmath.V2Dist(s.Pos, p) <= radius
}
