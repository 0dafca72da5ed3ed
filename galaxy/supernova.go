package galaxy

import (
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// Supernova is a transient expanding flash left behind by a consumed star
// Age is measured in nominal frames and advances by the frame scale of each
// Update, so a late tick ages it as far as it moves everything else
type Supernova struct {
	Pos        vmath.Vec2
	Age        float64
	Lifespan   float64
	MaxRadius  float64
	Brightness float64 // gray level of the fill, 0-255
	Hue        float64
}

// NewSupernova spawns a supernova at p with a random size and brightness
func NewSupernova(p vmath.Vec2, rng *vmath.FastRand) *Supernova {
	return &Supernova{
		Pos:        p,
		Lifespan:   constants.SupernovaLifespan,
		MaxRadius:  rng.Range(constants.SupernovaMinRadius, constants.SupernovaMaxRadius),
		Brightness: rng.Range(constants.SupernovaMinBrightness, constants.SupernovaMaxBrightness),
		Hue:        rng.Range(0, 360),
	}
}

// Update ages the supernova by k nominal frames
func (s *Supernova) Update(k float64) {
	s.Age += k
}

// progress is age/lifespan clamped to [0, 1]
func (s *Supernova) progress() float64 {
	if s.Lifespan <= 0 {
		return 1
	}
	return vmath.Clamp(s.Age/s.Lifespan, 0, 1)
}

// Radius grows linearly from 0 to MaxRadius, reached exactly at Lifespan
func (s *Supernova) Radius() float64 {
	return s.MaxRadius * s.progress()
}

// RingAlpha fades from 1 to 0 as age approaches lifespan
func (s *Supernova) RingAlpha() float64 {
	return 1 - s.progress()
}

// Dead reports whether the supernova has expired
func (s *Supernova) Dead() bool {
	return s.Age >= s.Lifespan
}
