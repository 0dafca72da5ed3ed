package galaxy

import (
	"math"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// GalaxyStar orbits the galaxy center on a fixed ellipse; its position is
// recomputed from polar coordinates every frame plus a flow-field perturbation
type GalaxyStar struct {
	Distance float64 // orbital radius before x stretch
	Angle    float64
	Speed    float64 // radians per nominal frame
	Size     float64
	Color    canvas.RGB
	Offset   float64 // noise phase offset

	Pos   vmath.Vec2
	Trail *Trail
}

// Galaxy is a rigid cluster of orbiting stars that drifts toward a target
type Galaxy struct {
	Center vmath.Vec2
	Target vmath.Vec2
	Speed  float64 // drift per nominal frame
	XScale float64
	Stars  []*GalaxyStar
}

// NewGalaxy seeds count stars around center with random orbits
func NewGalaxy(center vmath.Vec2, count, trailLen int, rng *vmath.FastRand) *Galaxy {
	g := &Galaxy{
		Center: center,
		Target: center,
		Speed:  constants.GalaxyDriftSpeed,
		XScale: constants.OrbitXScale,
		Stars:  make([]*GalaxyStar, 0, count),
	}

	for i := 0; i < count; i++ {
		s := &GalaxyStar{
			Distance: rng.Range(constants.GalaxyMinDistance, constants.GalaxyMaxDistance),
			Angle:    rng.Angle(),
			Speed:    rng.Range(constants.GalaxyMinAngularSpeed, constants.GalaxyMaxAngularSpeed),
			Size:     rng.Range(constants.GalaxyMinStarSize, constants.GalaxyMaxStarSize),
			Color:    canvas.StarColor(rng, 200),
			Offset:   rng.Range(0, constants.StarPhaseMax),
			Trail:    NewTrail(trailLen),
		}
		s.Pos = g.orbitPosition(s)
		g.Stars = append(g.Stars, s)
	}
	return g
}

// orbitPosition places a star on its ellipse around the current center
func (g *Galaxy) orbitPosition(s *GalaxyStar) vmath.Vec2 {
	return vmath.Vec2{
		X: g.Center.X + math.Cos(s.Angle)*s.Distance*g.XScale,
		Y: g.Center.Y + math.Sin(s.Angle)*s.Distance,
	}
}

// UpdateStars advances every orbit by k nominal frames, perturbs the result
// by the field under it and records it in the star's trail. A nil field
// leaves orbits unperturbed
func (g *Galaxy) UpdateStars(field *FlowField, k float64) {
	for _, s := range g.Stars {
		s.Angle = math.Mod(s.Angle+s.Speed*k, vmath.TwoPi)
		pos := g.orbitPosition(s)
		if field != nil {
			flow := field.Lookup(pos.X, pos.Y)
			pos = vmath.V2Add(pos, vmath.V2Scale(flow, constants.FlowInfluence))
		}
		s.Pos = pos
		s.Trail.Push(pos)
	}
}

// UpdateMovement glides the cluster toward its target by at most Speed*k
// The step is clamped so the center never overshoots the target
// Returns the applied delta, zero when within the stop threshold
func (g *Galaxy) UpdateMovement(k float64) vmath.Vec2 {
	v := vmath.V2Sub(g.Target, g.Center)
	dist := vmath.V2Mag(v)
	if dist <= constants.GalaxyDriftThreshold {
		return vmath.Vec2{}
	}

	step := g.Speed * k
	if step < dist {
		v = vmath.V2Scale(v, step/dist)
	}
	g.Translate(v)
	return v
}

// Translate moves the center and every star by the same delta
// The newest trail point moves with its star so trails end at the star
func (g *Galaxy) Translate(d vmath.Vec2) {
	g.Center = vmath.V2Add(g.Center, d)
	for _, s := range g.Stars {
		s.Pos = vmath.V2Add(s.Pos, d)
		s.Trail.ShiftNewest(d)
	}
}

// SetTarget retargets the drift
func (g *Galaxy) SetTarget(p vmath.Vec2) {
	g.Target = p
}
