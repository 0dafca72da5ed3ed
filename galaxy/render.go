package galaxy

import (
	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/render"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// buildPipeline registers the scene renderers in draw order
func (w *World) buildPipeline() *render.RenderOrchestrator {
	o := render.NewRenderOrchestrator()
	o.Register(render.RendererFunc(func(_ render.RenderContext, cv *canvas.Canvas) {
		cv.Background(canvas.RGBBlack)
	}), render.PriorityBackground)
	o.Register(&starfieldRenderer{w}, render.PriorityStars)
	o.Register(&trailRenderer{w}, render.PriorityTrails)
	o.Register(&blackHoleRenderer{w}, render.PriorityBlackHole)
	o.Register(&supernovaRenderer{w}, render.PriorityEffects)
	o.Register(&zoomRenderer{w}, render.PriorityOverlay)
	return o
}

// sceneVisible hides the regular scene while the zoom view is up
func (w *World) sceneVisible() bool { return w.zoom == nil }

type starfieldRenderer struct {
	w *World
}

func (r *starfieldRenderer) IsVisible() bool { return r.w.sceneVisible() }

func (r *starfieldRenderer) Render(_ render.RenderContext, cv *canvas.Canvas) {
	for _, s := range r.w.Stars {
		cv.Point(s.Pos.X, s.Pos.Y, s.Size, s.Color, s.Alpha/255)
	}
}

type trailRenderer struct {
	w *World
}

func (r *trailRenderer) IsVisible() bool { return r.w.sceneVisible() }

// Render draws each galaxy star's trail as fading points, transparent at the
// oldest entry up to TrailMaxAlpha at the newest
func (r *trailRenderer) Render(_ render.RenderContext, cv *canvas.Canvas) {
	for _, s := range r.w.Galaxy.Stars {
		n := s.Trail.Len()
		for i := 0; i < n; i++ {
			p := s.Trail.At(i)
			cv.Point(p.X, p.Y, s.Size, s.Color, trailAlpha(i, n)/255)
		}
	}
}

// trailAlpha interpolates 0 at the oldest point to TrailMaxAlpha at the newest
func trailAlpha(i, n int) float64 {
	if n <= 1 {
		return constants.TrailMaxAlpha
	}
	return vmath.Map(float64(i), 0, float64(n-1), 0, constants.TrailMaxAlpha)
}

type blackHoleRenderer struct {
	w *World
}

func (r *blackHoleRenderer) IsVisible() bool { return r.w.sceneVisible() }

// Render stacks translucent black circles that thicken toward the core,
// then caps them with an opaque disk
func (r *blackHoleRenderer) Render(_ render.RenderContext, cv *canvas.Canvas) {
	c := r.w.Galaxy.Center
	for rad := constants.BlackHoleHaloRadius; rad > constants.BlackHoleRadius; rad -= constants.BlackHoleHaloStep {
		alpha := haloAlpha(rad)
		cv.Circle(c.X, c.Y, rad, canvas.RGBBlack, alpha/255)
	}
	cv.Circle(c.X, c.Y, constants.BlackHoleRadius, canvas.RGBBlack, 1)
}

// haloAlpha falls from BlackHoleHaloAlpha at the inner radius to 0 at the halo edge
func haloAlpha(rad float64) float64 {
	a := vmath.Map(rad, constants.BlackHoleRadius, constants.BlackHoleHaloRadius, constants.BlackHoleHaloAlpha, 0)
	return vmath.Clamp(a, 0, constants.BlackHoleHaloAlpha)
}

type supernovaRenderer struct {
	w *World
}

func (r *supernovaRenderer) IsVisible() bool { return r.w.sceneVisible() }

func (r *supernovaRenderer) Render(_ render.RenderContext, cv *canvas.Canvas) {
	for _, sn := range r.w.Supernovas {
		rad := sn.Radius()
		fill := canvas.Lerp(canvas.Gray(uint8(sn.Brightness)), canvas.Tint(sn.Hue), 0.3)
		cv.Circle(sn.Pos.X, sn.Pos.Y, rad, fill, constants.SupernovaFillAlpha/255)
		cv.Ring(sn.Pos.X, sn.Pos.Y, rad, constants.SupernovaRingWeight, canvas.RGBWhite, sn.RingAlpha())
	}
}
