// Package galaxy is the particle animation: a drifting cluster of stars
// orbiting a black hole over a twinkling starfield, perturbed by a noise
// flow field, with user-triggered supernovas and a zoom view.
package galaxy

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/engine"
	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/render"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// Audio is the supernova sound cue. Activate is called once before the
// first Trigger; both are fire and forget
type Audio interface {
	Activate() error
	Trigger()
}

type silentAudio struct{}

func (silentAudio) Activate() error { return nil }
func (silentAudio) Trigger()        {}

// Config holds the world's construction parameters
type Config struct {
	Width, Height float64
	Seed          uint64
	Noise         noise.Source // nil selects Perlin seeded from Seed
	Audio         Audio        // nil is silent
	Logger        *zap.Logger

	GalaxyStars    int
	StarfieldStars int
	TrailLength    int
}

// DefaultConfig returns the canonical 800x600 scene
func DefaultConfig() Config {
	return Config{
		Width:          constants.CanvasWidth,
		Height:         constants.CanvasHeight,
		Seed:           1,
		GalaxyStars:    constants.GalaxyStarCount,
		StarfieldStars: constants.StarfieldCount,
		TrailLength:    constants.TrailLength,
	}
}

// World is the simulation context. All state is owned here and mutated
// only through Step, Press and SetMode, which must be called from one goroutine
type World struct {
	cfg    Config
	rng    *vmath.FastRand
	noise  noise.Source
	audio  Audio
	logger *zap.Logger

	Field      *FlowField
	Galaxy     *Galaxy
	Stars      []*Star
	Supernovas []*Supernova

	mode Mode
	zoom *Star

	time     float64 // flow and twinkle time coordinate
	zoomTime float64
	frame    uint64

	audioActivated bool

	pipeline *render.RenderOrchestrator
}

// New seeds the initial scene
func New(cfg Config) *World {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = constants.CanvasWidth, constants.CanvasHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Audio == nil {
		cfg.Audio = silentAudio{}
	}
	if cfg.Noise == nil {
		cfg.Noise = noise.NewPerlin(int64(cfg.Seed))
	}

	rng := vmath.NewFastRand(cfg.Seed)
	center := vmath.V2(cfg.Width/2, cfg.Height/2)

	w := &World{
		cfg:    cfg,
		rng:    rng,
		noise:  cfg.Noise,
		audio:  cfg.Audio,
		logger: cfg.Logger,
		Field:  NewFlowField(cfg.Width, cfg.Height, constants.FlowCellSize, constants.FlowNoiseScale),
		Galaxy: NewGalaxy(center, cfg.GalaxyStars, cfg.TrailLength, rng),
		Stars:  NewStarfield(cfg.Width, cfg.Height, cfg.StarfieldStars, cfg.TrailLength, rng),
	}
	w.Field.Update(w.noise, w.time)
	w.pipeline = w.buildPipeline()
	return w
}

// Width returns the world width
func (w *World) Width() float64 { return w.cfg.Width }

// Height returns the world height
func (w *World) Height() float64 { return w.cfg.Height }

// Frame returns the number of steps taken
func (w *World) Frame() uint64 { return w.frame }

// Time returns the flow-field time coordinate
func (w *World) Time() float64 { return w.time }

// frameScale converts a tick duration to nominal frames, capped so a stalled
// loop does not teleport the scene
func frameScale(dt time.Duration) float64 {
	return engine.FrameScale(dt, constants.FrameUpdateInterval, constants.MaxFrameScale)
}

// Step advances the simulation by one frame of duration dt
// While a zoom target is set only the zoom time advances
func (w *World) Step(dt time.Duration) {
	k := frameScale(dt)
	w.frame++

	if w.zoom != nil {
		w.zoomTime += constants.ZoomTimeStep * k
		return
	}

	w.time += constants.FlowTimeStep * k
	w.Field.Update(w.noise, w.time)

	w.Galaxy.UpdateStars(w.Field, k)
	w.Galaxy.UpdateMovement(k)

	for _, s := range w.Stars {
		s.Update(w.noise, w.time)
	}

	for _, sn := range w.Supernovas {
		sn.Update(k)
	}
	w.Supernovas = slices.DeleteFunc(w.Supernovas, (*Supernova).Dead)
}

// Draw renders the current state onto cv
func (w *World) Draw(cv *canvas.Canvas, dt time.Duration) {
	w.pipeline.RenderFrame(render.RenderContext{
		Frame:     w.frame,
		Time:      w.time,
		DeltaTime: dt,
	}, cv)
}
