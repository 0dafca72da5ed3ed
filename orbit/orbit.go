// Package orbit is the early galaxy draft: stars circling a fixed black
// hole, leaving trails through a translucent wash instead of trail buffers
package orbit

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/engine"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// Script is the manifest path the orbit experiment registers under
const Script = "experiments/orbit"

const (
	starCount   = 200
	minDistance = 50.0
	maxDistance = 200.0
	minSpeed    = 0.001
	maxSpeed    = 0.01
	minSize     = 1.0
	maxSize     = 3.0

	washAlpha      = 20.0 / 255
	blackHoleDiam  = 20.0
	pastelChannelL = 200
)

// Star is one orbiting body; Last is its position on the previous frame
type Star struct {
	Distance float64
	Angle    float64
	Speed    float64
	Size     float64
	Color    canvas.RGB
	Pos      vmath.Vec2
	Last     vmath.Vec2
}

// Experiment draws the orbit scene
type Experiment struct {
	center vmath.Vec2
	stars  []*Star
	frames uint64
}

// NewExperiment is the registry factory
func NewExperiment() experiment.Experiment {
	return &Experiment{}
}

// Stars exposes the population, empty before Setup
func (e *Experiment) Stars() []*Star { return e.stars }

// Center returns the black hole position
func (e *Experiment) Center() vmath.Vec2 { return e.center }

func (e *Experiment) Setup(st *experiment.Stage) error {
	cv, err := st.CreateCanvas(constants.CanvasWidth, constants.CanvasHeight)
	if err != nil {
		return fmt.Errorf("orbit setup: %w", err)
	}
	cv.Background(canvas.RGBBlack)

	rng := vmath.NewFastRand(st.Env.Seed)
	e.center = vmath.V2(cv.Width()/2, cv.Height()/2)
	e.stars = make([]*Star, 0, starCount)
	for i := 0; i < starCount; i++ {
		s := &Star{
			Distance: rng.Range(minDistance, maxDistance),
			Angle:    rng.Angle(),
			Speed:    rng.Range(minSpeed, maxSpeed),
			Size:     rng.Range(minSize, maxSize),
			Color:    canvas.StarColor(rng, pastelChannelL),
		}
		s.Pos = e.position(s)
		s.Last = s.Pos
		e.stars = append(e.stars, s)
	}
	return nil
}

func (e *Experiment) position(s *Star) vmath.Vec2 {
	return vmath.Vec2{
		X: e.center.X + math.Cos(s.Angle)*s.Distance,
		Y: e.center.Y + math.Sin(s.Angle)*s.Distance,
	}
}

// Step advances every star along its circle
func (e *Experiment) Step(dt time.Duration) {
	k := engine.FrameScale(dt, constants.FrameUpdateInterval, constants.MaxFrameScale)
	for _, s := range e.stars {
		s.Last = s.Pos
		s.Angle = math.Mod(s.Angle+s.Speed*k, vmath.TwoPi)
		s.Pos = e.position(s)
	}
	e.frames++
}

// Draw fades the previous frame, then strokes each star's last segment
func (e *Experiment) Draw(st *experiment.Stage, dt time.Duration) {
	cv := st.Canvas()
	cv.Wash(canvas.RGBBlack, washAlpha)
	cv.Circle(e.center.X, e.center.Y, blackHoleDiam/2, canvas.RGBBlack, 1)

	e.Step(dt)
	for _, s := range e.stars {
		cv.Line(s.Last.X, s.Last.Y, s.Pos.X, s.Pos.Y, s.Size, s.Color, 1)
	}
}

// WindowResized repaints the background so stale trails do not smear at the new scale
func (e *Experiment) WindowResized(st *experiment.Stage, _, _ int) {
	if cv := st.Canvas(); cv != nil {
		cv.Background(canvas.RGBBlack)
	}
}
