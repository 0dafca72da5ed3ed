package galaxy

import (
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

// Mode is the interaction mode consumed by Press
type Mode int

const (
	ModeNone Mode = iota
	ModeSupernova
	ModeZoom
	ModeMoveGalaxy
)

var modeNames = [...]string{
	ModeNone:       "none",
	ModeSupernova:  "supernova",
	ModeZoom:       "zoom",
	ModeMoveGalaxy: "move",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Mode returns the active interaction mode
func (w *World) Mode() Mode { return w.mode }

// SetMode activates exactly one mode, clearing the others
func (w *World) SetMode(m Mode) {
	w.mode = m
}

// ZoomTarget returns the zoomed star, nil when not zoomed
func (w *World) ZoomTarget() *Star { return w.zoom }

// Press handles a pointer press at world position (x, y)
//
// A press while zoomed only leaves the zoom view. Otherwise the most recently
// added star within the hit radius is consumed by supernova mode or zoomed by
// zoom mode; a press on empty space in move mode retargets the galaxy
func (w *World) Press(x, y float64) {
	if w.zoom != nil {
		w.zoom = nil
		return
	}

	p := vmath.V2(x, y)
	if i := w.hitTest(p); i >= 0 {
		star := w.Stars[i]
		switch w.mode {
		case ModeSupernova:
			w.Stars = slices.Delete(w.Stars, i, i+1)
			w.spawnSupernova(star.Pos)
		case ModeZoom:
			w.zoom = star
			w.zoomTime = 0
		}
		return
	}

	if w.mode == ModeMoveGalaxy {
		w.Galaxy.SetTarget(p)
	}
}

// hitTest scans stars newest first and returns the index of the first
// within StarHitRadius of p, or -1
func (w *World) hitTest(p vmath.Vec2) int {
	for i := len(w.Stars) - 1; i >= 0; i-- {
		if w.Stars[i].Hit(p, constants.StarHitRadius) {
			return i
		}
	}
	return -1
}

// spawnSupernova adds a supernova and fires the sound cue, activating audio on first use
func (w *World) spawnSupernova(p vmath.Vec2) {
	sn := NewSupernova(p, w.rng)
	w.Supernovas = append(w.Supernovas, sn)

	if !w.audioActivated {
		w.audioActivated = true
		if err := w.audio.Activate(); err != nil {
			w.logger.Debug("audio unavailable", zap.Error(err))
		}
	}
	w.audio.Trigger()

	w.logger.Debug("supernova",
		zap.Float64("x", p.X),
		zap.Float64("y", p.Y),
		zap.Float64("max_radius", sn.MaxRadius),
		zap.Int("stars_left", len(w.Stars)),
	)
}
