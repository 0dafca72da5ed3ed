package experiment

import (
	"errors"

	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/canvas"
	"github.com/lixenwraith/galaxy-gallery/noise"
)

// ErrNoGraphics is returned when drawing is requested before the graphics library loaded
var ErrNoGraphics = errors.New("graphics library not loaded")

// Style is the stage's stylesheet: colors the host paints around the canvas
type Style struct {
	Background canvas.RGB
	Letterbox  canvas.RGB
}

// DefaultStyle is used when no stylesheet is loaded
func DefaultStyle() Style {
	return Style{Background: canvas.RGBBlack, Letterbox: canvas.RGBBlack}
}

// Env carries what the host offers to library loaders
type Env struct {
	Seed      uint64
	NoiseKind noise.Kind
	Audio     Audio // nil loads a silent audio library
}

// Stage is the isolated document an experiment runs in. Libraries attach
// capabilities to it in load order; the experiment then creates its canvas
// and controls during Setup. A stage is confined to its sandbox goroutine,
// except Controls, which is safe for concurrent use
type Stage struct {
	ID       string
	Env      Env
	Logger   *zap.Logger
	Controls *Controls

	pxW, pxH int
	noise    noise.Source
	audio    Audio
	style    Style
	canvas   *canvas.Canvas

	graphicsLoaded bool
	audioLoaded    bool
}

// NewStage creates an empty stage whose canvas raster will be pxW x pxH
func NewStage(id string, env Env, pxW, pxH int, logger *zap.Logger) *Stage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stage{
		ID:       id,
		Env:      env,
		Logger:   logger,
		Controls: NewControls(),
		pxW:      pxW,
		pxH:      pxH,
		style:    DefaultStyle(),
	}
}

// LoadGraphics attaches the noise field and enables canvas creation
func (st *Stage) LoadGraphics(src noise.Source) {
	st.noise = src
	st.graphicsLoaded = true
}

// LoadAudio attaches the sound surface; nil attaches a silent one
func (st *Stage) LoadAudio(a Audio) {
	if a == nil {
		a = Silent
	}
	st.audio = a
	st.audioLoaded = true
}

// ApplyStyle sets the stylesheet
func (st *Stage) ApplyStyle(s Style) {
	st.style = s
}

// GraphicsLoaded reports whether the graphics library is attached
func (st *Stage) GraphicsLoaded() bool { return st.graphicsLoaded }

// AudioLoaded reports whether the audio library is attached
func (st *Stage) AudioLoaded() bool { return st.audioLoaded }

// Noise returns the graphics library's noise field
func (st *Stage) Noise() noise.Source { return st.noise }

// Audio returns the audio library's sound surface, silent if none loaded
func (st *Stage) Audio() Audio {
	if st.audio == nil {
		return Silent
	}
	return st.audio
}

// Style returns the active stylesheet
func (st *Stage) Style() Style { return st.style }

// CreateCanvas allocates the drawing surface in world units at the stage's raster size
func (st *Stage) CreateCanvas(width, height float64) (*canvas.Canvas, error) {
	if !st.graphicsLoaded {
		return nil, ErrNoGraphics
	}
	st.canvas = canvas.New(width, height, st.pxW, st.pxH)
	st.canvas.Background(st.style.Background)
	return st.canvas, nil
}

// Canvas returns the surface created in Setup, nil before that
func (st *Stage) Canvas() *canvas.Canvas { return st.canvas }

// PixelSize returns the raster size the stage was given
func (st *Stage) PixelSize() (int, int) { return st.pxW, st.pxH }

// Resize changes the raster size, reallocating the canvas if present
func (st *Stage) Resize(pxW, pxH int) {
	st.pxW, st.pxH = pxW, pxH
	if st.canvas != nil {
		st.canvas.Resize(pxW, pxH)
		st.canvas.Background(st.style.Background)
	}
}
