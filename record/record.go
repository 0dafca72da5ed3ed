// Package record renders an experiment headlessly and exports the frames as
// an animated PNG.
package record

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/setanarut/apng"
	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/gallery"
	"github.com/lixenwraith/galaxy-gallery/registry"
)

var (
	// ErrNoFrames is returned when the options select no frame to keep
	ErrNoFrames = errors.New("no frames to record")

	// ErrNotWritten is returned when the exporter left no output file
	ErrNotWritten = errors.New("animation not written")
)

// Options selects what to record
type Options struct {
	Script   string // Manifest-style script reference, e.g. "experiments/galaxy"
	Output   string
	Frames   int // Simulated frames
	Every    int // Keep one frame in every N
	Width    int // Raster size in pixels
	Height   int
	Env      experiment.Env
	Style    experiment.Style
	Interval time.Duration // Simulated frame duration
	Logger   *zap.Logger
}

// Capture runs the experiment on an offscreen stage with silent audio and
// returns a copy of every Every-th frame, starting with the first
func Capture(ctx context.Context, opts Options) ([]image.Image, error) {
	if opts.Frames <= 0 || opts.Every <= 0 {
		return nil, ErrNoFrames
	}
	if opts.Interval <= 0 {
		opts.Interval = constants.FrameUpdateInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	env := opts.Env
	env.Audio = experiment.Silent
	st := experiment.NewStage("record", env, opts.Width, opts.Height, opts.Logger)

	for _, name := range []string{registry.LibraryGraphics, registry.LibraryAudio} {
		load, ok := registry.GetLibrary(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", gallery.ErrUnknownLibrary, name)
		}
		if err := load(st); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	st.ApplyStyle(opts.Style)

	factory, ok := registry.GetExperiment(gallery.ScriptKey(opts.Script))
	if !ok {
		return nil, fmt.Errorf("%w: %s", gallery.ErrUnknownExperiment, opts.Script)
	}
	exp := factory()
	if err := exp.Setup(st); err != nil {
		return nil, fmt.Errorf("setup %s: %w", opts.Script, err)
	}
	if st.Canvas() == nil {
		return nil, fmt.Errorf("setup %s: %w", opts.Script, experiment.ErrNoGraphics)
	}

	frames := make([]image.Image, 0, (opts.Frames+opts.Every-1)/opts.Every)
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		exp.Draw(st, opts.Interval)
		if i%opts.Every == 0 {
			frames = append(frames, snapshot(st.Canvas().Image()))
		}
	}

	opts.Logger.Debug("frames captured",
		zap.String("script", opts.Script),
		zap.Int("simulated", opts.Frames),
		zap.Int("kept", len(frames)))
	return frames, nil
}

// Record captures and writes the animation; returns the number of frames written
func Record(ctx context.Context, opts Options) (int, error) {
	frames, err := Capture(ctx, opts)
	if err != nil {
		return 0, err
	}
	if len(frames) == 0 {
		return 0, ErrNoFrames
	}

	apng.Save(opts.Output, frames, constants.RecordFrameDelay)

	if _, err := os.Stat(opts.Output); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotWritten, err)
	}
	return len(frames), nil
}

func snapshot(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
