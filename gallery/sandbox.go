package gallery

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/engine"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/registry"
)

var (
	// ErrResourceOrder is returned when a script loads before the libraries it depends on
	ErrResourceOrder = errors.New("script loaded before its libraries")

	// ErrUnknownExperiment is returned when a script reference matches no registered experiment
	ErrUnknownExperiment = errors.New("unknown experiment")

	// ErrUnknownLibrary is returned when a library reference has no registered loader
	ErrUnknownLibrary = errors.New("unknown library")

	// ErrNoScript is returned when a document carries no script resource
	ErrNoScript = errors.New("document has no script")
)

// ResourceKind identifies what a document resource provides
type ResourceKind int

const (
	ResourceGraphics ResourceKind = iota
	ResourceAudio
	ResourceScript
	ResourceStylesheet
)

// String returns the resource kind name
func (k ResourceKind) String() string {
	switch k {
	case ResourceGraphics:
		return "graphics"
	case ResourceAudio:
		return "audio"
	case ResourceScript:
		return "script"
	case ResourceStylesheet:
		return "stylesheet"
	default:
		return "unknown"
	}
}

// Resource is one ordered reference in a sandbox document
type Resource struct {
	Kind ResourceKind
	Ref  string
}

// Document is the ordered set of resources a sandbox loads
type Document struct {
	Title     string
	Resources []Resource
}

// NewDocument builds the fixed resource order for an entry:
// graphics library, audio library, experiment script, stylesheet
func NewDocument(e Entry) Document {
	return Document{
		Title: e.Name,
		Resources: []Resource{
			{Kind: ResourceGraphics, Ref: registry.LibraryGraphics},
			{Kind: ResourceAudio, Ref: registry.LibraryAudio},
			{Kind: ResourceScript, Ref: e.File},
			{Kind: ResourceStylesheet, Ref: "theme"},
		},
	}
}

// FrameFunc receives the canvas raster after every drawn frame, on the sandbox goroutine
type FrameFunc func(sb *Sandbox, img *image.RGBA)

// SandboxConfig carries host settings shared by every sandbox
type SandboxConfig struct {
	Env      experiment.Env
	Style    experiment.Style
	Interval time.Duration
	Clock    engine.TimeProvider
	Logger   *zap.Logger
	OnFrame  FrameFunc
}

// Sandbox isolates one mounted experiment with its own stage and frame loop
type Sandbox struct {
	ID string

	doc    Document
	cfg    SandboxConfig
	logger *zap.Logger
	stage  *experiment.Stage
	exp    experiment.Experiment
	sched  *engine.FrameScheduler

	mu       sync.Mutex
	mounted  bool
	tornDown bool
}

// NewSandbox creates an unmounted sandbox whose canvas raster is pxW x pxH
func NewSandbox(doc Document, pxW, pxH int, cfg SandboxConfig) *Sandbox {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = constants.FrameUpdateInterval
	}

	id := uuid.NewString()
	logger := cfg.Logger.With(zap.String("sandbox", id), zap.String("experiment", doc.Title))

	return &Sandbox{
		ID:     id,
		doc:    doc,
		cfg:    cfg,
		logger: logger,
		stage:  experiment.NewStage(id, cfg.Env, pxW, pxH, logger),
	}
}

// Document returns the document the sandbox was built from
func (sb *Sandbox) Document() Document {
	return sb.doc
}

// Experiment returns the mounted experiment, nil before Mount
func (sb *Sandbox) Experiment() experiment.Experiment {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.exp
}

// Controls returns the experiment's buttons; safe from any goroutine
func (sb *Sandbox) Controls() *experiment.Controls {
	return sb.stage.Controls
}

// Mount loads every resource in document order, runs the experiment's Setup
// and starts the frame loop
func (sb *Sandbox) Mount() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.tornDown {
		return fmt.Errorf("mount sandbox %s: torn down", sb.ID)
	}
	if sb.mounted {
		return nil
	}

	for _, res := range sb.doc.Resources {
		if err := sb.load(res); err != nil {
			sb.logger.Warn("resource failed to load",
				zap.Stringer("kind", res.Kind),
				zap.String("ref", res.Ref),
				zap.Error(err))
			return fmt.Errorf("load %s %q: %w", res.Kind, res.Ref, err)
		}
		sb.logger.Debug("resource loaded", zap.Stringer("kind", res.Kind), zap.String("ref", res.Ref))
	}

	if sb.exp == nil {
		return ErrNoScript
	}

	if err := sb.exp.Setup(sb.stage); err != nil {
		return fmt.Errorf("setup %s: %w", sb.doc.Title, err)
	}

	sb.sched = engine.NewFrameScheduler(sb.cfg.Clock, sb.cfg.Interval, constants.MaxFrameScale,
		constants.SandboxInputBuffer, sb.frame)
	sb.sched.Start()
	sb.mounted = true

	sb.logger.Info("sandbox mounted", zap.Duration("interval", sb.cfg.Interval))
	return nil
}

func (sb *Sandbox) load(res Resource) error {
	switch res.Kind {
	case ResourceGraphics, ResourceAudio:
		loader, ok := registry.GetLibrary(res.Ref)
		if !ok {
			return ErrUnknownLibrary
		}
		return loader(sb.stage)

	case ResourceScript:
		if !sb.stage.GraphicsLoaded() || !sb.stage.AudioLoaded() {
			return ErrResourceOrder
		}
		factory, ok := registry.GetExperiment(ScriptKey(res.Ref))
		if !ok {
			return ErrUnknownExperiment
		}
		sb.exp = factory()
		return nil

	case ResourceStylesheet:
		sb.stage.ApplyStyle(sb.cfg.Style)
		return nil

	default:
		return fmt.Errorf("unknown resource kind %d", res.Kind)
	}
}

// frame runs on the sandbox goroutine
func (sb *Sandbox) frame(dt time.Duration) {
	sb.exp.Draw(sb.stage, dt)
	if sb.cfg.OnFrame != nil {
		if cv := sb.stage.Canvas(); cv != nil {
			sb.cfg.OnFrame(sb, cv.Image())
		}
	}
}

// Press forwards a pointer press at raster pixel (px, py) to the experiment
// Returns false if the sandbox is not running or its input queue is full
func (sb *Sandbox) Press(px, py int) bool {
	sched := sb.scheduler()
	if sched == nil {
		return false
	}
	ph, ok := sb.exp.(experiment.PressHandler)
	if !ok {
		return false
	}
	return sched.Post(func() {
		cv := sb.stage.Canvas()
		if cv == nil {
			return
		}
		x, y := cv.ToWorld(px, py)
		ph.MousePressed(sb.stage, x, y)
	})
}

// Click activates the i-th control button on the sandbox goroutine
func (sb *Sandbox) Click(i int) bool {
	return sb.post(func() {
		sb.stage.Controls.Click(i)
	})
}

// Resize changes the raster size and notifies the experiment
func (sb *Sandbox) Resize(pxW, pxH int) bool {
	return sb.post(func() {
		sb.stage.Resize(pxW, pxH)
		if rh, ok := sb.exp.(experiment.ResizeHandler); ok {
			rh.WindowResized(sb.stage, pxW, pxH)
		}
	})
}

// Do runs fn with the stage on the sandbox goroutine and waits for it
func (sb *Sandbox) Do(fn func(st *experiment.Stage)) bool {
	sched := sb.scheduler()
	if sched == nil {
		return false
	}
	return sched.Do(func() { fn(sb.stage) })
}

func (sb *Sandbox) post(fn func()) bool {
	sched := sb.scheduler()
	if sched == nil {
		return false
	}
	return sched.Post(fn)
}

func (sb *Sandbox) scheduler() *engine.FrameScheduler {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if !sb.mounted || sb.tornDown {
		return nil
	}
	return sb.sched
}

// Running reports whether the frame loop is alive
func (sb *Sandbox) Running() bool {
	sched := sb.scheduler()
	return sched != nil && sched.Running()
}

// Frames returns the number of frames drawn so far
func (sb *Sandbox) Frames() uint64 {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.sched == nil {
		return 0
	}
	return sb.sched.Frames()
}

// Teardown stops the frame loop and waits for it to exit; idempotent
func (sb *Sandbox) Teardown() {
	sb.mu.Lock()
	if sb.tornDown {
		sb.mu.Unlock()
		return
	}
	sb.tornDown = true
	sched := sb.sched
	sb.mu.Unlock()

	if sched != nil {
		sched.Stop()
		sb.logger.Info("sandbox torn down", zap.Uint64("frames", sched.Frames()))
	}
}
