package gallery

import (
	"context"
	"image"
	"slices"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/core"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/render"
)

// eventBuffer is the capacity of the queue between the event pump and the host loop
const eventBuffer = 64

// HostOptions configures a Host
type HostOptions struct {
	Manifest string
	Chrome   render.Chrome
	Sandbox  SandboxConfig
	Watch    bool
}

// hitRegion is a clickable run of cells on one row
type hitRegion struct {
	x0, x1 int // [x0, x1)
	index  int
}

func (r hitRegion) contains(x int) bool {
	return x >= r.x0 && x < r.x1
}

// Host draws the gallery chrome around the active sandbox and routes terminal
// input. The tab row is on top, the control bar at the bottom and the canvas
// viewport in between
type Host struct {
	screen    tcell.Screen
	presenter *render.Presenter
	loader    *Loader
	chrome    render.Chrome
	style     experiment.Style
	watch     bool
	logger    *zap.Logger

	mu      sync.Mutex // guards layout state shared with sandbox goroutines
	vp      render.Viewport
	active  string // id of the sandbox allowed to present
	tabs    []hitRegion
	buttons []hitRegion

	pressed bool // primary button held, host goroutine only
}

// NewHost creates a host on an initialized screen
func NewHost(screen tcell.Screen, opts HostOptions) *Host {
	if opts.Sandbox.Logger == nil {
		opts.Sandbox.Logger = zap.NewNop()
	}

	h := &Host{
		screen:    screen,
		presenter: render.NewPresenter(screen),
		chrome:    opts.Chrome,
		style:     opts.Sandbox.Style,
		watch:     opts.Watch,
		logger:    opts.Sandbox.Logger,
	}
	h.layout()

	cfg := opts.Sandbox
	cfg.OnFrame = h.presentFrame
	pxW, pxH := h.vp.PixelSize()
	h.loader = NewLoader(opts.Manifest, pxW, pxH, cfg)
	return h
}

// Loader returns the host's experiment loader
func (h *Host) Loader() *Loader {
	return h.loader
}

// Viewport returns the current canvas viewport
func (h *Host) Viewport() render.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.vp
}

// Run loads the manifest and serves input until ctx is cancelled or the user quits
// The active sandbox is torn down before Run returns
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventBuffer)

	g.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		return h.pump(gctx, cancel, events)
	})

	g.Go(func() error {
		defer func() { core.HandleCrash(recover()) }()
		// Wake the pump so it observes cancellation
		defer h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		defer h.loader.Close()
		return h.loop(gctx, cancel, events)
	})

	if h.watch {
		if w, err := NewWatcher(h.loader); err != nil {
			h.logger.Warn("manifest watch disabled", zap.Error(err))
		} else {
			g.Go(func() error {
				defer func() { core.HandleCrash(recover()) }()
				return w.Run(gctx)
			})
		}
	}

	return g.Wait()
}

// pump moves terminal events onto the host loop
// A nil event means the screen was finalized, which ends the host
func (h *Host) pump(ctx context.Context, quit context.CancelFunc, events chan<- tcell.Event) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			quit()
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case events <- ev:
		}
	}
}

func (h *Host) loop(ctx context.Context, quit context.CancelFunc, events <-chan tcell.Event) error {
	h.loader.Start(ctx)
	h.refresh()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if h.handle(ev) {
				quit()
				return nil
			}
		}
	}
}

// handle processes one event on the host goroutine; returns true to quit
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.layout()
		h.loader.Resize(h.Viewport().PixelSize())
		h.refresh()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyTab:
			_ = h.loader.Next()
			h.refresh()
		case tcell.KeyBacktab:
			_ = h.loader.Prev()
			h.refresh()
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.pressed {
			x, y := ev.Position()
			h.press(x, y)
		}
		h.pressed = down
	}
	return false
}

// press routes a primary-button press by screen region
func (h *Host) press(x, y int) {
	h.mu.Lock()
	vp := h.vp
	tabs := slices.Clone(h.tabs)
	buttons := slices.Clone(h.buttons)
	_, rows := h.screen.Size()
	h.mu.Unlock()

	switch {
	case y < constants.TabRowHeight:
		for _, r := range tabs {
			if r.contains(x) {
				_ = h.loader.GoToExperiment(r.index)
				h.refresh()
				return
			}
		}

	case y >= rows-constants.ControlRowHeight:
		sb := h.loader.Sandbox()
		if sb == nil {
			return
		}
		for _, r := range buttons {
			if r.contains(x) {
				sb.Click(r.index)
				return
			}
		}

	case vp.Contains(x, y):
		sb := h.loader.Sandbox()
		if sb == nil {
			return
		}
		px, py := vp.CellToPixel(x, y)
		sb.Press(int(px), int(py))
	}
}

// layout recomputes the viewport from the screen size
func (h *Host) layout() {
	w, rows := h.screen.Size()
	height := max(rows-constants.TabRowHeight-constants.ControlRowHeight, 0)

	h.mu.Lock()
	h.vp = render.Viewport{X: 0, Y: constants.TabRowHeight, Width: w, Height: height}
	h.mu.Unlock()
}

// refresh redraws the chrome after navigation or resize
func (h *Host) refresh() {
	entries := h.loader.Entries()
	current := h.loader.Current()
	sb := h.loader.Sandbox()

	h.mu.Lock()
	h.active = ""
	if sb != nil {
		h.active = sb.ID
	}
	h.drawTabs(entries, current)
	if sb == nil {
		h.presenter.Fill(h.vp, render.Style(h.style.Letterbox, h.style.Letterbox))
		h.drawControls(nil)
	} else {
		h.drawControls(sb.Controls().Buttons())
	}
	h.mu.Unlock()

	h.presenter.Show()
}

// presentFrame runs on the sandbox goroutine after every frame
func (h *Host) presentFrame(sb *Sandbox, img *image.RGBA) {
	h.mu.Lock()
	if sb.ID != h.active {
		h.mu.Unlock()
		return
	}
	h.presenter.Present(img, h.vp)
	h.drawControls(sb.Controls().Buttons())
	h.mu.Unlock()

	h.presenter.Show()
}

// drawTabs paints the tab row; caller holds mu
func (h *Host) drawTabs(entries []Entry, current int) {
	w, _ := h.screen.Size()
	row := render.Viewport{X: 0, Y: 0, Width: w, Height: constants.TabRowHeight}
	h.presenter.Fill(row, render.Style(h.chrome.TabText, h.chrome.Background))

	h.tabs = h.tabs[:0]
	x := 0
	for i, e := range entries {
		if x >= w {
			break
		}
		style := render.Style(h.chrome.TabText, h.chrome.Background)
		if i == current {
			style = render.Style(h.chrome.TabActiveText, h.chrome.TabActiveBg)
		}
		n := render.DrawText(h.screen, x, 0, w-x, " "+e.Name+" ", style)
		h.tabs = append(h.tabs, hitRegion{x0: x, x1: x + n, index: i})
		x += n + constants.ControlGap
	}
}

// drawControls paints the control bar; caller holds mu
func (h *Host) drawControls(buttons []experiment.Button) {
	w, rows := h.screen.Size()
	y := rows - constants.ControlRowHeight
	if y < constants.TabRowHeight {
		return
	}
	bar := render.Viewport{X: 0, Y: y, Width: w, Height: constants.ControlRowHeight}
	h.presenter.Fill(bar, render.Style(h.chrome.ButtonText, h.chrome.Background))

	h.buttons = h.buttons[:0]
	x := 0
	for i, b := range buttons {
		if x >= w {
			break
		}
		style := render.Style(h.chrome.ButtonText, h.chrome.ButtonBg)
		if b.Active {
			style = render.Style(h.chrome.ButtonOnText, h.chrome.ButtonOnBg)
		}
		n := render.DrawText(h.screen, x, y, w-x, " "+b.Label+" ", style)
		h.buttons = append(h.buttons, hitRegion{x0: x, x1: x + n, index: i})
		x += n + constants.ControlGap
	}
}
