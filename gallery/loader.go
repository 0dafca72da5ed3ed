package gallery

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Loader owns the manifest entries and the single active sandbox
type Loader struct {
	location string
	cfg      SandboxConfig
	logger   *zap.Logger

	mu       sync.Mutex
	entries  []Entry
	current  int // -1 while nothing is active
	sandbox  *Sandbox
	pxW, pxH int
}

// NewLoader creates a loader for the manifest at location; sandboxes get pxW x pxH rasters
func NewLoader(location string, pxW, pxH int, cfg SandboxConfig) *Loader {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Loader{
		location: location,
		cfg:      cfg,
		logger:   cfg.Logger,
		current:  -1,
		pxW:      pxW,
		pxH:      pxH,
	}
}

// Location returns the manifest location
func (l *Loader) Location() string {
	return l.location
}

// Start fetches the manifest and activates the first entry
// A fetch or parse failure leaves the gallery empty and is only logged
func (l *Loader) Start(ctx context.Context) {
	entries, err := LoadManifest(ctx, l.location)
	if err != nil {
		l.logger.Warn("manifest unavailable, gallery left empty",
			zap.String("location", l.location), zap.Error(err))
		return
	}
	l.logger.Info("manifest loaded", zap.String("location", l.location), zap.Int("entries", len(entries)))
	l.SetEntries(entries)
}

// Reload re-reads the manifest; failures keep the current entries
func (l *Loader) Reload(ctx context.Context) {
	entries, err := LoadManifest(ctx, l.location)
	if err != nil {
		l.logger.Warn("manifest reload failed", zap.String("location", l.location), zap.Error(err))
		return
	}
	l.logger.Info("manifest reloaded", zap.Int("entries", len(entries)))
	l.SetEntries(entries)
}

// SetEntries replaces the entry list and activates index 0 if nothing is active
func (l *Loader) SetEntries(entries []Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = slices.Clone(entries)
	if l.current >= len(l.entries) {
		l.current = len(l.entries) - 1
	}
	if l.sandbox == nil && len(l.entries) > 0 {
		_ = l.goTo(0)
	}
}

// GoToExperiment tears down the active sandbox and mounts entry i
// An out-of-range index is a no-op
func (l *Loader) GoToExperiment(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.goTo(i)
}

func (l *Loader) goTo(i int) error {
	if i < 0 || i >= len(l.entries) {
		return nil
	}

	if l.sandbox != nil {
		l.sandbox.Teardown()
		l.sandbox = nil
	}

	entry := l.entries[i]
	l.current = i

	sb := NewSandbox(NewDocument(entry), l.pxW, l.pxH, l.cfg)
	if err := sb.Mount(); err != nil {
		sb.Teardown()
		l.logger.Warn("experiment failed to mount",
			zap.Int("index", i), zap.String("name", entry.Name), zap.Error(err))
		return err
	}

	l.sandbox = sb
	l.logger.Info("experiment active",
		zap.Int("index", i), zap.String("name", entry.Name), zap.String("sandbox", sb.ID))
	return nil
}

// Next activates the following entry, wrapping around
func (l *Loader) Next() error {
	return l.step(1)
}

// Prev activates the preceding entry, wrapping around
func (l *Loader) Prev() error {
	return l.step(-1)
}

func (l *Loader) step(delta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	if n == 0 {
		return nil
	}
	i := l.current
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	return l.goTo(i)
}

// Entries returns a copy of the entry list
func (l *Loader) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Current returns the index of the selected entry, -1 if none
func (l *Loader) Current() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Sandbox returns the active sandbox, nil if none
func (l *Loader) Sandbox() *Sandbox {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sandbox
}

// Resize sets the raster size for the active and future sandboxes
func (l *Loader) Resize(pxW, pxH int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if pxW == l.pxW && pxH == l.pxH {
		return
	}
	l.pxW, l.pxH = pxW, pxH
	if l.sandbox != nil {
		l.sandbox.Resize(pxW, pxH)
	}
}

// Close tears down the active sandbox
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sandbox != nil {
		l.sandbox.Teardown()
		l.sandbox = nil
	}
}
