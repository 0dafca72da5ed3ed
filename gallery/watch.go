package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce coalesces the burst of events editors produce on save
const reloadDebounce = 100 * time.Millisecond

// ErrRemoteManifest is returned when watching a manifest served over http
var ErrRemoteManifest = errors.New("cannot watch a remote manifest")

// Watcher reloads the loader's manifest when its file changes
type Watcher struct {
	loader  *Loader
	path    string
	logger  *zap.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory holding the loader's manifest file
func NewWatcher(loader *Loader) (*Watcher, error) {
	location := loader.Location()
	if u, err := url.Parse(location); err == nil && isRemote(u) {
		return nil, ErrRemoteManifest
	}

	path, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory so atomic replace-on-save is seen
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		loader:  loader,
		path:    path,
		logger:  loader.logger.With(zap.String("manifest", path)),
		watcher: fw,
	}, nil
}

// Run dispatches reloads until ctx is cancelled, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debounce := time.NewTimer(reloadDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				debounce.Reset(reloadDebounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("manifest watch error", zap.Error(err))

		case <-debounce.C:
			w.loader.Reload(ctx)
		}
	}
}
