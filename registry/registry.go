// Package registry maps sandbox resource references to the code that
// implements them: experiment scripts by path and libraries by name
package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/galaxy-gallery/experiment"
)

// LibraryLoader attaches a library's capabilities to a stage
type LibraryLoader func(st *experiment.Stage) error

var (
	experimentsMu sync.RWMutex
	experiments   = make(map[string]experiment.Factory)
	librariesMu   sync.RWMutex
	libraries     = make(map[string]LibraryLoader)
)

// RegisterExperiment adds an experiment factory under its script path
func RegisterExperiment(script string, factory experiment.Factory) {
	experimentsMu.Lock()
	defer experimentsMu.Unlock()
	experiments[script] = factory
}

// GetExperiment retrieves an experiment factory by script path
func GetExperiment(script string) (experiment.Factory, bool) {
	experimentsMu.RLock()
	defer experimentsMu.RUnlock()
	f, ok := experiments[script]
	return f, ok
}

// ExperimentScripts returns all registered script paths, sorted
func ExperimentScripts() []string {
	experimentsMu.RLock()
	defer experimentsMu.RUnlock()
	names := make([]string, 0, len(experiments))
	for name := range experiments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterLibrary adds a library loader by name
func RegisterLibrary(name string, loader LibraryLoader) {
	librariesMu.Lock()
	defer librariesMu.Unlock()
	libraries[name] = loader
}

// GetLibrary retrieves a library loader by name
func GetLibrary(name string) (LibraryLoader, bool) {
	librariesMu.RLock()
	defer librariesMu.RUnlock()
	l, ok := libraries[name]
	return l, ok
}

// LibraryNames returns all registered library names, sorted
func LibraryNames() []string {
	librariesMu.RLock()
	defer librariesMu.RUnlock()
	names := make([]string, 0, len(libraries))
	for name := range libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Library names referenced by sandbox documents
const (
	LibraryGraphics = "graphics"
	LibraryAudio    = "audio"
)
