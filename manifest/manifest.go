// Package manifest wires the built-in experiments and libraries into the registry
package manifest

import (
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/galaxy"
	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/orbit"
	"github.com/lixenwraith/galaxy-gallery/registry"
)

// RegisterExperiments registers all experiment factories by script path
func RegisterExperiments() {
	registry.RegisterExperiment(galaxy.Script, galaxy.NewExperiment)
	registry.RegisterExperiment(orbit.Script, orbit.NewExperiment)
}

// RegisterLibraries registers the loaders every sandbox document references
// Must be called before any sandbox is mounted
func RegisterLibraries() {
	registry.RegisterLibrary(registry.LibraryGraphics, func(st *experiment.Stage) error {
		st.LoadGraphics(noise.New(st.Env.NoiseKind, int64(st.Env.Seed)))
		return nil
	})
	registry.RegisterLibrary(registry.LibraryAudio, func(st *experiment.Stage) error {
		st.LoadAudio(st.Env.Audio)
		return nil
	})
}

// RegisterAll registers libraries and experiments
func RegisterAll() {
	RegisterLibraries()
	RegisterExperiments()
}

// Entry is a built-in experiment with its display name
type Entry struct {
	Name   string
	Script string
}

// ActiveExperiments returns the built-in experiments in gallery order
func ActiveExperiments() []Entry {
	return []Entry{
		{Name: "Galaxy", Script: galaxy.Script},
		{Name: "Orbit", Script: orbit.Script},
	}
}
