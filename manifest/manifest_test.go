package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/registry"
)

func TestRegisterAll(t *testing.T) {
	RegisterAll()

	for _, e := range ActiveExperiments() {
		f, ok := registry.GetExperiment(e.Script)
		require.True(t, ok, e.Script)
		assert.NotNil(t, f())
	}
	assert.Subset(t, registry.LibraryNames(), []string{registry.LibraryGraphics, registry.LibraryAudio})
}

func TestLibrariesAttachToStage(t *testing.T) {
	RegisterLibraries()

	st := experiment.NewStage("m", experiment.Env{Seed: 2, NoiseKind: noise.KindSimplex}, 8, 8, nil)
	for _, name := range []string{registry.LibraryGraphics, registry.LibraryAudio} {
		load, ok := registry.GetLibrary(name)
		require.True(t, ok)
		require.NoError(t, load(st))
	}
	assert.True(t, st.GraphicsLoaded())
	assert.True(t, st.AudioLoaded())
	assert.IsType(t, &noise.Simplex{}, st.Noise())
	assert.Equal(t, experiment.Silent, st.Audio())
}

func TestBuiltinsRunOneFrame(t *testing.T) {
	RegisterAll()

	for _, e := range ActiveExperiments() {
		st := experiment.NewStage(e.Name, experiment.Env{Seed: 1}, 40, 30, nil)
		for _, name := range []string{registry.LibraryGraphics, registry.LibraryAudio} {
			load, _ := registry.GetLibrary(name)
			require.NoError(t, load(st))
		}

		f, _ := registry.GetExperiment(e.Script)
		exp := f()
		require.NoError(t, exp.Setup(st), e.Name)
		exp.Draw(st, 0)
		assert.NotNil(t, st.Canvas())
	}
}
