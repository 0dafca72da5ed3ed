package gallery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/galaxy-gallery/experiment"
)

func writeManifest(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const threeEntries = `[
	{"name": "Probe", "file": "experiments/probe"},
	{"name": "Orbit", "file": "experiments/orbit.js"},
	{"name": "Galaxy", "file": "experiments/Galaxy.js"}
]`

func TestLoaderEmptyManifest(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader(writeManifest(t, "data.json", "[]"), 40, 30, testSandboxConfig(t))
	l.Start(context.Background())

	assert.Empty(t, l.Entries())
	assert.Equal(t, -1, l.Current())
	assert.Nil(t, l.Sandbox())
	assert.NoError(t, l.Next())
	assert.Nil(t, l.Sandbox())
}

func TestLoaderFetchFailureStaysEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader(filepath.Join(t.TempDir(), "missing.json"), 40, 30, testSandboxConfig(t))
	l.Start(context.Background())
	assert.Empty(t, l.Entries())
	assert.Nil(t, l.Sandbox())

	bad := NewLoader(writeManifest(t, "data.json", `{"oops"`), 40, 30, testSandboxConfig(t))
	bad.Start(context.Background())
	assert.Empty(t, bad.Entries())
}

func TestLoaderActivatesFirstAndSwitches(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader(writeManifest(t, "data.json", threeEntries), 40, 30, testSandboxConfig(t))
	l.Start(context.Background())
	defer l.Close()

	require.Len(t, l.Entries(), 3)
	assert.Equal(t, 0, l.Current())
	first := l.Sandbox()
	require.NotNil(t, first)
	assert.True(t, first.Running())

	// Out of range is a no-op
	require.NoError(t, l.GoToExperiment(3))
	require.NoError(t, l.GoToExperiment(-1))
	assert.Same(t, first, l.Sandbox())

	require.NoError(t, l.GoToExperiment(2))
	assert.Equal(t, 2, l.Current())
	assert.False(t, first.Running(), "previous sandbox torn down")
	second := l.Sandbox()
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Galaxy", second.Document().Title)
}

func TestLoaderNextPrevWrap(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader(writeManifest(t, "data.json", threeEntries), 40, 30, testSandboxConfig(t))
	l.Start(context.Background())
	defer l.Close()

	require.NoError(t, l.Prev())
	assert.Equal(t, 2, l.Current())
	require.NoError(t, l.Next())
	assert.Equal(t, 0, l.Current())
	require.NoError(t, l.Next())
	assert.Equal(t, 1, l.Current())
}

func TestLoaderMountFailureIsReported(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader(writeManifest(t, "data.json", `[{"name": "Ghost", "file": "experiments/ghost.js"}]`),
		40, 30, testSandboxConfig(t))
	l.Start(context.Background())
	defer l.Close()

	assert.Equal(t, 0, l.Current())
	assert.Nil(t, l.Sandbox())
	assert.ErrorIs(t, l.GoToExperiment(0), ErrUnknownExperiment)
}

func TestLoaderSetEntriesKeepsActive(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader("unused.json", 40, 30, testSandboxConfig(t))
	defer l.Close()

	l.SetEntries([]Entry{{Name: "Probe", File: probeScript}})
	active := l.Sandbox()
	require.NotNil(t, active)

	l.SetEntries([]Entry{{Name: "Orbit", File: "experiments/orbit"}, {Name: "Probe", File: probeScript}})
	assert.Same(t, active, l.Sandbox())
	assert.Len(t, l.Entries(), 2)
}

func TestLoaderResizeForwards(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoader("unused.json", 40, 30, testSandboxConfig(t))
	defer l.Close()
	l.SetEntries([]Entry{{Name: "Probe", File: probeScript}})

	l.Resize(60, 20)
	sb := l.Sandbox()
	require.NotNil(t, sb)
	p := sb.Experiment().(*probe)
	require.True(t, sb.Do(func(*experiment.Stage) {}))
	assert.Equal(t, [2]int{60, 20}, p.snapshot().resized)
}
