package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy-gallery/audio"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/noise"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", constants.TargetFPS, "")
	fs.String("noise", "perlin", "")
	fs.Bool("mute", false, "")
	fs.Uint64("seed", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultManifest, cfg.Manifest)
	assert.Equal(t, constants.TargetFPS, cfg.FPS)
	assert.Equal(t, noise.KindPerlin, cfg.NoiseKind())
	assert.True(t, cfg.AudioEnabled())
	assert.Equal(t, time.Second/constants.TargetFPS, cfg.FrameInterval())
	assert.Equal(t, "experiments/galaxy", cfg.Record.Experiment)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, constants.TargetFPS, cfg.FPS)
}

func TestLoadPrecedence(t *testing.T) {
	file := writeFile(t, "gallery.toml", "fps = 60\nnoise = \"simplex\"\n")

	t.Run("file over default", func(t *testing.T) {
		cfg, err := Load(file, newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.FPS)
		assert.Equal(t, noise.KindSimplex, cfg.NoiseKind())
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("GALLERY_FPS", "30")
		cfg, err := Load(file, newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.FPS)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("GALLERY_FPS", "30")
		cfg, err := Load(file, newFlags(t, "--fps=90"))
		require.NoError(t, err)
		assert.Equal(t, 90, cfg.FPS)
	})

	t.Run("unset flag keeps file value", func(t *testing.T) {
		cfg, err := Load(file, newFlags(t, "--mute"))
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.FPS)
		assert.False(t, cfg.AudioEnabled())
	})
}

func TestLoadNestedYAML(t *testing.T) {
	file := writeFile(t, "gallery.yaml", `
audio:
  master_volume: 0.25
  noise_volume: 0.5
record:
  frames: 10
  every: 2
`)
	cfg, err := Load(file, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Record.Frames)
	assert.Equal(t, 2, cfg.Record.Every)

	sc := cfg.SoundConfig()
	assert.True(t, sc.Enabled)
	assert.InDelta(t, 0.25, sc.Volume(audio.SoundMembrane), 1e-9)
	assert.InDelta(t, 0.125, sc.Volume(audio.SoundNoiseSweep), 1e-9)
}

func TestLoadEnvAlias(t *testing.T) {
	t.Setenv("GALLERY_VOLUME", "0.75")
	t.Setenv("GALLERY_SEED", "42")
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, cfg.Audio.MasterVolume, 1e-9)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Run("fps", func(t *testing.T) {
		_, err := Load("", newFlags(t, "--fps=0"))
		assert.ErrorIs(t, err, ErrInvalidFPS)
	})

	t.Run("noise", func(t *testing.T) {
		_, err := Load("", newFlags(t, "--noise=worley"))
		assert.Error(t, err)
	})

	t.Run("record", func(t *testing.T) {
		t.Setenv("GALLERY_RECORD_EVERY", "0")
		_, err := Load("", nil)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("malformed file", func(t *testing.T) {
		file := writeFile(t, "broken.toml", "fps = [\n")
		_, err := Load(file, nil)
		assert.Error(t, err)
	})
}
