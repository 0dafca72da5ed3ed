// Package config loads gallery settings from defaults, an optional config
// file, GALLERY_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/galaxy-gallery/audio"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/noise"
)

// DefaultManifest is the manifest path used when none is configured
const DefaultManifest = "data.json"

// Config is the resolved gallery configuration
type Config struct {
	Manifest string       `mapstructure:"manifest"` // File path or http(s) URL of the experiment list
	Theme    string       `mapstructure:"theme"`    // Optional TOML stylesheet; empty uses the built-in theme
	FPS      int          `mapstructure:"fps"`      // Target frame rate of every sandbox loop
	Seed     uint64       `mapstructure:"seed"`     // World seed; 0 picks one from the clock at startup
	Noise    string       `mapstructure:"noise"`    // Noise backend: perlin or simplex
	Watch    bool         `mapstructure:"watch"`    // Reload the manifest when its file changes
	Debug    bool         `mapstructure:"debug"`    // Write logs to the log file
	Mute     bool         `mapstructure:"mute"`     // Disable audio regardless of audio.enabled
	Audio    AudioConfig  `mapstructure:"audio"`
	Record   RecordConfig `mapstructure:"record"`
}

// AudioConfig tunes the supernova cue
type AudioConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	MasterVolume   float64 `mapstructure:"master_volume"`
	SampleRate     int     `mapstructure:"sample_rate"`
	MembraneVolume float64 `mapstructure:"membrane_volume"`
	NoiseVolume    float64 `mapstructure:"noise_volume"`
}

// RecordConfig controls headless export
type RecordConfig struct {
	Experiment string `mapstructure:"experiment"` // Script path of the experiment to record
	Output     string `mapstructure:"output"`
	Frames     int    `mapstructure:"frames"` // Simulated frames
	Every      int    `mapstructure:"every"`  // Keep one frame in every N
	Width      int    `mapstructure:"width"`  // Raster size in pixels
	Height     int    `mapstructure:"height"`
}

var (
	// ErrInvalidFPS is returned when the frame rate is not positive
	ErrInvalidFPS = errors.New("fps must be positive")

	// ErrInvalidRecord is returned when recording parameters cannot produce a frame
	ErrInvalidRecord = errors.New("invalid record settings")
)

var (
	// defaults are applied before any other source
	defaults = map[string]any{
		"manifest":              DefaultManifest,
		"theme":                 "",
		"fps":                   constants.TargetFPS,
		"seed":                  0,
		"noise":                 string(noise.KindPerlin),
		"watch":                 false,
		"debug":                 false,
		"mute":                  false,
		"audio.enabled":         true,
		"audio.master_volume":   0.5,
		"audio.sample_rate":     constants.AudioSampleRate,
		"audio.membrane_volume": 1.0,
		"audio.noise_volume":    0.4,
		"record.experiment":     "experiments/galaxy",
		"record.output":         "galaxy.png",
		"record.frames":         240,
		"record.every":          4,
		"record.width":          constants.CanvasWidth / 2,
		"record.height":         constants.CanvasHeight / 2,
	}

	// envBindings maps each config key to the environment variables that can provide it
	envBindings = map[string][]string{
		"manifest":              {"GALLERY_MANIFEST"},
		"theme":                 {"GALLERY_THEME"},
		"fps":                   {"GALLERY_FPS"},
		"seed":                  {"GALLERY_SEED"},
		"noise":                 {"GALLERY_NOISE"},
		"watch":                 {"GALLERY_WATCH"},
		"debug":                 {"GALLERY_DEBUG"},
		"mute":                  {"GALLERY_MUTE"},
		"audio.enabled":         {"GALLERY_AUDIO_ENABLED"},
		"audio.master_volume":   {"GALLERY_AUDIO_MASTER_VOLUME", "GALLERY_VOLUME"},
		"audio.sample_rate":     {"GALLERY_AUDIO_SAMPLE_RATE"},
		"audio.membrane_volume": {"GALLERY_AUDIO_MEMBRANE_VOLUME"},
		"audio.noise_volume":    {"GALLERY_AUDIO_NOISE_VOLUME"},
		"record.experiment":     {"GALLERY_RECORD_EXPERIMENT"},
		"record.output":         {"GALLERY_RECORD_OUTPUT"},
		"record.frames":         {"GALLERY_RECORD_FRAMES"},
		"record.every":          {"GALLERY_RECORD_EVERY"},
		"record.width":          {"GALLERY_RECORD_WIDTH"},
		"record.height":         {"GALLERY_RECORD_HEIGHT"},
	}

	// flagBindings maps config keys to command-line flag names; absent flags are skipped
	flagBindings = map[string]string{
		"manifest":          "manifest",
		"theme":             "theme",
		"fps":               "fps",
		"seed":              "seed",
		"noise":             "noise",
		"watch":             "watch",
		"debug":             "debug",
		"mute":              "mute",
		"record.experiment": "experiment",
		"record.output":     "output",
		"record.frames":     "frames",
		"record.every":      "every",
		"record.width":      "width",
		"record.height":     "height",
	}
)

// Load resolves the configuration. An empty or missing filePath skips the
// config file; flags may be nil
func Load(filePath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); err == nil {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", filePath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for key, name := range flagBindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks values no later stage can recover from
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if _, err := noise.ParseKind(c.Noise); err != nil {
		return err
	}
	if c.Record.Frames <= 0 || c.Record.Every <= 0 || c.Record.Width <= 0 || c.Record.Height <= 0 {
		return fmt.Errorf("%w: frames=%d every=%d size=%dx%d", ErrInvalidRecord,
			c.Record.Frames, c.Record.Every, c.Record.Width, c.Record.Height)
	}
	return nil
}

// FrameInterval returns the nominal duration of one frame
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// NoiseKind returns the validated noise backend
func (c *Config) NoiseKind() noise.Kind {
	kind, err := noise.ParseKind(c.Noise)
	if err != nil {
		return noise.KindPerlin
	}
	return kind
}

// AudioEnabled reports whether sound may be activated
func (c *Config) AudioEnabled() bool {
	return c.Audio.Enabled && !c.Mute
}

// SoundConfig converts to the audio package's settings
func (c *Config) SoundConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.AudioEnabled()
	ac.MasterVolume = c.Audio.MasterVolume
	if c.Audio.SampleRate > 0 {
		ac.SampleRate = c.Audio.SampleRate
	}
	ac.EffectVolumes[audio.SoundMembrane] = c.Audio.MembraneVolume
	ac.EffectVolumes[audio.SoundNoiseSweep] = c.Audio.NoiseVolume
	return ac
}
