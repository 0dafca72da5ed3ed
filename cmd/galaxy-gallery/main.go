package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/audio"
	"github.com/lixenwraith/galaxy-gallery/config"
	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/core"
	"github.com/lixenwraith/galaxy-gallery/experiment"
	"github.com/lixenwraith/galaxy-gallery/gallery"
	"github.com/lixenwraith/galaxy-gallery/manifest"
	"github.com/lixenwraith/galaxy-gallery/noise"
	"github.com/lixenwraith/galaxy-gallery/record"
	"github.com/lixenwraith/galaxy-gallery/registry"
)

// configPath is the optional config file (toml, yaml or json)
var configPath string

// rootCmd runs the interactive gallery
var rootCmd = &cobra.Command{
	Use:   "galaxy-gallery",
	Short: "Terminal gallery of generative particle animations",
	Long: `galaxy-gallery shows a list of animated experiments in the terminal.

Click a tab or press Tab/Shift-Tab to switch experiments. The buttons at the
bottom change how clicks on the canvas behave. Quit with q, Esc or Ctrl-C.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGallery,
}

// runCmd is an explicit alias of the root command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive gallery (default)",
	RunE:  runGallery,
}

// listCmd prints the manifest entries
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the experiments of the manifest",
	RunE:  listExperiments,
}

// recordCmd exports an experiment as an animated PNG
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Render an experiment headlessly to an animated PNG",
	Long: `Runs an experiment offscreen at the fixed frame interval without audio
and writes every N-th frame to an animated PNG.

Example:
  galaxy-gallery record --experiment experiments/galaxy --frames 480 --every 4 -o galaxy.png`,
	RunE: recordExperiment,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Config file (toml, yaml or json)")
	pf.StringP("manifest", "m", config.DefaultManifest, "Manifest file or http(s) URL")
	pf.String("theme", "", "Theme TOML file")
	pf.Int("fps", constants.TargetFPS, "Target frame rate")
	pf.Uint64("seed", 0, "World seed (0 picks one from the clock)")
	pf.String("noise", string(noise.KindPerlin), "Noise backend: perlin or simplex")
	pf.Bool("mute", false, "Disable audio")
	pf.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	pf.Bool("watch", false, "Reload the manifest when its file changes")

	rf := recordCmd.Flags()
	rf.String("experiment", "experiments/galaxy", "Script of the experiment to record")
	rf.StringP("output", "o", "galaxy.png", "Output file")
	rf.Int("frames", 240, "Frames to simulate")
	rf.Int("every", 4, "Keep one frame in every N")
	rf.Int("width", constants.CanvasWidth/2, "Output width in pixels")
	rf.Int("height", constants.CanvasHeight/2, "Output height in pixels")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(recordCmd)
}

func main() {
	manifest.RegisterAll()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves config and logging for a command
func loadConfig(cmd *cobra.Command) (*config.Config, *zap.Logger, func(), error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger, logFile := setupLogging(cfg.Debug)
	cleanup := func() {
		_ = logger.Sync()
		if logFile != nil {
			logFile.Close()
		}
	}
	logger.Debug("config loaded",
		zap.String("manifest", cfg.Manifest),
		zap.Int("fps", cfg.FPS),
		zap.Uint64("seed", cfg.Seed),
		zap.String("noise", cfg.Noise),
		zap.Bool("audio", cfg.AudioEnabled()))
	return cfg, logger, cleanup, nil
}

func runGallery(cmd *cobra.Command, _ []string) error {
	cfg, logger, cleanup, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	theme, err := config.LoadTheme(cfg.Theme)
	if err != nil {
		return err
	}
	style, err := theme.Style()
	if err != nil {
		return err
	}
	chrome, err := theme.Chrome()
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.SoundConfig(), logger.Named("audio"))
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := gallery.NewHost(screen, gallery.HostOptions{
		Manifest: cfg.Manifest,
		Chrome:   chrome,
		Watch:    cfg.Watch,
		Sandbox: gallery.SandboxConfig{
			Env: experiment.Env{
				Seed:      cfg.Seed,
				NoiseKind: cfg.NoiseKind(),
				Audio:     sound,
			},
			Style:    style,
			Interval: cfg.FrameInterval(),
			Logger:   logger.Named("gallery"),
		},
	})
	return host.Run(ctx)
}

func listExperiments(cmd *cobra.Command, _ []string) error {
	cfg, _, cleanup, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := gallery.LoadManifest(cmd.Context(), cfg.Manifest)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s: %w", cfg.Manifest, gallery.ErrEmptyManifest)
	}

	out := cmd.OutOrStdout()
	for i, e := range entries {
		status := "ok"
		if _, ok := registry.GetExperiment(e.Script()); !ok {
			status = "unknown"
		}
		fmt.Fprintf(out, "%d\t%-20s %-28s %s\n", i, e.Name, e.Script(), status)
		if e.Description != "" {
			fmt.Fprintf(out, "\t%s\n", e.Description)
		}
	}
	return nil
}

func recordExperiment(cmd *cobra.Command, _ []string) error {
	cfg, logger, cleanup, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	theme, err := config.LoadTheme(cfg.Theme)
	if err != nil {
		return err
	}
	style, err := theme.Style()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := record.Record(ctx, record.Options{
		Script:   cfg.Record.Experiment,
		Output:   cfg.Record.Output,
		Frames:   cfg.Record.Frames,
		Every:    cfg.Record.Every,
		Width:    cfg.Record.Width,
		Height:   cfg.Record.Height,
		Env:      experiment.Env{Seed: cfg.Seed, NoiseKind: cfg.NoiseKind()},
		Style:    style,
		Interval: cfg.FrameInterval(),
		Logger:   logger.Named("record"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, cfg.Record.Output)
	return nil
}

var _ experiment.Audio = (*audio.SoundManager)(nil)
