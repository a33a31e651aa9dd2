package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/snapvault/snapvault/internal/assets"
	"github.com/snapvault/snapvault/internal/capture"
	"github.com/snapvault/snapvault/internal/config"
	"github.com/snapvault/snapvault/internal/controller"
	"github.com/snapvault/snapvault/internal/logging"
	"github.com/snapvault/snapvault/internal/preview"
	"github.com/snapvault/snapvault/internal/proc"
	"github.com/snapvault/snapvault/internal/winsys"
)

const defaultSettingsPath = "Settings.ini"

type options struct {
	configPath  string
	targetsPath string
	targetName  string
	assetRoot   string
	prefix      string
	processName string
	windowTitle string
	method      string
	headless    bool
	maxFrames   int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "snapvault",
		Short: "Interactive versioned capture of a named application window",
		Long: `snapvault locates the window of a running process by exact title,
captures it to sequentially numbered PNG files in a fresh version
directory, and shows each frame in a preview window. Any key advances
to the next capture; 'q' quits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultSettingsPath, "path to Settings.ini")
	flags.StringVar(&opts.targetsPath, "targets", "targets.yaml", "path to the target profiles file")
	flags.StringVarP(&opts.targetName, "target", "t", "", "named capture target from the profiles file")
	flags.StringVar(&opts.assetRoot, "root", "", "asset root directory (overrides config)")
	flags.StringVar(&opts.prefix, "prefix", "", "version directory prefix (overrides config)")
	flags.StringVar(&opts.processName, "process", "", "target process executable name (overrides config)")
	flags.StringVar(&opts.windowTitle, "title", "", "exact target window title (overrides config)")
	flags.StringVar(&opts.method, "method", "", "capture method: window or bounds (overrides config)")
	flags.BoolVar(&opts.headless, "headless", false, "run without a preview window")
	flags.IntVar(&opts.maxFrames, "max-frames", 0, "frame limit for headless runs (overrides config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "emit per-tick debug logs")

	return cmd
}

// resolveSettings layers configuration: Settings.ini, then the selected
// target profile, then explicit flags.
func resolveSettings(cmd *cobra.Command, opts *options, log *logging.Logger) (*config.Settings, error) {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		if cmd.Flags().Changed("config") {
			return nil, err
		}
		log.Warn("No settings file found, using defaults")
		settings = config.NewDefaultSettings()
	}

	if opts.targetName != "" {
		targets, err := config.LoadTargets(opts.targetsPath)
		if err != nil {
			return nil, err
		}
		if err := settings.ApplyTarget(targets, opts.targetName); err != nil {
			return nil, err
		}
	}

	if opts.assetRoot != "" {
		settings.AssetRoot = opts.assetRoot
	}
	if opts.prefix != "" {
		settings.VersionPrefix = opts.prefix
	}
	if opts.processName != "" {
		settings.ProcessName = opts.processName
	}
	if opts.windowTitle != "" {
		settings.WindowTitle = opts.windowTitle
	}
	if opts.method != "" {
		settings.CaptureMethod = opts.method
	}
	if opts.headless {
		settings.Headless = true
	}
	if opts.maxFrames > 0 {
		settings.MaxFrames = opts.maxFrames
	}

	return settings, settings.Validate()
}

func run(cmd *cobra.Command, opts *options) error {
	log := logging.New("snapvault")
	loopLog := logging.New("controller")
	if opts.verbose {
		log.SetMinLevel(logging.LevelDebug)
		loopLog.SetMinLevel(logging.LevelDebug)
	}

	settings, err := resolveSettings(cmd, opts, log)
	if err != nil {
		log.Fatal("Invalid configuration", err)
		return err
	}

	if settings.LogFile != "" {
		logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal("Failed to open log file", err)
			return err
		}
		defer logFile.Close()
		log.AddOutput(logFile)
		loopLog.AddOutput(logFile)
	}

	pid, err := proc.FindPID(settings.ProcessName)
	if err != nil {
		log.Fatal("Target process not found", err)
		return err
	}

	// Resolving indices and creating the new version directory happens
	// before anything else touches the asset root; a failure here means
	// the run never starts.
	store, err := assets.Open(settings.AssetRoot, settings.VersionPrefix)
	if err != nil {
		if errors.Is(err, assets.ErrNoVersions) || errors.Is(err, assets.ErrNoImages) {
			log.Fatal("Asset root has no completed prior version to continue from", err)
		} else {
			log.Fatal("Failed to create version directory", err)
		}
		return err
	}

	capturer, err := capture.New(capture.Method(settings.CaptureMethod))
	if err != nil {
		log.Fatal("Capture backend unavailable", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.InfoWithFields("Capture run starting", map[string]interface{}{
		"pid":        pid,
		"versionDir": store.VersionDir(),
		"imageIndex": store.ImageIndex(),
	})

	cfg := controller.Config{
		Logger:         loopLog,
		Enumerator:     winsys.NewEnumerator(),
		Capturer:       capturer,
		Store:          store,
		PID:            pid,
		WindowTitle:    settings.WindowTitle,
		SearchInterval: time.Duration(settings.SearchIntervalMs) * time.Millisecond,
	}

	if settings.Headless {
		cfg.Surface = &preview.Headless{Frames: settings.MaxFrames}
		ctrl := controller.New(cfg)
		if err := ctrl.Run(ctx); err != nil {
			log.Error("Capture loop failed", err)
			return err
		}
		log.InfoWithFields("Capture run finished",
			map[string]interface{}{"frames": ctrl.FramesCaptured()})
		return nil
	}

	fyneApp := app.NewWithID("com.snapvault.snapvault")
	surface := preview.NewFyneSurface(fyneApp, settings.PreviewTitle)
	cfg.Surface = surface
	ctrl := controller.New(cfg)

	errCh := superviseLoop(
		fyneApp.Lifecycle().SetOnStarted,
		func() error { return ctrl.Run(ctx) },
		func() { fyne.Do(fyneApp.Quit) },
	)

	surface.ShowWindow()
	fyneApp.Run()
	// Run also returns when the operator closes the last window; cancel
	// the context so a loop still in Searching winds down before the
	// receive below.
	stop()

	if runErr := <-errCh; runErr != nil {
		log.Error("Capture loop failed", runErr)
		return runErr
	}
	log.InfoWithFields("Capture run finished",
		map[string]interface{}{"frames": ctrl.FramesCaptured()})
	return nil
}

// superviseLoop defers the capture loop until the UI event loop reports
// started, then runs it in its own goroutine and calls quit when it
// ends. Starting the loop early would let it finish, and try to quit
// the app, before the event loop exists to deliver the quit.
func superviseLoop(onStarted func(func()), runLoop func() error, quit func()) <-chan error {
	errCh := make(chan error, 1)
	onStarted(func() {
		go func() {
			errCh <- runLoop()
			quit()
		}()
	})
	return errCh
}
