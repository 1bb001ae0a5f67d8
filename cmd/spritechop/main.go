// Package main provides the CLI entry point for spritechop.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/spritechop/pkg/adapters/filesink"
	"github.com/user/spritechop/pkg/adapters/ggrenderer"
	"github.com/user/spritechop/pkg/adapters/gifencoder"
	"github.com/user/spritechop/pkg/adapters/imagedecoder"
	"github.com/user/spritechop/pkg/adapters/logger"
	"github.com/user/spritechop/pkg/adapters/nullsink"
	"github.com/user/spritechop/pkg/adapters/osfilesystem"
	"github.com/user/spritechop/pkg/config"
	"github.com/user/spritechop/pkg/options"
	"github.com/user/spritechop/pkg/orchestrator"
	"github.com/user/spritechop/pkg/ports"
	"github.com/user/spritechop/pkg/stages/encode"
	"github.com/user/spritechop/pkg/stages/load"
	"github.com/user/spritechop/pkg/summarizer"
)

var version = "dev"

const envPrefix = "SPRITECHOP_"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, l10n.F("Error: %s", err))
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "spritechop",
		Usage:           l10n.T("Cut frames out of a sprite sheet into an animated GIF"),
		ArgsUsage:       "X,Y [X,Y...]",
		Version:         version,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           flags(),
		Action: func(c *cli.Context) error {
			return chop(c)
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return &options.UsageError{Msg: err.Error()}
		},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		// Input/Output
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    l10n.T("Sprite sheet image (PNG, JPEG, GIF, BMP, TIFF, WebP)"),
			EnvVars:  []string{envPrefix + "INPUT"},
			Category: l10n.T("Input and Output"),
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output GIF file path"),
			EnvVars:  []string{envPrefix + "OUTPUT"},
			Category: l10n.T("Input and Output"),
		},

		// Frames
		&cli.StringFlag{
			Name:     "size",
			Aliases:  []string{"s"},
			Usage:    l10n.T("Frame size as WxH"),
			EnvVars:  []string{envPrefix + "SIZE"},
			Category: l10n.T("Frames"),
		},
		&cli.StringFlag{
			Name:        "output-size",
			Aliases:     []string{"so"},
			Usage:       l10n.T("Rescale frames to WxH (nearest neighbor)"),
			EnvVars:     []string{envPrefix + "OUTPUT_SIZE"},
			DefaultText: l10n.T("frame size"),
			Category:    l10n.T("Frames"),
		},

		// Animation
		&cli.StringFlag{
			Name:        "delay",
			Aliases:     []string{"f"},
			Usage:       l10n.T("Delay per frame in centiseconds"),
			EnvVars:     []string{envPrefix + "DELAY"},
			DefaultText: fmt.Sprint(options.DefaultDelay),
			Category:    l10n.T("Animation"),
		},
		&cli.StringFlag{
			Name:     "transparent",
			Aliases:  []string{"t"},
			Usage:    l10n.T("Color to make transparent (hex RRGGBB)"),
			EnvVars:  []string{envPrefix + "TRANSPARENT"},
			Category: l10n.T("Animation"),
		},
		&cli.StringFlag{
			Name:        "loop",
			Usage:       l10n.T("Loop count (0 = forever, -1 = play once)"),
			EnvVars:     []string{envPrefix + "LOOP"},
			DefaultText: "0",
			Category:    l10n.T("Animation"),
		},

		// Configuration
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("YAML configuration file"),
			EnvVars:  []string{envPrefix + "CONFIG"},
			Category: l10n.T("Configuration"),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Write a run summary to file (Markdown for .md, YAML otherwise)"),
			EnvVars:  []string{envPrefix + "SUMMARY"},
			Category: l10n.T("Configuration"),
		},

		// Debug
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Enable debug output"),
			EnvVars:  []string{envPrefix + "DEBUG"},
			Category: l10n.T("Debug"),
		},
		&cli.StringFlag{
			Name:        "debug-dir",
			Usage:       l10n.T("Directory for debug output"),
			EnvVars:     []string{envPrefix + "DEBUG_DIR"},
			DefaultText: "./debug",
			Category:    l10n.T("Debug"),
		},

		// Logging
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       l10n.T("Log level (debug, info, warn, error)"),
			EnvVars:     []string{envPrefix + "LOG_LEVEL"},
			DefaultText: "warn",
			Category:    l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			EnvVars:  []string{envPrefix + "QUIET"},
			Category: l10n.T("Logging"),
		},
	}
}

// chop runs one conversion. Precedence is flag, then environment, then
// configuration file, then built-in default.
func chop(c *cli.Context) error {
	file := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		file = loaded
	}

	in := file.Fill(options.Input{
		InputPath:   c.String("input"),
		OutputPath:  c.String("output"),
		FrameSize:   c.String("size"),
		OutputSize:  c.String("output-size"),
		Delay:       c.String("delay"),
		ColorKey:    c.String("transparent"),
		Loop:        c.String("loop"),
		Coordinates: c.Args().Slice(),
	})

	cfg, origins, err := options.Build(in)
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		level := file.LogLevel
		if c.IsSet("log-level") {
			level = c.String("log-level")
		}
		log = logger.NewConsole(ports.ParseLogLevel(level))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	decoder := imagedecoder.New(fs, log)
	encoder := gifencoder.New(log)

	// Create debug sink
	var sink ports.DebugSink
	if c.Bool("debug") || file.Debug {
		dir := file.DebugDir
		if c.IsSet("debug-dir") {
			dir = c.String("debug-dir")
		}
		if err := fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		log.Info("Debug output enabled in %s", dir)
		sink = filesink.New(dir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create orchestrator
	orch := orchestrator.New(
		load.NewStage(decoder, log),
		encode.NewStage(fs, encoder, log),
		renderer,
		sink,
		log,
	)

	result, err := orch.Run(ctx, cfg, origins)
	if err != nil {
		return err
	}

	summaryPath := file.Summary
	if c.IsSet("summary") {
		summaryPath = c.String("summary")
	}
	if summaryPath != "" {
		writer := summarizer.NewWriter(fs, summarizer.ForPath(summaryPath, summarizer.WithTranslator(l10n.T)))
		if err := writer.Write(summaryPath, buildSummary(result)); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary written to %s", summaryPath)
		}
	}

	fmt.Fprintln(c.App.Writer, l10n.F("Wrote %d frame(s) to %s (%s)", result.FrameCount, result.OutputPath, result.OutputSize))
	return nil
}

func buildSummary(result orchestrator.RunResult) *summarizer.Summary {
	out := summarizer.OutputInfo{
		Path:        result.OutputPath,
		FrameWidth:  result.FrameSize.Width,
		FrameHeight: result.FrameSize.Height,
		Width:       result.OutputSize.Width,
		Height:      result.OutputSize.Height,
		DelayCS:     result.Delay,
		LoopCount:   result.LoopCount,
	}
	if k := result.ColorKey; k != nil {
		out.ColorKey = fmt.Sprintf("#%02x%02x%02x", k.R, k.G, k.B)
	}

	b := summarizer.NewBuilder().
		WithSource(result.InputPath, result.SourceSize.Width, result.SourceSize.Height).
		WithOutput(out)
	for _, f := range result.Frames {
		b.AddFrame(f.Index, f.Origin.X, f.Origin.Y)
	}
	return b.Build()
}
