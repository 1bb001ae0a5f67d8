// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"image/color"
	"strings"

	"github.com/user/spritechop/pkg/options"
	"github.com/user/spritechop/pkg/pipeline"
	"github.com/user/spritechop/pkg/ports"
	"github.com/user/spritechop/pkg/stages/encode"
	"github.com/user/spritechop/pkg/stages/extract"
	"github.com/user/spritechop/pkg/stages/overlay"
	"github.com/user/spritechop/pkg/stages/postprocess"
)

// Orchestrator runs the load, extract, post-process and encode stages for
// one sprite sheet.
type Orchestrator struct {
	loadStage   pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult]
	encodeStage *encode.Stage
	renderer    ports.Renderer
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	loadStage pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult],
	encodeStage *encode.Stage,
	renderer ports.Renderer,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		loadStage:   loadStage,
		encodeStage: encodeStage,
		renderer:    renderer,
		sink:        sink,
		logger:      logger,
	}
}

// RunResult describes a completed run for reporting.
type RunResult struct {
	InputPath  string
	OutputPath string

	SourceSize pipeline.Dimension
	FrameSize  pipeline.Dimension
	OutputSize pipeline.Dimension

	Delay     int
	LoopCount int
	ColorKey  *color.RGBA

	FrameCount int
	Frames     []pipeline.FrameRecord
}

// Run emits one output frame per origin, in order. Any failure after the
// output file was created removes it before returning.
func (o *Orchestrator) Run(ctx context.Context, cfg options.Config, origins []pipeline.Origin) (RunResult, error) {
	// 1. Load sprite sheet
	o.logger.Info("Loading sprite sheet %s", cfg.InputPath)
	loaded, err := o.loadStage.Execute(ctx, pipeline.LoadInput{Path: cfg.InputPath})
	if err != nil {
		return RunResult{}, err
	}
	o.logger.Info("Sprite sheet loaded: %s", loaded.Size)

	if o.sink.Enabled() {
		img := overlay.Render(o.renderer, loaded.Sheet, cfg.FrameSize, origins)
		if err := o.sink.SaveOverlay(img); err != nil {
			o.logger.Warn("Failed to save debug overlay: %s", err)
		}
	}

	// 2. Scratch buffers
	// A frame larger than the sheet fits at no origin, so fail on the first
	// one before sizing buffers from it.
	if len(origins) > 0 && (cfg.FrameSize.Width > loaded.Size.Width || cfg.FrameSize.Height > loaded.Size.Height) {
		return RunResult{}, &extract.OutOfBoundsError{
			Index:  1,
			Origin: origins[0],
			Size:   cfg.FrameSize,
			Source: loaded.Size,
		}
	}
	if cfg.OutputSize.Width > pipeline.MaxOutputSide || cfg.OutputSize.Height > pipeline.MaxOutputSide {
		return RunResult{}, &pipeline.AllocationError{Width: cfg.OutputSize.Width, Height: cfg.OutputSize.Height}
	}

	extractor, err := extract.New(loaded.Sheet, cfg.FrameSize, o.logger)
	if err != nil {
		return RunResult{}, err
	}
	chain, err := postprocess.Build(cfg, o.logger)
	if err != nil {
		return RunResult{}, err
	}
	if len(chain) > 0 {
		o.logger.Debug("Frame transforms: %s", strings.Join(chain.Names(), ", "))
	}

	// 3. Open output
	stream, err := o.encodeStage.Open(pipeline.StreamInput{
		OutputPath:  cfg.OutputPath,
		Size:        cfg.OutputSize,
		Delay:       cfg.Delay,
		LoopCount:   cfg.LoopCount,
		PaletteBits: pipeline.DefaultPaletteBits,
		ColorKey:    cfg.ColorKey,
	})
	if err != nil {
		return RunResult{}, err
	}

	// 4. Emit frames
	o.logger.Info("Writing %d frame(s) of %s to %s", len(origins), cfg.OutputSize, cfg.OutputPath)
	records := make([]pipeline.FrameRecord, 0, len(origins))
	for i, origin := range origins {
		index := i + 1

		if err := ctx.Err(); err != nil {
			stream.Abort()
			return RunResult{}, err
		}

		frame, err := extractor.Next(index, origin)
		if err != nil {
			stream.Abort()
			return RunResult{}, err
		}
		frame = chain.Apply(frame)

		if o.sink.Enabled() {
			if err := o.sink.SaveFrame(index, frame); err != nil {
				o.logger.Warn("Failed to save debug frame %d: %s", index, err)
			}
		}

		if err := stream.Append(frame, cfg.Delay); err != nil {
			stream.Abort()
			return RunResult{}, err
		}
		records = append(records, pipeline.FrameRecord{Index: index, Origin: origin, Delay: cfg.Delay})
	}

	// 5. Finalize
	if err := stream.Finish(); err != nil {
		return RunResult{}, err
	}
	o.logger.Debug("Wrote %d frame(s) to %s (%s)", len(records), cfg.OutputPath, cfg.OutputSize)

	return RunResult{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		SourceSize: loaded.Size,
		FrameSize:  cfg.FrameSize,
		OutputSize: cfg.OutputSize,
		Delay:      cfg.Delay,
		LoopCount:  cfg.LoopCount,
		ColorKey:   cfg.ColorKey,
		FrameCount: len(records),
		Frames:     records,
	}, nil
}
