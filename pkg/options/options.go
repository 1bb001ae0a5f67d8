// Package options turns raw command-line values into a validated frame plan.
package options

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/user/spritechop/pkg/pipeline"
)

// DefaultDelay is the frame delay in centiseconds used when none is given (80 ms).
const DefaultDelay = 8

// Input holds option values exactly as the caller supplied them.
// Empty strings mean "not given".
type Input struct {
	InputPath  string
	OutputPath string
	FrameSize  string
	OutputSize string
	Delay      string
	ColorKey   string
	Loop       string

	// Coordinates are the trailing X,Y tokens in emission order.
	Coordinates []string
}

// Config is the validated, immutable configuration for one run.
type Config struct {
	InputPath  string
	OutputPath string

	FrameSize  pipeline.Dimension
	OutputSize pipeline.Dimension // Equals FrameSize unless rescaling was requested
	Delay      int                // Centiseconds, applied to every frame
	LoopCount  int                // 0 loops forever, -1 plays once

	ColorKey *color.RGBA // Nil when no colorkey was configured
}

// NeedsResize reports whether frames are rescaled before encoding.
func (c Config) NeedsResize() bool {
	return c.OutputSize != c.FrameSize
}

// UsageError reports a missing or malformed input value.
type UsageError struct {
	Option string // Flag the value belongs to, e.g. "-s"
	Value  string // Offending value, empty when the option was missing
	Msg    string
}

func (e *UsageError) Error() string {
	if e.Value == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Value)
}

// Build validates in and returns the run configuration and frame origins.
// It stops at the first problem found.
func Build(in Input) (Config, []pipeline.Origin, error) {
	cfg := Config{
		InputPath:  in.InputPath,
		OutputPath: in.OutputPath,
		Delay:      DefaultDelay,
	}

	if in.InputPath == "" {
		return Config{}, nil, &UsageError{Option: "-i", Msg: "input image is required (-i)"}
	}
	if in.OutputPath == "" {
		return Config{}, nil, &UsageError{Option: "-o", Msg: "output image is required (-o)"}
	}

	if in.FrameSize == "" {
		return Config{}, nil, &UsageError{Option: "-s", Msg: "frame size is required (-s <width>x<height>)"}
	}
	size, err := ParseSize(in.FrameSize)
	if err != nil {
		return Config{}, nil, &UsageError{Option: "-s", Value: in.FrameSize, Msg: "invalid size (expected <width>x<height>)"}
	}
	cfg.FrameSize = size
	cfg.OutputSize = size

	if in.OutputSize != "" {
		out, err := ParseSize(in.OutputSize)
		if err != nil {
			return Config{}, nil, &UsageError{Option: "-so", Value: in.OutputSize, Msg: "invalid output size (expected <width>x<height>)"}
		}
		cfg.OutputSize = out
	}

	if in.Delay != "" {
		delay, err := ParseDelay(in.Delay)
		if err != nil {
			return Config{}, nil, &UsageError{Option: "-f", Value: in.Delay, Msg: "invalid frame delay (expected positive centiseconds)"}
		}
		cfg.Delay = delay
	}

	if in.ColorKey != "" {
		key, err := ParseColorKey(in.ColorKey)
		if err != nil {
			return Config{}, nil, &UsageError{Option: "-t", Value: in.ColorKey, Msg: "invalid transparency color (expected hex like ff00ff or #ff00ff)"}
		}
		cfg.ColorKey = &key
	}

	if in.Loop != "" {
		loop, err := ParseLoop(in.Loop)
		if err != nil {
			return Config{}, nil, &UsageError{Option: "--loop", Value: in.Loop, Msg: "invalid loop count (expected -1, 0 or a positive count)"}
		}
		cfg.LoopCount = loop
	}

	if len(in.Coordinates) == 0 {
		return Config{}, nil, &UsageError{Msg: "at least one coordinate is required"}
	}
	origins := make([]pipeline.Origin, 0, len(in.Coordinates))
	for _, tok := range in.Coordinates {
		o, err := ParseOrigin(tok)
		if err != nil {
			return Config{}, nil, &UsageError{Value: tok, Msg: "invalid coordinate (expected x,y)"}
		}
		origins = append(origins, o)
	}

	return cfg, origins, nil
}

// ParseSize parses WxH (separator x or X) into a Dimension with positive sides.
func ParseSize(s string) (pipeline.Dimension, error) {
	sep := strings.IndexByte(s, 'x')
	if sep < 0 {
		sep = strings.IndexByte(s, 'X')
	}
	if sep < 0 {
		return pipeline.Dimension{}, fmt.Errorf("missing separator in %q", s)
	}

	w, err := strconv.Atoi(s[:sep])
	if err != nil {
		return pipeline.Dimension{}, fmt.Errorf("parse width: %w", err)
	}
	h, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return pipeline.Dimension{}, fmt.Errorf("parse height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return pipeline.Dimension{}, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}

	return pipeline.Dimension{Width: w, Height: h}, nil
}

// ParseDelay parses a positive centisecond delay that fits in 32 bits.
func ParseDelay(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse delay: %w", err)
	}
	if v <= 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("delay out of range: %d", v)
	}
	return int(v), nil
}

// ParseColorKey parses RRGGBB, optionally prefixed with '#'.
func ParseColorKey(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected 6 hex digits, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse hex color: %w", err)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
}

// ParseOrigin parses X,Y with signed decimal components and nothing else.
func ParseOrigin(s string) (pipeline.Origin, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return pipeline.Origin{}, fmt.Errorf("missing comma in %q", s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return pipeline.Origin{}, fmt.Errorf("parse x: %w", err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return pipeline.Origin{}, fmt.Errorf("parse y: %w", err)
	}
	return pipeline.Origin{X: x, Y: y}, nil
}

// ParseLoop parses a GIF loop count: -1 (play once), 0 (forever) or a repeat count.
func ParseLoop(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse loop: %w", err)
	}
	if v < -1 || v > math.MaxUint16 {
		return 0, fmt.Errorf("loop count out of range: %d", v)
	}
	return v, nil
}
