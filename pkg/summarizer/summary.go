// Package summarizer provides run summaries for generated animations.
package summarizer

import "time"

// Summary contains everything reported about one run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	Source SourceInfo
	Output OutputInfo
	Frames []FrameInfo
}

// SourceInfo describes the decoded sprite sheet.
type SourceInfo struct {
	Path   string
	Width  int
	Height int
}

// OutputInfo describes the written animation.
type OutputInfo struct {
	Path        string
	FrameWidth  int
	FrameHeight int
	Width       int
	Height      int
	DelayCS     int
	LoopCount   int    // 0 = forever, -1 = once
	ColorKey    string // "#rrggbb", empty when unset
}

// FrameInfo records where one frame was cut from.
type FrameInfo struct {
	Index int
	X     int
	Y     int
}

// DurationMs returns the total playback time of one loop.
func (s *Summary) DurationMs() int {
	return len(s.Frames) * s.Output.DelayCS * 10
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets sprite sheet information.
func (b *Builder) WithSource(path string, width, height int) *Builder {
	b.summary.Source = SourceInfo{
		Path:   path,
		Width:  width,
		Height: height,
	}
	return b
}

// WithOutput sets animation output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// AddFrame appends a frame in emission order.
func (b *Builder) AddFrame(index, x, y int) *Builder {
	b.summary.Frames = append(b.summary.Frames, FrameInfo{Index: index, X: x, Y: y})
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
