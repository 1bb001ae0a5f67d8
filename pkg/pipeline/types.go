package pipeline

import (
	"fmt"
	"image"
	"image/color"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// String formats the dimension as WxH.
func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

const (
	// MaxBufferBytes caps a single scratch frame buffer.
	MaxBufferBytes = 1 << 31
	// MaxOutputSide is the largest frame width or height an animation can store.
	MaxOutputSide = 65535
)

// CheckBuffer returns an *AllocationError when a tightly packed RGBA8 buffer
// of the given size is empty or larger than MaxBufferBytes.
func CheckBuffer(size Dimension) error {
	if size.Width <= 0 || size.Height <= 0 || size.Width > MaxBufferBytes/4/size.Height {
		return &AllocationError{Width: size.Width, Height: size.Height}
	}
	return nil
}

// Origin is the top-left corner of a frame in source-sheet coordinates.
type Origin struct {
	X int
	Y int
}

// String formats the origin as X,Y.
func (o Origin) String() string {
	return fmt.Sprintf("%d,%d", o.X, o.Y)
}

// =============================================================================
// Load Stage Types
// =============================================================================

// LoadInput names the sprite sheet to decode.
type LoadInput struct {
	Path string
}

// LoadResult holds the decoded sprite sheet.
type LoadResult struct {
	Sheet *image.NRGBA
	Size  Dimension
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// StreamInput describes the animation stream to open.
type StreamInput struct {
	OutputPath  string
	Size        Dimension
	Delay       int // Centiseconds per frame
	LoopCount   int
	PaletteBits int
	ColorKey    *color.RGBA
}

// DefaultPaletteBits is the palette depth used for every stream.
const DefaultPaletteBits = 8

// FrameRecord describes one emitted frame.
type FrameRecord struct {
	Index  int // 1-based
	Origin Origin
	Delay  int
}
