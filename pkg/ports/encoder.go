package ports

import (
	"image"
	"image/color"
	"io"
)

// AnimationEncoder appends frames to an animated image stream.
//
// Begin must be called once before any WriteFrame and End exactly once after
// the last frame. The encoder does not close w.
type AnimationEncoder interface {
	// Begin starts a stream of width x height frames written to w.
	Begin(w io.Writer, width, height int, opts EncoderOptions) error

	// WriteFrame appends one frame shown for delayCS hundredths of a second.
	WriteFrame(img image.Image, delayCS int) error

	// End finalizes the stream.
	End() error
}

// EncoderOptions configures an animation stream.
type EncoderOptions struct {
	PaletteBits int // Bits per palette index (1-8)
	LoopCount   int // 0 loops forever, -1 plays once, n repeats n times

	// ColorKey is a hint for the transparent palette entry. Nil when no
	// colorkey is configured.
	ColorKey *color.RGBA
}
