// Package gifencoder provides an animated GIF encoder built on image/gif.
package gifencoder

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/user/spritechop/pkg/ports"
)

var (
	// ErrNotStarted is returned when frames are written before Begin.
	ErrNotStarted = errors.New("gifencoder: stream not started")

	// ErrAlreadyStarted is returned when Begin is called twice.
	ErrAlreadyStarted = errors.New("gifencoder: stream already started")

	// ErrInvalidSize is returned for canvas sizes GIF cannot represent.
	ErrInvalidSize = errors.New("gifencoder: invalid canvas size")

	// ErrFrameSize is returned when a frame does not match the canvas size.
	ErrFrameSize = errors.New("gifencoder: frame size does not match canvas")

	// ErrDelayRange is returned for delays outside 0-65535 centiseconds.
	ErrDelayRange = errors.New("gifencoder: delay out of range")
)

// Maximum canvas side and delay value a GIF can store.
const maxUint16 = 1<<16 - 1

// Encoder implements ports.AnimationEncoder.
//
// image/gif only writes complete animations, so frames are quantized as they
// arrive and the stream is written to w by End.
type Encoder struct {
	logger ports.Logger

	w      io.Writer
	width  int
	height int
	opts   ports.EncoderOptions
	anim   *gif.GIF
}

// New creates a new Encoder.
func New(logger ports.Logger) *Encoder {
	return &Encoder{
		logger: logger.WithComponent("gif"),
	}
}

// Begin starts a stream of width x height frames written to w.
func (e *Encoder) Begin(w io.Writer, width, height int, opts ports.EncoderOptions) error {
	if e.anim != nil {
		return ErrAlreadyStarted
	}
	if width <= 0 || height <= 0 || width > maxUint16 || height > maxUint16 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if opts.PaletteBits < 1 || opts.PaletteBits > 8 {
		opts.PaletteBits = 8
	}

	e.w = w
	e.width = width
	e.height = height
	e.opts = opts
	e.anim = &gif.GIF{
		LoopCount: opts.LoopCount,
		Config: image.Config{
			Width:  width,
			Height: height,
		},
	}
	return nil
}

// WriteFrame quantizes img and appends it with the given delay.
func (e *Encoder) WriteFrame(img image.Image, delayCS int) error {
	if e.anim == nil {
		return ErrNotStarted
	}
	if delayCS < 0 || delayCS > maxUint16 {
		return fmt.Errorf("%w: %d", ErrDelayRange, delayCS)
	}
	b := img.Bounds()
	if b.Dx() != e.width || b.Dy() != e.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, b.Dx(), b.Dy(), e.width, e.height)
	}

	pm, exact := Quantize(img, e.opts.PaletteBits, e.opts.ColorKey)
	if !exact {
		e.logger.Debug("Palette overflow, dithering frame %d", len(e.anim.Image)+1)
	}

	e.anim.Image = append(e.anim.Image, pm)
	e.anim.Delay = append(e.anim.Delay, delayCS)
	e.anim.Disposal = append(e.anim.Disposal, gif.DisposalBackground)
	e.logger.Debug("Encoded frame %d (%d cs)", len(e.anim.Image), delayCS)
	return nil
}

// End writes the animation to the stream. The encoder can be reused after End.
func (e *Encoder) End() error {
	if e.anim == nil {
		return ErrNotStarted
	}
	anim, w := e.anim, e.w
	e.anim, e.w = nil, nil

	if len(anim.Image) == 0 {
		return errors.New("gifencoder: no frames written")
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Ensure Encoder implements ports.AnimationEncoder
var _ ports.AnimationEncoder = (*Encoder)(nil)
