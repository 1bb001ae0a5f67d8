// Package extract copies fixed-size frames out of a decoded sprite sheet.
package extract

import (
	"fmt"
	"image"

	"github.com/user/spritechop/pkg/pipeline"
	"github.com/user/spritechop/pkg/ports"
)

// OutOfBoundsError reports a frame rectangle that extends past the source sheet.
type OutOfBoundsError struct {
	Index  int // 1-based frame index
	Origin pipeline.Origin
	Size   pipeline.Dimension
	Source pipeline.Dimension
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("frame %d with origin (%d,%d) and size %s is out of bounds for image %s",
		e.Index, e.Origin.X, e.Origin.Y, e.Size, e.Source)
}

// NewFrameBuffer allocates a tightly packed RGBA8 buffer of the given size.
func NewFrameBuffer(size pipeline.Dimension) (*image.NRGBA, error) {
	if err := pipeline.CheckBuffer(size); err != nil {
		return nil, err
	}
	return image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height)), nil
}

// InBounds reports whether a size rectangle at origin lies fully inside src.
func InBounds(src pipeline.Dimension, size pipeline.Dimension, origin pipeline.Origin) bool {
	if origin.X < 0 || origin.Y < 0 {
		return false
	}
	// Written as subtractions so huge origins cannot overflow.
	return origin.X <= src.Width-size.Width && origin.Y <= src.Height-size.Height
}

// Extract copies the dst-sized rectangle at origin out of src into dst.
// index is only used to identify the frame in errors. Every channel is
// copied unchanged.
func Extract(dst, src *image.NRGBA, origin pipeline.Origin, index int) error {
	size := pipeline.Dimension{Width: dst.Rect.Dx(), Height: dst.Rect.Dy()}
	srcSize := pipeline.Dimension{Width: src.Rect.Dx(), Height: src.Rect.Dy()}

	if !InBounds(srcSize, size, origin) {
		return &OutOfBoundsError{Index: index, Origin: origin, Size: size, Source: srcSize}
	}

	rowBytes := size.Width * 4
	for row := 0; row < size.Height; row++ {
		s := src.PixOffset(src.Rect.Min.X+origin.X, src.Rect.Min.Y+origin.Y+row)
		d := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+row)
		copy(dst.Pix[d:d+rowBytes], src.Pix[s:s+rowBytes])
	}
	return nil
}

// Extractor fills one reusable frame buffer from a fixed source sheet.
type Extractor struct {
	sheet  *image.NRGBA
	buffer *image.NRGBA
	logger ports.Logger
}

// New allocates the frame buffer for frames of the given size.
func New(sheet *image.NRGBA, size pipeline.Dimension, logger ports.Logger) (*Extractor, error) {
	buf, err := NewFrameBuffer(size)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		sheet:  sheet,
		buffer: buf,
		logger: logger.WithComponent("extract"),
	}, nil
}

// Next overwrites the frame buffer with the frame at origin and returns it.
// The returned image is only valid until the next call.
func (e *Extractor) Next(index int, origin pipeline.Origin) (*image.NRGBA, error) {
	if err := Extract(e.buffer, e.sheet, origin, index); err != nil {
		return nil, err
	}
	e.logger.Debug("Extracted frame %d at %s", index, origin)
	return e.buffer, nil
}
