// Package imagedecoder decodes still images into RGBA8 bitmaps.
//
// PNG, JPEG and GIF come from the standard library; BMP, TIFF and WebP from
// golang.org/x/image. Anything that is not already tightly packed NRGBA is
// converted with prism.
package imagedecoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"runtime"

	"github.com/mandykoh/prism"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/spritechop/pkg/ports"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("imagedecoder: image has no pixels")

// Decoder implements ports.ImageDecoder.
type Decoder struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a decoder that reads files through fs.
func New(fs ports.FileSystem, logger ports.Logger) *Decoder {
	return &Decoder{
		fs:     fs,
		logger: logger.WithComponent("decode"),
	}
}

// Decode reads and decodes the image stored at path.
func (d *Decoder) Decode(path string) (*image.NRGBA, error) {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d.DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes an image from r.
func (d *Decoder) DecodeReader(r io.Reader) (*image.NRGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	d.logger.Debug("Decoded %s image, %dx%d", format, b.Dx(), b.Dy())

	return toNRGBA(img), nil
}

// toNRGBA returns img as a zero-origin, tightly packed NRGBA bitmap.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == n.Rect.Dx()*4 {
		return n
	}

	converted := prism.ConvertImageToNRGBA(img, runtime.NumCPU())
	if converted.Rect.Min == (image.Point{}) && converted.Stride == converted.Rect.Dx()*4 {
		return converted
	}

	// Re-pack so row-major offsets start at zero.
	b := converted.Rect
	packed := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		s := converted.PixOffset(b.Min.X, b.Min.Y+y)
		copy(packed.Pix[y*packed.Stride:(y+1)*packed.Stride], converted.Pix[s:s+packed.Stride])
	}
	return packed
}

// Ensure Decoder implements ports.ImageDecoder
var _ ports.ImageDecoder = (*Decoder)(nil)
