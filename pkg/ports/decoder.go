package ports

import (
	"image"
	"io"
)

// ImageDecoder turns an encoded still image into a non-premultiplied RGBA8 bitmap.
type ImageDecoder interface {
	// Decode reads and decodes the image stored at path.
	Decode(path string) (*image.NRGBA, error)

	// DecodeReader decodes an image from r.
	DecodeReader(r io.Reader) (*image.NRGBA, error)
}
