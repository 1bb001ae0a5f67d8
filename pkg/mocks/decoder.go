package mocks

import (
	"fmt"
	"image"
	"io"

	"github.com/user/spritechop/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
type ImageDecoder struct {
	Images map[string]*image.NRGBA
	Err    error

	DecodeCalls []string
}

// NewImageDecoder creates a decoder that serves images by path.
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{Images: make(map[string]*image.NRGBA)}
}

func (m *ImageDecoder) Decode(path string) (*image.NRGBA, error) {
	m.DecodeCalls = append(m.DecodeCalls, path)
	if m.Err != nil {
		return nil, m.Err
	}
	img, ok := m.Images[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return img, nil
}

func (m *ImageDecoder) DecodeReader(r io.Reader) (*image.NRGBA, error) {
	return nil, fmt.Errorf("mock: DecodeReader not supported")
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
