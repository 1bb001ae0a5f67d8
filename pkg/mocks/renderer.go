package mocks

import (
	"image"
	"image/color"

	"github.com/user/spritechop/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	EncodeImageFunc func(img image.Image, format ports.ImageFormat) ([]byte, error)

	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	c := &Canvas{Width: width, Height: height}
	m.Canvases = append(m.Canvases, c)
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format)
	}
	return []byte{0x89, 0x50, 0x4E, 0x47}, nil
}

// Canvas records drawing calls.
type Canvas struct {
	Width  int
	Height int

	Images []image.Point
	Rects  []image.Rectangle
	Texts  []string
}

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.Images = append(c.Images, image.Pt(x, y))
}

func (c *Canvas) DrawRectStroke(x, y, w, h int, col color.Color, strokeWidth float64) {
	c.Rects = append(c.Rects, image.Rect(x, y, x+w, y+h))
}

func (c *Canvas) DrawText(text string, x, y int, col color.Color) {
	c.Texts = append(c.Texts, text)
}

func (c *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
}

var (
	_ ports.Renderer = (*Renderer)(nil)
	_ ports.Canvas   = (*Canvas)(nil)
)
