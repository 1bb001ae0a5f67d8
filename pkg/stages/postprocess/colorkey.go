package postprocess

import (
	"image"
	"image/color"
)

// ApplyColorKey sets alpha to 0 on every pixel whose RGB exactly matches key.
// RGB values are left unchanged, as is every non-matching pixel.
func ApplyColorKey(img *image.NRGBA, key color.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		for x := 0; x < w; x++ {
			px := img.Pix[row+x*4 : row+x*4+4]
			if px[0] == key.R && px[1] == key.G && px[2] == key.B {
				px[3] = 0
			}
		}
	}
}

// ColorKey is the colorkey transform. It edits frames in place.
type ColorKey struct {
	key color.RGBA
}

// NewColorKey creates a colorkey transform for key. key.A is ignored.
func NewColorKey(key color.RGBA) *ColorKey {
	return &ColorKey{key: key}
}

// Name implements Transform.
func (c *ColorKey) Name() string { return "colorkey" }

// Apply implements Transform.
func (c *ColorKey) Apply(img *image.NRGBA) *image.NRGBA {
	ApplyColorKey(img, c.key)
	return img
}
