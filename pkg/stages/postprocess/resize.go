package postprocess

import (
	"image"

	"github.com/user/spritechop/pkg/pipeline"
)

// ResizeNearest scales src into dst with nearest-neighbor sampling.
// Destination pixel (x, y) takes source pixel (x*sw/dw, y*sh/dh) using
// integer division, so the sampled index never exceeds the source size.
func ResizeNearest(dst, src *image.NRGBA) {
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	dw, dh := dst.Rect.Dx(), dst.Rect.Dy()

	for y := 0; y < dh; y++ {
		sy := y * sh / dh
		srow := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+sy)
		drow := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for x := 0; x < dw; x++ {
			sx := x * sw / dw
			s := srow + sx*4
			d := drow + x*4
			copy(dst.Pix[d:d+4], src.Pix[s:s+4])
		}
	}
}

// Resize is the rescale transform. It owns the scaled buffer and overwrites
// it on every call.
type Resize struct {
	buffer *image.NRGBA
}

// NewResize allocates the scaled buffer for the given output size.
func NewResize(size pipeline.Dimension) (*Resize, error) {
	if err := pipeline.CheckBuffer(size); err != nil {
		return nil, err
	}
	return &Resize{buffer: image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))}, nil
}

// Name implements Transform.
func (r *Resize) Name() string { return "resize" }

// Apply implements Transform.
func (r *Resize) Apply(img *image.NRGBA) *image.NRGBA {
	ResizeNearest(r.buffer, img)
	return r.buffer
}
