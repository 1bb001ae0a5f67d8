// Package overlay draws frame rectangles over the source sheet for debug output.
package overlay

import (
	"image"
	"image/color"
	"strconv"

	"github.com/user/spritechop/pkg/pipeline"
	"github.com/user/spritechop/pkg/ports"
	"github.com/user/spritechop/pkg/stages/extract"
)

var (
	inBoundsColor  = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	outBoundsColor = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	backgroundGray = color.RGBA{R: 64, G: 64, B: 64, A: 255}
)

// Render returns sheet with an outlined, numbered rectangle per origin.
// Rectangles that leave the sheet are drawn in red.
func Render(r ports.Renderer, sheet image.Image, size pipeline.Dimension, origins []pipeline.Origin) image.Image {
	b := sheet.Bounds()
	canvas := r.CreateCanvas(b.Dx(), b.Dy(), backgroundGray)
	canvas.DrawImage(sheet, 0, 0)

	src := pipeline.Dimension{Width: b.Dx(), Height: b.Dy()}
	for i, o := range origins {
		col := inBoundsColor
		if !extract.InBounds(src, size, o) {
			col = outBoundsColor
		}
		canvas.DrawRectStroke(o.X, o.Y, size.Width, size.Height, col, 1)
		canvas.DrawText(strconv.Itoa(i+1), o.X+size.Width/2, o.Y+size.Height/2, col)
	}

	return canvas.ToImage()
}
