package gifencoder

import (
	"image"
	"image/color"
	"image/color/palette"

	"golang.org/x/image/draw"
)

// alphaThreshold is the alpha below which a pixel is written as transparent.
// GIF has a single fully transparent palette entry and no partial alpha.
const alphaThreshold = 128

// Quantize converts img into a paletted image with at most 1<<bits colors.
//
// When the frame uses few enough distinct colors the palette is exact and
// exact is true. Otherwise the web-safe palette is used with Floyd-Steinberg
// dithering. Transparent pixels map to a dedicated palette entry whose RGB is
// the colorkey when one is given.
func Quantize(img image.Image, bits int, key *color.RGBA) (pm *image.Paletted, exact bool) {
	b := img.Bounds()
	capacity := 1 << bits
	rect := image.Rect(0, 0, b.Dx(), b.Dy())

	transparent := color.RGBA{}
	if key != nil {
		// Not a valid premultiplied color, but image/gif only looks at A to
		// pick the transparent index and writes R, G, B into the palette.
		transparent = color.RGBA{R: key.R, G: key.G, B: key.B, A: 0}
	}

	type entry struct{ r, g, b uint8 }
	indices := make(map[entry]uint8)
	pal := color.Palette{}
	overflow := false

	for y := b.Min.Y; y < b.Max.Y && !overflow; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < alphaThreshold {
				continue
			}
			k := entry{c.R, c.G, c.B}
			if _, ok := indices[k]; ok {
				continue
			}
			if len(pal) >= capacity-1 {
				overflow = true
				break
			}
			indices[k] = uint8(len(pal))
			pal = append(pal, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	if overflow {
		return dither(img, capacity, transparent), false
	}

	// A transparent entry is always reserved so palettes stay comparable
	// between frames. It goes last to keep opaque indices stable.
	transparentIndex := uint8(len(pal))
	pal = append(pal, transparent)

	pm = image.NewPaletted(rect, pal)
	for y := 0; y < rect.Dy(); y++ {
		row := y * pm.Stride
		for x := 0; x < rect.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if c.A < alphaThreshold {
				pm.Pix[row+x] = transparentIndex
				continue
			}
			pm.Pix[row+x] = indices[entry{c.R, c.G, c.B}]
		}
	}
	return pm, true
}

// dither maps img onto the web-safe palette plus one transparent entry.
func dither(img image.Image, capacity int, transparent color.RGBA) *image.Paletted {
	b := img.Bounds()
	rect := image.Rect(0, 0, b.Dx(), b.Dy())

	base := palette.WebSafe
	if len(base) > capacity-1 {
		step := float64(len(base)) / float64(capacity-1)
		sampled := make(color.Palette, 0, capacity-1)
		for i := 0; i < capacity-1; i++ {
			sampled = append(sampled, base[int(float64(i)*step)])
		}
		base = sampled
	}
	pal := make(color.Palette, 0, len(base)+1)
	pal = append(pal, base...)
	transparentIndex := uint8(len(pal))
	pal = append(pal, transparent)

	// Dither against the opaque colors only so no opaque pixel lands on the
	// transparent entry.
	opaque := image.NewPaletted(rect, base)
	draw.FloydSteinberg.Draw(opaque, rect, img, b.Min)

	pm := image.NewPaletted(rect, pal)
	copy(pm.Pix, opaque.Pix)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a>>8 < alphaThreshold {
				pm.Pix[y*pm.Stride+x] = transparentIndex
			}
		}
	}
	return pm
}
