// Package postprocess implements the per-frame pixel transforms applied after extraction.
package postprocess

import (
	"image"

	"github.com/user/spritechop/pkg/options"
	"github.com/user/spritechop/pkg/ports"
)

// Transform rewrites a frame. It may modify img in place or return a different
// buffer it owns; callers must use the returned image.
type Transform interface {
	Name() string
	Apply(img *image.NRGBA) *image.NRGBA
}

// Chain applies transforms in order.
type Chain []Transform

// Apply runs every transform on img.
func (c Chain) Apply(img *image.NRGBA) *image.NRGBA {
	for _, t := range c {
		img = t.Apply(img)
	}
	return img
}

// Names returns the transform names in application order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.Name()
	}
	return names
}

// Build returns the transform chain for cfg: rescale when the output size
// differs from the frame size, then colorkey when one is configured. The
// colorkey runs on the rescaled pixels.
func Build(cfg options.Config, logger ports.Logger) (Chain, error) {
	var chain Chain
	log := logger.WithComponent("postprocess")

	if cfg.NeedsResize() {
		r, err := NewResize(cfg.OutputSize)
		if err != nil {
			return nil, err
		}
		log.Debug("Rescaling frames from %s to %s", cfg.FrameSize, cfg.OutputSize)
		chain = append(chain, r)
	}

	if cfg.ColorKey != nil {
		log.Debug("Colorkey #%02x%02x%02x", cfg.ColorKey.R, cfg.ColorKey.G, cfg.ColorKey.B)
		chain = append(chain, NewColorKey(*cfg.ColorKey))
	}

	return chain, nil
}
