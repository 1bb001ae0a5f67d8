package ports

import (
	"image"
)

// DebugSink receives intermediate pipeline results for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveFrame saves a post-processed frame. index is 1-based.
	SaveFrame(index int, img image.Image) error

	// SaveOverlay saves the source sheet annotated with every frame rectangle.
	SaveOverlay(img image.Image) error
}
