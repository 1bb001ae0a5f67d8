package mocks

import (
	"image"
	"image/draw"
	"sync"

	"github.com/user/spritechop/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Frames       map[int]image.Image
	FrameIndices []int
	Overlay      image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

// SaveFrame stores a copy, since frame buffers are reused by the pipeline.
func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := image.NewNRGBA(img.Bounds())
	draw.Draw(cp, cp.Rect, img, img.Bounds().Min, draw.Src)
	m.Frames[index] = cp
	m.FrameIndices = append(m.FrameIndices, index)
	return nil
}

func (m *DebugSink) SaveOverlay(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Overlay = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
