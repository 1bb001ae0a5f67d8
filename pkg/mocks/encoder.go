package mocks

import (
	"image"
	"io"

	"github.com/user/spritechop/pkg/ports"
)

// AnimationEncoder is a mock implementation of ports.AnimationEncoder.
type AnimationEncoder struct {
	BeginFunc      func(w io.Writer, width, height int, opts ports.EncoderOptions) error
	WriteFrameFunc func(img image.Image, delayCS int) error
	EndFunc        func() error

	// Recorded calls for verification
	BeginCalled     bool
	BeginWidth      int
	BeginHeight     int
	BeginOptions    ports.EncoderOptions
	WriteFrameCalls []WriteFrameCall
	EndCalled       bool

	w io.Writer
}

// WriteFrameCall records a call to WriteFrame. Pix is a copy of the frame's pixels.
type WriteFrameCall struct {
	Bounds  image.Rectangle
	Pix     []uint8
	DelayCS int
}

func (m *AnimationEncoder) Begin(w io.Writer, width, height int, opts ports.EncoderOptions) error {
	m.BeginCalled = true
	m.BeginWidth = width
	m.BeginHeight = height
	m.BeginOptions = opts
	m.w = w
	if m.BeginFunc != nil {
		return m.BeginFunc(w, width, height, opts)
	}
	return nil
}

func (m *AnimationEncoder) WriteFrame(img image.Image, delayCS int) error {
	call := WriteFrameCall{Bounds: img.Bounds(), DelayCS: delayCS}
	if n, ok := img.(*image.NRGBA); ok {
		call.Pix = append([]uint8(nil), n.Pix...)
	}
	m.WriteFrameCalls = append(m.WriteFrameCalls, call)
	if m.WriteFrameFunc != nil {
		return m.WriteFrameFunc(img, delayCS)
	}
	// Emit something so partial output is observable.
	if m.w != nil {
		m.w.Write([]byte{0x21})
	}
	return nil
}

func (m *AnimationEncoder) End() error {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	if m.w != nil {
		m.w.Write([]byte{0x3B})
	}
	return nil
}

var _ ports.AnimationEncoder = (*AnimationEncoder)(nil)
