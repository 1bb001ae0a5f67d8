// Package encode implements the animation encoding stage.
package encode

import (
	"image"
	"io"

	"github.com/user/spritechop/pkg/pipeline"
	"github.com/user/spritechop/pkg/ports"
)

// Stage opens animation streams on the file system.
type Stage struct {
	fs      ports.FileSystem
	encoder ports.AnimationEncoder
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(fs ports.FileSystem, encoder ports.AnimationEncoder, logger ports.Logger) *Stage {
	return &Stage{
		fs:      fs,
		encoder: encoder,
		logger:  logger.WithComponent("encode"),
	}
}

// Stream is an open animation. Frames are appended in order and the stream
// must end with either Finish or Abort.
type Stream struct {
	stage  *Stage
	path   string
	w      io.WriteCloser
	frames int
	done   bool
}

// Open creates the output file and starts the encoder on it.
func (s *Stage) Open(input pipeline.StreamInput) (*Stream, error) {
	w, err := s.fs.Create(input.OutputPath)
	if err != nil {
		return nil, &pipeline.EncodeOpenError{Path: input.OutputPath, Err: err}
	}

	bits := input.PaletteBits
	if bits == 0 {
		bits = pipeline.DefaultPaletteBits
	}
	opts := ports.EncoderOptions{
		PaletteBits: bits,
		LoopCount:   input.LoopCount,
		ColorKey:    input.ColorKey,
	}

	stream := &Stream{stage: s, path: input.OutputPath, w: w}
	if err := s.encoder.Begin(w, input.Size.Width, input.Size.Height, opts); err != nil {
		stream.Abort()
		return nil, &pipeline.EncodeOpenError{Path: input.OutputPath, Err: err}
	}

	return stream, nil
}

// Append writes one frame with the given delay in centiseconds.
func (st *Stream) Append(img image.Image, delay int) error {
	st.frames++
	if err := st.stage.encoder.WriteFrame(img, delay); err != nil {
		return &pipeline.EncodeWriteError{Frame: st.frames, Err: err}
	}
	st.stage.logger.Debug("Encoded frame %d (%d cs)", st.frames, delay)
	return nil
}

// Finish finalizes the encoder and closes the output file.
func (st *Stream) Finish() error {
	if st.done {
		return nil
	}
	if err := st.stage.encoder.End(); err != nil {
		st.Abort()
		return &pipeline.EncodeWriteError{Frame: 0, Err: err}
	}
	st.done = true
	if err := st.w.Close(); err != nil {
		st.remove()
		return &pipeline.EncodeWriteError{Frame: 0, Err: err}
	}
	return nil
}

// Abort closes the output file and removes it. Safe to call after Finish
// has failed.
func (st *Stream) Abort() {
	if st.done {
		return
	}
	st.done = true
	st.w.Close()
	st.remove()
}

func (st *Stream) remove() {
	if err := st.stage.fs.Remove(st.path); err != nil {
		st.stage.logger.Warn("Failed to remove partial output %s: %s", st.path, err)
		return
	}
	st.stage.logger.Debug("Removed partial output %s", st.path)
}
