package pipeline

import "fmt"

// DecodeError reports that the sprite sheet could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to load image '%s': %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeOpenError reports that the output stream could not be created.
type EncodeOpenError struct {
	Path string
	Err  error
}

func (e *EncodeOpenError) Error() string {
	return fmt.Sprintf("failed to open output '%s' for writing: %v", e.Path, e.Err)
}

func (e *EncodeOpenError) Unwrap() error { return e.Err }

// EncodeWriteError reports that a frame could not be appended to the stream.
// Frame is 1-based; 0 means the failure happened while finalizing the stream.
type EncodeWriteError struct {
	Frame int
	Err   error
}

func (e *EncodeWriteError) Error() string {
	if e.Frame == 0 {
		return fmt.Sprintf("failed to finalize output: %v", e.Err)
	}
	return fmt.Sprintf("failed to write frame %d: %v", e.Frame, e.Err)
}

func (e *EncodeWriteError) Unwrap() error { return e.Err }

// AllocationError reports that a scratch buffer of the given size cannot be allocated.
type AllocationError struct {
	Width  int
	Height int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot allocate %dx%d frame buffer", e.Width, e.Height)
}
