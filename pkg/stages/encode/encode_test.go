package encode

import (
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/user/spritechop/pkg/adapters/logger"
	"github.com/user/spritechop/pkg/mocks"
	"github.com/user/spritechop/pkg/pipeline"
	"github.com/user/spritechop/pkg/ports"
)

func streamInput() pipeline.StreamInput {
	return pipeline.StreamInput{
		OutputPath: "out.gif",
		Size:       pipeline.Dimension{Width: 80, Height: 114},
		Delay:      8,
	}
}

func TestStage_Stream(t *testing.T) {
	fs := mocks.NewFileSystem()
	enc := &mocks.AnimationEncoder{}
	stage := NewStage(fs, enc, logger.NewNoop())

	key := &color.RGBA{R: 255, B: 255, A: 255}
	input := streamInput()
	input.LoopCount = -1
	input.ColorKey = key

	stream, err := stage.Open(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := stream.Append(image.NewNRGBA(image.Rect(0, 0, 80, 114)), 8); err != nil {
			t.Fatalf("unexpected error on frame %d: %v", i+1, err)
		}
	}
	if len(enc.WriteFrameCalls) != 3 {
		t.Errorf("expected 3 frames, got %d", len(enc.WriteFrameCalls))
	}
	if err := stream.Finish(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if enc.BeginWidth != 80 || enc.BeginHeight != 114 {
		t.Errorf("unexpected stream size %dx%d", enc.BeginWidth, enc.BeginHeight)
	}
	want := ports.EncoderOptions{PaletteBits: 8, LoopCount: -1, ColorKey: key}
	if enc.BeginOptions != want {
		t.Errorf("expected options %+v, got %+v", want, enc.BeginOptions)
	}
	for i, call := range enc.WriteFrameCalls {
		if call.DelayCS != 8 {
			t.Errorf("frame %d: expected delay 8, got %d", i+1, call.DelayCS)
		}
	}
	if !enc.EndCalled {
		t.Error("expected End to be called")
	}

	data, ok := fs.GetFile("out.gif")
	if !ok {
		t.Fatal("expected output file to exist")
	}
	if len(data) != 4 {
		t.Errorf("expected 4 bytes written, got %d", len(data))
	}
	if len(fs.Removed) != 0 {
		t.Errorf("expected no removals, got %v", fs.Removed)
	}
}

func TestStage_Open_CreateError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.CreateFunc = func(path string) (io.WriteCloser, error) {
		return nil, errors.New("permission denied")
	}
	enc := &mocks.AnimationEncoder{}
	stage := NewStage(fs, enc, logger.NewNoop())

	_, err := stage.Open(streamInput())

	var openErr *pipeline.EncodeOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected *pipeline.EncodeOpenError, got %v", err)
	}
	if openErr.Path != "out.gif" {
		t.Errorf("expected path out.gif, got %s", openErr.Path)
	}
	if enc.BeginCalled {
		t.Error("Begin should not be called when the file cannot be created")
	}
}

func TestStage_Open_BeginError(t *testing.T) {
	fs := mocks.NewFileSystem()
	enc := &mocks.AnimationEncoder{
		BeginFunc: func(w io.Writer, width, height int, opts ports.EncoderOptions) error {
			return errors.New("invalid size")
		},
	}
	stage := NewStage(fs, enc, logger.NewNoop())

	_, err := stage.Open(streamInput())

	var openErr *pipeline.EncodeOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected *pipeline.EncodeOpenError, got %v", err)
	}
	if _, ok := fs.GetFile("out.gif"); ok {
		t.Error("expected output file to be removed")
	}
}

func TestStream_Append_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	enc := &mocks.AnimationEncoder{}
	stage := NewStage(fs, enc, logger.NewNoop())

	stream, err := stage.Open(streamInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame := image.NewNRGBA(image.Rect(0, 0, 80, 114))
	if err := stream.Append(frame, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enc.WriteFrameFunc = func(img image.Image, delayCS int) error {
		return errors.New("disk full")
	}
	err = stream.Append(frame, 8)

	var writeErr *pipeline.EncodeWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *pipeline.EncodeWriteError, got %v", err)
	}
	if writeErr.Frame != 2 {
		t.Errorf("expected frame 2, got %d", writeErr.Frame)
	}

	stream.Abort()
	if _, ok := fs.GetFile("out.gif"); ok {
		t.Error("expected partial output to be removed")
	}
	if len(fs.Removed) != 1 {
		t.Errorf("expected one removal, got %v", fs.Removed)
	}

	// A second abort is a no-op.
	stream.Abort()
	if len(fs.Removed) != 1 {
		t.Errorf("expected abort to be idempotent, got %v", fs.Removed)
	}
}

func TestStream_Finish_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	enc := &mocks.AnimationEncoder{
		EndFunc: func() error { return errors.New("flush failed") },
	}
	stage := NewStage(fs, enc, logger.NewNoop())

	stream, err := stage.Open(streamInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := stream.Append(image.NewNRGBA(image.Rect(0, 0, 80, 114)), 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = stream.Finish()

	var writeErr *pipeline.EncodeWriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *pipeline.EncodeWriteError, got %v", err)
	}
	if writeErr.Frame != 0 {
		t.Errorf("expected finalization failure (frame 0), got %d", writeErr.Frame)
	}
	if writeErr.Error() != "failed to finalize output: flush failed" {
		t.Errorf("unexpected message: %s", writeErr.Error())
	}
	if _, ok := fs.GetFile("out.gif"); ok {
		t.Error("expected output to be removed")
	}
}
