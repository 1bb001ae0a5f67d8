// Package load implements the sprite sheet loading stage.
package load

import (
	"context"

	"github.com/user/spritechop/pkg/pipeline"
	"github.com/user/spritechop/pkg/ports"
)

// Stage decodes the sprite sheet into an RGBA8 bitmap.
type Stage struct {
	decoder ports.ImageDecoder
	logger  ports.Logger
}

// NewStage creates a new load stage.
func NewStage(decoder ports.ImageDecoder, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		logger:  logger.WithComponent("load"),
	}
}

// Execute decodes the sheet at input.Path. Failures are returned as
// *pipeline.DecodeError.
func (s *Stage) Execute(ctx context.Context, input pipeline.LoadInput) (pipeline.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.LoadResult{}, err
	}

	sheet, err := s.decoder.Decode(input.Path)
	if err != nil {
		return pipeline.LoadResult{}, &pipeline.DecodeError{Path: input.Path, Err: err}
	}

	size := pipeline.Dimension{Width: sheet.Rect.Dx(), Height: sheet.Rect.Dy()}
	s.logger.Debug("Sprite sheet loaded: %s", size)

	return pipeline.LoadResult{Sheet: sheet, Size: size}, nil
}

var _ pipeline.Stage[pipeline.LoadInput, pipeline.LoadResult] = (*Stage)(nil)
