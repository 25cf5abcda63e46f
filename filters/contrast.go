package filters

import (
	"context"
	"fmt"

	"clahe-enhancer/clahe"
	"clahe-enhancer/gray"
)

// ContrastStep applies contrast limited adaptive histogram equalization as
// a chain step.
type ContrastStep struct{}

func NewContrastStep() *ContrastStep {
	return &ContrastStep{}
}

func (c *ContrastStep) Name() string {
	return "clahe_filter"
}

func (c *ContrastStep) ShouldExecute(params map[string]interface{}) bool {
	useClahe, ok := params["use_clahe"].(bool)
	return ok && useClahe
}

func (c *ContrastStep) Apply(ctx context.Context, input *gray.Image, params map[string]interface{}) (*gray.Image, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := gray.ValidateForOperation(input, "clahe_filter"); err != nil {
		return nil, err
	}

	clipLimit := floatParam(params, "clahe_clip_limit", clahe.DefaultClipLimit)
	tilesX := intParam(params, "clahe_tiles_x", clahe.DefaultTiles)
	tilesY := intParam(params, "clahe_tiles_y", clahe.DefaultTiles)

	if tilesX <= 0 || tilesY <= 0 {
		return nil, fmt.Errorf("tile counts must be positive, got %dx%d", tilesX, tilesY)
	}
	if input.Width/tilesX == 0 || input.Height/tilesY == 0 {
		return nil, fmt.Errorf("tile grid %dx%d produces empty tiles for %dx%d image",
			tilesX, tilesY, input.Width, input.Height)
	}

	output := input.Clone()
	clahe.ApplyImage(output, tilesX, tilesY, clipLimit)
	return output, nil
}
