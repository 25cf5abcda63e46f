package clahe

import (
	"context"
	"fmt"
	"time"

	"clahe-enhancer/gray"
	"clahe-enhancer/logger"
)

// Processor wraps Apply in the parameter-map driven algorithm shape used by
// the processing chain. Unlike Apply, it surfaces invalid input as errors
// and returns a fresh image instead of mutating its input.
type Processor struct {
	name string
	log  logger.Logger
}

func NewProcessor() *Processor {
	return NewProcessorWithLogger(logger.Nop())
}

func NewProcessorWithLogger(log logger.Logger) *Processor {
	return &Processor{
		name: "CLAHE",
		log:  log,
	}
}

func (p *Processor) GetName() string {
	return p.name
}

func (p *Processor) GetDefaultParameters() map[string]interface{} {
	return map[string]interface{}{
		"tiles_x":    DefaultTiles,
		"tiles_y":    DefaultTiles,
		"clip_limit": DefaultClipLimit,
	}
}

func (p *Processor) ValidateParameters(params map[string]interface{}) error {
	if tilesX, ok := params["tiles_x"].(int); ok {
		if tilesX < 1 || tilesX > 64 {
			return fmt.Errorf("tiles_x must be between 1 and 64, got: %d", tilesX)
		}
	}

	if tilesY, ok := params["tiles_y"].(int); ok {
		if tilesY < 1 || tilesY > 64 {
			return fmt.Errorf("tiles_y must be between 1 and 64, got: %d", tilesY)
		}
	}

	if clipLimit, ok := params["clip_limit"].(float64); ok {
		if clipLimit <= 0.0 || clipLimit > 40.0 {
			return fmt.Errorf("clip_limit must be between 0.0 (exclusive) and 40.0, got: %f", clipLimit)
		}
	}

	return nil
}

func (p *Processor) Process(input *gray.Image, params map[string]interface{}) (*gray.Image, error) {
	return p.ProcessWithContext(context.Background(), input, params)
}

func (p *Processor) ProcessWithContext(ctx context.Context, input *gray.Image, params map[string]interface{}) (*gray.Image, error) {
	if err := gray.ValidateForOperation(input, "CLAHE processing"); err != nil {
		return nil, err
	}

	if err := p.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tilesX := intParam(params, "tiles_x", DefaultTiles)
	tilesY := intParam(params, "tiles_y", DefaultTiles)
	clipLimit := floatParam(params, "clip_limit", DefaultClipLimit)

	if input.Width/tilesX == 0 || input.Height/tilesY == 0 {
		return nil, fmt.Errorf("tile grid %dx%d produces empty tiles for %dx%d image",
			tilesX, tilesY, input.Width, input.Height)
	}

	start := time.Now()
	output := input.Clone()
	Apply(output.Pix, output.Width, output.Height, tilesX, tilesY, clipLimit)

	p.log.Debug("CLAHE", "contrast enhancement complete", map[string]interface{}{
		"width":      input.Width,
		"height":     input.Height,
		"tiles_x":    tilesX,
		"tiles_y":    tilesY,
		"clip_limit": clipLimit,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return output, nil
}

func intParam(params map[string]interface{}, key string, fallback int) int {
	if val, ok := params[key].(int); ok {
		return val
	}
	return fallback
}

func floatParam(params map[string]interface{}, key string, fallback float64) float64 {
	if val, ok := params[key].(float64); ok {
		return val
	}
	return fallback
}
