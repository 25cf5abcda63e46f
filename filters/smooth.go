package filters

import (
	"context"

	"clahe-enhancer/gray"
)

// BoxSmoothStep applies a windowed-mean blur ahead of histogram work to
// soften sensor noise that would otherwise be amplified by local contrast
// stretching. Windows are clamped at the image border.
type BoxSmoothStep struct{}

func NewBoxSmoothStep() *BoxSmoothStep {
	return &BoxSmoothStep{}
}

func (b *BoxSmoothStep) Name() string {
	return "box_smooth_filter"
}

func (b *BoxSmoothStep) ShouldExecute(params map[string]interface{}) bool {
	smooth, ok := params["smooth_before_clahe"].(bool)
	return ok && smooth
}

func (b *BoxSmoothStep) Apply(ctx context.Context, input *gray.Image, params map[string]interface{}) (*gray.Image, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := gray.ValidateForOperation(input, "box_smooth_filter"); err != nil {
		return nil, err
	}

	radius := intParam(params, "smooth_radius", 1)
	if radius <= 0 {
		return input.Clone(), nil
	}

	return boxSmooth(input, radius), nil
}

func boxSmooth(src *gray.Image, radius int) *gray.Image {
	dst := src.Clone()
	rows := src.Height
	cols := src.Width

	for y := 0; y < rows; y++ {
		y1 := clampInt(y-radius, 0, rows-1)
		y2 := clampInt(y+radius, 0, rows-1)

		for x := 0; x < cols; x++ {
			x1 := clampInt(x-radius, 0, cols-1)
			x2 := clampInt(x+radius, 0, cols-1)

			sum := 0
			count := 0
			for yy := y1; yy <= y2; yy++ {
				for xx := x1; xx <= x2; xx++ {
					sum += int(src.At(xx, yy))
					count++
				}
			}

			dst.Set(x, y, uint8(sum/count))
		}
	}

	return dst
}
