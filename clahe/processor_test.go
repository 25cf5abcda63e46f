package clahe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clahe-enhancer/gray"
)

func TestProcessorDefaults(t *testing.T) {
	p := NewProcessor()

	require.Equal(t, "CLAHE", p.GetName())

	params := p.GetDefaultParameters()
	require.NoError(t, p.ValidateParameters(params))
	assert.Equal(t, DefaultTiles, params["tiles_x"])
	assert.Equal(t, DefaultTiles, params["tiles_y"])
	assert.Equal(t, DefaultClipLimit, params["clip_limit"])
}

func TestProcessorValidateParameters(t *testing.T) {
	p := NewProcessor()

	cases := []struct {
		name   string
		params map[string]interface{}
	}{
		{"tiles_x too small", map[string]interface{}{"tiles_x": 0}},
		{"tiles_x too large", map[string]interface{}{"tiles_x": 65}},
		{"tiles_y too small", map[string]interface{}{"tiles_y": -1}},
		{"clip_limit zero", map[string]interface{}{"clip_limit": 0.0}},
		{"clip_limit too large", map[string]interface{}{"clip_limit": 41.0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, p.ValidateParameters(tc.params))
		})
	}

	require.NoError(t, p.ValidateParameters(map[string]interface{}{
		"tiles_x":    4,
		"tiles_y":    4,
		"clip_limit": 3.5,
	}))
}

func TestProcessorProcessReturnsFreshImage(t *testing.T) {
	img, err := gray.New(64, 64)
	require.NoError(t, err)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, uint8(100+x*31/63))
		}
	}
	before := img.Clone()

	p := NewProcessor()
	out, err := p.Process(img, p.GetDefaultParameters())
	require.NoError(t, err)
	require.NotSame(t, img, out)
	assert.Equal(t, before.Pix, img.Pix, "Process must not mutate its input")
	assert.NotEqual(t, img.Pix, out.Pix, "a low-contrast ramp must be stretched")

	lo, hi := intensityRange(out.Pix)
	origLo, origHi := intensityRange(img.Pix)
	assert.Greater(t, hi-lo, origHi-origLo, "enhancement must widen the intensity range")
}

func TestProcessorRejectsEmptyTileGrid(t *testing.T) {
	img, err := gray.Uniform(4, 4, 9)
	require.NoError(t, err)

	p := NewProcessor()
	_, err = p.Process(img, p.GetDefaultParameters())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty tiles")
}

func TestProcessorRejectsInvalidImage(t *testing.T) {
	p := NewProcessor()

	_, err := p.Process(nil, p.GetDefaultParameters())
	require.Error(t, err)

	bad := &gray.Image{Width: 3, Height: 3, Pix: make([]uint8, 5)}
	_, err = p.Process(bad, p.GetDefaultParameters())
	require.Error(t, err)
}

func TestProcessorContextCancellation(t *testing.T) {
	img, err := gray.Uniform(64, 64, 50)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProcessor()
	_, err = p.ProcessWithContext(ctx, img, p.GetDefaultParameters())
	require.ErrorIs(t, err, context.Canceled)
}

func intensityRange(pix []uint8) (int, int) {
	lo, hi := 255, 0
	for _, p := range pix {
		if int(p) < lo {
			lo = int(p)
		}
		if int(p) > hi {
			hi = int(p)
		}
	}
	return lo, hi
}
