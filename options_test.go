package imgcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.InDelta(t, 50.0/255, o.alphaThreshold, 1e-7)
	assert.Same(t, defaultPool, o.pool)
}

func TestWithAlphaThreshold(t *testing.T) {
	assert.Equal(t, float32(0.5), buildOptions([]Option{WithAlphaThreshold(0.5)}).alphaThreshold)
	assert.Equal(t, float32(1), buildOptions([]Option{WithAlphaThreshold(3)}).alphaThreshold)
	assert.Equal(t, float32(0), buildOptions([]Option{WithAlphaThreshold(-1)}).alphaThreshold)
}

func TestWithAlphaThresholdAffectsEncoding(t *testing.T) {
	img, err := NewImage(1, 1, FormatR5G5B5A1, WithAlphaThreshold(0.9))
	require.NoError(t, err)

	img.DrawPixel(0, 0, Color{R: 255, A: 200})
	assert.Equal(t, uint8(0), img.GetColor(0, 0).A)

	img.DrawPixel(0, 0, Color{R: 255, A: 240})
	assert.Equal(t, uint8(255), img.GetColor(0, 0).A)
}

func TestWithPool(t *testing.T) {
	p := NewPool(4)
	img, err := NewImage(2, 2, FormatR8G8B8A8, WithPool(p))
	require.NoError(t, err)

	// Derived images share the pool.
	c := img.Copy()
	assert.Same(t, p, c.opts.pool)

	assert.Same(t, defaultPool, buildOptions([]Option{WithPool(nil)}).pool)
}
