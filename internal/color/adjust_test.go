package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFade(t *testing.T) {
	assert.Equal(t, ColorU8{1, 2, 3, 127}, Fade(ColorU8{1, 2, 3, 255}, 0.5))
	assert.Equal(t, ColorU8{1, 2, 3, 0}, Fade(ColorU8{1, 2, 3, 255}, -4))
	assert.Equal(t, ColorU8{1, 2, 3, 255}, Fade(ColorU8{1, 2, 3, 0}, 9))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, ColorU8{10, 20, 30, 40}, Multiply(ColorU8{10, 20, 30, 40}, White))
	assert.Equal(t, ColorU8{0, 0, 0, 40}, Multiply(ColorU8{10, 20, 30, 40}, ColorU8{0, 0, 0, 255}))
}

func TestBrightness(t *testing.T) {
	c := ColorU8{100, 100, 100, 200}
	assert.Equal(t, c, Brightness(c, 0))
	assert.Equal(t, ColorU8{0, 0, 0, 200}, Brightness(c, -1))
	assert.Equal(t, ColorU8{255, 255, 255, 200}, Brightness(c, 1))
	assert.Equal(t, ColorU8{50, 50, 50, 200}, Brightness(c, -0.5))
}

func TestContrast(t *testing.T) {
	c := ColorU8{200, 60, 128, 9}
	assert.Equal(t, ColorU8{127, 127, 127, 9}, Contrast(ColorU8{100, 30, 250, 9}, -1))
	got := Contrast(c, 1)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(9), got.A)
}
