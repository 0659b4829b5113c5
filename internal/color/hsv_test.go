package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHSV(t *testing.T) {
	tests := []struct {
		name    string
		in      ColorU8
		h, s, v float32
	}{
		{"red", ColorU8{255, 0, 0, 255}, 0, 1, 1},
		{"green", ColorU8{0, 255, 0, 255}, 120, 1, 1},
		{"blue", ColorU8{0, 0, 255, 255}, 240, 1, 1},
		{"magenta", ColorU8{255, 0, 255, 255}, 300, 1, 1},
		{"half gray", ColorU8{128, 128, 128, 255}, 0, 0, 128.0 / 255},
		{"black", ColorU8{0, 0, 0, 255}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := ToHSV(tt.in)
			assert.InDelta(t, tt.h, h, 1e-3)
			assert.InDelta(t, tt.s, s, 1e-3)
			assert.InDelta(t, tt.v, v, 1e-3)
		})
	}
}

func TestFromHSV(t *testing.T) {
	assert.Equal(t, ColorU8{255, 0, 0, 255}, FromHSV(0, 1, 1))
	assert.Equal(t, ColorU8{0, 255, 0, 255}, FromHSV(120, 1, 1))
	assert.Equal(t, ColorU8{0, 0, 255, 255}, FromHSV(240, 1, 1))
	assert.Equal(t, ColorU8{255, 0, 0, 255}, FromHSV(360, 1, 1))
	assert.Equal(t, ColorU8{255, 255, 255, 255}, FromHSV(77, 0, 1), "zero saturation ignores hue")
}

func TestHSVRoundTripApproximate(t *testing.T) {
	for _, c := range []ColorU8{{200, 30, 90, 255}, {12, 240, 130, 255}, {64, 64, 200, 255}} {
		h, s, v := ToHSV(c)
		got := FromHSV(h, s, v)
		assert.InDelta(t, c.R, got.R, 1)
		assert.InDelta(t, c.G, got.G, 1)
		assert.InDelta(t, c.B, got.B, 1)
	}
}
