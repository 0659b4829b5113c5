package resample

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func fill(w, h, channels int, px ...byte) []byte {
	buf := make([]byte, w*h*channels)
	for i := 0; i < len(buf); i += channels {
		copy(buf[i:i+channels], px)
	}
	return buf
}

func TestUint8UniformColorSurvives(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		px       []byte
	}{
		{"gray", 1, []byte{200}},
		{"gray alpha", 2, []byte{90, 255}},
		{"rgb", 3, []byte{10, 128, 250}},
		{"rgba", 4, []byte{40, 80, 160, 255}},
	}

	sizes := []struct{ sw, sh, dw, dh int }{
		{4, 4, 9, 7},  // up
		{16, 12, 5, 3}, // down
	}

	for _, tt := range tests {
		for _, s := range sizes {
			t.Run(tt.name, func(t *testing.T) {
				src := fill(s.sw, s.sh, tt.channels, tt.px...)
				dst := make([]byte, s.dw*s.dh*tt.channels)

				require.NoError(t, Uint8(src, s.sw, s.sh, dst, s.dw, s.dh, tt.channels))

				for i, v := range dst {
					assert.InDelta(t, tt.px[i%tt.channels], v, 1, "byte %d", i)
				}
			})
		}
	}
}

func TestUint8SameSizeIsCopy(t *testing.T) {
	src := []byte{0, 50, 100, 150, 200, 250}
	dst := make([]byte, len(src))
	require.NoError(t, Uint8(src, 3, 2, dst, 3, 2, 1))
	assert.Equal(t, src, dst)
}

func TestUint8Errors(t *testing.T) {
	buf := make([]byte, 64)

	err := Uint8(buf, 2, 2, buf, 2, 2, 5)
	assert.True(t, errors.Is(err, ErrChannels))

	err = Uint8(buf, 0, 2, buf, 2, 2, 1)
	assert.True(t, errors.Is(err, ErrDimensions))

	err = Uint8(buf[:3], 2, 2, buf, 2, 2, 1)
	assert.True(t, errors.Is(err, ErrBufferSize))

	err = Uint8(buf, 2, 2, buf[:3], 2, 2, 1)
	assert.True(t, errors.Is(err, ErrBufferSize))
}

func TestKernelFor(t *testing.T) {
	assert.Same(t, draw.CatmullRom, KernelFor(2, 2, 4, 4))
	assert.Same(t, Mitchell, KernelFor(4, 4, 2, 2))
	assert.Same(t, Mitchell, KernelFor(4, 4, 8, 2))
}

func TestMitchellKernel(t *testing.T) {
	assert.InDelta(t, 8.0/9, mitchell(0), 1e-9)
	assert.InDelta(t, 1.0/18, mitchell(1), 1e-9)
	assert.InDelta(t, 1.0/18, mitchell(-1), 1e-9)
	assert.Equal(t, 0.0, mitchell(2))
	assert.Equal(t, 0.0, mitchell(3.5))
}
