package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteSize(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		format Format
		want   int
	}{
		{"gray 1x1", 1, 1, FormatGrayscale, 1},
		{"gray alpha 3x2", 3, 2, FormatGrayAlpha, 12},
		{"r5g6b5 10x10", 10, 10, FormatR5G6B5, 200},
		{"rgb8 7x3", 7, 3, FormatR8G8B8, 63},
		{"rgba8 100x100", 100, 100, FormatR8G8B8A8, 40000},
		{"r32 2x2", 2, 2, FormatR32, 16},
		{"r32g32b32 1x1", 1, 1, FormatR32G32B32, 12},
		{"r32g32b32a32 4x4", 4, 4, FormatR32G32B32A32, 256},
		{"dxt1 rgba 2x2 floor", 2, 2, FormatDXT1RGBA, 8},
		{"dxt1 rgb 1x1 floor", 1, 1, FormatDXT1RGB, 8},
		{"dxt5 2x2 floor", 2, 2, FormatDXT5RGBA, 16},
		{"etc2 eac 3x3 floor", 3, 3, FormatETC2EACRGBA, 16},
		{"astc 8x8 1x1 floor", 1, 1, FormatASTC8x8RGBA, 8},
		{"dxt1 4x4 linear", 4, 4, FormatDXT1RGB, 8},
		{"dxt5 8x8 linear", 8, 8, FormatDXT5RGBA, 64},
		{"dxt1 2x8 linear", 2, 8, FormatDXT1RGB, 8},
		{"astc 8x8 16x16", 16, 16, FormatASTC8x8RGBA, 64},
		{"none", 4, 4, FormatNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ByteSize(tt.width, tt.height, tt.format))
		})
	}
}

func TestMipSize(t *testing.T) {
	w, h := MipSize(100, 30, 0)
	assert.Equal(t, []int{100, 30}, []int{w, h})

	w, h = MipSize(100, 30, 3)
	assert.Equal(t, []int{12, 3}, []int{w, h})

	w, h = MipSize(100, 30, 6)
	assert.Equal(t, []int{1, 1}, []int{w, h}, "levels never drop below 1")
}

func TestMipByteSize(t *testing.T) {
	// 8x4 RGBA: 8x4 + 4x2 + 2x1 + 1x1 pixels
	assert.Equal(t, (32+8+2+1)*4, MipByteSize(8, 4, FormatR8G8B8A8, 4))
	assert.Equal(t, 128, MipByteSize(8, 4, FormatR8G8B8A8, 1))
	assert.Equal(t, 128, MipByteSize(8, 4, FormatR8G8B8A8, 0), "zero mip count counts the base level")

	// Compressed levels below a block use the floor size.
	assert.Equal(t, 32+8+8, MipByteSize(8, 8, FormatDXT1RGB, 3))
}

func TestMipOffset(t *testing.T) {
	assert.Equal(t, 0, MipOffset(8, 4, FormatR8G8B8A8, 0))
	assert.Equal(t, 128, MipOffset(8, 4, FormatR8G8B8A8, 1))
	assert.Equal(t, 160, MipOffset(8, 4, FormatR8G8B8A8, 2))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.InDelta(t, 0.5, Clamp(float32(0.5), 0, 1), 1e-9)
}
