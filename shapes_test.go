package imgcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// painted returns the coordinates of every pixel equal to c.
func painted(t *testing.T, img *Image, c Color) map[[2]int]bool {
	t.Helper()
	out := make(map[[2]int]bool)
	for y := range img.Height() {
		for x := range img.Width() {
			if img.GetColor(x, y) == c {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func blank(t *testing.T, w, h int, f Format) *Image {
	t.Helper()
	img, err := NewImage(w, h, f)
	require.NoError(t, err)
	return img
}

func TestDrawPixel(t *testing.T) {
	img := blank(t, 3, 3, FormatR8G8B8A8)
	img.DrawPixel(1, 2, Red)
	img.DrawPixel(-1, 0, Red)
	img.DrawPixel(3, 0, Red)
	img.DrawPixel(0, 3, Red)

	assert.Equal(t, map[[2]int]bool{{1, 2}: true}, painted(t, img, Red))
}

func TestDrawPixelNarrowFormat(t *testing.T) {
	img := blank(t, 1, 1, FormatR4G4B4A4)
	img.DrawPixel(0, 0, Color{R: 255, G: 17, B: 9, A: 255})
	assert.Equal(t, Color{R: 255, G: 17, B: 17, A: 255}, img.GetColor(0, 0))
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"point", 2, 2, 2, 2, [][2]int{{2, 2}}},
		{"horizontal", 1, 1, 4, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"horizontal reversed", 4, 1, 1, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical", 0, 0, 0, 3, [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"anti diagonal", 3, 0, 0, 3, [][2]int{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
		{"shallow", 0, 0, 4, 2, [][2]int{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{"steep", 0, 0, 1, 3, [][2]int{{0, 0}, {0, 1}, {1, 2}, {1, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(t, 6, 6, FormatR8G8B8A8)
			img.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, White)

			want := make(map[[2]int]bool)
			for _, p := range tt.want {
				want[p] = true
			}
			assert.Equal(t, want, painted(t, img, White))
		})
	}
}

func TestDrawLineClipsAndIncludesEndpoints(t *testing.T) {
	img := blank(t, 4, 4, FormatGrayscale)
	img.DrawLine(-5, 1, 10, 1, White)
	assert.Len(t, painted(t, img, White), 4)

	img2 := blank(t, 8, 8, FormatR8G8B8)
	img2.DrawLine(1, 6, 6, 2, White)
	got := painted(t, img2, White)
	assert.True(t, got[[2]int{1, 6}])
	assert.True(t, got[[2]int{6, 2}])
	assert.Len(t, got, 6)
}

func TestDrawRectangleClamped(t *testing.T) {
	img := blank(t, 10, 10, FormatR8G8B8A8)
	img.DrawRectangleRec(Rect{X: -2, Y: 0, Width: 5, Height: 5}, Red)

	got := painted(t, img, Red)
	assert.Len(t, got, 15)
	for y := range 5 {
		for x := range 3 {
			assert.True(t, got[[2]int{x, y}], "pixel %d,%d", x, y)
		}
	}
}

func TestDrawRectangleFarEdge(t *testing.T) {
	img := blank(t, 10, 10, FormatR5G6B5)
	img.DrawRectangle(8, 7, 5, 5, White)
	assert.Len(t, painted(t, img, Color{R: 248, G: 252, B: 248, A: 255}), 2*3)

	img.DrawRectangle(10, 0, 2, 2, White)
	img.DrawRectangle(0, 0, -3, 2, White)
	img.DrawRectangle(0, 0, 3, 0, White)
	assert.Len(t, painted(t, img, Color{R: 248, G: 252, B: 248, A: 255}), 2*3)
}

func TestDrawRectangleMatchesPixelWrites(t *testing.T) {
	for _, f := range uncompressedFormats {
		t.Run(f.String(), func(t *testing.T) {
			c := Color{R: 90, G: 180, B: 30, A: 200}

			fast := blank(t, 7, 5, f)
			fast.DrawRectangle(1, 1, 5, 3, c)

			slow := blank(t, 7, 5, f)
			for y := 1; y < 4; y++ {
				for x := 1; x < 6; x++ {
					slow.DrawPixel(x, y, c)
				}
			}
			assert.Equal(t, slow.Data(), fast.Data())
		})
	}
}

func TestDrawRectangleLines(t *testing.T) {
	img := blank(t, 6, 6, FormatR8G8B8A8)
	img.DrawRectangleLines(NewRect(0, 0, 6, 6), 1, Blue)
	assert.Len(t, painted(t, img, Blue), 20)
	assert.Equal(t, Color{}, img.GetColor(1, 1))

	thick := blank(t, 6, 6, FormatR8G8B8A8)
	thick.DrawRectangleLines(NewRect(0, 0, 6, 6), 2, Blue)
	assert.Len(t, painted(t, thick, Blue), 36-4)
}

func TestDrawCircle(t *testing.T) {
	img := blank(t, 21, 21, FormatR8G8B8A8)
	img.DrawCircle(10, 10, 6, Green)

	got := painted(t, img, Green)
	assert.True(t, got[[2]int{10, 10}] || got[[2]int{9, 10}])
	assert.True(t, got[[2]int{4, 10}])
	assert.False(t, got[[2]int{16, 10}], "spans are 2r wide, ending one short of the right edge")
	assert.False(t, got[[2]int{3, 10}])
	assert.False(t, got[[2]int{0, 0}])

	// Symmetric top to bottom.
	for p := range got {
		assert.True(t, got[[2]int{p[0], 20 - p[1]}], "mirror of %v", p)
	}
}

func TestDrawCircleLines(t *testing.T) {
	img := blank(t, 21, 21, FormatR8G8B8A8)
	img.DrawCircleLines(10, 10, 5, White)

	got := painted(t, img, White)
	for _, p := range [][2]int{{15, 10}, {5, 10}, {10, 15}, {10, 5}} {
		assert.True(t, got[p], "extreme %v", p)
	}
	assert.False(t, got[[2]int{10, 10}])

	for p := range got {
		assert.True(t, got[[2]int{20 - p[0], p[1]}], "mirror of %v", p)
		assert.True(t, got[[2]int{p[1], p[0]}], "transpose of %v", p)
	}
}

func TestClearBackground(t *testing.T) {
	for _, f := range uncompressedFormats {
		t.Run(f.String(), func(t *testing.T) {
			img := blank(t, 5, 3, f)
			img.ClearBackground(White)

			want := img.GetColor(0, 0)
			for y := range 3 {
				for x := range 5 {
					require.Equal(t, want, img.GetColor(x, y))
				}
			}
		})
	}
}

func TestClearBackgroundKeepsMipmaps(t *testing.T) {
	img := gradient(t, 4, 4)
	require.NoError(t, img.GenMipmaps())
	mips := append([]byte(nil), img.Data()[64:]...)

	img.ClearBackground(Red)
	assert.Equal(t, mips, img.Data()[64:])
}

func TestPrimitivesIgnoreCompressed(t *testing.T) {
	img := blank(t, 4, 4, FormatDXT1RGB)
	img.DrawPixel(0, 0, White)
	img.DrawLine(0, 0, 3, 3, White)
	img.DrawCircle(2, 2, 2, White)
	img.DrawRectangle(0, 0, 4, 4, White)
	img.ClearBackground(White)
	assert.Equal(t, make([]byte, 8), img.Data())
}
