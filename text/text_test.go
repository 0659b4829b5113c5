package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/imgcore"
)

func TestMeasureBitmapFace(t *testing.T) {
	face := Default()

	tests := []struct {
		name    string
		s       string
		spacing float32
		wantW   int
		wantH   int
	}{
		{"empty", "", 0, 0, 0},
		{"single", "A", 0, 7, 13},
		{"pair", "ab", 0, 14, 13},
		{"spacing between glyphs only", "ab", 2, 16, 13},
		{"two lines", "a\nbcd", 0, 21, 33},
		{"decomposed accent", "e\u0301", 0, 7, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Measure(tt.s, face, tt.spacing)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestDrawPaintsInsideMeasuredBox(t *testing.T) {
	face := Default()
	img, err := imgcore.NewImage(40, 20, imgcore.FormatR8G8B8A8)
	require.NoError(t, err)

	require.NoError(t, Draw(img, "H", 5, 3, face, 0, imgcore.Red))

	w, h := Measure("H", face, 0)
	painted := 0
	for y := range img.Height() {
		for x := range img.Width() {
			c := img.GetColor(x, y)
			if c.A == 0 {
				continue
			}
			painted++
			assert.True(t, x >= 5 && x < 5+w && y >= 3 && y < 3+h, "pixel (%d,%d) outside box", x, y)
			assert.Equal(t, imgcore.Red, c)
		}
	}
	assert.Positive(t, painted)
}

func TestDrawSpaceIsBlank(t *testing.T) {
	img, err := imgcore.NewImage(20, 20, imgcore.FormatR8G8B8A8)
	require.NoError(t, err)

	require.NoError(t, Draw(img, "  ", 0, 0, Default(), 1, imgcore.White))
	for _, b := range img.Data() {
		require.Zero(t, b)
	}
}

func TestDrawEmptyImage(t *testing.T) {
	err := Draw(&imgcore.Image{}, "x", 0, 0, Default(), 0, imgcore.White)
	assert.ErrorIs(t, err, imgcore.ErrEmptyImage)
}

func TestDrawClipsOffscreen(t *testing.T) {
	img, err := imgcore.NewImage(8, 8, imgcore.FormatR8G8B8A8)
	require.NoError(t, err)

	assert.NoError(t, Draw(img, "WWW", -50, -50, Default(), 0, imgcore.White))
	assert.NoError(t, Draw(img, "WWW", 6, 6, Default(), 0, imgcore.White))
}

func TestRender(t *testing.T) {
	img, err := Render("Hi\nyo", Default(), 1, imgcore.Blue)
	require.NoError(t, err)

	w, h := Measure("Hi\nyo", Default(), 1)
	assert.Equal(t, w, img.Width())
	assert.Equal(t, h, img.Height())
	assert.Equal(t, imgcore.FormatR8G8B8A8, img.Format())

	_, err = Render("", Default(), 0, imgcore.Blue)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestNewFace(t *testing.T) {
	face, err := NewFace(24)
	require.NoError(t, err)
	defer face.Close()

	w, h := Measure("Hello", face, 0)
	assert.Positive(t, w)
	assert.GreaterOrEqual(t, h, 24)

	img, err := Render("Hello", face, 0, imgcore.Black)
	require.NoError(t, err)
	assert.Equal(t, w, img.Width())
}

func TestParseFaceErrors(t *testing.T) {
	_, err := ParseFace(nil, 12)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = NewFace(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = ParseFace([]byte("not a font"), 12)
	assert.Error(t, err)
}
