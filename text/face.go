package text

import (
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Default returns the built-in 7x13 bitmap face.
func Default() font.Face {
	return basicfont.Face7x13
}

// NewFace returns Go Regular at size points and 72 DPI.
func NewFace(size float64) (font.Face, error) {
	return ParseFace(goregular.TTF, size)
}

// ParseFace parses TrueType or OpenType data and returns a face at size
// points and 72 DPI. Close the face when done.
func ParseFace(data []byte, size float64) (font.Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) {
		return nil, errors.Wrapf(ErrInvalidSize, "%v", size)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "text: parse font")
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "text: create face")
	}
	return face, nil
}
