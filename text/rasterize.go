package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/imgcore"
)

// glyph is a rasterized rune ready to be drawn.
type glyph struct {
	// img is a GrayAlpha image of the glyph coverage, nil for blank glyphs.
	img *imgcore.Image

	// offset of img's top-left corner from the pen position on the baseline.
	offset image.Point

	// advance of the pen after this glyph.
	advance fixed.Int26_6
}

// rasterize renders r with the pen on the origin. Runes the face lacks
// fall back to '?'.
func rasterize(face font.Face, r rune) (glyph, bool) {
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		imgcore.Logger().Debug("text: missing glyph", "rune", string(r))
		if dr, mask, maskp, advance, ok = face.Glyph(fixed.Point26_6{}, '?'); !ok {
			return glyph{}, false
		}
	}

	g := glyph{offset: dr.Min, advance: advance}
	w, h := dr.Dx(), dr.Dy()
	if w <= 0 || h <= 0 || mask == nil {
		return g, true
	}

	pix := make([]byte, w*h*2)
	for y := range h {
		for x := range w {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			i := (y*w + x) * 2
			pix[i] = 255
			pix[i+1] = uint8(a >> 8)
		}
	}

	img, err := imgcore.FromBytes(pix, w, h, imgcore.FormatGrayAlpha, 1)
	if err != nil {
		return glyph{}, false
	}
	g.img = img
	return g, true
}
