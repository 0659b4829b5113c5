package text

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/imgcore"
)

// lineAdvance is the vertical pen step for '\n': one and a half line heights.
func lineAdvance(face font.Face) int {
	return (face.Metrics().Height * 3 / 2).Ceil()
}

// Draw pastes s onto dst with the top-left of the first line at (x, y).
//
// spacing is added after every glyph advance. '\n' starts a new line one
// and a half line heights lower. Glyph coverage is multiplied by tint and
// blended over dst.
func Draw(dst *imgcore.Image, s string, x, y int, face font.Face, spacing float32, tint imgcore.Color) error {
	if dst.IsEmpty() {
		return imgcore.ErrEmptyImage
	}

	s = norm.NFC.String(s)
	ascent := face.Metrics().Ascent.Ceil()
	step := fixed.Int26_6(spacing * 64)

	penX := fixed.I(x)
	baseline := y + ascent
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = fixed.I(x)
			baseline += lineAdvance(face)
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += face.Kern(prev, r)
		}
		prev = r

		g, ok := defaultCache.get(face, r)
		if !ok {
			continue
		}
		if g.img != nil {
			if err := dst.DrawAt(g.img, penX.Round()+g.offset.X, baseline+g.offset.Y, tint); err != nil {
				return errors.Wrapf(err, "text: draw %q", r)
			}
		}
		penX += g.advance + step
	}
	return nil
}

// Measure returns the size in pixels of s as Draw would lay it out.
// The width of a line excludes the spacing after its last glyph.
func Measure(s string, face font.Face, spacing float32) (width, height int) {
	s = norm.NFC.String(s)
	if s == "" {
		return 0, 0
	}

	step := fixed.Int26_6(spacing * 64)
	lines := strings.Split(s, "\n")

	for _, line := range lines {
		var w fixed.Int26_6
		count := 0
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				w += face.Kern(prev, r)
			}
			prev = r

			adv, ok := face.GlyphAdvance(r)
			if !ok {
				adv, _ = face.GlyphAdvance('?')
			}
			w += adv
			count++
		}
		if count > 1 {
			w += step * fixed.Int26_6(count-1)
		}
		width = max(width, w.Ceil())
	}

	height = face.Metrics().Height.Ceil() + (len(lines)-1)*lineAdvance(face)
	return width, height
}

// Render returns a transparent R8G8B8A8 image just large enough for s,
// with s drawn in tint.
func Render(s string, face font.Face, spacing float32, tint imgcore.Color, opts ...imgcore.Option) (*imgcore.Image, error) {
	w, h := Measure(s, face, spacing)
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrEmptyText, "%q", s)
	}

	img, err := imgcore.NewImage(w, h, imgcore.FormatR8G8B8A8, opts...)
	if err != nil {
		return nil, err
	}
	if err := Draw(img, s, 0, 0, face, spacing, tint); err != nil {
		img.Release()
		return nil, err
	}
	return img, nil
}
