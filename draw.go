package imgcore

import (
	"github.com/pkg/errors"

	"github.com/gogpu/imgcore/internal/blend"
)

// Draw composites the srcRect region of src into the dstRect region of
// img's base level, multiplying source pixels by tint.
//
// srcRect is clamped to src. When its size differs from dstRect the
// region is resampled to dstRect's size first; a negative srcRect width
// or height mirrors the region on that axis. Destination overflow is
// clipped while keeping the source and destination pixels aligned.
//
// Opaque sources in the destination's own format (Grayscale, R8G8B8 or
// R5G6B5, drawn with a white tint) are copied row by row. Everything else
// is blended per pixel with the integer "over" operator.
func (img *Image) Draw(src *Image, srcRect, dstRect Rect, tint Color) error {
	return img.draw(src, srcRect, dstRect, tint, true)
}

// DrawAt draws the whole of src with its top-left corner at (x, y).
func (img *Image) DrawAt(src *Image, x, y int, tint Color) error {
	if src.IsEmpty() {
		return warn("draw", ErrEmptyImage)
	}
	return img.Draw(src, src.Bounds(), NewRect(x, y, src.width, src.height), tint)
}

func (img *Image) draw(src *Image, srcRect, dstRect Rect, tint Color, allowCopy bool) error {
	if img.IsEmpty() || src.IsEmpty() {
		return warn("draw", ErrEmptyImage)
	}
	if img.format.IsCompressed() || src.format.IsCompressed() {
		return warn("draw", ErrUnsupportedFormat, "dst", img.format, "src", src.format)
	}
	if img.mipmaps > 1 {
		Logger().Debug("draw: only the base level is updated", "mipmaps", img.mipmaps)
	}

	flipX, flipY := srcRect.Width < 0, srcRect.Height < 0
	if flipX {
		srcRect.Width = -srcRect.Width
	}
	if flipY {
		srcRect.Height = -srcRect.Height
	}

	sr := srcRect.ints().clampTo(src.width, src.height)
	dr := dstRect.ints()
	if sr.w <= 0 || sr.h <= 0 {
		return warn("draw", errors.Wrapf(ErrOutOfBounds, "source %+v in %dx%d", srcRect, src.width, src.height))
	}

	source := src
	if sr.w != dr.w || sr.h != dr.h || flipX || flipY {
		if dr.w <= 0 || dr.h <= 0 {
			return warn("draw", errors.Wrapf(ErrInvalidDimensions, "destination %+v", dstRect))
		}

		tmp, err := src.prepareSource(sr, dr.w, dr.h, flipX, flipY)
		if err != nil {
			return err
		}
		defer tmp.Release()

		source = tmp
		sr = irect{w: tmp.width, h: tmp.height}
	}

	// Clip against the destination, shifting the source origin by the
	// same amount so the pixel correspondence holds.
	if dr.x < 0 {
		sr.x -= dr.x
		sr.w += dr.x
		dr.x = 0
	} else if dr.x+sr.w > img.width {
		sr.w = img.width - dr.x
	}
	if dr.y < 0 {
		sr.y -= dr.y
		sr.h += dr.y
		dr.y = 0
	} else if dr.y+sr.h > img.height {
		sr.h = img.height - dr.y
	}
	sr.w = min(sr.w, img.width)
	sr.h = min(sr.h, img.height)

	if sr.w <= 0 || sr.h <= 0 {
		return nil
	}

	img.blit(source, sr, dr.x, dr.y, tint, allowCopy)
	return nil
}

// prepareSource extracts r from img, mirrors it as requested and resamples
// it to width x height. The caller releases the result.
func (img *Image) prepareSource(r irect, width, height int, flipX, flipY bool) (*Image, error) {
	tmp := img.extractRegion(r)

	if flipX {
		if err := tmp.FlipHorizontal(); err != nil {
			tmp.Release()
			return nil, err
		}
	}
	if flipY {
		if err := tmp.FlipVertical(); err != nil {
			tmp.Release()
			return nil, err
		}
	}
	if tmp.width != width || tmp.height != height {
		if err := tmp.Resize(width, height); err != nil {
			tmp.Release()
			return nil, err
		}
	}
	return tmp, nil
}

// blit copies the already clipped region r of src to (dx, dy).
func (img *Image) blit(src *Image, r irect, dx, dy int, tint Color, allowCopy bool) {
	blendRequired := !(tint == White && opaqueFormat(src.format))
	copyRows := allowCopy && !blendRequired && src.format == img.format

	if copyRows {
		Logger().Debug("draw: row copy", "format", img.format, "width", r.w, "height", r.h)
	}

	sbpp := src.format.BytesPerPixel()
	dbpp := img.format.BytesPerPixel()

	for y := range r.h {
		s := src.offset(r.x, r.y+y)
		d := img.offset(dx, dy+y)

		if copyRows {
			copy(img.data[d:d+r.w*dbpp], src.data[s:s+r.w*sbpp])
			continue
		}

		for range r.w {
			c := src.codec.Decode(src.data, s, src.format)
			if blendRequired || !allowCopy {
				c = blend.Over(img.codec.Decode(img.data, d, img.format), c, tint)
			}
			img.codec.Encode(img.data, d, img.format, c)
			s += sbpp
			d += dbpp
		}
	}
}

// opaqueFormat reports formats that can skip blending entirely.
func opaqueFormat(f Format) bool {
	switch f {
	case FormatGrayscale, FormatR8G8B8, FormatR5G6B5:
		return true
	default:
		return false
	}
}
