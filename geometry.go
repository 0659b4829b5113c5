package imgcore

import (
	"github.com/pkg/errors"

	"github.com/gogpu/imgcore/internal/resample"
)

// Crop keeps only the part of the base level inside r.
//
// r is clamped to the image first: a negative origin shrinks the size by
// the same amount and an overflowing far edge is cut. A rectangle left
// with no pixels fails with ErrOutOfBounds. Mip levels are discarded.
func (img *Image) Crop(r Rect) error {
	if err := img.pixelAccess("crop"); err != nil {
		return err
	}

	c := r.ints().clampTo(img.width, img.height)
	if c.x >= img.width || c.y >= img.height || c.w <= 0 || c.h <= 0 {
		return warn("crop", errors.Wrapf(ErrOutOfBounds, "%+v in %dx%d", r, img.width, img.height))
	}

	img.replace(img.extractRegion(c))
	return nil
}

// FromRegion returns a new image holding a copy of the base level pixels
// inside r. r must lie entirely within the image.
func (img *Image) FromRegion(r Rect) (*Image, error) {
	if err := img.pixelAccess("region"); err != nil {
		return nil, err
	}

	c := r.ints()
	if c.w <= 0 || c.h <= 0 || c.x < 0 || c.y < 0 || c.x+c.w > img.width || c.y+c.h > img.height {
		return nil, warn("region", errors.Wrapf(ErrOutOfBounds, "%+v in %dx%d", r, img.width, img.height))
	}

	return img.extractRegion(c), nil
}

// extractRegion copies r row by row into a tightly packed new image.
// The caller guarantees r is inside the base level.
func (img *Image) extractRegion(r irect) *Image {
	out := img.derive(r.w, r.h, img.format)

	bpp := img.format.BytesPerPixel()
	stride := img.stride()
	rowBytes := r.w * bpp

	for y := range r.h {
		src := (r.y+y)*stride + r.x*bpp
		copy(out.data[y*rowBytes:(y+1)*rowBytes], img.data[src:src+rowBytes])
	}
	return out
}

// validateResize checks the common preconditions of the resize operations.
func (img *Image) validateResize(op string, width, height int) error {
	if err := img.pixelAccess(op); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return warn(op, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height))
	}
	return nil
}

// asRGBA returns the base level as an R8G8B8A8 image, converting a copy
// when needed. The second result reports whether the image is a copy the
// caller must release.
func (img *Image) asRGBA() (*Image, bool) {
	if img.format == FormatR8G8B8A8 && img.mipmaps <= 1 {
		return img, false
	}

	tmp := img.extractRegion(irect{w: img.width, h: img.height})
	if tmp.format != FormatR8G8B8A8 {
		out := tmp.derive(tmp.width, tmp.height, FormatR8G8B8A8)
		convertPixels(tmp.codec, out.data, FormatR8G8B8A8, tmp.data, tmp.format, tmp.width*tmp.height)
		tmp.Release()
		tmp = out
	}
	return tmp, true
}

// ResizeNN scales the image to width x height with nearest-neighbor
// sampling in 16.16 fixed point.
//
// Pixels are sampled as R8G8B8A8 and the result is converted back to the
// original format. Mip levels are discarded.
func (img *Image) ResizeNN(width, height int) error {
	if err := img.validateResize("resize", width, height); err != nil {
		return err
	}

	src, tmp := img.asRGBA()
	out := img.derive(width, height, FormatR8G8B8A8)

	// The +1 biases sampling so the last row and column are reached.
	xRatio := (src.width<<16)/width + 1
	yRatio := (src.height<<16)/height + 1

	for y := range height {
		sy := min((y*yRatio)>>16, src.height-1)
		for x := range width {
			sx := min((x*xRatio)>>16, src.width-1)
			s := (sy*src.width + sx) * 4
			d := (y*width + x) * 4
			copy(out.data[d:d+4], src.data[s:s+4])
		}
	}

	if tmp {
		src.Release()
	}
	return img.replaceAs(out)
}

// Resize scales the image to width x height with a cubic filter:
// Catmull-Rom when enlarging, Mitchell-Netravali when shrinking.
//
// Grayscale, GrayAlpha, R8G8B8 and R8G8B8A8 are filtered in place;
// every other uncompressed format goes through R8G8B8A8 and back.
// Mip levels are discarded.
func (img *Image) Resize(width, height int) error {
	if err := img.validateResize("resize", width, height); err != nil {
		return err
	}

	switch img.format {
	case FormatGrayscale, FormatGrayAlpha, FormatR8G8B8, FormatR8G8B8A8:
		out := img.derive(width, height, img.format)
		err := resample.Uint8(img.data, img.width, img.height, out.data, width, height, img.format.Channels())
		if err != nil {
			out.Release()
			return warn("resize", err)
		}
		img.replace(out)
		return nil
	}

	src, tmp := img.asRGBA()
	out := img.derive(width, height, FormatR8G8B8A8)
	err := resample.Uint8(src.data, src.width, src.height, out.data, width, height, 4)
	if tmp {
		src.Release()
	}
	if err != nil {
		out.Release()
		return warn("resize", err)
	}
	return img.replaceAs(out)
}

// replaceAs converts the R8G8B8A8 image rgba back to img's format and
// substitutes it for img's buffer.
func (img *Image) replaceAs(rgba *Image) error {
	f := img.format
	if f != FormatR8G8B8A8 {
		out := rgba.derive(rgba.width, rgba.height, f)
		convertPixels(rgba.codec, out.data, f, rgba.data, FormatR8G8B8A8, rgba.width*rgba.height)
		rgba.Release()
		rgba = out
	}
	img.replace(rgba)
	return nil
}

// ResizeCanvas places the image at (offsetX, offsetY) on a new
// width x height canvas filled with fill.
//
// Only the part of the image that overlaps the new canvas is kept. Mip
// levels are discarded. Keeping both the size and a zero offset does nothing.
func (img *Image) ResizeCanvas(width, height, offsetX, offsetY int, fill Color) error {
	if err := img.validateResize("resize canvas", width, height); err != nil {
		return err
	}
	if width == img.width && height == img.height && offsetX == 0 && offsetY == 0 {
		return nil
	}

	src := irect{w: img.width, h: img.height}
	dstX, dstY := offsetX, offsetY

	if offsetX < 0 {
		src.x = -offsetX
		src.w += offsetX
		dstX = 0
	} else if offsetX+img.width > width {
		src.w = width - offsetX
	}

	if offsetY < 0 {
		src.y = -offsetY
		src.h += offsetY
		dstY = 0
	} else if offsetY+img.height > height {
		src.h = height - offsetY
	}

	src.w = min(src.w, width)
	src.h = min(src.h, height)

	out := img.derive(width, height, img.format)
	out.ClearBackground(fill)

	if src.w > 0 && src.h > 0 {
		bpp := img.format.BytesPerPixel()
		rowBytes := src.w * bpp
		for y := range src.h {
			s := img.offset(src.x, src.y+y)
			d := out.offset(dstX, dstY+y)
			copy(out.data[d:d+rowBytes], img.data[s:s+rowBytes])
		}
	}

	img.replace(out)
	return nil
}

// FlipVertical mirrors the base level top to bottom. Mip levels are discarded.
func (img *Image) FlipVertical() error {
	if err := img.pixelAccess("flip"); err != nil {
		return err
	}

	out := img.derive(img.width, img.height, img.format)
	stride := img.stride()
	for y := range img.height {
		d := (img.height - 1 - y) * stride
		copy(out.data[d:d+stride], img.data[y*stride:(y+1)*stride])
	}
	img.replace(out)
	return nil
}

// FlipHorizontal mirrors the base level left to right. Mip levels are discarded.
func (img *Image) FlipHorizontal() error {
	if err := img.pixelAccess("flip"); err != nil {
		return err
	}

	out := img.derive(img.width, img.height, img.format)
	bpp := img.format.BytesPerPixel()
	for y := range img.height {
		for x := range img.width {
			s := img.offset(x, y)
			d := out.offset(img.width-1-x, y)
			copy(out.data[d:d+bpp], img.data[s:s+bpp])
		}
	}
	img.replace(out)
	return nil
}
