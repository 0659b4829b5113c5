package imgcore

import (
	"github.com/pkg/errors"

	"github.com/gogpu/imgcore/internal/pixel"
)

// Convert re-encodes the image in format f.
//
// Converting to the current format or to FormatNone does nothing.
// Compressed data cannot be reinterpreted, so a compressed source or
// target fails with ErrUnsupportedFormat and leaves the image unchanged.
//
// Every pixel goes through a NormalizedColor, so narrow channels are
// scaled by their own maximum and grayscale targets use BT.601 luma.
// Mip levels beyond the base are discarded.
func (img *Image) Convert(f Format) error {
	if f == FormatNone || f == img.format {
		return nil
	}
	if img.IsEmpty() {
		return warn("convert", ErrEmptyImage)
	}
	if !f.IsValid() {
		return warn("convert", errors.Wrapf(ErrInvalidFormat, "%v", f))
	}
	if img.format.IsCompressed() || f.IsCompressed() {
		return warn("convert", errors.Wrapf(ErrUnsupportedFormat, "%v to %v", img.format, f),
			"from", img.format, "to", f)
	}

	if img.mipmaps > 1 {
		Logger().Debug("convert: mip levels discarded", "mipmaps", img.mipmaps)
	}

	out := img.derive(img.width, img.height, f)
	convertPixels(img.codec, out.data, f, img.data, img.format, img.width*img.height)
	img.replace(out)
	return nil
}

// convertPixels re-encodes n pixels from src in format sf into dst in df.
func convertPixels(codec pixel.Codec, dst []byte, df Format, src []byte, sf Format, n int) {
	sbpp := sf.BytesPerPixel()
	dbpp := df.BytesPerPixel()

	for i := range n {
		c := codec.DecodeNormalized(src, i*sbpp, sf)
		codec.EncodeNormalized(dst, i*dbpp, df, c)
	}
}
