package imgcore

import (
	"math"

	"github.com/pkg/errors"

	"github.com/gogpu/imgcore/internal/color"
	"github.com/gogpu/imgcore/internal/pixel"
)

// GenMipmaps appends a full mip chain after the base level, down to 1x1.
//
// Each level is a 2x2 box filter of the previous one, averaged in
// normalized color so narrow formats do not drift. Existing levels are
// regenerated.
func (img *Image) GenMipmaps() error {
	if err := img.pixelAccess("mipmaps"); err != nil {
		return err
	}

	levels := 1 + int(math.Floor(math.Log2(float64(max(img.width, img.height)))))
	out := newImage(img.width, img.height, img.format, levels, img.opts)
	copy(out.data, img.data[:img.ByteSize()])

	w, h := img.width, img.height
	prev := 0
	for range levels - 1 {
		next := prev + pixel.ByteSize(w, h, img.format)
		downsample(img.codec, out.data[next:], out.data[prev:next], w, h, img.format)
		w, h = max(1, w/2), max(1, h/2)
		prev = next
	}

	img.replace(out)
	return nil
}

// downsample box-filters the sw x sh level in src into dst at half size.
func downsample(codec pixel.Codec, dst, src []byte, sw, sh int, f Format) {
	dw, dh := max(1, sw/2), max(1, sh/2)
	bpp := f.BytesPerPixel()

	at := func(x, y int) color.ColorF32 {
		return codec.DecodeNormalized(src, (min(y, sh-1)*sw+min(x, sw-1))*bpp, f)
	}

	for dy := range dh {
		for dx := range dw {
			sx, sy := dx*2, dy*2
			c0, c1 := at(sx, sy), at(sx+1, sy)
			c2, c3 := at(sx, sy+1), at(sx+1, sy+1)

			avg := color.ColorF32{
				R: (c0.R + c1.R + c2.R + c3.R) / 4,
				G: (c0.G + c1.G + c2.G + c3.G) / 4,
				B: (c0.B + c1.B + c2.B + c3.B) / 4,
				A: (c0.A + c1.A + c2.A + c3.A) / 4,
			}
			codec.EncodeNormalized(dst, (dy*dw+dx)*bpp, f, avg)
		}
	}
}

// MipLevel returns a copy of mip level n as a standalone image.
// Level 0 is the base level.
func (img *Image) MipLevel(n int) (*Image, error) {
	if img.IsEmpty() {
		return nil, warn("mip level", ErrEmptyImage)
	}
	if n < 0 || n >= img.mipmaps {
		return nil, warn("mip level", errors.Wrapf(ErrOutOfBounds, "level %d of %d", n, img.mipmaps))
	}

	w, h := pixel.MipSize(img.width, img.height, n)
	off := pixel.MipOffset(img.width, img.height, img.format, n)

	out := img.derive(w, h, img.format)
	copy(out.data, img.data[off:off+pixel.ByteSize(w, h, img.format)])
	return out, nil
}
