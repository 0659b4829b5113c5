package imgcore

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"

	// Container decoders available to Decode and StdDecoder.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ContainerDecoder decodes a compressed file container into interleaved
// 8-bit pixels. formatHint names the container ("png", ".jpg") and may be
// empty.
type ContainerDecoder interface {
	DecodeContainer(data []byte, formatHint string) (pix []byte, width, height, channels int, err error)
}

// StdDecoder decodes every container registered with the image package:
// PNG, JPEG, GIF, BMP, TIFF and WebP. Grayscale sources yield one
// channel, everything else four.
type StdDecoder struct{}

var _ ContainerDecoder = StdDecoder{}

// DecodeContainer implements ContainerDecoder.
func (StdDecoder) DecodeContainer(data []byte, formatHint string) ([]byte, int, int, int, error) {
	src, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, 0, errors.Wrap(err, "imgcore: decode container")
	}

	if hint := normalizeHint(formatHint); hint != "" && hint != name {
		return nil, 0, 0, 0, errors.Wrapf(ErrUnsupportedFormat, "container is %s, expected %s", name, hint)
	}

	img, err := FromStdImage(src)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return img.data, img.width, img.height, img.format.Channels(), nil
}

func normalizeHint(h string) string {
	h = strings.ToLower(strings.TrimPrefix(h, "."))
	switch h {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return h
}

// LoadFromContainer decodes data with d and wraps the pixels as an image
// in the format matching the reported channel count.
func LoadFromContainer(d ContainerDecoder, data []byte, formatHint string, opts ...Option) (*Image, error) {
	pix, w, h, channels, err := d.DecodeContainer(data, formatHint)
	if err != nil {
		return nil, warn("load", err)
	}

	f := FormatForChannels(channels)
	if f == FormatNone {
		return nil, warn("load", errors.Wrapf(ErrInvalidFormat, "%d channels", channels))
	}
	return FromBytes(pix, w, h, f, 1, opts...)
}

// Decode reads an image in any registered container format.
func Decode(r io.Reader, opts ...Option) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "imgcore: decode")
	}
	return FromStdImage(src, opts...)
}

// FromStdImage copies an image.Image. *image.Gray becomes Grayscale,
// everything else R8G8B8A8 with straight alpha.
func FromStdImage(src image.Image, opts ...Option) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch s := src.(type) {
	case *image.Gray:
		img, err := NewImage(w, h, FormatGrayscale, opts...)
		if err != nil {
			return nil, err
		}
		for y := range h {
			i := s.PixOffset(b.Min.X, b.Min.Y+y)
			copy(img.data[y*w:(y+1)*w], s.Pix[i:i+w])
		}
		return img, nil

	case *image.NRGBA:
		img, err := NewImage(w, h, FormatR8G8B8A8, opts...)
		if err != nil {
			return nil, err
		}
		for y := range h {
			i := s.PixOffset(b.Min.X, b.Min.Y+y)
			copy(img.data[y*w*4:(y+1)*w*4], s.Pix[i:i+w*4])
		}
		return img, nil
	}

	img, err := NewImage(w, h, FormatR8G8B8A8, opts...)
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			c := stdcolor.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(stdcolor.NRGBA)
			i := (y*w + x) * 4
			img.data[i], img.data[i+1], img.data[i+2], img.data[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return img, nil
}

// ToStdImage copies the base level into an image.Image: *image.Gray for
// Grayscale, *image.NRGBA for every other uncompressed format.
func (img *Image) ToStdImage() (image.Image, error) {
	if err := img.pixelAccess("export"); err != nil {
		return nil, err
	}

	r := image.Rect(0, 0, img.width, img.height)
	if img.format == FormatGrayscale {
		g := image.NewGray(r)
		copy(g.Pix, img.data[:img.ByteSize()])
		return g, nil
	}

	colors, err := img.Colors()
	if err != nil {
		return nil, err
	}
	n := image.NewNRGBA(r)
	for i, c := range colors {
		n.Pix[i*4], n.Pix[i*4+1], n.Pix[i*4+2], n.Pix[i*4+3] = c.R, c.G, c.B, c.A
	}
	return n, nil
}

// EncodePNG writes the base level as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	std, err := img.ToStdImage()
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, std), "imgcore: encode png")
}
