package imgcore

import (
	"github.com/pkg/errors"

	"github.com/gogpu/imgcore/internal/pixel"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("imgcore: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("imgcore: invalid format")

	// ErrUnsupportedFormat is returned when an operation needs per-pixel
	// access to a compressed format.
	ErrUnsupportedFormat = errors.New("imgcore: unsupported format")

	// ErrOutOfBounds is returned when a region lies outside the image.
	ErrOutOfBounds = errors.New("imgcore: out of bounds")

	// ErrEmptyImage is returned when an operation is given an image without data.
	ErrEmptyImage = errors.New("imgcore: empty image")

	// ErrDataSize is returned when a buffer does not match the size implied
	// by its dimensions, format and mip count.
	ErrDataSize = errors.New("imgcore: data size mismatch")
)

// Image is an owned pixel buffer with its metadata.
//
// The buffer holds the base level followed by mipmaps-1 progressively
// halved levels, tightly packed. Operations that change dimensions or
// format replace the buffer and return the old one to the image's pool,
// so slices obtained from Data are only valid until the next such call.
//
// Image is not safe for concurrent use.
type Image struct {
	data    []byte
	width   int
	height  int
	format  Format
	mipmaps int

	codec pixel.Codec
	opts  options
}

// NewImage allocates a zeroed width x height image in format.
func NewImage(width, height int, format Format, opts ...Option) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if !format.IsValid() {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", format)
	}

	o := buildOptions(opts)
	return newImage(width, height, format, 1, o), nil
}

// FromBytes wraps data as an image. The image takes ownership of data;
// its length must equal the size of the mip chain exactly.
// A mipmaps value below 1 counts as 1.
func FromBytes(data []byte, width, height int, format Format, mipmaps int, opts ...Option) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if !format.IsValid() {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", format)
	}

	mipmaps = max(1, mipmaps)
	if want := pixel.MipByteSize(width, height, format, mipmaps); len(data) != want {
		return nil, errors.Wrapf(ErrDataSize, "%dx%d %v with %d levels needs %d bytes, got %d",
			width, height, format, mipmaps, want, len(data))
	}

	o := buildOptions(opts)
	return &Image{
		data:    data,
		width:   width,
		height:  height,
		format:  format,
		mipmaps: mipmaps,
		codec:   pixel.NewCodec(o.alphaThreshold),
		opts:    o,
	}, nil
}

// GenColor allocates an R8G8B8A8 image filled with c.
func GenColor(width, height int, c Color, opts ...Option) (*Image, error) {
	img, err := NewImage(width, height, FormatR8G8B8A8, opts...)
	if err != nil {
		return nil, err
	}
	img.ClearBackground(c)
	return img, nil
}

// newImage allocates without validation.
func newImage(width, height int, format Format, mipmaps int, o options) *Image {
	return &Image{
		data:    o.pool.Get(pixel.MipByteSize(width, height, format, mipmaps)),
		width:   width,
		height:  height,
		format:  format,
		mipmaps: mipmaps,
		codec:   pixel.NewCodec(o.alphaThreshold),
		opts:    o,
	}
}

// derive allocates a single-level image sharing img's options.
func (img *Image) derive(width, height int, format Format) *Image {
	return newImage(width, height, format, 1, img.opts)
}

// replace releases img's buffer and moves next's buffer and metadata into
// img. next must not be used afterwards.
func (img *Image) replace(next *Image) {
	img.opts.pool.Put(img.data)

	img.data = next.data
	img.width = next.width
	img.height = next.height
	img.format = next.format
	img.mipmaps = next.mipmaps

	next.data = nil
	next.width, next.height = 0, 0
}

// Copy returns a new image with identical size, format, mip chain and
// content. Copying an empty image returns an empty image.
func (img *Image) Copy() *Image {
	if img.IsEmpty() {
		return &Image{codec: img.codec, opts: img.opts}
	}

	c := newImage(img.width, img.height, img.format, img.mipmaps, img.opts)
	copy(c.data, img.data)
	return c
}

// Release returns the pixel buffer to the pool and leaves img empty.
// Releasing an empty image does nothing.
func (img *Image) Release() {
	if img.data == nil {
		return
	}
	img.opts.pool.Put(img.data)
	img.data = nil
	img.width, img.height = 0, 0
	img.mipmaps = 0
}

// Width returns the base level width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the base level height in pixels.
func (img *Image) Height() int { return img.height }

// Format returns the pixel format.
func (img *Image) Format() Format { return img.format }

// Mipmaps returns the number of mip levels, including the base level.
func (img *Image) Mipmaps() int { return img.mipmaps }

// Data returns the raw pixel buffer (base level followed by mip levels).
// The slice aliases the image and is invalidated by any operation that
// replaces the buffer.
func (img *Image) Data() []byte { return img.data }

// IsEmpty reports whether the image has no pixel data.
func (img *Image) IsEmpty() bool {
	return img == nil || len(img.data) == 0 || img.width <= 0 || img.height <= 0
}

// Bounds returns the full base level as a Rect.
func (img *Image) Bounds() Rect {
	return Rect{Width: float32(img.width), Height: float32(img.height)}
}

// ByteSize returns the size in bytes of the base level.
func (img *Image) ByteSize() int {
	return pixel.ByteSize(img.width, img.height, img.format)
}

// stride returns the byte length of one base level row.
func (img *Image) stride() int {
	return img.format.RowBytes(img.width)
}

// offset returns the byte offset of pixel (x, y) in the base level.
func (img *Image) offset(x, y int) int {
	return (y*img.width + x) * img.format.BytesPerPixel()
}

// pixelAccess validates that per-pixel operations are possible.
func (img *Image) pixelAccess(op string) error {
	if img.IsEmpty() {
		return warn(op, ErrEmptyImage)
	}
	if img.format.IsCompressed() {
		return warn(op, ErrUnsupportedFormat, "format", img.format)
	}
	return nil
}
