// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/pkg/errors"

	"github.com/gogpu/imgcore"
)

// ErrNoTarget is returned when Upload or ReadImage is given a nil target.
var ErrNoTarget = errors.New("gpu: no texture target")

// Handle identifies a texture owned by the target.
type Handle uint64

// Layout describes where one mip level lives inside the upload buffer.
type Layout struct {
	// Offset is the byte offset of the level from the start of the data.
	Offset uint64

	// BytesPerRow is the tightly packed row length of the level.
	BytesPerRow uint32

	// RowsPerImage is the level height in rows.
	RowsPerImage uint32
}

// Descriptor describes a texture to create and fill.
type Descriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Size is the base level size. DepthOrArrayLayers is always 1.
	Size gputypes.Extent3D

	// MipLevelCount is the number of mip levels in the data.
	MipLevelCount uint32

	// Dimension is always TextureDimension2D.
	Dimension gputypes.TextureDimension

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage

	// Layouts holds one entry per mip level.
	Layouts []Layout
}

// Uploader creates a texture from a descriptor and its pixel data.
type Uploader interface {
	CreateTexture(desc *Descriptor, data []byte) (Handle, error)
}

// Reader copies a texture's base level back to memory as tightly packed
// RGBA8 rows.
type Reader interface {
	ReadPixels(h Handle) (data []byte, width, height int, err error)
}

// DefaultUsage is the usage given to uploaded textures.
var DefaultUsage = gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageCopyDst |
	gputypes.TextureUsageCopySrc

// TextureFormat returns the texture format that stores f without
// conversion. ok is false when f has no direct equivalent.
func TextureFormat(f imgcore.Format) (format gputypes.TextureFormat, ok bool) {
	switch f {
	case imgcore.FormatGrayscale:
		return gputypes.TextureFormatR8Unorm, true
	case imgcore.FormatR8G8B8A8:
		return gputypes.TextureFormatRGBA8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// NewDescriptor builds the descriptor for uploading img as is.
// img must be in a format TextureFormat maps.
func NewDescriptor(img *imgcore.Image) (*Descriptor, error) {
	if img.IsEmpty() {
		return nil, imgcore.ErrEmptyImage
	}
	tf, ok := TextureFormat(img.Format())
	if !ok {
		return nil, errors.Wrapf(imgcore.ErrUnsupportedFormat, "gpu: no texture format for %v", img.Format())
	}

	levels := max(1, img.Mipmaps())
	desc := &Descriptor{
		Size: gputypes.Extent3D{
			Width:              safeIntToUint32(img.Width()),
			Height:             safeIntToUint32(img.Height()),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: safeIntToUint32(levels),
		Dimension:     gputypes.TextureDimension2D,
		Format:        tf,
		Usage:         DefaultUsage,
		Layouts:       make([]Layout, 0, levels),
	}

	w, h := img.Width(), img.Height()
	offset := 0
	for range levels {
		desc.Layouts = append(desc.Layouts, Layout{
			Offset:       uint64(offset),
			BytesPerRow:  safeIntToUint32(img.Format().RowBytes(w)),
			RowsPerImage: safeIntToUint32(h),
		})
		offset += imgcore.ByteSize(w, h, img.Format())
		w, h = max(1, w/2), max(1, h/2)
	}
	return desc, nil
}

// Upload sends img to the target and returns the texture handle.
//
// Images in a format with no texture equivalent are converted to
// R8G8B8A8 on a copy first; their mip chain is regenerated on the copy.
func Upload(u Uploader, img *imgcore.Image) (Handle, error) {
	if u == nil {
		return 0, ErrNoTarget
	}
	if img.IsEmpty() {
		return 0, imgcore.ErrEmptyImage
	}

	src := img
	if _, ok := TextureFormat(img.Format()); !ok {
		tmp, err := uploadCopy(img)
		if err != nil {
			return 0, err
		}
		defer tmp.Release()
		src = tmp
	}

	desc, err := NewDescriptor(src)
	if err != nil {
		return 0, err
	}

	h, err := u.CreateTexture(desc, src.Data())
	if err != nil {
		return 0, errors.Wrap(err, "gpu: create texture")
	}
	imgcore.Logger().Debug("gpu: texture uploaded",
		"handle", h,
		"size", []uint32{desc.Size.Width, desc.Size.Height},
		"levels", desc.MipLevelCount,
		"from", img.Format(),
	)
	return h, nil
}

// uploadCopy returns an R8G8B8A8 copy of img. A copy of a mipmapped
// image gets a full chain.
func uploadCopy(img *imgcore.Image) (*imgcore.Image, error) {
	if img.Format().IsCompressed() {
		return nil, errors.Wrapf(imgcore.ErrUnsupportedFormat, "gpu: compressed %v", img.Format())
	}

	c := img.Copy()
	if err := c.Convert(imgcore.FormatR8G8B8A8); err != nil {
		c.Release()
		return nil, err
	}
	if img.Mipmaps() > 1 {
		if err := c.GenMipmaps(); err != nil {
			c.Release()
			return nil, err
		}
	}
	return c, nil
}

// ReadImage reads a texture back as a fresh R8G8B8A8 image.
func ReadImage(r Reader, h Handle, opts ...imgcore.Option) (*imgcore.Image, error) {
	if r == nil {
		return nil, ErrNoTarget
	}

	data, w, ht, err := r.ReadPixels(h)
	if err != nil {
		return nil, errors.Wrapf(err, "gpu: read texture %d", h)
	}
	return imgcore.FromBytes(data, w, ht, imgcore.FormatR8G8B8A8, 1, opts...)
}

// safeIntToUint32 converts v, returning 0 for negatives and clamping at
// the uint32 maximum.
func safeIntToUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > int(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
