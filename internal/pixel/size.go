package pixel

import "golang.org/x/exp/constraints"

// Minimum data size of a compressed image smaller than one 4x4 block.
const (
	minBlockBytesLow  = 8  // formats with 4 or fewer bits per pixel
	minBlockBytesHigh = 16 // 8 bits per pixel block formats
)

// ByteSize returns the number of bytes needed to store a width x height
// image in format f: width*height*bpp/8.
//
// Compressed images smaller than a 4x4 block still occupy a whole block,
// so their size is floored to 8 bytes (bpp <= 4) or 16 bytes (bpp 8).
func ByteSize(width, height int, f Format) int {
	bpp := f.BitsPerPixel()
	size := width * height * bpp / 8

	if f.IsCompressed() && width < 4 && height < 4 {
		switch {
		case bpp <= 4:
			size = minBlockBytesLow
		case bpp == 8:
			size = minBlockBytesHigh
		}
	}

	return size
}

// MipSize returns the dimensions of mip level n of a width x height image.
// Each level halves the previous one, flooring, never below 1.
func MipSize(width, height, level int) (int, int) {
	for range level {
		width = max(1, width/2)
		height = max(1, height/2)
	}
	return width, height
}

// MipByteSize returns the total size of an image with the given number of
// mip levels stored contiguously after the base level.
func MipByteSize(width, height int, f Format, mipmaps int) int {
	size := 0
	for range max(1, mipmaps) {
		size += ByteSize(width, height, f)
		width = max(1, width/2)
		height = max(1, height/2)
	}
	return size
}

// MipOffset returns the byte offset of mip level n inside the contiguous
// mip chain buffer.
func MipOffset(width, height int, f Format, level int) int {
	if level <= 0 {
		return 0
	}
	return MipByteSize(width, height, f, level)
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
