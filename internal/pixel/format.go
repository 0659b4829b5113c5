// Package pixel implements per-pixel encoding and decoding for every
// supported pixel format, plus the byte-size arithmetic all image buffers
// are laid out with.
package pixel

// Format represents a pixel storage format.
//
// Uncompressed formats can be decoded and encoded pixel by pixel.
// Compressed block formats are opaque: only their data size is known.
type Format uint8

const (
	// FormatNone is the "no change" sentinel. It is never a valid
	// storage format.
	FormatNone Format = iota

	// FormatGrayscale is 8-bit luminance (1 byte per pixel).
	FormatGrayscale

	// FormatGrayAlpha is 8-bit luminance plus 8-bit alpha (2 bytes per pixel).
	FormatGrayAlpha

	// FormatR5G6B5 is 16-bit packed RGB with no alpha.
	FormatR5G6B5

	// FormatR8G8B8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatR8G8B8

	// FormatR5G5B5A1 is 16-bit packed RGB with a 1-bit alpha.
	FormatR5G5B5A1

	// FormatR4G4B4A4 is 16-bit packed RGBA with 4 bits per channel.
	FormatR4G4B4A4

	// FormatR8G8B8A8 is 32-bit RGBA (4 bytes per pixel).
	// This is the interchange format for most operations.
	FormatR8G8B8A8

	// FormatR32 is a single 32-bit float channel (luminance).
	FormatR32

	// FormatR32G32B32 is three 32-bit float channels.
	FormatR32G32B32

	// FormatR32G32B32A32 is four 32-bit float channels.
	FormatR32G32B32A32

	// FormatDXT1RGB is DXT1 (BC1) without alpha, 4 bpp.
	FormatDXT1RGB

	// FormatDXT1RGBA is DXT1 (BC1) with 1-bit alpha, 4 bpp.
	FormatDXT1RGBA

	// FormatDXT3RGBA is DXT3 (BC2), 8 bpp.
	FormatDXT3RGBA

	// FormatDXT5RGBA is DXT5 (BC3), 8 bpp.
	FormatDXT5RGBA

	// FormatETC1RGB is ETC1, 4 bpp.
	FormatETC1RGB

	// FormatETC2RGB is ETC2 RGB, 4 bpp.
	FormatETC2RGB

	// FormatETC2EACRGBA is ETC2 with EAC alpha, 8 bpp.
	FormatETC2EACRGBA

	// FormatPVRTRGB is PVRTC RGB, 4 bpp.
	FormatPVRTRGB

	// FormatPVRTRGBA is PVRTC RGBA, 4 bpp.
	FormatPVRTRGBA

	// FormatASTC4x4RGBA is ASTC with 4x4 blocks, 8 bpp.
	FormatASTC4x4RGBA

	// FormatASTC8x8RGBA is ASTC with 8x8 blocks, 2 bpp.
	FormatASTC8x8RGBA

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the display name of the format.
	Name string

	// BitsPerPixel is the storage cost of one pixel.
	BitsPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if color is stored as a single luminance value.
	IsGrayscale bool

	// IsFloat indicates 32-bit float channels.
	IsFloat bool

	// IsCompressed indicates an opaque block-compressed format.
	IsCompressed bool

	// BlockSize is the edge length in pixels of a compressed block.
	BlockSize int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatNone: {Name: "None"},
	FormatGrayscale: {
		Name:         "Grayscale",
		BitsPerPixel: 8,
		Channels:     1,
		IsGrayscale:  true,
	},
	FormatGrayAlpha: {
		Name:         "GrayAlpha",
		BitsPerPixel: 16,
		Channels:     2,
		HasAlpha:     true,
		IsGrayscale:  true,
	},
	FormatR5G6B5: {
		Name:         "R5G6B5",
		BitsPerPixel: 16,
		Channels:     3,
	},
	FormatR8G8B8: {
		Name:         "R8G8B8",
		BitsPerPixel: 24,
		Channels:     3,
	},
	FormatR5G5B5A1: {
		Name:         "R5G5B5A1",
		BitsPerPixel: 16,
		Channels:     4,
		HasAlpha:     true,
	},
	FormatR4G4B4A4: {
		Name:         "R4G4B4A4",
		BitsPerPixel: 16,
		Channels:     4,
		HasAlpha:     true,
	},
	FormatR8G8B8A8: {
		Name:         "R8G8B8A8",
		BitsPerPixel: 32,
		Channels:     4,
		HasAlpha:     true,
	},
	FormatR32: {
		Name:         "R32",
		BitsPerPixel: 32,
		Channels:     1,
		IsGrayscale:  true,
		IsFloat:      true,
	},
	FormatR32G32B32: {
		Name:         "R32G32B32",
		BitsPerPixel: 96,
		Channels:     3,
		IsFloat:      true,
	},
	FormatR32G32B32A32: {
		Name:         "R32G32B32A32",
		BitsPerPixel: 128,
		Channels:     4,
		HasAlpha:     true,
		IsFloat:      true,
	},
	FormatDXT1RGB:     {Name: "DXT1_RGB", BitsPerPixel: 4, Channels: 3, IsCompressed: true, BlockSize: 4},
	FormatDXT1RGBA:    {Name: "DXT1_RGBA", BitsPerPixel: 4, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 4},
	FormatDXT3RGBA:    {Name: "DXT3_RGBA", BitsPerPixel: 8, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 4},
	FormatDXT5RGBA:    {Name: "DXT5_RGBA", BitsPerPixel: 8, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 4},
	FormatETC1RGB:     {Name: "ETC1_RGB", BitsPerPixel: 4, Channels: 3, IsCompressed: true, BlockSize: 4},
	FormatETC2RGB:     {Name: "ETC2_RGB", BitsPerPixel: 4, Channels: 3, IsCompressed: true, BlockSize: 4},
	FormatETC2EACRGBA: {Name: "ETC2_EAC_RGBA", BitsPerPixel: 8, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 4},
	FormatPVRTRGB:     {Name: "PVRT_RGB", BitsPerPixel: 4, Channels: 3, IsCompressed: true, BlockSize: 4},
	FormatPVRTRGBA:    {Name: "PVRT_RGBA", BitsPerPixel: 4, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 4},
	FormatASTC4x4RGBA: {Name: "ASTC_4x4_RGBA", BitsPerPixel: 8, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 4},
	FormatASTC8x8RGBA: {Name: "ASTC_8x8_RGBA", BitsPerPixel: 2, Channels: 4, HasAlpha: true, IsCompressed: true, BlockSize: 8},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerPixel returns the number of bits per pixel for this format.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// BytesPerPixel returns the number of bytes per pixel.
// Compressed formats have no whole-byte pixel and return 0.
func (f Format) BytesPerPixel() int {
	if f.IsCompressed() {
		return 0
	}
	return f.Info().BitsPerPixel / 8
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a luminance format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsFloat returns true for the 32-bit float channel formats.
func (f Format) IsFloat() bool {
	return f.Info().IsFloat
}

// IsCompressed returns true for opaque block-compressed formats.
func (f Format) IsCompressed() bool {
	return f.Info().IsCompressed
}

// IsValid returns true if the format is a known storage format.
// FormatNone is not valid.
func (f Format) IsValid() bool {
	return f > FormatNone && f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	if f >= formatCount {
		return "Unknown"
	}
	return formatInfoTable[f].Name
}

// RowBytes returns the number of bytes in one tightly packed row.
func (f Format) RowBytes(width int) int {
	return ByteSize(width, 1, f)
}

// FormatForChannels maps an interleaved 8-bit channel count, as reported
// by container decoders, to the matching uncompressed format.
// It returns FormatNone for counts outside 1..4.
func FormatForChannels(channels int) Format {
	switch channels {
	case 1:
		return FormatGrayscale
	case 2:
		return FormatGrayAlpha
	case 3:
		return FormatR8G8B8
	case 4:
		return FormatR8G8B8A8
	default:
		return FormatNone
	}
}
