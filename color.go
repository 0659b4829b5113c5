package imgcore

import (
	"github.com/gogpu/imgcore/internal/blend"
	"github.com/gogpu/imgcore/internal/color"
	"github.com/gogpu/imgcore/internal/pixel"
)

// Color is an 8-bit straight-alpha RGBA color, the interchange type for
// every pixel format.
type Color = color.ColorU8

// NormalizedColor is an RGBA color with float channels in [0,1], the
// intermediate for conversions between different bit depths.
type NormalizedColor = color.ColorF32

// Format is a pixel storage format.
type Format = pixel.Format

// Pixel formats.
const (
	FormatNone         = pixel.FormatNone
	FormatGrayscale    = pixel.FormatGrayscale
	FormatGrayAlpha    = pixel.FormatGrayAlpha
	FormatR5G6B5       = pixel.FormatR5G6B5
	FormatR8G8B8       = pixel.FormatR8G8B8
	FormatR5G5B5A1     = pixel.FormatR5G5B5A1
	FormatR4G4B4A4     = pixel.FormatR4G4B4A4
	FormatR8G8B8A8     = pixel.FormatR8G8B8A8
	FormatR32          = pixel.FormatR32
	FormatR32G32B32    = pixel.FormatR32G32B32
	FormatR32G32B32A32 = pixel.FormatR32G32B32A32
	FormatDXT1RGB      = pixel.FormatDXT1RGB
	FormatDXT1RGBA     = pixel.FormatDXT1RGBA
	FormatDXT3RGBA     = pixel.FormatDXT3RGBA
	FormatDXT5RGBA     = pixel.FormatDXT5RGBA
	FormatETC1RGB      = pixel.FormatETC1RGB
	FormatETC2RGB      = pixel.FormatETC2RGB
	FormatETC2EACRGBA  = pixel.FormatETC2EACRGBA
	FormatPVRTRGB      = pixel.FormatPVRTRGB
	FormatPVRTRGBA     = pixel.FormatPVRTRGBA
	FormatASTC4x4RGBA  = pixel.FormatASTC4x4RGBA
	FormatASTC8x8RGBA  = pixel.FormatASTC8x8RGBA
)

// Common colors.
var (
	Blank   = color.Blank
	Black   = color.Black
	White   = color.White
	Red     = color.Red
	Green   = color.Green
	Blue    = color.Blue
	Yellow  = color.Yellow
	Gray    = color.Gray
	Magenta = color.Magenta
)

// ByteSize returns the data size of a width x height image in format,
// including the minimum block size of compressed formats.
func ByteSize(width, height int, format Format) int {
	return pixel.ByteSize(width, height, format)
}

// FormatForChannels maps an interleaved 8-bit channel count (1..4) to its
// uncompressed format, or FormatNone.
func FormatForChannels(channels int) Format {
	return pixel.FormatForChannels(channels)
}

// Fade returns c with alpha set to alpha (0..1).
func Fade(c Color, alpha float32) Color { return color.Fade(c, alpha) }

// ColorAlpha is an alias of Fade.
func ColorAlpha(c Color, alpha float32) Color { return color.Fade(c, alpha) }

// ColorTint multiplies c by tint channel-wise.
func ColorTint(c, tint Color) Color { return color.Multiply(c, tint) }

// ColorBrightness moves c towards black (factor < 0) or white (factor > 0).
func ColorBrightness(c Color, factor float32) Color { return color.Brightness(c, factor) }

// ColorContrast scales c away from (contrast > 0) or towards mid gray.
func ColorContrast(c Color, contrast float32) Color { return color.Contrast(c, contrast) }

// ColorNormalize maps c to [0,1] floats.
func ColorNormalize(c Color) NormalizedColor { return color.U8ToF32(c) }

// ColorFromNormalized maps [0,1] floats to c, rounding and clamping.
func ColorFromNormalized(n NormalizedColor) Color { return color.F32ToU8(n) }

// ColorToHSV returns hue in degrees, saturation and value.
// Gray colors report hue 0.
func ColorToHSV(c Color) (h, s, v float32) { return color.ToHSV(c) }

// ColorFromHSV builds an opaque color from hue (degrees), saturation and value.
func ColorFromHSV(h, s, v float32) Color { return color.FromHSV(h, s, v) }

// ColorToInt packs c as 0xRRGGBBAA.
func ColorToInt(c Color) uint32 { return color.ToHex(c) }

// GetColor unpacks a 0xRRGGBBAA integer.
func GetColor(hex uint32) Color { return color.FromHex(hex) }

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the '#' is optional).
func ParseHex(s string) (Color, error) { return color.ParseHex(s) }

// ColorAlphaBlend tints src and composites it over dst with the integer
// operator used by Image.Draw.
func ColorAlphaBlend(dst, src, tint Color) Color { return blend.Over(dst, src, tint) }
