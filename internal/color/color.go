// Package color provides the color types shared by every pixel codec and the
// stateless color math built on them: HSV conversion, hex packing and the
// tint/brightness/contrast adjustments.
package color

// ColorU8 represents a color with uint8 components in [0,255].
// It is the canonical interchange type for every pixel format.
// Alpha is straight (not premultiplied).
type ColorU8 struct {
	R, G, B, A uint8
}

// ColorF32 represents a color with float32 components in [0,1].
// It is the intermediate used for conversions spanning different bit depths.
type ColorF32 struct {
	R, G, B, A float32
}

// Common colors.
var (
	Blank   = ColorU8{0, 0, 0, 0}
	Black   = ColorU8{0, 0, 0, 255}
	White   = ColorU8{255, 255, 255, 255}
	Red     = ColorU8{230, 41, 55, 255}
	Green   = ColorU8{0, 228, 48, 255}
	Blue    = ColorU8{0, 121, 241, 255}
	Yellow  = ColorU8{253, 249, 0, 255}
	Gray    = ColorU8{130, 130, 130, 255}
	Magenta = ColorU8{255, 0, 255, 255}
)

// Luma weights (ITU-R BT.601) used whenever a color collapses to grayscale.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns the BT.601 luminance of normalized r, g, b.
// Gray input returns its own level exactly.
func Luma(r, g, b float32) float32 {
	if r == g && g == b {
		return r
	}
	return r*LumaR + g*LumaG + b*LumaB
}
