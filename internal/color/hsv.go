package color

import "math"

// ToHSV converts c to hue (degrees in [0,360)), saturation and value
// (both in [0,1]). Alpha is ignored.
//
// Hue is undefined for achromatic colors (zero saturation); it is
// reported as 0 rather than NaN.
func ToHSV(c ColorU8) (h, s, v float32) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	lo := min(r, g, b)
	hi := max(r, g, b)

	v = hi
	delta := hi - lo
	if delta < 0.00001 || hi <= 0 {
		return 0, 0, v
	}
	s = delta / hi

	switch {
	case r >= hi:
		h = (g - b) / delta // between yellow and magenta
	case g >= hi:
		h = 2 + (b-r)/delta // between cyan and yellow
	default:
		h = 4 + (r-g)/delta // between magenta and cyan
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// FromHSV converts hue (degrees), saturation and value to an opaque color.
// Conversions through HSV and back are not exact due to rounding.
func FromHSV(h, s, v float32) ColorU8 {
	return ColorU8{
		R: hsvChannel(5, h, s, v),
		G: hsvChannel(3, h, s, v),
		B: hsvChannel(1, h, s, v),
		A: 255,
	}
}

// hsvChannel evaluates one channel of the alternative HSV->RGB formula
// f(n) = V - V*S*max(0, min(k, 4-k, 1)), k = (n + H/60) mod 6.
func hsvChannel(n, h, s, v float32) uint8 {
	k := float32(math.Mod(float64(n+h/60), 6))
	if k < 0 {
		k += 6
	}
	k = min(k, 4-k, 1)
	k = max(k, 0)
	return truncate((v - v*s*k) * 255)
}
