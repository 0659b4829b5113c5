package color

// Fade returns c with its alpha replaced by alpha (0..1, clamped).
func Fade(c ColorU8, alpha float32) ColorU8 {
	alpha = min(max(alpha, 0), 1)
	c.A = truncate(255 * alpha)
	return c
}

// Multiply returns c multiplied channel-wise by tint in normalized space.
// A white tint leaves c unchanged.
func Multiply(c, tint ColorU8) ColorU8 {
	mul := func(a, b uint8) uint8 {
		return uint8(uint16(a) * uint16(b) / 255)
	}
	return ColorU8{
		R: mul(c.R, tint.R),
		G: mul(c.G, tint.G),
		B: mul(c.B, tint.B),
		A: mul(c.A, tint.A),
	}
}

// Brightness corrects c by factor in [-1,1]: negative values darken
// towards black, positive values lighten towards white. Alpha is kept.
func Brightness(c ColorU8, factor float32) ColorU8 {
	factor = min(max(factor, -1), 1)

	r, g, b := float32(c.R), float32(c.G), float32(c.B)
	if factor < 0 {
		factor = 1 + factor
		r *= factor
		g *= factor
		b *= factor
	} else {
		r = (255-r)*factor + r
		g = (255-g)*factor + g
		b = (255-b)*factor + b
	}

	return ColorU8{R: truncate(r), G: truncate(g), B: truncate(b), A: c.A}
}

// Contrast corrects c by contrast in [-1,1] around mid gray. Alpha is kept.
func Contrast(c ColorU8, contrast float32) ColorU8 {
	contrast = min(max(contrast, -1), 1)
	contrast = 1 + contrast
	contrast *= contrast

	adjust := func(v uint8) uint8 {
		p := float32(v)/255 - 0.5
		p = p*contrast + 0.5
		return truncate(p * 255)
	}

	return ColorU8{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B), A: c.A}
}
