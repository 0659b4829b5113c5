package color

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: ClampAndRound(c.R),
		G: ClampAndRound(c.G),
		B: ClampAndRound(c.B),
		A: ClampAndRound(c.A),
	}
}

// ClampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
// NaN maps to 0.
func ClampAndRound(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// truncate converts a float in [0,255] to uint8 by truncation, clamping
// out-of-range input.
func truncate(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
