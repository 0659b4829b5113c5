// Package blend provides the integer alpha compositing used when one image
// is drawn onto another.
package blend

import "github.com/gogpu/imgcore/internal/color"

// Tint multiplies every channel of c by the matching tint channel as
// c*(t+1) >> 8. The +1 makes a tint of 255 an exact identity.
func Tint(c, tint color.ColorU8) color.ColorU8 {
	return color.ColorU8{
		R: tintChannel(c.R, tint.R),
		G: tintChannel(c.G, tint.G),
		B: tintChannel(c.B, tint.B),
		A: tintChannel(c.A, tint.A),
	}
}

func tintChannel(c, t uint8) uint8 {
	return uint8((uint32(c) * (uint32(t) + 1)) >> 8)
}

// Over tints src and composites it over dst with straight alpha.
//
// A fully transparent source leaves dst untouched and a fully opaque one
// replaces it. Partial alpha uses 8.8 fixed point with the source alpha
// biased by one, so the result stays within one step of the exact float
// operator.
func Over(dst, src, tint color.ColorU8) color.ColorU8 {
	src = Tint(src, tint)

	switch src.A {
	case 0:
		return dst
	case 255:
		return src
	}

	srcA := uint32(src.A) + 1
	dstA := uint32(dst.A)
	invA := 256 - srcA

	outA := (srcA*256 + dstA*invA) >> 8
	if outA == 0 {
		return color.ColorU8{}
	}

	channel := func(s, d uint8) uint8 {
		v := ((uint32(s)*srcA*256 + uint32(d)*dstA*invA) / outA) >> 8
		return uint8(min(v, 255))
	}

	return color.ColorU8{
		R: channel(src.R, dst.R),
		G: channel(src.G, dst.G),
		B: channel(src.B, dst.B),
		A: uint8(min(outA, 255)),
	}
}
