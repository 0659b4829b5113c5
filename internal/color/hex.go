package color

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("color: invalid hex string")

// ToHex packs c as a big-endian 0xRRGGBBAA integer.
func ToHex(c ColorU8) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// FromHex unpacks a big-endian 0xRRGGBBAA integer.
func FromHex(v uint32) ColorU8 {
	return ColorU8{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", optionally
// prefixed with '#'. Short forms expand each digit (0xF -> 0xFF).
func ParseHex(s string) (ColorU8, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorU8{}, errors.Wrapf(ErrInvalidHex, "%q", s)
	}

	switch len(s) {
	case 3: // RGB
		return ColorU8{R: nibble(v, 8), G: nibble(v, 4), B: nibble(v, 0), A: 255}, nil
	case 4: // RGBA
		return ColorU8{R: nibble(v, 12), G: nibble(v, 8), B: nibble(v, 4), A: nibble(v, 0)}, nil
	case 6: // RRGGBB
		return FromHex(uint32(v)<<8 | 0xFF), nil
	case 8: // RRGGBBAA
		return FromHex(uint32(v)), nil
	default:
		return ColorU8{}, errors.Wrapf(ErrInvalidHex, "%q has %d digits", s, len(s))
	}
}

// nibble extracts the 4-bit digit at shift and expands it to 8 bits.
func nibble(v uint64, shift uint) uint8 {
	return uint8((v>>shift)&0xF) * 17
}
