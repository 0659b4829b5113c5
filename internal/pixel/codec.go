package pixel

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/imgcore/internal/color"
)

// DefaultAlphaThreshold is the fraction of full scale above which an alpha
// value sets the R5G5B5A1 alpha bit (50/255, about 19.6%).
const DefaultAlphaThreshold float32 = 50.0 / 255.0

// Linear up-scale ratios for narrow channels, 255/max in integer
// arithmetic. The integer ratio is what makes decoded values band
// (31 decodes to 248, not 255).
const (
	ratio5 = 255 / 31 // 8
	ratio6 = 255 / 63 // 4
	ratio4 = 255 / 15 // 17
)

// Codec encodes and decodes single pixels.
// The zero value is not usable; start from Default or NewCodec.
type Codec struct {
	// AlphaThreshold is the R5G5B5A1 alpha cut-off as a fraction of full
	// scale. Alpha strictly greater than the threshold stores 1.
	AlphaThreshold float32
}

// Default is the codec with the default alpha threshold.
var Default = Codec{AlphaThreshold: DefaultAlphaThreshold}

// NewCodec returns a codec with the given R5G5B5A1 alpha threshold.
func NewCodec(alphaThreshold float32) Codec {
	return Codec{AlphaThreshold: Clamp(alphaThreshold, 0, 1)}
}

// Decode reads the pixel starting at buf[off] in format f.
// Compressed and unknown formats decode to the zero color.
func (c Codec) Decode(buf []byte, off int, f Format) color.ColorU8 {
	p := buf[off:]

	switch f {
	case FormatGrayscale:
		return color.ColorU8{R: p[0], G: p[0], B: p[0], A: 255}

	case FormatGrayAlpha:
		return color.ColorU8{R: p[0], G: p[0], B: p[0], A: p[1]}

	case FormatR5G6B5:
		v := binary.LittleEndian.Uint16(p)
		return color.ColorU8{
			R: uint8((v >> 11) * ratio5),
			G: uint8(((v >> 5) & 0x3F) * ratio6),
			B: uint8((v & 0x1F) * ratio5),
			A: 255,
		}

	case FormatR5G5B5A1:
		v := binary.LittleEndian.Uint16(p)
		a := uint8(0)
		if v&0x1 != 0 {
			a = 255
		}
		return color.ColorU8{
			R: uint8((v >> 11) * ratio5),
			G: uint8(((v >> 6) & 0x1F) * ratio5),
			B: uint8(((v >> 1) & 0x1F) * ratio5),
			A: a,
		}

	case FormatR4G4B4A4:
		v := binary.LittleEndian.Uint16(p)
		return color.ColorU8{
			R: uint8((v >> 12) * ratio4),
			G: uint8(((v >> 8) & 0xF) * ratio4),
			B: uint8(((v >> 4) & 0xF) * ratio4),
			A: uint8((v & 0xF) * ratio4),
		}

	case FormatR8G8B8:
		return color.ColorU8{R: p[0], G: p[1], B: p[2], A: 255}

	case FormatR8G8B8A8:
		return color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]}

	case FormatR32:
		v := color.ClampAndRound(loadFloat(p, 0))
		return color.ColorU8{R: v, G: v, B: v, A: 255}

	case FormatR32G32B32:
		return color.ColorU8{
			R: color.ClampAndRound(loadFloat(p, 0)),
			G: color.ClampAndRound(loadFloat(p, 1)),
			B: color.ClampAndRound(loadFloat(p, 2)),
			A: 255,
		}

	case FormatR32G32B32A32:
		return color.ColorU8{
			R: color.ClampAndRound(loadFloat(p, 0)),
			G: color.ClampAndRound(loadFloat(p, 1)),
			B: color.ClampAndRound(loadFloat(p, 2)),
			A: color.ClampAndRound(loadFloat(p, 3)),
		}

	default:
		return color.ColorU8{}
	}
}

// Encode writes col into the pixel starting at buf[off] in format f.
// Compressed and unknown formats are left untouched.
func (c Codec) Encode(buf []byte, off int, f Format, col color.ColorU8) {
	p := buf[off:]

	switch f {
	case FormatGrayscale:
		p[0] = grayU8(col)

	case FormatGrayAlpha:
		p[0] = grayU8(col)
		p[1] = col.A

	case FormatR5G6B5:
		r := quantize(col.R, ratio5, 31)
		g := quantize(col.G, ratio6, 63)
		b := quantize(col.B, ratio5, 31)
		binary.LittleEndian.PutUint16(p, r<<11|g<<5|b)

	case FormatR5G5B5A1:
		r := quantize(col.R, ratio5, 31)
		g := quantize(col.G, ratio5, 31)
		b := quantize(col.B, ratio5, 31)
		a := c.alphaBit(float32(col.A) / 255)
		binary.LittleEndian.PutUint16(p, r<<11|g<<6|b<<1|a)

	case FormatR4G4B4A4:
		r := quantize(col.R, ratio4, 15)
		g := quantize(col.G, ratio4, 15)
		b := quantize(col.B, ratio4, 15)
		a := quantize(col.A, ratio4, 15)
		binary.LittleEndian.PutUint16(p, r<<12|g<<8|b<<4|a)

	case FormatR8G8B8:
		p[0], p[1], p[2] = col.R, col.G, col.B

	case FormatR8G8B8A8:
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A

	case FormatR32, FormatR32G32B32, FormatR32G32B32A32:
		c.EncodeNormalized(buf, off, f, color.U8ToF32(col))
	}
}

// DecodeNormalized reads the pixel starting at buf[off] as a normalized
// color. Narrow channels are divided by their channel maximum, so this path
// is free of the banding Decode shows.
func (c Codec) DecodeNormalized(buf []byte, off int, f Format) color.ColorF32 {
	p := buf[off:]

	switch f {
	case FormatGrayscale:
		v := float32(p[0]) / 255
		return color.ColorF32{R: v, G: v, B: v, A: 1}

	case FormatGrayAlpha:
		v := float32(p[0]) / 255
		return color.ColorF32{R: v, G: v, B: v, A: float32(p[1]) / 255}

	case FormatR5G6B5:
		v := binary.LittleEndian.Uint16(p)
		return color.ColorF32{
			R: float32(v>>11) / 31,
			G: float32((v>>5)&0x3F) / 63,
			B: float32(v&0x1F) / 31,
			A: 1,
		}

	case FormatR5G5B5A1:
		v := binary.LittleEndian.Uint16(p)
		return color.ColorF32{
			R: float32(v>>11) / 31,
			G: float32((v>>6)&0x1F) / 31,
			B: float32((v>>1)&0x1F) / 31,
			A: float32(v & 0x1),
		}

	case FormatR4G4B4A4:
		v := binary.LittleEndian.Uint16(p)
		return color.ColorF32{
			R: float32(v>>12) / 15,
			G: float32((v>>8)&0xF) / 15,
			B: float32((v>>4)&0xF) / 15,
			A: float32(v&0xF) / 15,
		}

	case FormatR8G8B8, FormatR8G8B8A8:
		return color.U8ToF32(c.Decode(buf, off, f))

	case FormatR32:
		v := loadFloat(p, 0)
		return color.ColorF32{R: v, G: v, B: v, A: 1}

	case FormatR32G32B32:
		return color.ColorF32{R: loadFloat(p, 0), G: loadFloat(p, 1), B: loadFloat(p, 2), A: 1}

	case FormatR32G32B32A32:
		return color.ColorF32{R: loadFloat(p, 0), G: loadFloat(p, 1), B: loadFloat(p, 2), A: loadFloat(p, 3)}

	default:
		return color.ColorF32{}
	}
}

// EncodeNormalized writes a normalized color into the pixel starting at
// buf[off] in format f. Integer channels round to nearest; float channels
// are stored unchanged.
func (c Codec) EncodeNormalized(buf []byte, off int, f Format, col color.ColorF32) {
	p := buf[off:]

	switch f {
	case FormatGrayscale:
		p[0] = color.ClampAndRound(color.Luma(col.R, col.G, col.B))

	case FormatGrayAlpha:
		p[0] = color.ClampAndRound(color.Luma(col.R, col.G, col.B))
		p[1] = color.ClampAndRound(col.A)

	case FormatR5G6B5:
		r := scale(col.R, 31)
		g := scale(col.G, 63)
		b := scale(col.B, 31)
		binary.LittleEndian.PutUint16(p, r<<11|g<<5|b)

	case FormatR5G5B5A1:
		r := scale(col.R, 31)
		g := scale(col.G, 31)
		b := scale(col.B, 31)
		binary.LittleEndian.PutUint16(p, r<<11|g<<6|b<<1|c.alphaBit(col.A))

	case FormatR4G4B4A4:
		r := scale(col.R, 15)
		g := scale(col.G, 15)
		b := scale(col.B, 15)
		a := scale(col.A, 15)
		binary.LittleEndian.PutUint16(p, r<<12|g<<8|b<<4|a)

	case FormatR8G8B8, FormatR8G8B8A8:
		c.Encode(buf, off, f, color.F32ToU8(col))

	case FormatR32:
		storeFloat(p, 0, color.Luma(col.R, col.G, col.B))

	case FormatR32G32B32:
		storeFloat(p, 0, col.R)
		storeFloat(p, 1, col.G)
		storeFloat(p, 2, col.B)

	case FormatR32G32B32A32:
		storeFloat(p, 0, col.R)
		storeFloat(p, 1, col.G)
		storeFloat(p, 2, col.B)
		storeFloat(p, 3, col.A)
	}
}

// alphaBit thresholds a normalized alpha into the R5G5B5A1 alpha bit.
func (c Codec) alphaBit(a float32) uint16 {
	if a > c.AlphaThreshold {
		return 1
	}
	return 0
}

// quantize scales an 8-bit channel down by ratio, rounding half away
// from zero, and clamps to the channel maximum.
func quantize(v uint8, ratio, maxValue uint16) uint16 {
	// floor(v/ratio + 0.5) in integers
	q := (2*uint16(v) + ratio) / (2 * ratio)
	return min(q, maxValue)
}

// scale converts a normalized channel to [0, maxValue] rounding to nearest.
func scale(v float32, maxValue uint16) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return maxValue
	}
	return uint16(math.Round(float64(v) * float64(maxValue)))
}

// grayU8 collapses an 8-bit color to its rounded BT.601 luminance.
func grayU8(c color.ColorU8) uint8 {
	return color.ClampAndRound(color.Luma(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255))
}

// loadFloat reads float channel i from a pixel.
func loadFloat(p []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
}

// storeFloat writes float channel i of a pixel.
func storeFloat(p []byte, i int, v float32) {
	binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
}
