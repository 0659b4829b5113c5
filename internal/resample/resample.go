// Package resample scales interleaved 8-bit pixel buffers with
// golang.org/x/image/draw kernels.
//
// Upsampling uses Catmull-Rom. Downsampling on either axis uses the
// Mitchell-Netravali filter (B = C = 1/3), which rings less.
package resample

import (
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

var (
	// ErrChannels is returned for channel counts outside 1..4.
	ErrChannels = errors.New("resample: channels must be 1..4")

	// ErrDimensions is returned for non-positive sizes.
	ErrDimensions = errors.New("resample: invalid dimensions")

	// ErrBufferSize is returned when a buffer is shorter than its size implies.
	ErrBufferSize = errors.New("resample: buffer too small")
)

// Mitchell is the Mitchell-Netravali cubic with B = C = 1/3.
var Mitchell = &draw.Kernel{Support: 2, At: mitchell}

func mitchell(t float64) float64 {
	if t < 0 {
		t = -t
	}
	switch {
	case t < 1:
		return (7*t*t*t - 12*t*t + 16.0/3) / 6
	case t < 2:
		return (-7.0/3*t*t*t + 12*t*t - 20*t + 32.0/3) / 6
	default:
		return 0
	}
}

// KernelFor picks the filter for scaling sw x sh to dw x dh.
func KernelFor(sw, sh, dw, dh int) *draw.Kernel {
	if dw < sw || dh < sh {
		return Mitchell
	}
	return draw.CatmullRom
}

// Uint8 resamples the sw x sh image in src into the dw x dh image in dst.
// Both buffers hold tightly packed rows of interleaved 8-bit channels.
func Uint8(src []byte, sw, sh int, dst []byte, dw, dh, channels int) error {
	if channels < 1 || channels > 4 {
		return errors.Wrapf(ErrChannels, "got %d", channels)
	}
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return errors.Wrapf(ErrDimensions, "%dx%d -> %dx%d", sw, sh, dw, dh)
	}
	if len(src) < sw*sh*channels {
		return errors.Wrapf(ErrBufferSize, "source has %d bytes, need %d", len(src), sw*sh*channels)
	}
	if len(dst) < dw*dh*channels {
		return errors.Wrapf(ErrBufferSize, "destination has %d bytes, need %d", len(dst), dw*dh*channels)
	}

	s := wrap(src, sw, sh, channels)
	d := wrap(dst, dw, dh, channels)

	KernelFor(sw, sh, dw, dh).Scale(d, d.Bounds(), s, s.Bounds(), draw.Src, nil)
	return nil
}
