package imgcore

// Rect is a rectangle in pixel units. Float fields allow sub-pixel
// origins; operations truncate towards zero when indexing pixels.
//
// A negative Width or Height on a source rectangle passed to Draw flips
// the copied region along that axis.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect returns a Rect from integer coordinates.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return int(r.Width) <= 0 || int(r.Height) <= 0
}

// irect is a Rect truncated to integer pixel units.
type irect struct {
	x, y, w, h int
}

func (r Rect) ints() irect {
	return irect{x: int(r.X), y: int(r.Y), w: int(r.Width), h: int(r.Height)}
}

func (r irect) rect() Rect {
	return NewRect(r.x, r.y, r.w, r.h)
}

// clampTo shrinks r to the width x height bounds. A negative origin
// reduces the size by the same amount; an overflowing far edge is cut.
func (r irect) clampTo(width, height int) irect {
	if r.x < 0 {
		r.w += r.x
		r.x = 0
	}
	if r.y < 0 {
		r.h += r.y
		r.y = 0
	}
	if r.x+r.w > width {
		r.w = width - r.x
	}
	if r.y+r.h > height {
		r.h = height - r.y
	}
	return r
}
