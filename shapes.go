package imgcore

// Drawing primitives write straight through the pixel codec: no
// anti-aliasing and no blending. Pixels outside the base level are
// silently clipped and compressed images are left untouched.

// DrawPixel sets the pixel at (x, y) to c, encoded in the image format.
func (img *Image) DrawPixel(x, y int, c Color) {
	if !img.drawable() || x < 0 || y < 0 || x >= img.width || y >= img.height {
		return
	}
	img.codec.Encode(img.data, img.offset(x, y), img.format, c)
}

// DrawLine draws a one pixel wide line from (x0, y0) to (x1, y1),
// both endpoints included, with Bresenham's algorithm.
func (img *Image) DrawLine(x0, y0, x1, y1 int, c Color) {
	if !img.drawable() {
		return
	}

	dx, dy := x1-x0, y1-y0
	adx, ady := abs(dx), abs(dy)

	// Step along the major axis u, occasionally stepping the minor axis v.
	// plot maps (u, v) back to (x, y).
	var (
		startU, startV, endU int
		stepV                int
		plot                 func(u, v int)
		a, b, p              int
	)

	if ady < adx {
		a = 2 * ady
		b = a - 2*adx
		p = a - adx

		if dx > 0 {
			startU, startV, endU = x0, y0, x1
		} else {
			startU, startV, endU = x1, y1, x0
			dy = -dy
		}
		stepV = sign(dy)
		plot = func(u, v int) { img.DrawPixel(u, v, c) }
	} else {
		a = 2 * adx
		b = a - 2*ady
		p = a - ady

		if dy > 0 {
			startU, startV, endU = y0, x0, y1
		} else {
			startU, startV, endU = y1, x1, y0
			dx = -dx
		}
		stepV = sign(dx)
		plot = func(u, v int) { img.DrawPixel(v, u, c) }
	}

	plot(startU, startV)
	for u, v := startU+1, startV; u <= endU; u++ {
		if p >= 0 {
			v += stepV
			p += b
		} else {
			p += a
		}
		plot(u, v)
	}
}

// DrawCircle draws a filled circle of the given radius centered at
// (cx, cy). Each midpoint step fills four horizontal one pixel spans
// mirrored across both axes.
func (img *Image) DrawCircle(cx, cy, radius int, c Color) {
	if !img.drawable() {
		return
	}

	midpointCircle(radius, func(x, y int) {
		img.DrawRectangle(cx-x, cy+y, x*2, 1, c)
		img.DrawRectangle(cx-x, cy-y, x*2, 1, c)
		img.DrawRectangle(cx-y, cy+x, y*2, 1, c)
		img.DrawRectangle(cx-y, cy-x, y*2, 1, c)
	})
}

// DrawCircleLines draws the one pixel outline of a circle centered at
// (cx, cy).
func (img *Image) DrawCircleLines(cx, cy, radius int, c Color) {
	if !img.drawable() {
		return
	}

	midpointCircle(radius, func(x, y int) {
		img.DrawPixel(cx+x, cy+y, c)
		img.DrawPixel(cx-x, cy+y, c)
		img.DrawPixel(cx+x, cy-y, c)
		img.DrawPixel(cx-x, cy-y, c)
		img.DrawPixel(cx+y, cy+x, c)
		img.DrawPixel(cx-y, cy+x, c)
		img.DrawPixel(cx+y, cy-x, c)
		img.DrawPixel(cx-y, cy-x, c)
	})
}

// midpointCircle walks one octant of a circle with the d = 3 - 2r
// decision parameter, calling step for every (x, y) with y >= x.
func midpointCircle(radius int, step func(x, y int)) {
	x, y := 0, radius
	d := 3 - 2*radius

	for y >= x {
		step(x, y)
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
}

// DrawRectangle fills the width x height rectangle at (x, y).
func (img *Image) DrawRectangle(x, y, width, height int, c Color) {
	img.DrawRectangleRec(NewRect(x, y, width, height), c)
}

// DrawRectangleRec fills r, clamped to the base level.
//
// The first pixel is encoded once and its bytes are replicated across the
// row, then the row across the remaining rows.
func (img *Image) DrawRectangleRec(r Rect, c Color) {
	if !img.drawable() {
		return
	}

	ir := r.ints()
	if ir.w < 0 {
		ir.w = 0
	}
	if ir.h < 0 {
		ir.h = 0
	}
	ir = ir.clampTo(img.width, img.height)
	if ir.x >= img.width || ir.y >= img.height || ir.w <= 0 || ir.h <= 0 {
		return
	}

	img.fillRect(ir, c)
}

// fillRect fills a rectangle already inside the base level.
func (img *Image) fillRect(r irect, c Color) {
	bpp := img.format.BytesPerPixel()
	stride := img.stride()
	rowBytes := r.w * bpp

	first := img.offset(r.x, r.y)
	row := img.data[first : first+rowBytes]

	img.codec.Encode(img.data, first, img.format, c)
	replicate(row, bpp)

	for y := 1; y < r.h; y++ {
		off := first + y*stride
		copy(img.data[off:off+rowBytes], row)
	}
}

// DrawRectangleLines draws the outline of r with bands thick pixels wide.
// The bands overlap at the corners.
func (img *Image) DrawRectangleLines(r Rect, thick int, c Color) {
	x, y, w, h := int(r.X), int(r.Y), int(r.Width), int(r.Height)

	img.DrawRectangle(x, y, w, thick, c)
	img.DrawRectangle(x, y+thick, thick, h-thick*2, c)
	img.DrawRectangle(x+w-thick, y+thick, thick, h-thick*2, c)
	img.DrawRectangle(x, y+h-thick, w, thick, c)
}

// ClearBackground sets every base level pixel to c.
func (img *Image) ClearBackground(c Color) {
	if !img.drawable() {
		return
	}

	base := img.data[:img.ByteSize()]
	img.codec.Encode(base, 0, img.format, c)
	replicate(base, img.format.BytesPerPixel())
}

// replicate repeats the first n bytes of buf over all of buf, doubling the
// copied span each pass.
func replicate(buf []byte, n int) {
	for filled := n; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// drawable reports whether pixels can be written.
func (img *Image) drawable() bool {
	return !img.IsEmpty() && !img.format.IsCompressed()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
