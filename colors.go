package imgcore

// GetColor returns the pixel at (x, y). Out of range coordinates and
// compressed images yield the zero Color.
func (img *Image) GetColor(x, y int) Color {
	if err := img.pixelAccess("get color"); err != nil {
		return Color{}
	}
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		Logger().Warn("get color: "+ErrOutOfBounds.Error(), "x", x, "y", y, "width", img.width, "height", img.height)
		return Color{}
	}
	return img.codec.Decode(img.data, img.offset(x, y), img.format)
}

// Colors returns the base level pixels in row-major order.
func (img *Image) Colors() ([]Color, error) {
	if err := img.pixelAccess("colors"); err != nil {
		return nil, err
	}

	n := img.width * img.height
	bpp := img.format.BytesPerPixel()
	out := make([]Color, n)
	for i := range out {
		out[i] = img.codec.Decode(img.data, i*bpp, img.format)
	}
	return out, nil
}

// Palette returns up to maxSize distinct colors with non-zero alpha, in
// the order they first appear.
func (img *Image) Palette(maxSize int) ([]Color, error) {
	colors, err := img.Colors()
	if err != nil {
		return nil, err
	}
	if maxSize <= 0 {
		return nil, nil
	}

	seen := make(map[Color]struct{}, maxSize)
	palette := make([]Color, 0, maxSize)
	for _, c := range colors {
		if c.A == 0 {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		if len(palette) == maxSize {
			Logger().Warn("palette: maximum size reached", "max", maxSize)
			break
		}
		seen[c] = struct{}{}
		palette = append(palette, c)
	}
	return palette, nil
}

// AlphaBorder returns the smallest rectangle holding every pixel whose
// alpha exceeds threshold (0..1) of full scale. A fully transparent image
// returns the zero Rect.
func (img *Image) AlphaBorder(threshold float32) (Rect, error) {
	colors, err := img.Colors()
	if err != nil {
		return Rect{}, err
	}

	limit := uint8(min(max(threshold, 0), 1) * 255)
	xMin, yMin := img.width, img.height
	xMax, yMax := -1, -1

	for y := range img.height {
		for x := range img.width {
			if colors[y*img.width+x].A <= limit {
				continue
			}
			xMin, xMax = min(xMin, x), max(xMax, x)
			yMin, yMax = min(yMin, y), max(yMax, y)
		}
	}

	if xMax < 0 {
		return Rect{}, nil
	}
	return NewRect(xMin, yMin, xMax+1-xMin, yMax+1-yMin), nil
}
