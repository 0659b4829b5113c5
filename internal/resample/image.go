package resample

import (
	"image"
	"image/color"
	"image/draw"
)

// wrap exposes an interleaved 8-bit buffer as a draw.Image without copying.
func wrap(pix []byte, w, h, channels int) draw.Image {
	r := image.Rect(0, 0, w, h)
	switch channels {
	case 1:
		return &image.Gray{Pix: pix, Stride: w, Rect: r}
	case 2:
		return &grayAlpha{pix: pix, stride: 2 * w, rect: r}
	case 3:
		return &rgb{pix: pix, stride: 3 * w, rect: r}
	default:
		return &image.NRGBA{Pix: pix, Stride: 4 * w, Rect: r}
	}
}

// grayAlpha is luminance plus straight alpha, two bytes per pixel.
type grayAlpha struct {
	pix    []byte
	stride int
	rect   image.Rectangle
}

func (p *grayAlpha) ColorModel() color.Model { return color.NRGBAModel }

func (p *grayAlpha) Bounds() image.Rectangle { return p.rect }

func (p *grayAlpha) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.rect)) {
		return color.NRGBA{}
	}
	i := p.offset(x, y)
	v := p.pix[i]
	return color.NRGBA{R: v, G: v, B: v, A: p.pix[i+1]}
}

func (p *grayAlpha) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.rect)) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.offset(x, y)
	p.pix[i] = n.R
	p.pix[i+1] = n.A
}

func (p *grayAlpha) offset(x, y int) int {
	return (y-p.rect.Min.Y)*p.stride + (x-p.rect.Min.X)*2
}

// rgb is opaque 24-bit color, three bytes per pixel.
type rgb struct {
	pix    []byte
	stride int
	rect   image.Rectangle
}

func (p *rgb) ColorModel() color.Model { return color.RGBAModel }

func (p *rgb) Bounds() image.Rectangle { return p.rect }

func (p *rgb) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.rect)) {
		return color.RGBA{}
	}
	i := p.offset(x, y)
	return color.RGBA{R: p.pix[i], G: p.pix[i+1], B: p.pix[i+2], A: 255}
}

func (p *rgb) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.rect)) {
		return
	}
	r, g, b, _ := c.RGBA()
	i := p.offset(x, y)
	p.pix[i] = uint8(r >> 8)
	p.pix[i+1] = uint8(g >> 8)
	p.pix[i+2] = uint8(b >> 8)
}

func (p *rgb) offset(x, y int) int {
	return (y-p.rect.Min.Y)*p.stride + (x-p.rect.Min.X)*3
}
