// Command imgdemo renders a scene with every imgcore drawing primitive
// and writes it as a PNG.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/gogpu/imgcore"
	"github.com/gogpu/imgcore/text"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "demo.png", "output file")
		fontPt  = flag.Float64("font-size", 28, "title font size in points")
		verbose = flag.Bool("v", false, "log debug diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	imgcore.SetLogger(logger)

	if err := run(*width, *height, *fontPt, *output); err != nil {
		logger.Error("imgdemo failed", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "file", *output, "width", *width, "height", *height)
}

func run(w, h int, fontPt float64, output string) error {
	canvas, err := imgcore.GenColor(w, h, imgcore.Color{R: 24, G: 28, B: 40, A: 255})
	if err != nil {
		return err
	}

	drawGradient(canvas, w, h)
	drawShapes(canvas)

	if err := drawSprite(canvas); err != nil {
		return errors.Wrap(err, "sprite")
	}
	if err := drawText(canvas, fontPt); err != nil {
		return errors.Wrap(err, "text")
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	return canvas.EncodePNG(f)
}

// drawGradient paints horizontal bands from dark blue to purple.
func drawGradient(canvas *imgcore.Image, w, h int) {
	const steps = 50
	for i := range steps {
		t := float32(i) / steps
		c := imgcore.ColorFromHSV(220+60*t, 0.6, 0.15+0.25*t)
		canvas.DrawRectangle(0, h*i/steps, w, h/steps+1, c)
	}
}

func drawShapes(canvas *imgcore.Image) {
	canvas.DrawCircle(120, 150, 60, imgcore.Red)
	canvas.DrawCircle(170, 150, 60, imgcore.Green)
	canvas.DrawCircle(145, 195, 60, imgcore.Blue)
	canvas.DrawCircleLines(145, 170, 100, imgcore.White)

	canvas.DrawRectangle(300, 90, 140, 90, imgcore.Yellow)
	canvas.DrawRectangleLines(imgcore.NewRect(295, 85, 150, 100), 3, imgcore.White)

	for i := range 12 {
		canvas.DrawLine(300, 220, 300+i*12, 320, imgcore.ColorFromHSV(float32(i)*30, 1, 1))
	}
	for x := 480; x < 600; x += 4 {
		canvas.DrawPixel(x, 300, imgcore.Magenta)
	}
}

// drawSprite builds a small checkerboard, flips and scales it, then
// composites it twice with different tints.
func drawSprite(canvas *imgcore.Image) error {
	sprite, err := imgcore.NewImage(8, 8, imgcore.FormatR5G5B5A1)
	if err != nil {
		return err
	}
	defer sprite.Release()

	for y := range 8 {
		for x := range 8 {
			if (x+y)%2 == 0 {
				sprite.DrawPixel(x, y, imgcore.White)
			}
		}
	}

	if err := sprite.Convert(imgcore.FormatR8G8B8A8); err != nil {
		return err
	}
	if err := sprite.ResizeNN(48, 48); err != nil {
		return err
	}
	if err := sprite.ResizeCanvas(56, 56, 4, 4, imgcore.Fade(imgcore.Black, 0.5)); err != nil {
		return err
	}

	if err := canvas.DrawAt(sprite, 480, 80, imgcore.White); err != nil {
		return err
	}

	if err := sprite.FlipHorizontal(); err != nil {
		return err
	}
	if err := sprite.Resize(96, 96); err != nil {
		return err
	}
	return canvas.Draw(sprite, sprite.Bounds(), imgcore.NewRect(500, 160, 96, 96), imgcore.Fade(imgcore.Green, 0.7))
}

func drawText(canvas *imgcore.Image, fontPt float64) error {
	face, err := text.NewFace(fontPt)
	if err != nil {
		return err
	}
	defer face.Close()

	if err := text.Draw(canvas, "imgcore demo", 20, 16, face, 1, imgcore.White); err != nil {
		return err
	}

	label, err := text.Render("pixel\nline circle rect\nblend resize", text.Default(), 0, imgcore.Gray)
	if err != nil {
		return err
	}
	defer label.Release()

	return canvas.DrawAt(label, 20, 300, imgcore.White)
}
