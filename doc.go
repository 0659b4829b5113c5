// Package imgcore is a pixel-format agnostic raster image engine.
//
// # Overview
//
// An [Image] owns a tightly packed pixel buffer in one of the uncompressed
// formats (8-bit grayscale up to 128-bit float RGBA) or an opaque
// block-compressed format. Every operation reads and writes pixels through
// a per-format codec, so the same code drives all formats.
//
// # Quick Start
//
//	img, _ := imgcore.GenColor(256, 256, imgcore.White)
//	img.DrawCircle(128, 128, 64, imgcore.Red)
//	img.DrawLine(0, 0, 255, 255, imgcore.Black)
//	_ = img.Convert(imgcore.FormatR5G6B5)
//	_ = img.Resize(128, 128)
//
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	_ = img.EncodePNG(f)
//
// # Operations
//
//   - Conversion: [Image.Convert] re-encodes through [NormalizedColor].
//   - Geometry: [Image.Crop], [Image.ResizeNN], [Image.Resize],
//     [Image.ResizeCanvas], [Image.FlipHorizontal], [Image.FlipVertical].
//   - Compositing: [Image.Draw] blits a region with resampling, tint and
//     integer alpha blending.
//   - Drawing: pixels, lines, circles and rectangles without anti-aliasing.
//
// # Errors
//
// Operations that can fail return an error wrapping one of the Err
// variables, leave the image unchanged and log a warning through the
// logger installed with [SetLogger]. Drawing primitives clip silently.
//
// # Ownership
//
// Operations that change size or format replace the image's buffer and
// hand the old one back to its [Pool]. Slices returned by [Image.Data]
// must not be kept across such calls. Images are not safe for concurrent
// use.
//
// # Sub-packages
//
//   - text: pastes glyphs from golang.org/x/image/font faces.
//   - gpu: builds texture descriptors and hands images to a GPU target.
package imgcore
