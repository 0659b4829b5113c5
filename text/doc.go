// Package text pastes glyph bitmaps onto imgcore images.
//
// Glyphs come from any golang.org/x/image/font Face: the built-in 7x13
// bitmap face, Go Regular at a chosen size, or a parsed TTF/OTF font.
// Each glyph mask becomes a small GrayAlpha image that is composited with
// Image.Draw, so tinting and alpha blending follow the image rules. The
// package does not shape text: runes are laid out left to right with the
// face's advances and kerning.
//
// # Example usage
//
//	face, err := text.NewFace(24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	err = text.Draw(img, "Hello\nimgcore", 10, 10, face, 1, imgcore.Black)
package text
