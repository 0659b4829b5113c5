package text

import "github.com/pkg/errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrEmptyText is returned when a string has nothing to render.
	ErrEmptyText = errors.New("text: nothing to render")
)
