package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrFontParse is returned when an embedded font cannot be parsed.
	ErrFontParse = errors.New("text: failed to parse font")

	// ErrInvalidHeight is returned for a bitmap height outside the supported set.
	ErrInvalidHeight = errors.New("text: unsupported bitmap height")
)
