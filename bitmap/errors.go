package bitmap

import "errors"

// Sentinel errors for bitmap header/palette validation.
var (
	// ErrSignature indicates the file does not start with "BM".
	ErrSignature = errors.New("bitmap: missing BM signature")
	// ErrHeader indicates a fixed header field does not match the
	// expected monochrome, uncompressed, bottom-up layout.
	ErrHeader = errors.New("bitmap: malformed file or info header")
	// ErrPalette indicates the 8-byte palette is not exactly {black, white}.
	ErrPalette = errors.New("bitmap: palette is not {black, white}")
	// ErrDimensions indicates a negative width or height.
	ErrDimensions = errors.New("bitmap: negative width or height")
)
