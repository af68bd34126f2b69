package maze

import "errors"

var (
	// ErrMalformed is returned by FromBMP when the pixel dimensions are
	// not both odd and at least 3.
	ErrMalformed = errors.New("maze: bitmap does not encode a maze")

	// ErrPathMismatch is returned by NewDensity/NewTree when the given
	// path's height or width is not positive.
	ErrPathMismatch = errors.New("maze: path does not fit the maze dimensions")

	// ErrWidthTooLarge is returned by NewTree when width+2, the number of
	// ids its ring-buffered pool needs, does not fit in 32 bits (width
	// greater than 2^32-3).
	ErrWidthTooLarge = errors.New("maze: width too large for the tree pool")
)
