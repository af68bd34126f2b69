package path

import "errors"

var (
	// ErrNoRoom is returned by Generate when height or width is not
	// positive, or when the start or target cell lies outside the grid.
	ErrNoRoom = errors.New("path: no room for start and target cells")

	// ErrUnreachableTarget is returned by Generate if the guided walk
	// exhausts every extension option before reaching the target. This
	// indicates a bug in the winding-number bookkeeping, not a property
	// of valid inputs: a correct implementation never returns it.
	ErrUnreachableTarget = errors.New("path: guided walk could not reach target")

	// ErrMalformed is returned by FromBMP when the pixel grid does not
	// decode to a single simple chain of cells (branching, a cycle, more
	// than two degree-1 vertices, or dimensions that are not both odd).
	ErrMalformed = errors.New("path: bitmap does not encode a simple path")
)
