package maze

import (
	"github.com/sterjanez/lamaso/path"
	"github.com/sterjanez/lamaso/rng"
)

// NewDensity builds a maze around solution by drawing every wall
// independently: each candidate wall is present with probability
// density/256, except where it would cross the solution path, which is
// always left open. density == 0 yields no walls at all (every interior
// wall absent, modulo the path's own corridor); density > 255 saturates
// to "every non-path wall present".
func NewDensity(solution path.Path, seed int32, density uint16) (Maze, error) {
	height, width := solution.Height(), solution.Width()
	if height <= 0 || width <= 0 {
		return Maze{}, ErrPathMismatch
	}

	verticalWalls, horizontalWalls := newEmptyWalls(height, width)
	solutionCells := solution.Cells()
	src := rng.NewSource(seed)

	for i := 0; i < height; i++ {
		row := solutionCells[i]
		nextIndex := 0
		nextColumn := width
		if len(row) > 0 {
			nextColumn = row[0].Column
		}
		for j := 0; j < width; j++ {
			if j == nextColumn {
				cell := row[nextIndex]
				horizontalWalls[i][j] = i != 0 && !cell.Above && int(src.Byte()) < int(density)
				verticalWalls[i][j] = j != 0 && !cell.Left && int(src.Byte()) < int(density)
				nextIndex++
				if nextIndex == len(row) {
					nextColumn = width
				} else {
					nextColumn = row[nextIndex].Column
				}
			} else {
				horizontalWalls[i][j] = i != 0 && int(src.Byte()) < int(density)
				verticalWalls[i][j] = j != 0 && int(src.Byte()) < int(density)
			}
		}
	}

	return Maze{height: height, width: width, verticalWalls: verticalWalls, horizontalWalls: horizontalWalls}, nil
}
