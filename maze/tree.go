package maze

import (
	"github.com/sterjanez/lamaso/path"
	"github.com/sterjanez/lamaso/rng"
)

// DefaultProbabilities returns the six-value probability profile the
// original tool shipped as its default: {163, 118, 123, 123, 94, 103}.
func DefaultProbabilities() [6]uint8 {
	return [6]uint8{163, 118, 123, 123, 94, 103}
}

// NewTree grows a perfect maze (exactly one simple path between any two
// cells) around solution, using a ring-buffered union-find (pool.go) to
// track the solution path, the grid's exterior, and every growing
// component as it carves row by row. probabilities tunes the carving's
// six decision points; DefaultProbabilities reproduces the reference
// profile.
func NewTree(solution path.Path, seed int32, probabilities [6]uint8) (Maze, error) {
	height, width := solution.Height(), solution.Width()
	if height <= 0 || width <= 0 {
		return Maze{}, ErrPathMismatch
	}
	if width > int(^uint32(0))-2 {
		return Maze{}, ErrWidthTooLarge
	}

	p1, p2, p3, p4, p5, p6 := probabilities[0], probabilities[1], probabilities[2],
		probabilities[3], probabilities[4], probabilities[5]
	p12 := uint8((uint16(p1) * uint16(p2)) / 256)
	p34 := uint8(int(p3) - int(p3)*int(p4)/256 + int(p4))
	p35 := uint8((uint16(p3) * uint16(p5)) / 256)

	verticalWalls, horizontalWalls := newEmptyWalls(height, width)
	solutionCells := solution.Cells()
	src := rng.NewSource(seed)

	pl := newPool(width + 2)
	cellIndices := make([]int, width)

	solutionIndex := pl.pop(0)
	borderIndex := pl.pop(0)
	for j := 0; j < width; j++ {
		cellIndices[j] = pl.pop(1)
	}

	for i := 0; i < height; i++ {
		row := solutionCells[i]
		nextIndex := 0
		nextColumn := width
		if len(row) > 0 {
			nextColumn = row[0].Column
		}

		borderIndex = pl.get(borderIndex)
		if pl.degrees[borderIndex] != 0 {
			borderIndex = pl.pop(0)
		}
		index := borderIndex

		for j := 0; j < width; j++ {
			aboveIndex := pl.get(cellIndices[j])
			randValue := src.Byte()

			switch {
			case j == nextColumn:
				cell := row[nextIndex]
				solutionIndex = pl.get(solutionIndex)

				switch {
				case index == solutionIndex:
					if !cell.Left {
						verticalWalls[i][j] = true
					}
					if aboveIndex == solutionIndex {
						if !cell.Above {
							horizontalWalls[i][j] = true
						}
					} else if pl.degrees[aboveIndex] == 1 || randValue < p35 || randValue >= p34 {
						index = pl.join(index, aboveIndex)
					} else {
						horizontalWalls[i][j] = true
						pl.degrees[aboveIndex]--
						pl.degrees[index]++
					}
				case aboveIndex == solutionIndex:
					if !cell.Above {
						horizontalWalls[i][j] = true
					}
					if (randValue >= p35 && randValue < p3) || randValue >= p34 {
						index = pl.join(index, solutionIndex)
					} else {
						verticalWalls[i][j] = true
						index = solutionIndex
					}
				case aboveIndex == index:
					if randValue < p12 {
						horizontalWalls[i][j] = true
						verticalWalls[i][j] = true
						pl.degrees[index]--
						pl.degrees[solutionIndex]++
						index = solutionIndex
					} else {
						if randValue < p1 {
							horizontalWalls[i][j] = true
						} else {
							verticalWalls[i][j] = true
						}
						index = pl.join(index, solutionIndex)
					}
				case pl.degrees[aboveIndex] == 1:
					solutionIndex = pl.join(solutionIndex, aboveIndex)
					if randValue < p6 {
						verticalWalls[i][j] = true
						index = solutionIndex
					} else {
						index = pl.join(index, solutionIndex)
					}
				case randValue < p35:
					verticalWalls[i][j] = true
					solutionIndex = pl.join(solutionIndex, aboveIndex)
					index = solutionIndex
				case randValue < p3:
					horizontalWalls[i][j] = true
					pl.degrees[aboveIndex]--
					pl.degrees[index]++
					index = pl.join(index, solutionIndex)
				case randValue < p34:
					verticalWalls[i][j] = true
					horizontalWalls[i][j] = true
					pl.degrees[aboveIndex]--
					pl.degrees[solutionIndex]++
					index = solutionIndex
				default:
					index = pl.join(index, solutionIndex)
					index = pl.join(index, aboveIndex)
				}

				nextIndex++
				if nextIndex == len(row) {
					nextColumn = width
				} else {
					nextColumn = row[nextIndex].Column
				}

			case index == aboveIndex:
				if randValue < p12 {
					horizontalWalls[i][j] = true
					verticalWalls[i][j] = true
					pl.degrees[aboveIndex]--
					index = pl.pop(1)
				} else if randValue < p1 {
					horizontalWalls[i][j] = true
				} else {
					verticalWalls[i][j] = true
				}
			case pl.degrees[aboveIndex] == 1:
				if randValue < p6 {
					verticalWalls[i][j] = true
					index = aboveIndex
				} else {
					index = pl.join(index, aboveIndex)
				}
			case randValue < p35:
				verticalWalls[i][j] = true
				index = aboveIndex
			case randValue < p3:
				horizontalWalls[i][j] = true
				pl.degrees[aboveIndex]--
				pl.degrees[index]++
			case randValue < p34:
				verticalWalls[i][j] = true
				horizontalWalls[i][j] = true
				pl.degrees[aboveIndex]--
				index = pl.pop(1)
			default:
				index = pl.join(index, aboveIndex)
			}

			cellIndices[j] = index
		}
	}

	index := pl.get(borderIndex)
	for j := 0; j < width; j++ {
		aboveIndex := pl.get(cellIndices[j])
		if index != aboveIndex {
			randValue := src.Byte()
			if (pl.degrees[index]+1)*int(randValue) < 256 {
				verticalWalls[height-1][j] = false
				index = pl.join(index, aboveIndex)
			} else {
				index = aboveIndex
			}
		}
		pl.degrees[index]--
	}
	for i := 0; i < height; i++ {
		verticalWalls[i][0] = false
	}

	return Maze{height: height, width: width, verticalWalls: verticalWalls, horizontalWalls: horizontalWalls}, nil
}
