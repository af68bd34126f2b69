package maze

// Maze is an immutable H x W grid of cells. VerticalWalls[i][j] reports a
// wall between (i,j) and (i,j-1); cells in column 0 never carry one.
// HorizontalWalls[i][j] reports a wall between (i,j) and (i-1,j); cells
// in row 0 never carry one.
type Maze struct {
	height, width   int
	verticalWalls   [][]bool
	horizontalWalls [][]bool
}

// Height and Width report the maze's cell-grid dimensions.
func (m Maze) Height() int { return m.height }
func (m Maze) Width() int  { return m.width }

// HasWallAbove reports whether (i,j) has a wall separating it from
// (i-1,j). Always false for i == 0.
func (m Maze) HasWallAbove(i, j int) bool {
	return m.horizontalWalls[i][j]
}

// HasWallLeft reports whether (i,j) has a wall separating it from
// (i,j-1). Always false for j == 0.
func (m Maze) HasWallLeft(i, j int) bool {
	return m.verticalWalls[i][j]
}

func newEmptyWalls(height, width int) ([][]bool, [][]bool) {
	v := make([][]bool, height)
	h := make([][]bool, height)
	for i := range v {
		v[i] = make([]bool, width)
		h[i] = make([]bool, width)
	}
	return v, h
}
