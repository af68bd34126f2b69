package maze

import "github.com/sterjanez/lamaso/path"

// Solve finds a path from (i1,j1) to (i2,j2) using "always turn left":
// it leaves the start cell in each open direction in turn, hugging the
// left-hand wall thereafter, until it reaches the target or returns to
// the start without finding it. A retraced step cancels the last
// recorded direction instead of being appended, so a solution that
// doubles back on itself collapses to its shortest form automatically.
//
// If every starting direction leads back to (i1,j1) before reaching
// (i2,j2), Solve returns the zero-length path at (i1,j1). This happens
// when the two cells are not connected, and also when (i2,j2) is
// connected but not on any of the routes the left hand traces from
// (i1,j1), such as an open cell away from every wall.
func (m Maze) Solve(i1, j1, i2, j2 int) path.Path {
	if i1 == i2 && j1 == j2 {
		return path.New(m.height, m.width, i1, j1, nil)
	}

	var initial []path.Direction
	if i1 != 0 && !m.horizontalWalls[i1][j1] {
		initial = append(initial, path.Up)
	}
	if i1 != m.height-1 && !m.horizontalWalls[i1+1][j1] {
		initial = append(initial, path.Down)
	}
	if j1 != 0 && !m.verticalWalls[i1][j1] {
		initial = append(initial, path.Left)
	}
	if j1 != m.width-1 && !m.verticalWalls[i1][j1+1] {
		initial = append(initial, path.Right)
	}

	for _, start := range initial {
		i, j := i1, j1
		directions := []path.Direction{start}
		var direction path.Direction
		switch start {
		case path.Up:
			i--
			direction = path.Left
		case path.Down:
			i++
			direction = path.Right
		case path.Left:
			j--
			direction = path.Down
		case path.Right:
			j++
			direction = path.Up
		}

		for (i != i1 || j != j1) && (i != i2 || j != j2) {
			switch direction {
			case path.Up:
				if i != 0 && !m.horizontalWalls[i][j] {
					if directions[len(directions)-1] == path.Down {
						directions = directions[:len(directions)-1]
					} else {
						directions = append(directions, path.Up)
					}
					i--
					direction = path.Left
				} else {
					direction = path.Right
				}
			case path.Down:
				if i != m.height-1 && !m.horizontalWalls[i+1][j] {
					if directions[len(directions)-1] == path.Up {
						directions = directions[:len(directions)-1]
					} else {
						directions = append(directions, path.Down)
					}
					i++
					direction = path.Right
				} else {
					direction = path.Left
				}
			case path.Left:
				if j != 0 && !m.verticalWalls[i][j] {
					if directions[len(directions)-1] == path.Right {
						directions = directions[:len(directions)-1]
					} else {
						directions = append(directions, path.Left)
					}
					j--
					direction = path.Down
				} else {
					direction = path.Up
				}
			case path.Right:
				if j != m.width-1 && !m.verticalWalls[i][j+1] {
					if directions[len(directions)-1] == path.Left {
						directions = directions[:len(directions)-1]
					} else {
						directions = append(directions, path.Right)
					}
					j++
					direction = path.Up
				} else {
					direction = path.Down
				}
			}
		}

		if i == i2 && j == j2 {
			return path.New(m.height, m.width, i1, j1, directions)
		}
	}

	return path.New(m.height, m.width, i1, j1, nil)
}
