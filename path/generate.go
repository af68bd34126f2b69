package path

import "github.com/sterjanez/lamaso/rng"

// cellParams is the per-visited-cell bookkeeping Generate needs to decide
// future extensions: the direction the walk arrived from, its rotation
// number, and its winding number relative to the target cell.
//
// Rotation number of a cell T is the number of left turns minus the
// number of right turns taken from the start to reach T.
//
// Winding number of a cell T counts, on the way to T, the Up steps from
// the target's row into the row above it at a column greater than the
// target's column, minus the Down steps from that row above into the
// target's row at such a column. Geometrically this tracks how many times
// the walk has closed a loop around the target.
type cellParams struct {
	direction Direction
	rotation  int64
	winding   int64
}

// params is the accumulated state Generate consults to keep the target
// cell reachable at every step: for every visited cell, where it came
// from and its topological coordinates relative to the target.
type params struct {
	height, width int
	targetRow     int
	targetCol     int
	cells         []map[int]cellParams // one map per row, keyed by column
}

func newParams(height, width, targetRow, targetCol int) *params {
	return &params{
		height:    height,
		width:     width,
		targetRow: targetRow,
		targetCol: targetCol,
		cells:     make([]map[int]cellParams, height),
	}
}

func (p *params) set(i, j int, cp cellParams) {
	if p.cells[i] == nil {
		p.cells[i] = make(map[int]cellParams)
	}
	p.cells[i][j] = cp
}

func (p *params) exists(i, j int) bool {
	_, ok := p.cells[i][j]
	return ok
}

func (p *params) at(i, j int) cellParams {
	return p.cells[i][j]
}

// loopParameter answers: let B = (iB, jB) be a visited cell and A its
// diagonal neighbour at (iB-1 or iB+1, jB-1 or jB+1) per up/left, also
// visited. The A-B step together with the rest of the walk from A to B
// bounds a small loop; loopParameter returns true when the loop is
// positively oriented (rotation difference B minus A above zero, ties
// broken by B's arrival direction) and winds around the target (winding
// difference, corrected for the A-B step, nonzero), or when it is neither.
func loopParameter(p *params, iB, jB int, up, left bool) bool {
	iA := iB - 1
	if !up {
		iA = iB + 1
	}
	jA := jB - 1
	if !left {
		jA = jB + 1
	}

	windingInt := p.at(iB, jB).winding - p.at(iA, jA).winding
	probeI, probeJ := iA, jB
	if up {
		probeI = iB
	}
	if !left {
		probeJ = jA
	}
	if p.targetRow == probeI && p.targetCol < probeJ {
		if up {
			windingInt++
		} else {
			windingInt--
		}
	}

	rotationInt := p.at(iB, jB).rotation - p.at(iA, jA).rotation
	if rotationInt == 0 {
		var positiveDirectionB Direction
		switch {
		case left && up:
			positiveDirectionB = Right
		case left && !up:
			positiveDirectionB = Up
		case !left && !up:
			positiveDirectionB = Left
		default:
			positiveDirectionB = Down
		}
		if p.at(iB, jB).direction == positiveDirectionB {
			rotationInt = 1
		} else {
			rotationInt = -1
		}
	}

	return (rotationInt > 0) == (windingInt != 0)
}

// pathExtension decides whether stepping from T = (iT, jT) in direction
// toward a fresh, in-bounds cell still leaves a route from the new cell
// to the target open. B is the last cell of the walk so far that touched
// the grid border (meaningful only once touchesBorder is true); T is the
// walk's current end.
//
// The case split runs through T's position (corner, border edge,
// interior) and its arrival direction, matching the geometric argument
// that a self-avoiding walk can only trap its own target by closing a
// loop around it; loopParameter is exactly the test for whether a given
// candidate step would close such a loop in the wrong orientation.
func pathExtension(p *params, touchesBorder bool, iB, jB, iT, jT int, direction Direction) bool {
	if p.height == 1 || p.width == 1 {
		return true
	}

	upper := iT != 0 && p.exists(iT-1, jT)
	lower := iT != p.height-1 && p.exists(iT+1, jT)
	left := jT != 0 && p.exists(iT, jT-1)
	right := jT != p.width-1 && p.exists(iT, jT+1)
	upperLeft := iT != 0 && jT != 0 && p.exists(iT-1, jT-1)
	upperRight := iT != 0 && jT != p.width-1 && p.exists(iT-1, jT+1)
	lowerLeft := iT != p.height-1 && jT != 0 && p.exists(iT+1, jT-1)
	lowerRight := iT != p.height-1 && jT != p.width-1 && p.exists(iT+1, jT+1)
	directionT := p.at(iT, jT).direction

	if iT == 0 {
		if jT == 0 || jT == p.width-1 {
			return true
		}
		switch directionT {
		case Left:
			if left || lower || !lowerLeft {
				return true
			}
			winding := loopParameter(p, iT, jT, false, true)
			if winding {
				return direction == Down
			}
			return direction == Left
		case Right:
			if right || lower || !lowerRight {
				return true
			}
			winding := loopParameter(p, iT, jT, false, false)
			if winding {
				return direction == Right
			}
			return direction == Down
		default:
			if !touchesBorder {
				return true
			}
			windingInt := p.at(iT, jT).winding - p.at(iB, jB).winding
			if iB < p.targetRow && jB > jT {
				windingInt++
			}
			if windingInt == 0 {
				return direction == Right
			}
			return direction == Left
		}
	}

	if iT == p.height-1 {
		if jT == 0 || jT == p.width-1 {
			return true
		}
		switch directionT {
		case Left:
			if left || upper || !upperLeft {
				return true
			}
			winding := loopParameter(p, iT, jT, true, true)
			if winding {
				return direction == Left
			}
			return direction == Up
		case Right:
			if right || upper || !upperRight {
				return true
			}
			winding := loopParameter(p, iT, jT, true, false)
			if winding {
				return direction == Up
			}
			return direction == Right
		default:
			if !touchesBorder {
				return true
			}
			windingInt := p.at(iT, jT).winding - p.at(iB, jB).winding
			if iB >= p.targetRow && jB > jT {
				windingInt--
			}
			if windingInt == 0 {
				return direction == Right
			}
			return direction == Left
		}
	}

	if jT == 0 {
		switch directionT {
		case Up:
			if right || upper || !upperRight {
				return true
			}
			winding := loopParameter(p, iT, jT, true, false)
			if winding {
				return direction == Up
			}
			return direction == Right
		case Down:
			if right || lower || !lowerRight {
				return true
			}
			winding := loopParameter(p, iT, jT, false, false)
			if winding {
				return direction == Right
			}
			return direction == Down
		default:
			if !touchesBorder {
				return true
			}
			windingInt := p.at(iT, jT).winding - p.at(iB, jB).winding
			if iB == 0 || (iB < iT && jB == 0) || (iB < p.targetRow && jB == p.width-1) {
				windingInt++
			}
			if windingInt == 0 {
				return direction == Up
			}
			return direction == Down
		}
	}

	if jT == p.width-1 {
		switch directionT {
		case Up:
			if left || upper || !upperLeft {
				return true
			}
			winding := loopParameter(p, iT, jT, true, true)
			if winding {
				return direction == Left
			}
			return direction == Up
		case Down:
			if left || lower || !lowerLeft {
				return true
			}
			winding := loopParameter(p, iT, jT, false, true)
			if winding {
				return direction == Down
			}
			return direction == Left
		default:
			if !touchesBorder {
				return true
			}
			windingInt := p.at(iT, jT).winding - p.at(iB, jB).winding
			if iT >= p.targetRow {
				if iB >= p.targetRow && iB < iT && jB == jT {
					windingInt--
				}
				if windingInt == 0 {
					return direction == Up
				}
				return direction == Down
			}
			if iB > iT && iB < p.targetRow && jB == jT {
				windingInt++
			}
			if windingInt == 0 {
				return direction == Down
			}
			return direction == Up
		}
	}

	if upperLeft {
		if loopParameter(p, iT, jT, true, true) {
			if direction == Up || (direction == Right && directionT == Up) {
				return false
			}
		} else if direction == Left || (direction == Down && directionT == Left) {
			return false
		}
	}
	if lowerLeft {
		if loopParameter(p, iT, jT, false, true) {
			if direction == Left || (direction == Up && directionT == Left) {
				return false
			}
		} else if direction == Down || (direction == Right && directionT == Down) {
			return false
		}
	}
	if lowerRight {
		if loopParameter(p, iT, jT, false, false) {
			if direction == Down || (direction == Left && directionT == Down) {
				return false
			}
		} else if direction == Right || (direction == Up && directionT == Right) {
			return false
		}
	}
	if upperRight {
		if loopParameter(p, iT, jT, true, false) {
			if direction == Right || (direction == Down && directionT == Right) {
				return false
			}
		} else if direction == Up || (direction == Left && directionT == Up) {
			return false
		}
	}
	return true
}

// Generate builds a random self-avoiding walk from (startRow, startCol) to
// (targetRow, targetCol) on a height x width grid, deterministic in seed.
//
// At every step, pastWindow and pastWindowWeight bias the candidate
// direction toward the ones taken most often in the last pastWindow
// steps: when a fresh byte is below (sum of those counts over the legal
// directions * pastWindowWeight) / 256, the direction is drawn with
// weights proportional to the counts; otherwise it is a uniform draw
// among the legal directions. Every candidate direction is
// filtered by pathExtension first, so the bias never has a chance to pick
// a step that would strand the target.
func Generate(height, width int, seed int32, startRow, startCol, targetRow, targetCol int, pastWindow, pastWindowWeight uint16) (Path, error) {
	if height <= 0 || width <= 0 {
		return Empty(), ErrNoRoom
	}
	if startRow < 0 || startRow >= height || startCol < 0 || startCol >= width ||
		targetRow < 0 || targetRow >= height || targetCol < 0 || targetCol >= width {
		return Empty(), ErrNoRoom
	}

	i, j := startRow, startCol
	if i == targetRow && j == targetCol {
		return New(height, width, startRow, startCol, nil), nil
	}

	src := rng.NewSource(seed)
	p := newParams(height, width, targetRow, targetCol)

	var rotation, winding int64
	direction := Up
	p.set(i, j, cellParams{direction, rotation, winding})

	touchesBorder := i == 0 || i == height-1 || j == 0 || j == width-1
	iB, jB := i, j

	var initial []Direction
	if i != 0 {
		initial = append(initial, Up)
	}
	if i != height-1 {
		initial = append(initial, Down)
	}
	if j != 0 {
		initial = append(initial, Left)
	}
	if j != width-1 {
		initial = append(initial, Right)
	}
	direction = initial[int(src.Byte())%len(initial)]
	directions := []Direction{direction}

	switch direction {
	case Up:
		i--
	case Down:
		i++
	case Left:
		j--
	case Right:
		j++
	}
	if direction == Up && i+1 == targetRow && j > targetCol {
		winding++
	} else if direction == Down && i == targetRow && j > targetCol {
		winding--
	}
	p.set(i, j, cellParams{direction, rotation, winding})

	directionCount := map[Direction]int{Up: 0, Down: 0, Left: 0, Right: 0}
	directionCount[direction]++

	for i != targetRow || j != targetCol {
		var legalDirections []Direction
		var legalCumulative []int
		legalTotal := 0

		consider := func(d Direction, blocked bool) {
			if blocked {
				return
			}
			if !pathExtension(p, touchesBorder, iB, jB, i, j, d) {
				return
			}
			legalTotal += directionCount[d]
			legalDirections = append(legalDirections, d)
			legalCumulative = append(legalCumulative, legalTotal)
		}
		consider(Up, direction == Down || i == 0 || p.exists(i-1, j))
		consider(Down, direction == Up || i == height-1 || p.exists(i+1, j))
		consider(Left, direction == Right || j == 0 || p.exists(i, j-1))
		consider(Right, direction == Left || j == width-1 || p.exists(i, j+1))

		if len(legalDirections) == 0 {
			return Empty(), ErrUnreachableTarget
		}

		randByte := src.Byte()
		var newDirection Direction
		if int(randByte) < (legalTotal*int(pastWindowWeight))>>8 {
			pick := int(src.Word() % uint32(legalTotal))
			newDirection = legalDirections[len(legalDirections)-1]
			for k, cumulative := range legalCumulative {
				if pick < cumulative {
					newDirection = legalDirections[k]
					break
				}
			}
		} else {
			newDirection = legalDirections[int(randByte)%len(legalDirections)]
		}

		if i == 0 || i == height-1 || j == 0 || j == width-1 {
			touchesBorder = true
			iB, jB = i, j
		}

		switch newDirection {
		case Up:
			i--
			if direction == Right {
				rotation++
			} else if direction == Left {
				rotation--
			}
			if i+1 == targetRow && j > targetCol {
				winding++
			}
		case Down:
			i++
			if direction == Left {
				rotation++
			} else if direction == Right {
				rotation--
			}
			if i == targetRow && j > targetCol {
				winding--
			}
		case Left:
			j--
			if direction == Up {
				rotation++
			} else if direction == Down {
				rotation--
			}
		case Right:
			j++
			if direction == Down {
				rotation++
			} else if direction == Up {
				rotation--
			}
		}

		direction = newDirection
		directions = append(directions, direction)
		p.set(i, j, cellParams{direction, rotation, winding})
		directionCount[direction]++
		if len(directions) > int(pastWindow) {
			directionCount[directions[len(directions)-1-int(pastWindow)]]--
		}
	}

	return New(height, width, startRow, startCol, directions), nil
}
