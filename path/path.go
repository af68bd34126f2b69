package path

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

const block = '█'

// Path is an immutable orthogonal walk on an H x W grid of cells,
// starting at (startRow, startColumn) and taking one unit step per
// Direction. Paths from Generate and FromBMP never revisit a cell and
// never leave the grid; New does not check either property.
type Path struct {
	height, width         int
	startRow, startColumn int
	directions            []Direction
}

// Empty returns the degenerate 1x1 path: a single cell, no directions.
// It is the fallback value for every constructor that cannot otherwise
// produce a result (spec.md §7).
func Empty() Path {
	return Path{height: 1, width: 1}
}

// New builds a Path from an explicit direction sequence. It does not
// validate that the walk stays in bounds or self-avoiding; callers that
// need that guarantee should use Generate or FromBMP. It is primarily a
// building block for tests and for Generate's own result assembly.
func New(height, width, startRow, startColumn int, directions []Direction) Path {
	cp := make([]Direction, len(directions))
	copy(cp, directions)
	return Path{
		height:      height,
		width:       width,
		startRow:    startRow,
		startColumn: startColumn,
		directions:  cp,
	}
}

func (p Path) Height() int      { return p.height }
func (p Path) Width() int       { return p.width }
func (p Path) StartRow() int    { return p.startRow }
func (p Path) StartColumn() int { return p.startColumn }

// Directions returns a copy of the step sequence; mutating it does not
// affect p.
func (p Path) Directions() []Direction {
	cp := make([]Direction, len(p.directions))
	copy(cp, p.directions)
	return cp
}

// EndRow and EndColumn report the cell the walk finishes on.
func (p Path) EndRow() int {
	row := p.startRow
	for _, d := range p.directions {
		if d == Up {
			row--
		} else if d == Down {
			row++
		}
	}
	return row
}

func (p Path) EndColumn() int {
	col := p.startColumn
	for _, d := range p.directions {
		if d == Left {
			col--
		} else if d == Right {
			col++
		}
	}
	return col
}

// Cells replays the direction sequence into a per-row view, one slice of
// PathCell per grid row, each sorted by ascending column. A cell appears
// at most once across the whole structure because the walk is
// self-avoiding.
func (p Path) Cells() [][]PathCell {
	rows := make([][]PathCell, p.height)
	i, j := p.startRow, p.startColumn
	rows[i] = append(rows[i], PathCell{Column: j})

	for _, d := range p.directions {
		switch d {
		case Up:
			last := len(rows[i]) - 1
			rows[i][last].Above = true
			i--
			rows[i] = append(rows[i], PathCell{Column: j})
		case Down:
			i++
			rows[i] = append(rows[i], PathCell{Column: j, Above: true})
		case Left:
			last := len(rows[i]) - 1
			rows[i][last].Left = true
			j--
			rows[i] = append(rows[i], PathCell{Column: j})
		case Right:
			j++
			rows[i] = append(rows[i], PathCell{Column: j, Left: true})
		}
	}

	for r := range rows {
		row := rows[r]
		sort.Slice(row, func(a, b int) bool { return row[a].Column < row[b].Column })
	}
	return rows
}

// Integral is the signed area swept between the path and column 0: the
// sum of the row index at every Right step minus the row index at every
// Left step. It is the invariant spec.md §8 checks after every guided-walk
// extension, and is exposed here so tests and callers can verify it
// independently of the generator's internal bookkeeping.
func (p Path) Integral() int64 {
	var total int64
	row := p.startRow
	for _, d := range p.directions {
		switch d {
		case Up:
			row--
		case Down:
			row++
		case Left:
			total -= int64(row)
		case Right:
			total += int64(row)
		}
	}
	return total
}

// String renders the path as a (2*height+1) x (2*width+1) diagram: cells
// sit on odd coordinates, corridors connecting adjacent cells sit on the
// even coordinate between them. Two fixed markers are always drawn,
// wherever the walk starts or ends: the corridor above cell (0,0) on the
// first line, and the corridor below the bottom-right cell on a trailing
// last line.
func (p Path) String() string {
	rows := p.Cells()
	width2 := 2*p.width + 1

	var b strings.Builder
	for _, rowCells := range rows {
		above := blankLine(width2)
		here := blankLine(width2)
		for _, c := range rowCells {
			col := 2 * c.Column
			if c.Above {
				above[col+1] = block
			}
			if c.Left {
				here[col] = block
			}
			here[col+1] = block
		}
		writeLine(&b, above)
		writeLine(&b, here)
	}

	bottom := blankLine(width2)
	bottom[width2-2] = block
	s := strings.TrimRight(string(bottom), " ")
	b.WriteString(runewidth.FillRight(s, width2))

	out := []rune(b.String())
	if len(out) > 1 {
		out[1] = block
	}
	return string(out)
}

func blankLine(width int) []rune {
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}
	return line
}

// writeLine trims line's trailing blanks before handing it to go-runewidth,
// so FillRight does real column-padding work back out to line's full width
// rather than padding a string to its own already-measured width.
func writeLine(b *strings.Builder, line []rune) {
	s := strings.TrimRight(string(line), " ")
	b.WriteString(runewidth.FillRight(s, len(line)))
	b.WriteByte('\n')
}
