package maze_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sterjanez/lamaso/maze"
	"github.com/sterjanez/lamaso/path"
)

// TestScenarioS1TinyTreeMazeDefaultProfile mirrors spec.md §8 S1: a 5x5
// tree maze around a generated path must have exactly 24 edges (a
// spanning tree over 25 cells), keep every path corridor open, and solve
// back to the same cell set between the path's own endpoints.
func TestScenarioS1TinyTreeMazeDefaultProfile(t *testing.T) {
	p, err := path.Generate(5, 5, 1, 0, 0, 4, 4, 3, 128)
	require.NoError(t, err)

	m, err := maze.NewTree(p, 42, maze.DefaultProbabilities())
	require.NoError(t, err)

	corridors := 0
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			if i > 0 && !m.HasWallAbove(i, j) {
				corridors++
			}
			if j > 0 && !m.HasWallLeft(i, j) {
				corridors++
			}
		}
	}
	require.Equal(t, 24, corridors)

	for i, row := range p.Cells() {
		for _, c := range row {
			if c.Above {
				require.False(t, m.HasWallAbove(i, c.Column))
			}
			if c.Left {
				require.False(t, m.HasWallLeft(i, c.Column))
			}
		}
	}

	solved := m.Solve(0, 0, 4, 4)
	require.Equal(t, p.Cells(), solved.Cells())
}

// TestScenarioS2DensityZero mirrors spec.md §8 S2: density 0 leaves
// every interior wall absent, and solving between any two cells succeeds.
func TestScenarioS2DensityZero(t *testing.T) {
	p, err := path.Generate(10, 10, 1, 0, 0, 9, 9, 4, 128)
	require.NoError(t, err)

	m, err := maze.NewDensity(p, 1, 0)
	require.NoError(t, err)

	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			if i > 0 {
				require.False(t, m.HasWallAbove(i, j))
			}
			if j > 0 {
				require.False(t, m.HasWallLeft(i, j))
			}
		}
	}

	solved := m.Solve(0, 0, 9, 9)
	require.Equal(t, 9, solved.EndRow())
	require.Equal(t, 9, solved.EndColumn())
}

// TestScenarioS3DensityMax mirrors spec.md §8 S3: maximum density walls
// off everything except the solution path's own corridors, so solving
// within the path's endpoints must reproduce the path exactly.
func TestScenarioS3DensityMax(t *testing.T) {
	p, err := path.Generate(8, 8, 3, 0, 0, 7, 7, 4, 128)
	require.NoError(t, err)

	m, err := maze.NewDensity(p, 3, 65535)
	require.NoError(t, err)

	solved := m.Solve(p.StartRow(), p.StartColumn(), p.EndRow(), p.EndColumn())
	require.Equal(t, p.Cells(), solved.Cells())
}

// TestScenarioS4DegenerateBMP mirrors spec.md §8 S4: a missing file and
// an even-width BMP both fall back to the 1x1 default maze.
func TestScenarioS4DegenerateBMP(t *testing.T) {
	m, err := maze.FromBMPFile("/nonexistent/path/to/a/maze.bmp")
	require.Error(t, err)
	require.Equal(t, 1, m.Height())
	require.Equal(t, 1, m.Width())

	p, err := path.Generate(3, 3, 1, 0, 0, 2, 2, 4, 128)
	require.NoError(t, err)
	original, err := maze.NewDensity(p, 1, 64)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, original.WriteBMP(&buf))
	data := buf.Bytes()
	data[18]++ // declared pixel width 7 -> 8

	m, err = maze.FromBMP(bytes.NewReader(data))
	require.Error(t, err)
	require.Equal(t, 1, m.Height())
	require.Equal(t, 1, m.Width())
}

// TestScenarioS5GeneratorAvoidsDeadEnds mirrors spec.md §8 S5.
func TestScenarioS5GeneratorAvoidsDeadEnds(t *testing.T) {
	p, err := path.Generate(10, 10, 7, 0, 0, 9, 9, 5, 200)
	require.NoError(t, err)
	require.Equal(t, 9, p.EndRow())
	require.Equal(t, 9, p.EndColumn())

	seen := make(map[[2]int]bool)
	for i, row := range p.Cells() {
		for _, c := range row {
			key := [2]int{i, c.Column}
			require.False(t, seen[key])
			seen[key] = true
		}
	}
}

// TestScenarioS6EmptyEndpoints mirrors spec.md §8 S6: solving a cell
// against itself always yields the empty path at that cell.
func TestScenarioS6EmptyEndpoints(t *testing.T) {
	p, err := path.Generate(7, 7, 2, 0, 0, 6, 6, 4, 128)
	require.NoError(t, err)
	m, err := maze.NewTree(p, 2, maze.DefaultProbabilities())
	require.NoError(t, err)

	solved := m.Solve(3, 3, 3, 3)
	require.Empty(t, solved.Directions())
	require.Equal(t, 3, solved.StartRow())
	require.Equal(t, 3, solved.StartColumn())
}
