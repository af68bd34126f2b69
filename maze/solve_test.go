package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sterjanez/lamaso/maze"
	"github.com/sterjanez/lamaso/path"
)

func TestSolveSameCellIsTrivial(t *testing.T) {
	p, err := path.Generate(4, 4, 1, 0, 0, 3, 3, 4, 128)
	require.NoError(t, err)
	m, err := maze.NewTree(p, 2, maze.DefaultProbabilities())
	require.NoError(t, err)

	solved := m.Solve(1, 1, 1, 1)
	require.Empty(t, solved.Directions())
	require.Equal(t, 1, solved.StartRow())
	require.Equal(t, 1, solved.StartColumn())
}

func TestSolveFindsTheGuidedPathEndpoints(t *testing.T) {
	p, err := path.Generate(7, 7, 555, 1, 1, 6, 5, 6, 170)
	require.NoError(t, err)
	m, err := maze.NewTree(p, 8, maze.DefaultProbabilities())
	require.NoError(t, err)

	solved := m.Solve(p.StartRow(), p.StartColumn(), p.EndRow(), p.EndColumn())
	require.Equal(t, p.StartRow(), solved.StartRow())
	require.Equal(t, p.StartColumn(), solved.StartColumn())
	require.Equal(t, p.EndRow(), solved.EndRow())
	require.Equal(t, p.EndColumn(), solved.EndColumn())

	// A perfect maze has exactly one simple route between any two cells, so
	// the wall-follower's route must retrace the generator's own solution.
	require.Equal(t, p.Cells(), solved.Cells())
}

func TestSolveReportsFailureOnDisconnectedCells(t *testing.T) {
	// A 1x1 maze has only one cell; asking to reach a cell that cannot
	// exist relative to (0,0) on a larger disconnected grid is exercised
	// instead via two genuinely unreachable cells in a density maze with
	// every non-path wall forced on, isolating everything off the path.
	p := path.New(3, 3, 0, 0, []path.Direction{path.Right, path.Right})
	m, err := maze.NewDensity(p, 1, 256)
	require.NoError(t, err)

	solved := m.Solve(2, 0, 0, 0)
	require.Equal(t, 2, solved.StartRow())
	require.Equal(t, 0, solved.StartColumn())
	require.Empty(t, solved.Directions())
}
