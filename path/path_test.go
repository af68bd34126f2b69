package path_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sterjanez/lamaso/path"
)

func TestEmpty(t *testing.T) {
	p := path.Empty()
	require.Equal(t, 1, p.Height())
	require.Equal(t, 1, p.Width())
	require.Equal(t, 0, p.StartRow())
	require.Equal(t, 0, p.StartColumn())
	require.Empty(t, p.Directions())
}

func TestCellsSquareLoop(t *testing.T) {
	// 3x3 grid, walk Right, Down, Left from (0,0): visits (0,0),(0,1),(1,1),(1,0).
	p := path.New(3, 3, 0, 0, []path.Direction{path.Right, path.Down, path.Left})
	cells := p.Cells()

	require.Len(t, cells[0], 2)
	require.Equal(t, 0, cells[0][0].Column)
	require.False(t, cells[0][0].Above)
	require.False(t, cells[0][0].Left)
	require.Equal(t, 1, cells[0][1].Column)
	require.False(t, cells[0][1].Above)
	require.True(t, cells[0][1].Left) // (0,1) connects left to (0,0)

	require.Len(t, cells[1], 2)
	require.Equal(t, 0, cells[1][0].Column)
	require.False(t, cells[1][0].Above)
	require.False(t, cells[1][0].Left)
	require.Equal(t, 1, cells[1][1].Column)
	require.True(t, cells[1][1].Above) // (1,1) connects up to (0,1) via Down
	require.True(t, cells[1][1].Left)  // (1,1) connects left to (1,0) via Left

	require.Empty(t, cells[2])
}

func TestIntegralMatchesExample(t *testing.T) {
	// From spec.md's worked example: Path{3,3,{Up,Left,Down}} relative to
	// S(3,1) (i.e. a point below the grid, not touched by the walk) has
	// integral computed purely from the walk's own Left/Right steps.
	p := path.New(3, 3, 2, 1, []path.Direction{path.Up, path.Left, path.Down})
	// Up: row 2->1. Left at row 1: result -= 1. Down: row1->2.
	require.Equal(t, int64(-1), p.Integral())
}

func TestEndRowEndColumn(t *testing.T) {
	p := path.New(5, 5, 2, 2, []path.Direction{path.Up, path.Up, path.Right, path.Right})
	require.Equal(t, 0, p.EndRow())
	require.Equal(t, 4, p.EndColumn())
}

func TestStringStartsWithMarker(t *testing.T) {
	p := path.New(2, 2, 0, 0, []path.Direction{path.Right})
	s := p.String()
	require.NotEmpty(t, s)
	runes := []rune(s)
	require.True(t, len(runes) > 1)
	require.Equal(t, '█', runes[1])
}

func TestStringExact(t *testing.T) {
	p := path.New(2, 2, 0, 0, []path.Direction{path.Right})
	want := " █   \n" +
		" ███ \n" +
		"     \n" +
		"     \n" +
		"   █ "
	require.Equal(t, want, p.String())
}

func TestBMPRoundTrip(t *testing.T) {
	original := path.New(4, 4, 0, 0, []path.Direction{
		path.Right, path.Right, path.Down, path.Down, path.Left, path.Down, path.Right,
	})

	var buf bytes.Buffer
	require.NoError(t, original.WriteBMP(&buf))

	decoded, err := path.FromBMP(&buf)
	require.NoError(t, err)
	require.Equal(t, original.Height(), decoded.Height())
	require.Equal(t, original.Width(), decoded.Width())
	require.Equal(t, original.Cells(), decoded.Cells())
}

func TestBMPRoundTripSingleCell(t *testing.T) {
	original := path.New(3, 3, 1, 1, nil)

	var buf bytes.Buffer
	require.NoError(t, original.WriteBMP(&buf))

	decoded, err := path.FromBMP(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.StartRow())
	require.Equal(t, 1, decoded.StartColumn())
	require.Empty(t, decoded.Directions())
}

func TestFromBMPRejectsGarbage(t *testing.T) {
	decoded, err := path.FromBMP(bytes.NewReader([]byte("not a bitmap")))
	require.Error(t, err)
	require.Equal(t, path.Empty(), decoded)
}
