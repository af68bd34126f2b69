package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sterjanez/lamaso/maze"
	"github.com/sterjanez/lamaso/path"
)

func TestFingerprintStableAcrossEquivalentBuilds(t *testing.T) {
	p, err := path.Generate(5, 5, 4, 0, 0, 4, 4, 4, 128)
	require.NoError(t, err)

	a, err := maze.NewDensity(p, 99, 120)
	require.NoError(t, err)
	b, err := maze.NewDensity(p, 99, 120)
	require.NoError(t, err)

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDiffersOnDifferentSeeds(t *testing.T) {
	p, err := path.Generate(5, 5, 4, 0, 0, 4, 4, 4, 128)
	require.NoError(t, err)

	a, err := maze.NewDensity(p, 1, 120)
	require.NoError(t, err)
	b, err := maze.NewDensity(p, 2, 120)
	require.NoError(t, err)

	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDiffersOnDimensions(t *testing.T) {
	p1, err := path.Generate(3, 3, 1, 0, 0, 2, 2, 4, 128)
	require.NoError(t, err)
	p2, err := path.Generate(4, 3, 1, 0, 0, 3, 2, 4, 128)
	require.NoError(t, err)

	a, err := maze.NewDensity(p1, 1, 0)
	require.NoError(t, err)
	b, err := maze.NewDensity(p2, 1, 0)
	require.NoError(t, err)

	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
