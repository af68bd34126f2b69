package main

import "github.com/sterjanez/lamaso/maze"

// MazeConfig holds newMaze's prompted parameters: the seed, and either a
// tree probability profile or a wall density, depending on Tree.
type MazeConfig struct {
	Seed          int32
	Tree          bool
	Probabilities [6]uint8
	Density       uint16
}

// DefaultMazeConfig returns a MazeConfig that builds a tree maze with
// DefaultProbabilitySet(); Seed and Density are left at their zero value
// for the caller to fill in.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Tree:          true,
		Probabilities: DefaultProbabilitySet(),
	}
}

// DefaultProbabilitySet returns the tree builder's reference profile:
// {163, 118, 123, 123, 94, 103}.
func DefaultProbabilitySet() [6]uint8 {
	return maze.DefaultProbabilities()
}

// PathConfig holds newPath's prompted parameters: the grid shape, the
// two endpoints, the seed, and the guided walk's history window.
type PathConfig struct {
	Height, Width         int
	StartRow, StartColumn int
	EndRow, EndColumn     int
	Seed                  int32
	PastWindow            uint16
	PastWindowWeight      uint16
}

// DefaultPathConfig returns a PathConfig with a modest history window;
// every other field is left at its zero value for the caller to fill in.
func DefaultPathConfig() PathConfig {
	return PathConfig{
		PastWindow:       4,
		PastWindowWeight: 128,
	}
}
