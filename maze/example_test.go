package maze_test

import (
	"fmt"

	"github.com/sterjanez/lamaso/maze"
	"github.com/sterjanez/lamaso/path"
)

func ExampleMaze_Solve() {
	p := path.New(1, 1, 0, 0, nil)
	m, err := maze.NewDensity(p, 1, 0)
	if err != nil {
		panic(err)
	}

	solved := m.Solve(0, 0, 0, 0)
	fmt.Println(len(solved.Directions()))
	// Output: 0
}
