package path_test

import (
	"fmt"

	"github.com/sterjanez/lamaso/path"
)

func ExamplePath_Integral() {
	p := path.New(3, 3, 2, 1, []path.Direction{path.Up, path.Left, path.Down})
	fmt.Println(p.Integral())
	// Output: -1
}

func ExamplePath_EndRow() {
	p := path.New(2, 2, 0, 0, []path.Direction{path.Right, path.Down})
	fmt.Println(p.EndRow(), p.EndColumn())
	// Output: 1 1
}
