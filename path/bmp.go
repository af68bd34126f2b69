package path

import (
	"fmt"
	"io"
	"os"

	"github.com/sterjanez/lamaso/bitmap"
)

// FromBMP reconstructs a Path from the monochrome BMP diagram produced by
// WriteBMP: a (2*height+1) x (2*width+1) pixel grid, white by default,
// where cells sit on odd coordinates and a black pixel on the even
// coordinate between two adjacent cells marks a path edge between them.
// The two degree-1 cells in the resulting graph are the path's
// endpoints; the lexicographically first (by row, then column) becomes
// the start.
//
// On any decode problem FromBMP returns Empty() alongside a diagnostic
// error, per spec.md §7: the Path itself is always a valid total object,
// the error exists only so the caller can log why reconstruction failed.
func FromBMP(r io.Reader) (Path, error) {
	wp, hp, err := bitmap.ReadHeader(r)
	if err != nil {
		return Empty(), err
	}
	if wp < 1 || hp < 1 || wp%2 == 0 || hp%2 == 0 {
		return Empty(), fmt.Errorf("%w: dimensions %dx%d are not both odd", ErrMalformed, wp, hp)
	}
	height, width := (hp-1)/2, (wp-1)/2

	rowBytes := bitmap.RowBytes(wp)
	pixels := make([][]byte, hp)
	for fileRow := 0; fileRow < hp; fileRow++ {
		row := make([]byte, rowBytes)
		if _, err := io.ReadFull(r, row); err != nil {
			return Empty(), err
		}
		pixels[hp-1-fileRow] = row
	}
	black := func(pr, pc int) bool { return !bitmap.GetPixel(pixels[pr], pc) }

	n := height * width
	present := make([]bool, n)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			present[i*width+j] = black(2*i+1, 2*j+1)
		}
	}

	type neighbor struct {
		to  int
		dir Direction
	}
	adj := make([][]neighbor, n)
	addEdge := func(a, b int, dAB, dBA Direction) {
		adj[a] = append(adj[a], neighbor{b, dAB})
		adj[b] = append(adj[b], neighbor{a, dBA})
	}
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			id := i*width + j
			if !present[id] {
				continue
			}
			if i > 0 && present[id-width] && black(2*i, 2*j+1) {
				addEdge(id, id-width, Up, Down)
			}
			if j > 0 && present[id-1] && black(2*i+1, 2*j) {
				addEdge(id, id-1, Left, Right)
			}
		}
	}

	count := 0
	for _, p := range present {
		if p {
			count++
		}
	}
	if count == 0 {
		return Empty(), fmt.Errorf("%w: no cells", ErrMalformed)
	}
	if count == 1 {
		for id, p := range present {
			if p {
				return New(height, width, id/width, id%width, nil), nil
			}
		}
	}

	var ends []int
	totalDegree := 0
	for id := 0; id < n; id++ {
		if !present[id] {
			continue
		}
		d := len(adj[id])
		if d > 2 {
			return Empty(), fmt.Errorf("%w: cell with degree %d", ErrMalformed, d)
		}
		totalDegree += d
		if d == 1 {
			ends = append(ends, id)
		}
	}
	if len(ends) != 2 || totalDegree/2 != count-1 {
		return Empty(), fmt.Errorf("%w: not a single chain", ErrMalformed)
	}

	start, finish := ends[0], ends[1]
	directions := make([]Direction, 0, count-1)
	prev, cur := -1, start
	for cur != finish {
		var next neighbor
		found := false
		for _, e := range adj[cur] {
			if e.to != prev {
				next, found = e, true
				break
			}
		}
		if !found {
			return Empty(), fmt.Errorf("%w: chain broke before reaching the second endpoint", ErrMalformed)
		}
		directions = append(directions, next.dir)
		prev, cur = cur, next.to
	}

	return New(height, width, start/width, start%width, directions), nil
}

// FromBMPFile opens name and delegates to FromBMP, closing the file
// regardless of outcome.
func FromBMPFile(name string) (Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return Empty(), err
	}
	defer f.Close()
	return FromBMP(f)
}

// WriteBMP renders p as the pixel diagram FromBMP decodes: a white
// background with a black pixel at every occupied cell coordinate and at
// the corridor pixel of every edge between adjacent cells.
func (p Path) WriteBMP(w io.Writer) error {
	wp, hp := 2*p.width+1, 2*p.height+1
	if err := bitmap.WriteHeader(w, wp, hp); err != nil {
		return err
	}

	rowBytes := bitmap.RowBytes(wp)
	pixels := make([][]byte, hp)
	for r := range pixels {
		pixels[r] = make([]byte, rowBytes)
		for x := 0; x < wp; x++ {
			bitmap.SetPixel(pixels[r], x, true)
		}
	}

	for i, rowCells := range p.Cells() {
		for _, c := range rowCells {
			bitmap.SetPixel(pixels[2*i+1], 2*c.Column+1, false)
			if c.Above {
				bitmap.SetPixel(pixels[2*i], 2*c.Column+1, false)
			}
			if c.Left {
				bitmap.SetPixel(pixels[2*i+1], 2*c.Column, false)
			}
		}
	}

	for fileRow := 0; fileRow < hp; fileRow++ {
		if _, err := w.Write(pixels[hp-1-fileRow]); err != nil {
			return err
		}
	}
	return nil
}

// WriteBMPFile creates (or truncates) name and writes p to it.
func (p Path) WriteBMPFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.WriteBMP(f)
}
