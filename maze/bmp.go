package maze

import (
	"fmt"
	"io"
	"os"

	"github.com/sterjanez/lamaso/bitmap"
)

// FromBMP reconstructs a Maze from the monochrome BMP diagram produced by
// WriteBMP: a (2*height+1) x (2*width+1) pixel grid, black by default,
// where every cell is marked white at its own pixel and a black pixel on
// the corridor coordinate between two adjacent cells marks a wall
// between them. The single-pixel markers on the very first and last rows
// are cosmetic border decoration and are not parsed.
//
// On any decode problem FromBMP returns the 1x1 degenerate maze alongside
// a diagnostic error, per spec.md §7.
func FromBMP(r io.Reader) (Maze, error) {
	wp, hp, err := bitmap.ReadHeader(r)
	if err != nil {
		return degenerate(), err
	}
	if wp < 3 || hp < 3 || wp%2 == 0 || hp%2 == 0 {
		return degenerate(), fmt.Errorf("%w: dimensions %dx%d are not both odd and >= 3", ErrMalformed, wp, hp)
	}
	height, width := (hp-1)/2, (wp-1)/2

	rowBytes := bitmap.RowBytes(wp)
	pixels := make([][]byte, hp)
	for fileRow := 0; fileRow < hp; fileRow++ {
		row := make([]byte, rowBytes)
		if _, err := io.ReadFull(r, row); err != nil {
			return degenerate(), err
		}
		pixels[hp-1-fileRow] = row
	}

	verticalWalls, horizontalWalls := newEmptyWalls(height, width)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if i > 0 {
				horizontalWalls[i][j] = !bitmap.GetPixel(pixels[2*i], 2*j+1)
			}
			if j > 0 {
				verticalWalls[i][j] = !bitmap.GetPixel(pixels[2*i+1], 2*j)
			}
		}
	}

	return Maze{height: height, width: width, verticalWalls: verticalWalls, horizontalWalls: horizontalWalls}, nil
}

func degenerate() Maze {
	v, h := newEmptyWalls(1, 1)
	return Maze{height: 1, width: 1, verticalWalls: v, horizontalWalls: h}
}

// FromBMPFile opens name and delegates to FromBMP, closing the file
// regardless of outcome.
func FromBMPFile(name string) (Maze, error) {
	f, err := os.Open(name)
	if err != nil {
		return degenerate(), err
	}
	defer f.Close()
	return FromBMP(f)
}

// WriteBMP renders m as the pixel diagram FromBMP decodes.
func (m Maze) WriteBMP(w io.Writer) error {
	wp, hp := 2*m.width+1, 2*m.height+1
	if err := bitmap.WriteHeader(w, wp, hp); err != nil {
		return err
	}

	rowBytes := bitmap.RowBytes(wp)
	pixels := make([][]byte, hp)
	for r := range pixels {
		pixels[r] = make([]byte, rowBytes)
	}
	bitmap.SetPixel(pixels[0], 1, true)
	bitmap.SetPixel(pixels[hp-1], wp-2, true)

	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			if i > 0 && !m.horizontalWalls[i][j] {
				bitmap.SetPixel(pixels[2*i], 2*j+1, true)
			}
			bitmap.SetPixel(pixels[2*i+1], 2*j+1, true)
			if j > 0 && !m.verticalWalls[i][j] {
				bitmap.SetPixel(pixels[2*i+1], 2*j, true)
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

// WriteBMPFile creates (or truncates) name and writes m to it.
func (m Maze) WriteBMPFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.WriteBMP(f)
}
