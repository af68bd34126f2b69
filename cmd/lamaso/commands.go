package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/sterjanez/lamaso/maze"
	"github.com/sterjanez/lamaso/path"
)

// commands holds the dispatcher's I/O: a line scanner over stdin, a
// writer for prompts and results, and whether stdin is an interactive
// terminal. When it isn't (piped input, as our own integration tests
// use), prompt labels are suppressed so only command results reach
// stdout.
type commands struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
}

func (c *commands) ask(label string) string {
	if c.interactive {
		fmt.Fprint(c.out, label)
	}
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *commands) askInt(label string) (int64, error) {
	text := c.ask(label)
	return strconv.ParseInt(text, 10, 64)
}

// prompt prints the command menu, reads one command number, and
// dispatches it. It returns false once the "Exit" command is chosen.
func (c *commands) prompt() bool {
	if c.interactive {
		fmt.Fprint(c.out, "Commands:\n1 New maze\n2 New path\n3 Solve maze\n4 Exit\n")
	}
	command, err := c.askInt("Command: ")
	if err != nil {
		fmt.Fprintln(c.out, "Unknown command.")
		return true
	}

	switch command {
	case 1:
		c.newMaze()
	case 2:
		c.newPath()
	case 3:
		c.solveMaze()
	case 4:
		return false
	default:
		fmt.Fprintln(c.out, "Unknown command.")
	}
	fmt.Fprintln(c.out)
	return true
}

func (c *commands) newMaze() {
	fmt.Fprint(c.out, "\nCreate new maze\n\n")

	cfg := DefaultMazeConfig()

	seed, err := c.askInt("Seed number (32-bit signed integer): ")
	if err != nil {
		log.Printf("new maze: %v", err)
		return
	}
	cfg.Seed = int32(seed)

	var p path.Path
	pathFileName := c.ask("Path file (empty if none): ")
	if pathFileName == "" {
		height, err := c.askInt("Height: ")
		if err != nil {
			log.Printf("new maze: %v", err)
			return
		}
		width, err := c.askInt("Width: ")
		if err != nil {
			log.Printf("new maze: %v", err)
			return
		}
		p = path.New(int(height), int(width), 0, 0, nil)
	} else {
		fmt.Fprint(c.out, "Loading path ...")
		loaded, err := path.FromBMPFile(pathFileName)
		fmt.Fprintln(c.out)
		if err != nil {
			log.Printf("new maze: loading path: %v", err)
		}
		p = loaded
	}

	cfg.Tree = c.ask("Create tree maze? (y = Yes, n = No) ") == "y"

	var m maze.Maze
	var buildErr error
	if cfg.Tree {
		if c.ask("Apply default probability set {163, 118, 123, 123, 94, 103}? (y = Yes, n = No) ") != "y" {
			for i := 0; i < 6; i++ {
				value, err := c.askInt(fmt.Sprintf("Probability value %d (0 - 255): ", i+1))
				if err != nil {
					log.Printf("new maze: %v", err)
					return
				}
				cfg.Probabilities[i] = uint8(value)
			}
		}
		fmt.Fprint(c.out, "Creating maze ...")
		start := time.Now()
		m, buildErr = maze.NewTree(p, cfg.Seed, cfg.Probabilities)
		c.reportDuration(start)
	} else {
		density, err := c.askInt("Wall density (0 - 65535): ")
		if err != nil {
			log.Printf("new maze: %v", err)
			return
		}
		cfg.Density = uint16(density)
		fmt.Fprint(c.out, "Creating maze ...")
		start := time.Now()
		m, buildErr = maze.NewDensity(p, cfg.Seed, cfg.Density)
		c.reportDuration(start)
	}
	if buildErr != nil {
		log.Printf("new maze: %v", buildErr)
		return
	}

	mazeFileName := c.ask("Maze file (empty if no saving): ")
	if mazeFileName != "" {
		fmt.Fprint(c.out, "Saving ...")
		if err := m.WriteBMPFile(mazeFileName); err != nil {
			fmt.Fprintln(c.out, " Failed!")
			log.Printf("new maze: saving: %v", err)
		} else {
			fmt.Fprintln(c.out, " Finished.")
		}
	}
}

func (c *commands) newPath() {
	fmt.Fprint(c.out, "\nCreate new path\n")

	cfg := DefaultPathConfig()
	fields := []struct {
		label string
		dst   *int
	}{
		{"Height: ", &cfg.Height},
		{"Width: ", &cfg.Width},
		{"Start row: ", &cfg.StartRow},
		{"Start column: ", &cfg.StartColumn},
		{"End row: ", &cfg.EndRow},
		{"End column: ", &cfg.EndColumn},
	}
	for _, f := range fields {
		value, err := c.askInt(f.label)
		if err != nil {
			log.Printf("new path: %v", err)
			return
		}
		*f.dst = int(value)
	}

	seed, err := c.askInt("Seed number (unsigned 32-bit integer): ")
	if err != nil {
		log.Printf("new path: %v", err)
		return
	}
	cfg.Seed = int32(seed)

	pastWindow, err := c.askInt("Persistency chain length (0 to 65535): ")
	if err != nil {
		log.Printf("new path: %v", err)
		return
	}
	cfg.PastWindow = uint16(pastWindow)

	pastWindowWeight, err := c.askInt("Persistency strength (0 to 65535): ")
	if err != nil {
		log.Printf("new path: %v", err)
		return
	}
	cfg.PastWindowWeight = uint16(pastWindowWeight)

	fmt.Fprint(c.out, "Creating path ...")
	start := time.Now()
	p, err := path.Generate(cfg.Height, cfg.Width, cfg.Seed, cfg.StartRow, cfg.StartColumn, cfg.EndRow, cfg.EndColumn,
		cfg.PastWindow, cfg.PastWindowWeight)
	c.reportDuration(start)
	if err != nil {
		log.Printf("new path: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Path length: %d\n", len(p.Directions()))

	pathFileName := c.ask("Save as (empty if no saving): ")
	if pathFileName != "" {
		fmt.Fprint(c.out, "Saving ...")
		if err := p.WriteBMPFile(pathFileName); err != nil {
			fmt.Fprintln(c.out, " Failed!")
			log.Printf("new path: saving: %v", err)
		} else {
			fmt.Fprintln(c.out, " Finished.")
		}
	}
}

func (c *commands) solveMaze() {
	fmt.Fprint(c.out, "\nSolve maze\n")

	mazeFileName := c.ask("Maze file name: ")
	m, err := maze.FromBMPFile(mazeFileName)
	if err != nil {
		log.Printf("solve maze: loading: %v", err)
	}
	if m.Height() == 1 && m.Width() == 1 {
		fmt.Fprint(c.out, "Empty maze. Possible failure when reading file.\n\n")
		return
	}

	i1, err := c.askInt("Start row: ")
	if err != nil {
		log.Printf("solve maze: %v", err)
		return
	}
	j1, err := c.askInt("Start column: ")
	if err != nil {
		log.Printf("solve maze: %v", err)
		return
	}
	i2, err := c.askInt("End row: ")
	if err != nil {
		log.Printf("solve maze: %v", err)
		return
	}
	j2, err := c.askInt("End column: ")
	if err != nil {
		log.Printf("solve maze: %v", err)
		return
	}

	fmt.Fprint(c.out, "Solving ...")
	start := time.Now()
	solved := m.Solve(int(i1), int(j1), int(i2), int(j2))
	c.reportDuration(start)
	fmt.Fprintf(c.out, "Path length: %d\n", len(solved.Directions()))

	var avgHeight float64
	if j1 != j2 {
		avgHeight = float64(solved.Integral()) / float64(j2-j1)
	}
	fmt.Fprintf(c.out, "Average path i-component: %g\n", avgHeight)

	pathFileName := c.ask("Save as (empty if no saving): ")
	if pathFileName != "" {
		fmt.Fprint(c.out, "Saving ...")
		if err := solved.WriteBMPFile(pathFileName); err != nil {
			fmt.Fprintln(c.out, " Failed!")
			log.Printf("solve maze: saving: %v", err)
		} else {
			fmt.Fprintln(c.out, " Finished.")
		}
	}
}

func (c *commands) reportDuration(start time.Time) {
	fmt.Fprintf(c.out, "\nFinished in %d milliseconds.\n", time.Since(start).Milliseconds())
}
