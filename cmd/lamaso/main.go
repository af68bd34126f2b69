// Command lamaso is a line-prompted dispatcher over the path/maze model:
// build a guided self-avoiding path, grow a maze around it (by uniform
// wall density or by a probability-tuned spanning tree), or load a maze
// from a BMP file and solve it. See commands.newMaze, commands.newPath,
// and commands.solveMaze for the three operations; commands.prompt is one
// round of the read-eval-print loop that main runs until Exit.
package main

import (
	"bufio"
	"log"
	"os"

	"golang.org/x/term"
)

func main() {
	f, err := os.OpenFile("lamaso.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("failed to open log file, logging to stderr.")
	} else {
		defer f.Close()
		log.SetOutput(f)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	scanner := bufio.NewScanner(os.Stdin)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	cmds := &commands{in: scanner, out: os.Stdout, interactive: interactive}
	for cmds.prompt() {
	}
}
