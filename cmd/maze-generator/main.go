package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/render"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== VI-MAZE GENERATOR ===")

		level := game.ReadLevel(reader, os.Stdout)

		fmt.Print("Show solution? [Y/n]: ")
		solStr, _ := reader.ReadString('\n')
		showSolution := strings.ToLower(strings.TrimSpace(solStr)) != "n"

		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid := maze.Generate(level)
		path := maze.Solve(grid)
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d\n", grid.Width(), grid.Height())

		if path != nil {
			fmt.Printf("Solution Path Length: %d steps\n", len(path)-1)
		} else {
			fmt.Println("Status: Unsolvable (Isolated Start/End)")
		}

		if showSolution {
			maze.MarkSolution(grid, path)
		}
		fmt.Print(render.Frame(grid, maze.Position{X: -1, Y: -1}))

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}
