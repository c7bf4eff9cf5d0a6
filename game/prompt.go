package game

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
)

const levelPrompt = "Enter maze level (1, 2, 3): "

// ReadLevel prompts for a level and reads one line
// Anything that doesn't start with an integer yields level 1, the generator maps unknown levels to the base size
func ReadLevel(r *bufio.Reader, w io.Writer) int {
	fmt.Fprint(w, levelPrompt)

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		log.Printf("level prompt: %v, using level 1", err)
		return 1
	}

	var level int
	if _, err := fmt.Sscan(strings.TrimSpace(line), &level); err != nil {
		log.Printf("level prompt: %q is not a number, using level 1", strings.TrimSpace(line))
		return 1
	}
	return level
}

// Report prints the win message
func Report(w io.Writer, res Result) {
	fmt.Fprintln(w, "Congratulations! You've reached the end of the maze!")
	fmt.Fprintf(w, "Time: %g seconds\n", round3(res.Seconds()))
	fmt.Fprintf(w, "Moves: %d\n", res.Moves)
	if res.ScoreErr != nil {
		fmt.Fprintf(w, "Warning: score not saved: %v\n", res.ScoreErr)
	}
}

func round3(s float64) float64 {
	return math.Round(s*1e3) / 1e3
}
