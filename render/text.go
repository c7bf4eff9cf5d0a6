// Package render draws a maze and the player as plain text
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/terminal"
)

// PlayerGlyph overrides whatever cell the player stands on
const PlayerGlyph = 'P'

// Frame returns the grid as text, each row terminated by a newline
// Pure function of its inputs
func Frame(g *maze.Grid, player maze.Position) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	writeFrame(&b, g, player)
	return b.String()
}

type byteWriter interface {
	WriteByte(c byte) error
}

func writeFrame(w byteWriter, g *maze.Grid, player maze.Position) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			if p == player {
				w.WriteByte(PlayerGlyph)
				continue
			}
			w.WriteByte(g.At(p).Glyph())
		}
		w.WriteByte('\n')
	}
}

// Text renders full frames to a writer, clearing the screen before each one
type Text struct {
	w *bufio.Writer
}

// NewText returns a renderer writing to w
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// Render clears the screen and prints the frame in one flush
func (t *Text) Render(g *maze.Grid, player maze.Position) error {
	if err := terminal.ClearScreen(t.w); err != nil {
		return err
	}
	writeFrame(t.w, g, player)
	return t.w.Flush()
}
