// Package screen is a full-screen tcell frontend for the game loop
package screen

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/render"
	"github.com/lixenwraith/vi-maze/terminal"
)

const hint = "w/a/s/d move  Esc quit"

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStart  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEnd    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHint   = tcell.StyleDefault.Dim(true)
)

// Screen renders frames and reads keys through a tcell screen
type Screen struct {
	s tcell.Screen
}

// New opens the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terminal.ErrNotTerminal, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", terminal.ErrNotTerminal, err)
	}
	return Wrap(s), nil
}

// Wrap uses an already initialized screen
func Wrap(s tcell.Screen) *Screen {
	s.HideCursor()
	return &Screen{s: s}
}

// Close restores the terminal
func (sc *Screen) Close() {
	sc.s.Fini()
}

func styleFor(c maze.Cell) tcell.Style {
	switch c {
	case maze.Wall:
		return styleWall
	case maze.Start:
		return styleStart
	case maze.End:
		return styleEnd
	default:
		return tcell.StyleDefault
	}
}

// Render draws the grid at the top-left corner with a key hint below it
func (sc *Screen) Render(g *maze.Grid, player maze.Position) error {
	sc.s.Clear()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Position{X: x, Y: y}
			if p == player {
				sc.s.SetContent(x, y, render.PlayerGlyph, nil, stylePlayer)
				continue
			}
			c := g.At(p)
			sc.s.SetContent(x, y, rune(c.Glyph()), nil, styleFor(c))
		}
	}
	for i, r := range hint {
		sc.s.SetContent(i, g.Height()+1, r, nil, styleHint)
	}
	sc.s.Show()
	return nil
}

// ReadKey blocks for the next rune keypress
// Esc and Ctrl-C yield terminal.ErrInterrupt, a finalized screen yields io.EOF
func (sc *Screen) ReadKey() (rune, error) {
	for {
		switch ev := sc.s.PollEvent().(type) {
		case nil:
			return 0, io.EOF
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				return ev.Rune(), nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, terminal.ErrInterrupt
			}
		case *tcell.EventResize:
			sc.s.Sync()
		}
	}
}
