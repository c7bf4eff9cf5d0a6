package input

import "github.com/lixenwraith/vi-maze/maze"

// Direction is a single-axis movement
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the grid offset for d
func (d Direction) Vector() maze.Position {
	switch d {
	case DirUp:
		return maze.Position{X: 0, Y: -1}
	case DirDown:
		return maze.Position{X: 0, Y: 1}
	case DirLeft:
		return maze.Position{X: -1, Y: 0}
	case DirRight:
		return maze.Position{X: 1, Y: 0}
	default:
		return maze.Position{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// KeyMap binds runes to directions
type KeyMap map[rune]Direction

// DefaultKeyMap returns the w/s/a/d layout
func DefaultKeyMap() KeyMap {
	return KeyMap{
		'w': DirUp,
		's': DirDown,
		'a': DirLeft,
		'd': DirRight,
	}
}

// Lookup returns the direction bound to r, DirNone if unbound
func (km KeyMap) Lookup(r rune) Direction {
	return km[r]
}

// Clone returns an independent copy
func (km KeyMap) Clone() KeyMap {
	c := make(KeyMap, len(km))
	for k, v := range km {
		c[k] = v
	}
	return c
}
