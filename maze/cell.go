package maze

// Cell is the state of a single grid square
type Cell uint8

const (
	Wall Cell = iota
	Path
	Start
	End
	Player   // Overlay marker, never stored by the generator
	Solution // Stamped by MarkSolution, not used by gameplay
)

// Glyph returns the character a cell renders as
func (c Cell) Glyph() byte {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Solution:
		return '*'
	default:
		return ' '
	}
}

// Walkable reports whether the player may stand on the cell
func (c Cell) Walkable() bool {
	return c != Wall
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case End:
		return "end"
	case Player:
		return "player"
	case Solution:
		return "solution"
	default:
		return "unknown"
	}
}
