package maze

// Position is a 0-indexed grid coordinate, X is the column and Y the row
type Position struct {
	X, Y int
}

// Add returns p shifted by d
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is a rectangular maze stored row-major
type Grid struct {
	width, height int
	cells         [][]Cell
}

// NewGrid returns a width x height grid filled with Wall
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		// Wall is the zero value
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies anywhere on the grid, border included
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Interior reports whether p lies strictly inside the border
func (g *Grid) Interior(p Position) bool {
	return p.X > 0 && p.X < g.width-1 && p.Y > 0 && p.Y < g.height-1
}

// At returns the cell at p, out of bounds reads as Wall
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// Set writes c at p, out of bounds writes are ignored
func (g *Grid) Set(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = c
}

// IsCarvable reports whether the generator may open p: strictly inside the border and still Wall
func (g *Grid) IsCarvable(p Position) bool {
	return g.Interior(p) && g.cells[p.Y][p.X] == Wall
}

// StartPos is the fixed entry cell
func (g *Grid) StartPos() Position {
	return Position{X: 1, Y: 1}
}

// EndPos is the fixed goal cell in the opposite corner
func (g *Grid) EndPos() Position {
	return Position{X: g.width - 2, Y: g.height - 2}
}

// Row returns a copy of row y
func (g *Grid) Row(y int) []Cell {
	row := make([]Cell, g.width)
	copy(row, g.cells[y])
	return row
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Count returns how many cells hold c
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}
