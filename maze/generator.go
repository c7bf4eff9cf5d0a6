package maze

import (
	"math/rand"
	"time"
)

const (
	BaseWidth  = 16
	BaseHeight = 16
	LevelStep  = 10 // Growth per level above 1
	MaxLevel   = 3
)

// Config controls a single generation run
type Config struct {
	Level int

	// PassageWidth is accepted for compatibility, passages are always one cell wide
	PassageWidth int

	Rand *rand.Rand // Optional (nil = clock-seeded)
}

// Dimensions returns the grid size for a level, unknown levels get the base size
func Dimensions(level int) (width, height int) {
	if level < 1 || level > MaxLevel {
		level = 1
	}
	step := (level - 1) * LevelStep
	return BaseWidth + step, BaseHeight + step
}

// Generate builds a maze for level using a clock-seeded source
func Generate(level int) *Grid {
	return GenerateWith(Config{Level: level})
}

// GenerateWith builds a maze by recursive backtracking from the start cell
func GenerateWith(cfg Config) *Grid {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 1. Solid grid with fixed endpoints
	width, height := Dimensions(cfg.Level)
	grid := NewGrid(width, height)
	start, end := grid.StartPos(), grid.EndPos()
	grid.Set(start, Start)
	grid.Set(end, End)

	// 2. Spanning tree over the odd-coordinate rooms
	carve(grid, start, rng)

	// 3. Open the goal's neighbours, the tree only reaches odd rooms and End may sit on even ones
	for _, d := range steps {
		if p := end.Add(d); grid.Interior(p) {
			grid.Set(p, Path)
		}
	}

	return grid
}

var (
	steps = []Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	jumps = []Position{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}
)

func carve(grid *Grid, curr Position, rng *rand.Rand) {
	order := make([]Position, len(jumps))
	copy(order, jumps)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, d := range order {
		next := curr.Add(d)
		if !grid.IsCarvable(next) {
			continue
		}
		grid.Set(Position{X: curr.X + d.X/2, Y: curr.Y + d.Y/2}, Path)
		grid.Set(next, Path)
		carve(grid, next, rng)
	}
}
