package game

import (
	"time"

	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/maze"
)

// State of a run
type State uint8

const (
	StatePlaying State = iota
	StateWon           // Terminal
)

func (s State) String() string {
	if s == StateWon {
		return "won"
	}
	return "playing"
}

// Session is one attempt at one maze
// The player is tracked here, the grid is never written after generation
type Session struct {
	grid   *maze.Grid
	player maze.Position
	keys   input.KeyMap
	clock  TimeProvider

	state     State
	moves     int
	startedAt time.Time
	elapsed   time.Duration
	running   bool
}

// NewSession places the player on the start cell
// A nil keymap selects the defaults and a nil clock the system clock
func NewSession(grid *maze.Grid, keys input.KeyMap, clock TimeProvider) *Session {
	if keys == nil {
		keys = input.DefaultKeyMap()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Session{
		grid:   grid,
		player: grid.StartPos(),
		keys:   keys,
		clock:  clock,
	}
}

func (s *Session) Grid() *maze.Grid       { return s.grid }
func (s *Session) Player() maze.Position  { return s.player }
func (s *Session) State() State           { return s.state }
func (s *Session) Moves() int             { return s.moves }
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Start begins timing
func (s *Session) Start() {
	s.startedAt = s.clock.Now()
	s.running = true
}

// Stop freezes the elapsed time, later calls are no-ops
func (s *Session) Stop() time.Duration {
	if s.running {
		s.elapsed = s.clock.Now().Sub(s.startedAt)
		s.running = false
	}
	return s.elapsed
}

// CanEnter reports whether the player may step onto p
// Row and column 0 are rejected outright, they are always border wall
func (s *Session) CanEnter(p maze.Position) bool {
	if p.X <= 0 || p.X >= s.grid.Width() || p.Y <= 0 || p.Y >= s.grid.Height() {
		return false
	}
	return s.grid.At(p).Walkable()
}

// Press applies one keypress and reports whether the player moved
// Unbound keys and blocked moves leave the position unchanged
// Stepping onto the end cell switches the session to StateWon
func (s *Session) Press(r rune) bool {
	if s.state == StateWon {
		return false
	}
	dir := s.keys.Lookup(r)
	if dir == input.DirNone {
		return false
	}

	next := s.player.Add(dir.Vector())
	if !s.CanEnter(next) {
		return false
	}
	s.player = next
	s.moves++

	if s.grid.At(next) == maze.End {
		s.state = StateWon
	}
	return true
}
