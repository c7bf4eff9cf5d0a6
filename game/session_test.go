package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-maze/input"
	"github.com/lixenwraith/vi-maze/maze"
)

// mockClock advances by step on every reading
type mockClock struct {
	now  time.Time
	step time.Duration
}

func (c *mockClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// corridor builds
//
//	######
//	#S   #
//	# ## #
//	#   E#
//	######
func corridor() *maze.Grid {
	g := maze.NewGrid(6, 5)
	open := []maze.Position{
		{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1},
		{X: 1, Y: 2}, {X: 4, Y: 2},
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}
	for _, p := range open {
		g.Set(p, maze.Path)
	}
	g.Set(g.StartPos(), maze.Start)
	g.Set(g.EndPos(), maze.End)
	return g
}

func TestSession_StartsOnStart(t *testing.T) {
	s := NewSession(corridor(), nil, nil)
	if s.Player() != (maze.Position{X: 1, Y: 1}) {
		t.Errorf("player at %v", s.Player())
	}
	if s.State() != StatePlaying {
		t.Errorf("state %v", s.State())
	}
}

func TestSession_Press(t *testing.T) {
	tests := []struct {
		name  string
		key   rune
		want  maze.Position
		moved bool
	}{
		{"down into path", 's', maze.Position{X: 1, Y: 2}, true},
		{"right into path", 'd', maze.Position{X: 2, Y: 1}, true},
		{"left into border", 'a', maze.Position{X: 1, Y: 1}, false},
		{"up into border", 'w', maze.Position{X: 1, Y: 1}, false},
		{"unbound key", 'q', maze.Position{X: 1, Y: 1}, false},
		{"uppercase is unbound", 'S', maze.Position{X: 1, Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(corridor(), nil, nil)
			moved := s.Press(tt.key)
			if moved != tt.moved || s.Player() != tt.want {
				t.Errorf("Press(%q) = %v at %v, want %v at %v", tt.key, moved, s.Player(), tt.moved, tt.want)
			}
		})
	}
}

func TestSession_BlockedByInteriorWall(t *testing.T) {
	s := NewSession(corridor(), nil, nil)
	s.Press('d') // (2,1)
	if s.Press('s') {
		t.Error("moved into interior wall at (2,2)")
	}
	if s.Moves() != 1 {
		t.Errorf("moves = %d, want 1", s.Moves())
	}
}

func TestSession_CanEnterBounds(t *testing.T) {
	s := NewSession(corridor(), nil, nil)
	for _, p := range []maze.Position{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 6, Y: 1}, {X: 1, Y: 5}, {X: -1, Y: -1}} {
		if s.CanEnter(p) {
			t.Errorf("CanEnter(%v) = true", p)
		}
	}
	if !s.CanEnter(maze.Position{X: 4, Y: 3}) {
		t.Error("end cell should be enterable")
	}
}

func TestSession_WinsOnEnd(t *testing.T) {
	s := NewSession(corridor(), nil, nil)
	for _, k := range "ddds" {
		s.Press(k)
		if s.State() != StatePlaying {
			t.Fatalf("won early at %v", s.Player())
		}
	}
	if !s.Press('s') {
		t.Fatal("final step rejected")
	}
	if s.State() != StateWon {
		t.Fatalf("state %v at %v, want won", s.State(), s.Player())
	}
	if s.Press('w') {
		t.Error("moved after win")
	}
}

func TestSession_CustomKeys(t *testing.T) {
	keys := input.KeyMap{'j': input.DirDown}
	s := NewSession(corridor(), keys, nil)
	if s.Press('s') {
		t.Error("default key active with custom map")
	}
	if !s.Press('j') {
		t.Error("custom key ignored")
	}
}

func TestSession_StopFreezesElapsed(t *testing.T) {
	clock := &mockClock{now: time.Unix(1000, 0), step: 1500 * time.Millisecond}
	s := NewSession(corridor(), nil, clock)
	s.Start()
	if got := s.Stop(); got != 1500*time.Millisecond {
		t.Errorf("elapsed %v", got)
	}
	if got := s.Stop(); got != 1500*time.Millisecond {
		t.Errorf("second Stop changed elapsed to %v", got)
	}
}
