package game

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/vi-maze/maze"
)

// Renderer draws one full frame
type Renderer interface {
	Render(g *maze.Grid, player maze.Position) error
}

// KeySource blocks until the next keypress
type KeySource interface {
	ReadKey() (rune, error)
}

// ScoreRecorder persists a finished run time
type ScoreRecorder interface {
	Record(seconds float64) error
}

// WinNotifier is told about a win after the score is persisted
type WinNotifier interface {
	Won(elapsed time.Duration)
}

// Result summarizes a won run
type Result struct {
	Elapsed time.Duration
	Moves   int

	// ScoreErr is set when persisting failed, the win itself stands
	ScoreErr error
}

// Seconds returns the elapsed time as fractional seconds
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Loop drives render, read and move until the session is won
type Loop struct {
	renderer Renderer
	keys     KeySource
	scores   ScoreRecorder
	notifier WinNotifier
}

// NewLoop wires a frontend to a score store, scores may be nil
func NewLoop(r Renderer, k KeySource, scores ScoreRecorder) *Loop {
	return &Loop{renderer: r, keys: k, scores: scores}
}

// SetNotifier registers a hook run once per win
func (l *Loop) SetNotifier(n WinNotifier) {
	l.notifier = n
}

// Run plays s to completion
// A key source error aborts the run, nothing is recorded and the error is returned wrapped
func (l *Loop) Run(s *Session) (Result, error) {
	s.Start()

	for s.State() == StatePlaying {
		if err := l.renderer.Render(s.Grid(), s.Player()); err != nil {
			return Result{}, fmt.Errorf("render: %w", err)
		}
		r, err := l.keys.ReadKey()
		if err != nil {
			s.Stop()
			return Result{Elapsed: s.Elapsed(), Moves: s.Moves()}, fmt.Errorf("read key: %w", err)
		}
		s.Press(r)
	}

	// Final frame shows the player on the goal
	if err := l.renderer.Render(s.Grid(), s.Player()); err != nil {
		log.Printf("final render failed: %v", err)
	}
	elapsed := s.Stop()

	res := Result{Elapsed: elapsed, Moves: s.Moves()}
	if l.scores != nil {
		if err := l.scores.Record(res.Seconds()); err != nil {
			log.Printf("score not saved: %v", err)
			res.ScoreErr = err
		}
	}
	if l.notifier != nil {
		l.notifier.Won(elapsed)
	}
	log.Printf("run won in %.3fs, %d moves", res.Seconds(), res.Moves)
	return res, nil
}
