// Package audio plays the win chime
package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 120 * time.Millisecond
	volume     = 0.3
	maxWait    = 2 * time.Second
)

// Rising C major arpeggio
var winNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Chime plays a short arpeggio when a maze is solved
type Chime struct {
	initialized bool
}

// NewChime opens the audio device
// Returns error when no output device is available, callers continue silently
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	return &Chime{initialized: true}, nil
}

// Melody returns the chime as a single finite streamer
func Melody() beep.Streamer {
	tones := make([]beep.Streamer, 0, len(winNotes))
	for _, f := range winNotes {
		tones = append(tones, NewTone(f, noteLength, volume, sampleRate))
	}
	return beep.Seq(tones...)
}

// Won plays the chime and waits for it to finish
func (c *Chime) Won(time.Duration) {
	if c == nil || !c.initialized {
		return
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(Melody(), beep.Callback(func() { close(done) })))

	select {
	case <-done:
	case <-time.After(maxWait):
		log.Printf("chime did not finish within %v", maxWait)
	}
}

// Close releases the audio device
func (c *Chime) Close() {
	if c == nil || !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
