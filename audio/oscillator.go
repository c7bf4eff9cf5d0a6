package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// oscillator generates a sine tone with a linear fade-out
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
	volume   float64
}

// NewTone creates a finite sine streamer
func NewTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
		volume:   volume,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		// Fade to silence over the tone to avoid a click at the cut
		fade := 1.0 - float64(o.position)/float64(o.duration)
		val := math.Sin(2*math.Pi*o.phase) * o.volume * fade

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
