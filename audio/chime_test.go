package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := math.Abs(buf[i][0]); v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return
		}
	}
}

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	total, peak := drain(NewTone(440, 100*time.Millisecond, 0.5, rate))
	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if peak > 0.5 {
		t.Errorf("peak %v exceeds volume", peak)
	}
}

func TestMelody_Length(t *testing.T) {
	total, peak := drain(Melody())
	if want := len(winNotes) * sampleRate.N(noteLength); total != want {
		t.Errorf("melody is %d samples, want %d", total, want)
	}
	if peak == 0 {
		t.Error("melody is silent")
	}
}

func TestChime_NilSafe(t *testing.T) {
	var c *Chime
	c.Won(time.Second)
	c.Close()
}
