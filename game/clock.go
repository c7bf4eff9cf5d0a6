package game

import "time"

// TimeProvider supplies wall-clock readings for timing a run
type TimeProvider interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
