package terminal

import (
	"io"
	"os"
)

var (
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiSGR0       = []byte("\x1b[0m")
	csiCursorShow = []byte("\x1b[?25h")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
)

// ClearScreen erases the visible screen and homes the cursor
func ClearScreen(w io.Writer) error {
	_, err := w.Write(csiClear)
	return err
}

// ClearSequence returns the bytes ClearScreen writes
func ClearSequence() []byte {
	return append([]byte(nil), csiClear...)
}

// EmergencyReset restores a sane terminal state after a crash
// Safe to call with stdin in any mode
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
