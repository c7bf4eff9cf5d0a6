package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when stdin can't be switched to raw mode
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrInterrupt is returned when the user presses Ctrl-C during a read
	ErrInterrupt = errors.New("interrupted")
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// rawMode switches a terminal into raw mode and returns the function restoring it
type rawMode interface {
	enter() (restore func() error, err error)
}

type fdMode int

func (m fdMode) enter() (func() error, error) {
	old, err := term.MakeRaw(int(m))
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(int(m), old) }, nil
}

// KeyReader reads one keypress at a time with echo and line buffering off
type KeyReader struct {
	in   io.Reader
	mode rawMode
	buf  [1]byte
}

// NewKeyReader checks that in is an interactive terminal
func NewKeyReader(in *os.File) (*KeyReader, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &KeyReader{in: in, mode: fdMode(fd)}, nil
}

// ReadKey blocks until a single byte arrives
// Ctrl-C yields ErrInterrupt and Ctrl-D yields io.EOF, since raw mode swallows both signals
func (k *KeyReader) ReadKey() (r rune, err error) {
	restore, err := k.mode.enter()
	if err != nil {
		return 0, fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}()

	for {
		n, err := k.in.Read(k.buf[:])
		if n == 1 {
			return decodeKey(k.buf[0])
		}
		if err != nil {
			return 0, err
		}
	}
}

func decodeKey(b byte) (rune, error) {
	switch b {
	case keyCtrlC:
		return 0, ErrInterrupt
	case keyCtrlD:
		return 0, io.EOF
	default:
		return rune(b), nil
	}
}
