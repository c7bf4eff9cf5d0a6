// Package terminal reads single keypresses from an interactive terminal.
//
// Raw mode (no echo, no line buffering) is held only for the duration of one
// read and restored on every exit path, so normal line discipline applies
// while the frame is printed.
package terminal
