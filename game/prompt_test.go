package game

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadLevel(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1\n", 1},
		{"2\n", 2},
		{"3\n", 3},
		{"  2  \n", 2},
		{"7\n", 7},
		{"3 extra\n", 3},
		{"abc\n", 1},
		{"\n", 1},
		{"", 1},
		{"2", 2},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := ReadLevel(bufio.NewReader(strings.NewReader(tt.input)), &out)
		if got != tt.want {
			t.Errorf("ReadLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
		if out.String() != levelPrompt {
			t.Errorf("prompt %q", out.String())
		}
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	Report(&out, Result{Elapsed: 12345 * time.Millisecond, Moves: 40})
	got := out.String()
	for _, want := range []string{"Congratulations!", "Time: 12.345 seconds", "Moves: 40"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Warning") {
		t.Error("unexpected warning")
	}

	out.Reset()
	Report(&out, Result{ScoreErr: errors.New("disk full")})
	if !strings.Contains(out.String(), "Warning: score not saved: disk full") {
		t.Errorf("missing warning:\n%s", out.String())
	}
}
