package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-maze/score"
)

func TestScoresCommand_ListsFastestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	store := score.NewStore(path)
	for _, v := range []float64{42.5, 9.25, 17} {
		if err := store.Record(v); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{"vi-maze", "--scores", path, "scores", "--top", "2"})
	if err != nil {
		t.Fatalf("scores command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "9.250s") || !strings.Contains(lines[1], "17.000s") {
		t.Errorf("unexpected listing:\n%s", out.String())
	}
}

func TestScoresCommand_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	var out bytes.Buffer
	if err := newApp(&out).Run(context.Background(), []string{"vi-maze", "--scores", path, "scores"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No scores recorded") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestPlay_RejectsUnknownUI(t *testing.T) {
	err := newApp(&bytes.Buffer{}).Run(context.Background(), []string{"vi-maze", "--ui", "gui"})
	if err == nil || !strings.Contains(err.Error(), "unknown ui") {
		t.Errorf("expected unknown ui error, got %v", err)
	}
}

func TestPlay_RejectsBadKeymap(t *testing.T) {
	err := newApp(&bytes.Buffer{}).Run(context.Background(), []string{"vi-maze", "--keys", filepath.Join(t.TempDir(), "nope.toml")})
	if err == nil || !strings.Contains(err.Error(), "keymap read") {
		t.Errorf("expected keymap error, got %v", err)
	}
}
