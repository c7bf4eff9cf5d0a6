// Package score persists completed run times in a flat, append-only text log
package score

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// DefaultFile is the log name used in the working directory
const DefaultFile = "scores.txt"

// ErrEmpty is returned when the log holds no scores
var ErrEmpty = errors.New("no scores recorded")

// Store appends one line per win, holding the elapsed seconds
type Store struct {
	path string
}

// NewStore returns a store over path, an empty path selects DefaultFile
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the log location
func (s *Store) Path() string {
	return s.path
}

// Record appends seconds as a single line
func (s *Store) Record(seconds float64) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open score log: %w", err)
	}

	line := strconv.FormatFloat(seconds, 'g', 6, 64) + "\n"
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("write score: %w", err)
	}
	return f.Close()
}

// All returns every recorded score in file order
// Lines that don't parse as a number are skipped
func (s *Store) All() ([]float64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open score log: %w", err)
	}
	defer f.Close()

	var scores []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}
		scores = append(scores, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read score log: %w", err)
	}
	return scores, nil
}

// Last returns the most recently recorded score
func (s *Store) Last() (float64, error) {
	scores, err := s.All()
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 0, ErrEmpty
	}
	return scores[len(scores)-1], nil
}

// Best returns up to n scores, fastest first, n <= 0 returns all
func (s *Store) Best(n int) ([]float64, error) {
	scores, err := s.All()
	if err != nil {
		return nil, err
	}
	sort.Float64s(scores)
	if n > 0 && len(scores) > n {
		scores = scores[:n]
	}
	return scores, nil
}
