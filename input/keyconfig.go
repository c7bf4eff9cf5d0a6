package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Rune aliases for keys that can't be written as a bare single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyConfig mirrors the [move] section of a keymap file
type keyConfig struct {
	Move struct {
		Up    string `toml:"up"`
		Down  string `toml:"down"`
		Left  string `toml:"left"`
		Right string `toml:"right"`
	} `toml:"move"`
}

// LoadKeyConfig parses TOML keymap data and merges it over the default bindings
// Missing entries keep their default key
// Returns error on parse failure, invalid key names, or two directions sharing a key
func LoadKeyConfig(data []byte) (KeyMap, error) {
	var cfg keyConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	defaults := map[Direction]rune{}
	for r, d := range DefaultKeyMap() {
		defaults[d] = r
	}

	entries := []struct {
		dir Direction
		key string
	}{
		{DirUp, cfg.Move.Up},
		{DirDown, cfg.Move.Down},
		{DirLeft, cfg.Move.Left},
		{DirRight, cfg.Move.Right},
	}

	km := make(KeyMap, len(entries))
	for _, e := range entries {
		r := defaults[e.dir]
		if e.key != "" {
			var err error
			if r, err = resolveRune(e.key); err != nil {
				return nil, fmt.Errorf("[move] %s: %w", e.dir, err)
			}
		}
		if prev, taken := km[r]; taken {
			return nil, fmt.Errorf("[move] %s: key %q already bound to %s", e.dir, r, prev)
		}
		km[r] = e.dir
	}

	return km, nil
}

// LoadKeyFile reads a keymap file, an empty path yields the defaults
func LoadKeyFile(path string) (KeyMap, error) {
	if path == "" {
		return DefaultKeyMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	return LoadKeyConfig(data)
}

// resolveRune converts a TOML value to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character or alias)", s)
}
