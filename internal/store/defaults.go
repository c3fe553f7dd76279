package store

import (
	"fmt"
	"strings"
)

// Defaults is the four-line startup record: where project and G-code files
// go when the user does not say otherwise.
type Defaults struct {
	DataDir   string
	DataFile  string
	GCodeDir  string
	GCodeFile string
}

// DefaultsStore reads and rewrites the defaults record. The record is
// refreshed after every successful save, so the next session starts where
// the last one left off.
type DefaultsStore struct {
	path string
}

func NewDefaultsStore(path string) *DefaultsStore {
	return &DefaultsStore{path: path}
}

// Load best-effort reads the record; a missing file yields zero defaults.
func (s *DefaultsStore) Load() (Defaults, error) {
	b, err := readFile(s.path)
	if err != nil {
		return Defaults{}, err
	}
	if b == nil {
		return Defaults{}, nil
	}
	lines := strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	if len(lines) < 4 {
		return Defaults{}, fmt.Errorf("defaults record %s: want 4 lines, have %d", s.path, len(lines))
	}
	return Defaults{
		DataDir:   strings.TrimSpace(lines[0]),
		DataFile:  strings.TrimSpace(lines[1]),
		GCodeDir:  strings.TrimSpace(lines[2]),
		GCodeFile: strings.TrimSpace(lines[3]),
	}, nil
}

// Save rewrites the record atomically.
func (s *DefaultsStore) Save(d Defaults) error {
	text := strings.Join([]string{d.DataDir, d.DataFile, d.GCodeDir, d.GCodeFile}, "\n") + "\n"
	return writeFile(s.path, []byte(text), 0o644)
}
