// Package nationality loads the nationality list used to validate
// nationality searches. The list lives in a plain text file, one
// nationality per line.
package nationality

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrNotLoaded = errors.New("nationality: list not loaded")
	ErrEmptyFile = errors.New("nationality: file contains no entries")
)

// Manager holds the loaded list and answers validation queries against it.
// It is read-only after Load and safe for concurrent readers.
type Manager struct {
	path   string
	list   []string
	index  map[string]struct{}
	loaded bool
}

// NewManager builds a Manager for the given file path without reading it;
// call Load before using the list.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// NewManagerFromList builds an already-loaded Manager from an in-memory
// list, applying the same trimming and dedupe rules as Load.
func NewManagerFromList(entries []string) *Manager {
	m := &Manager{index: make(map[string]struct{})}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key := strings.ToLower(entry)
		if _, dup := m.index[key]; dup {
			continue
		}
		m.index[key] = struct{}{}
		m.list = append(m.list, entry)
	}
	m.loaded = len(m.list) > 0
	return m
}

// Load reads the file, trimming whitespace, skipping blank lines and
// case-insensitive duplicates. A missing or empty file is an error.
func (m *Manager) Load() error {
	f, err := os.Open(m.path)
	if err != nil {
		return fmt.Errorf("nationality: open %s: %w", m.path, err)
	}
	defer f.Close()

	var (
		list  []string
		index = make(map[string]struct{})
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" {
			continue
		}
		key := strings.ToLower(entry)
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = struct{}{}
		list = append(list, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("nationality: read %s: %w", m.path, err)
	}
	if len(list) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, m.path)
	}

	m.list = list
	m.index = index
	m.loaded = true
	return nil
}

// Available returns a copy of the loaded list in file order.
func (m *Manager) Available() ([]string, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	return append([]string(nil), m.list...), nil
}

// Valid reports whether the nationality appears in the loaded list,
// ignoring case and surrounding whitespace.
func (m *Manager) Valid(nationality string) bool {
	if !m.loaded {
		return false
	}
	_, ok := m.index[strings.ToLower(strings.TrimSpace(nationality))]
	return ok
}

// Len returns the number of loaded entries.
func (m *Manager) Len() int { return len(m.list) }
