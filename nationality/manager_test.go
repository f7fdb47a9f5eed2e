package nationality

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nationalities.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error writing list: %v", err)
	}
	return path
}

func TestLoadTrimsSkipsAndDeduplicates(t *testing.T) {
	m := NewManager(writeList(t, "  Dutch  \n\nFrench\ndutch\nAmerican\n"))
	if err := m.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	available, err := m.Available()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Dutch", "French", "American"}
	if len(available) != len(want) {
		t.Fatalf("unexpected list: %v", available)
	}
	for i, entry := range want {
		if available[i] != entry {
			t.Fatalf("entry %d: got %q, want %q", i, available[i], entry)
		}
	}
}

func TestValidIsCaseInsensitive(t *testing.T) {
	m := NewManager(writeList(t, "Dutch\nFrench\n"))
	if err := m.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, ok := range []string{"Dutch", "dutch", "  DUTCH "} {
		if !m.Valid(ok) {
			t.Fatalf("%q rejected", ok)
		}
	}
	if m.Valid("Martian") {
		t.Fatalf("unknown nationality accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.txt"))
	if err := m.Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	m := NewManager(writeList(t, "\n  \n"))
	if err := m.Load(); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestAvailableBeforeLoad(t *testing.T) {
	m := NewManager("whatever.txt")
	if _, err := m.Available(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if m.Valid("Dutch") {
		t.Fatalf("validation succeeded before load")
	}
}

func TestAvailableReturnsCopy(t *testing.T) {
	m := NewManager(writeList(t, "Dutch\nFrench\n"))
	if err := m.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := m.Available()
	first[0] = "mutated"
	second, _ := m.Available()
	if second[0] != "Dutch" {
		t.Fatalf("caller mutation leaked into manager state")
	}
}
