package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateSeedFile writes one seed word per line into a temp file and returns its path
func CreateSeedFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seeds.txt")
	CreateTestFile(t, path, []byte(strings.Join(lines, "\n")))
	return path
}

// DiffCount returns the number of positions at which a and b differ.
// Both words must have the same length.
func DiffCount(t *testing.T, a, b string) int {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("Length mismatch: %q (%d) vs %q (%d)", a, len(a), b, len(b))
	}

	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// AssertNoExcluded fails if word contains any byte of excluded
func AssertNoExcluded(t *testing.T, word, excluded string) {
	t.Helper()

	if i := strings.IndexAny(word, excluded); i >= 0 && excluded != "" {
		t.Errorf("Word %q contains excluded letter %q", word, word[i])
	}
}
