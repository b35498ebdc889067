package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadSeedFile reads seed words from a file, one per line.
// Supports:
// - plain words: "foobar"
// - comments: lines starting with "#" are ignored
// - blank lines and surrounding whitespace are ignored
// - Windows line endings
func ReadSeedFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return ParseSeeds(string(content)), nil
}

// ParseSeeds extracts seed words from the text of a seed file
func ParseSeeds(content string) []string {
	var seeds []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, line)
	}

	return seeds
}
