package letters

import (
	"sort"
	"strings"
)

// ExclusionSet holds letters that must never be produced.
// It is built once and never modified afterwards.
type ExclusionSet struct {
	letters map[byte]struct{}
}

// NewExclusionSet builds a set from every byte of s. Duplicates are ignored.
func NewExclusionSet(s string) ExclusionSet {
	set := ExclusionSet{letters: make(map[byte]struct{}, len(s))}
	for i := 0; i < len(s); i++ {
		set.letters[s[i]] = struct{}{}
	}
	return set
}

// Contains reports whether letter is excluded
func (e ExclusionSet) Contains(letter byte) bool {
	_, ok := e.letters[letter]
	return ok
}

// Len returns the number of distinct excluded letters
func (e ExclusionSet) Len() int {
	return len(e.letters)
}

// Covers reports whether every letter of the class is excluded
func (e ExclusionSet) Covers(c Class) bool {
	for _, l := range c.table() {
		if !e.Contains(l) {
			return false
		}
	}
	return true
}

// Allowed returns the letters of the class that are not excluded, in class order
func (e ExclusionSet) Allowed(c Class) []byte {
	var out []byte
	for _, l := range c.table() {
		if !e.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// String returns the excluded letters sorted
func (e ExclusionSet) String() string {
	out := make([]string, 0, len(e.letters))
	for l := range e.letters {
		out = append(out, string(l))
	}
	sort.Strings(out)
	return strings.Join(out, "")
}
