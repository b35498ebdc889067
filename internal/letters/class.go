package letters

// Class identifies one of the three letter classes
type Class int

const (
	// HardConsonants is also the class for letters found in no table
	HardConsonants Class = iota
	Vowels
	SoftConsonants
)

var (
	vowels         = []byte{'a', 'e', 'i', 'o', 'u', 'y'}
	hardConsonants = []byte{'b', 'c', 'd', 'g', 'j', 'k', 'p', 'q', 't', 'x'}
	softConsonants = []byte{'f', 'h', 'l', 'm', 'n', 'r', 's', 'v', 'w', 'z'}
)

// Classes returns every class in a stable order
func Classes() []Class {
	return []Class{Vowels, HardConsonants, SoftConsonants}
}

// Classify returns the class of letter.
//
// Hard consonants are the default bucket. Vowel membership overrides it and
// soft consonant membership is checked last, so it wins if a letter were
// ever listed in more than one table. The tables are disjoint today.
func Classify(letter byte) Class {
	class := HardConsonants
	if contains(vowels, letter) {
		class = Vowels
	}
	if contains(softConsonants, letter) {
		class = SoftConsonants
	}
	return class
}

// Letters returns a copy of the ordered letters of the class
func (c Class) Letters() []byte {
	table := c.table()
	out := make([]byte, len(table))
	copy(out, table)
	return out
}

// Len returns the number of letters in the class
func (c Class) Len() int {
	return len(c.table())
}

// At returns the letter at position i, wrapping around the class in
// both directions
func (c Class) At(i int) byte {
	table := c.table()
	n := len(table)
	return table[((i%n)+n)%n]
}

// Index returns the position of letter in the class, or -1
func (c Class) Index(letter byte) int {
	for i, l := range c.table() {
		if l == letter {
			return i
		}
	}
	return -1
}

// Contains reports whether letter belongs to the class table
func (c Class) Contains(letter byte) bool {
	return c.Index(letter) >= 0
}

func (c Class) String() string {
	switch c {
	case Vowels:
		return "vowels"
	case SoftConsonants:
		return "soft-consonants"
	default:
		return "hard-consonants"
	}
}

func (c Class) table() []byte {
	switch c {
	case Vowels:
		return vowels
	case SoftConsonants:
		return softConsonants
	default:
		return hardConsonants
	}
}

func contains(table []byte, letter byte) bool {
	for _, l := range table {
		if l == letter {
			return true
		}
	}
	return false
}
