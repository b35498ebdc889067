package internal

// Version is the current release of wordmutate
const Version = "0.1.0"

// IsLowercaseWord reports whether s is non-empty and made only of
// lowercase ASCII letters
func IsLowercaseWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLowercaseLetter(s[i]) {
			return false
		}
	}
	return true
}

// isLowercaseLetter checks if a byte is in a-z
func isLowercaseLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
