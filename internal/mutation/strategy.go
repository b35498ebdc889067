package mutation

import (
	"fmt"
	"strings"
)

// Strategy selects how a word is mutated on each iteration
type Strategy int

const (
	// RotateRandomLetter moves one random letter to its class successor
	RotateRandomLetter Strategy = iota
	// RotateWord moves every letter to its class successor
	RotateWord
	// RandomizeWord replaces every letter with a random one of its class
	RandomizeWord
	// RandomizeRandomLetter replaces one random letter with a random one of its class
	RandomizeRandomLetter
)

// DefaultStrategy is used when no strategy is configured
const DefaultStrategy = RandomizeRandomLetter

var strategyNames = map[Strategy]string{
	RotateRandomLetter:    "rotate-random-letter",
	RotateWord:            "rotate-word",
	RandomizeWord:         "randomize-word",
	RandomizeRandomLetter: "randomize-random-letter",
}

// Strategies returns the names of all strategies in declaration order
func Strategies() []string {
	return []string{
		RotateRandomLetter.String(),
		RotateWord.String(),
		RandomizeWord.String(),
		RandomizeRandomLetter.String(),
	}
}

// ParseStrategy maps a strategy name to its Strategy
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q (one of %s)", ErrUnknownStrategy, name, strings.Join(Strategies(), ", "))
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}
