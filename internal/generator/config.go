package generator

import (
	"fmt"
	"time"

	"codeberg.org/snonux/wordmutate/internal"
	"codeberg.org/snonux/wordmutate/internal/cli"
	"codeberg.org/snonux/wordmutate/internal/letters"
	"codeberg.org/snonux/wordmutate/internal/mutation"
)

// Config is the run configuration. It is built once from the command line
// and not modified afterwards.
type Config struct {
	Word     string
	Prefix   string
	Suffix   string
	Number   int
	Exclude  letters.ExclusionSet
	Strategy mutation.Strategy
	Seed     int64
}

// NewConfig validates the flags and turns them into a Config.
// The seed word is optional in batch mode. A negative number generates
// no words.
func NewConfig(flags *cli.Flags) (Config, error) {
	strategy, err := mutation.ParseStrategy(flags.Strategy)
	if err != nil {
		return Config{}, err
	}

	if flags.BatchFile == "" || flags.Word != "" {
		if err := ValidateWord(flags.Word); err != nil {
			return Config{}, err
		}
	}

	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Config{
		Word:     flags.Word,
		Prefix:   flags.Prefix,
		Suffix:   flags.Suffix,
		Number:   flags.Number,
		Exclude:  letters.NewExclusionSet(flags.Exclude),
		Strategy: strategy,
		Seed:     seed,
	}, nil
}

// ValidateWord checks that word can be used as a seed
func ValidateWord(word string) error {
	if word == "" {
		return ErrMissingWord
	}
	if !internal.IsLowercaseWord(word) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return nil
}
