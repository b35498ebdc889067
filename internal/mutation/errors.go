package mutation

import "errors"

var (
	// ErrUnknownStrategy is returned when a strategy name is not recognized
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrExhaustedClass means rotation found no letter outside the exclusion set
	ErrExhaustedClass = errors.New("exhausted letter class")
	// ErrClassFullyExcluded means every letter of a class is excluded
	ErrClassFullyExcluded = errors.New("letter class fully excluded")
	// ErrEmptyWord is returned when asked to mutate an empty word
	ErrEmptyWord = errors.New("empty word")
)
