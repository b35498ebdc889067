package generator

import "errors"

var (
	// ErrMissingWord is returned when no seed word was configured
	ErrMissingWord = errors.New("missing seed word")
	// ErrInvalidWord is returned for seed words outside lowercase a-z
	ErrInvalidWord = errors.New("seed word must contain only lowercase letters a-z")
)
