package mutation

import (
	"fmt"

	"codeberg.org/snonux/wordmutate/internal/letters"
)

// Func transforms one word into the next
type Func func(word string) (string, error)

// Engine applies mutations to words. It holds no per-word state, so the same
// engine serves every iteration of a run.
type Engine struct {
	exclude letters.ExclusionSet
	random  Random
}

// NewEngine creates an engine that never produces letters from exclude
func NewEngine(exclude letters.ExclusionSet, random Random) *Engine {
	return &Engine{
		exclude: exclude,
		random:  random,
	}
}

// Mutator returns the transform for the given strategy
func (e *Engine) Mutator(s Strategy) (Func, error) {
	switch s {
	case RotateRandomLetter:
		return e.RotateRandomLetter, nil
	case RotateWord:
		return e.RotateWord, nil
	case RandomizeWord:
		return e.RandomizeWord, nil
	case RandomizeRandomLetter:
		return e.RandomizeRandomLetter, nil
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownStrategy, s)
	}
}

// RotateLetter returns the successor of letter in its class, skipping
// excluded letters. It fails with ErrExhaustedClass when the search comes
// back around to letter itself.
func (e *Engine) RotateLetter(letter byte) (byte, error) {
	class := letters.Classify(letter)
	pos := class.Index(letter)

	for step := 1; step <= class.Len(); step++ {
		candidate := class.At(pos + step)
		if candidate == letter {
			break
		}
		if !e.exclude.Contains(candidate) {
			return candidate, nil
		}
	}

	return 0, fmt.Errorf("%w: no replacement for %q in %s", ErrExhaustedClass, letter, class)
}

// PickRandomLetter returns a uniformly random non-excluded letter from the
// class of letter. The result may equal letter.
func (e *Engine) PickRandomLetter(letter byte) (byte, error) {
	class := letters.Classify(letter)
	allowed := e.exclude.Allowed(class)
	if len(allowed) == 0 {
		return 0, fmt.Errorf("%w: no replacement for %q in %s", ErrClassFullyExcluded, letter, class)
	}
	return allowed[e.random.Intn(len(allowed))], nil
}

// RotateWord rotates every letter of word
func (e *Engine) RotateWord(word string) (string, error) {
	return e.eachLetter(word, e.RotateLetter)
}

// RandomizeWord replaces every letter of word with a random one of its class
func (e *Engine) RandomizeWord(word string) (string, error) {
	return e.eachLetter(word, e.PickRandomLetter)
}

// RotateRandomLetter rotates one randomly chosen letter of word
func (e *Engine) RotateRandomLetter(word string) (string, error) {
	return e.randomLetter(word, e.RotateLetter)
}

// RandomizeRandomLetter replaces one randomly chosen letter of word
func (e *Engine) RandomizeRandomLetter(word string) (string, error) {
	return e.randomLetter(word, e.PickRandomLetter)
}

func (e *Engine) eachLetter(word string, replace func(byte) (byte, error)) (string, error) {
	if word == "" {
		return "", ErrEmptyWord
	}

	out := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		l, err := replace(word[i])
		if err != nil {
			return "", err
		}
		out[i] = l
	}
	return string(out), nil
}

func (e *Engine) randomLetter(word string, replace func(byte) (byte, error)) (string, error) {
	if word == "" {
		return "", ErrEmptyWord
	}

	index := e.random.Intn(len(word))
	l, err := replace(word[index])
	if err != nil {
		return "", err
	}

	out := []byte(word)
	out[index] = l
	return string(out), nil
}
