package generator

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"codeberg.org/snonux/wordmutate/internal/letters"
	"codeberg.org/snonux/wordmutate/internal/mutation"
)

// separator follows every generated word
const separator = " "

// Generator produces sequences of mutated words
type Generator struct {
	cfg    Config
	mutate mutation.Func
	logger *zap.Logger
}

// New creates a generator for cfg. The strategy is resolved here, once,
// so the iteration loop never looks at it again.
func New(cfg Config, random mutation.Random, logger *zap.Logger) (*Generator, error) {
	engine := mutation.NewEngine(cfg.Exclude, random)
	mutate, err := engine.Mutator(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	for _, class := range letters.Classes() {
		if cfg.Exclude.Covers(class) {
			logger.Warn("Exclusion set covers a whole letter class, words using it will fail",
				zap.String("class", class.String()),
				zap.String("exclude", cfg.Exclude.String()))
		}
	}

	return &Generator{
		cfg:    cfg,
		mutate: mutate,
		logger: logger,
	}, nil
}

// Run generates words from the configured seed and writes them to w
func (g *Generator) Run(w io.Writer) error {
	return g.RunWord(w, g.cfg.Word)
}

// RunWord generates words from seed and writes them to w as one line.
// Words produced before a failing iteration are still written, but the
// terminating newline is not.
func (g *Generator) RunWord(w io.Writer, seed string) error {
	if err := ValidateWord(seed); err != nil {
		return err
	}

	g.logger.Debug("Generating words",
		zap.String("seed", seed),
		zap.Stringer("strategy", g.cfg.Strategy),
		zap.Int("number", g.cfg.Number),
		zap.String("exclude", g.cfg.Exclude.String()),
		zap.Int64("random_seed", g.cfg.Seed))

	out := bufio.NewWriter(w)
	word := seed

	for i := 0; i < g.cfg.Number; i++ {
		next, err := g.mutate(word)
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				g.logger.Warn("Failed to flush output", zap.Error(flushErr))
			}
			return fmt.Errorf("iteration %d of %q: %w", i+1, word, err)
		}

		g.logger.Debug("Mutated word",
			zap.Int("iteration", i+1),
			zap.String("from", word),
			zap.String("to", next))
		word = next

		out.WriteString(g.cfg.Prefix)
		out.WriteString(word)
		out.WriteString(g.cfg.Suffix)
		out.WriteString(separator)
	}

	out.WriteString("\n")
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// RunBatch runs the loop once per seed, each on its own output line.
// It stops at the first failing seed.
func (g *Generator) RunBatch(w io.Writer, seeds []string) error {
	for i, seed := range seeds {
		g.logger.Debug("Processing seed", zap.Int("index", i+1), zap.Int("total", len(seeds)))
		if err := g.RunWord(w, seed); err != nil {
			return fmt.Errorf("seed %d/%d: %w", i+1, len(seeds), err)
		}
	}
	return nil
}

// Words returns the sequence generated from seed without decoration
func (g *Generator) Words(seed string) ([]string, error) {
	if err := ValidateWord(seed); err != nil {
		return nil, err
	}

	var words []string
	word := seed
	for i := 0; i < g.cfg.Number; i++ {
		next, err := g.mutate(word)
		if err != nil {
			return words, fmt.Errorf("iteration %d of %q: %w", i+1, word, err)
		}
		words = append(words, next)
		word = next
	}
	return words, nil
}
