package spell

import (
	"strings"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-spellcheck-trie"
)

// Dictionary is the word store a Checker queries. *trie.Trie implements it.
type Dictionary interface {
	Contains(word string) bool
	SuggestionsFor(prefix string) []string
}

// Checker answers spelling questions against a loaded Dictionary.
type Checker struct {
	dict Dictionary
}

// NewChecker returns a Checker backed by d.
func NewChecker(d Dictionary) *Checker {
	return &Checker{dict: d}
}

// Open builds a dictionary from the file named in cfg and returns a Checker
// over it. If loading fails the Checker is still usable, holding whatever was
// read, and the *LoadError is returned alongside it.
func Open(cfg Config, logger zerolog.Logger) (*Checker, Stats, error) {
	t := trie.New()
	stats, err := Load(t, FileSource(cfg.Dictionary.Path),
		WithLogger(logger),
		WithEncoding(cfg.Dictionary.Encoding),
		WithMaxLineLength(cfg.Dictionary.MaxLineLength),
	)
	return NewChecker(t), stats, err
}

// IsKnown reports whether the trimmed word is in the dictionary.
func (c *Checker) IsKnown(word string) bool {
	return c.dict.Contains(strings.TrimSpace(word))
}

// SuggestionsFor returns the dictionary words that start with the whole
// trimmed word. The word is not shortened to find a stem, so a misspelling
// early in the word yields no suggestions.
func (c *Checker) SuggestionsFor(word string) []string {
	return c.dict.SuggestionsFor(strings.TrimSpace(word))
}

// CheckWord checks a single word and returns suggestions if the word is
// unknown. bool is true if the word is in the dictionary.
func (c *Checker) CheckWord(word string) ([]string, bool) {
	if c.IsKnown(word) {
		return nil, true
	}
	return c.SuggestionsFor(word), false
}
