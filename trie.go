package trie

import (
	"sync"
	"unicode"
)

// alphabetSize is the number of edge letters a node can carry, 'a' through 'z'.
const alphabetSize = 26

// Trie is a prefix tree of lowercase Latin words used as a spelling dictionary.
// It is safe for concurrent use, although the intended pattern is to populate it
// once and only query it afterwards.
type Trie struct {
	root  *node
	mu    sync.RWMutex
	words int
}

// node is a node in a Trie. children is indexed by letter-'a'; a nil slot means
// no stored word continues with that letter. end marks a complete word.
type node struct {
	children [alphabetSize]*node
	end      bool
}

// New creates a new empty trie.
func New() *Trie {
	return &Trie{root: new(node)}
}

// letterIndex lowercases r and returns its child slot. ok is false when the
// lowercased rune is not one of 'a'..'z'.
func letterIndex(r rune) (index int, ok bool) {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// Insert inserts words into the Trie. Letters are folded to lower case and any
// rune that does not fold to 'a'..'z' is skipped, so "Hello!" and "hello" are
// stored identically. An entry with no letters at all marks the root itself as a
// word.
func (t *Trie) Insert(entries ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range entries {
		t.insertInternal(entry)
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(entry string) {
	current := t.root
	for _, character := range entry {
		index, ok := letterIndex(character)
		if !ok {
			continue
		}
		child := current.children[index]
		if child == nil {
			child = new(node)
			current.children[index] = child
		}
		current = child
	}
	if !current.end {
		current.end = true
		t.words++
	}
}

// find walks the path spelled by s. Unlike insertion, a rune that does not fold
// to a letter ends the walk, so the lookup fails rather than skipping it.
func (t *Trie) find(s string) *node {
	current := t.root
	for _, character := range s {
		index, ok := letterIndex(character)
		if !ok {
			return nil
		}
		current = current.children[index]
		if current == nil {
			return nil
		}
	}
	return current
}

// Contains reports whether word was inserted, ignoring case. Any character
// outside the Latin alphabet makes the lookup fail.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.find(word)
	return n != nil && n.end
}

// HasPrefix reports whether at least one path in the trie starts with prefix.
// The root is always reachable, so the empty prefix is always present.
func (t *Trie) HasPrefix(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.find(prefix) != nil
}

// Len returns the number of distinct words stored in the trie.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// SuggestionsFor returns every stored word that starts with prefix, spelled as
// prefix followed by the rest of the path. Words come in pre-order: a word comes
// before its longer extensions and siblings are visited alphabetically. The
// result is never nil; it is empty when the prefix path does not exist or
// contains a non-letter.
func (t *Trie) SuggestionsFor(prefix string) []string {
	suggestions := make([]string, 0)
	for word := range t.Suggestions(prefix) {
		suggestions = append(suggestions, word)
	}
	return suggestions
}
