package trie

import "iter"

// frame is a pending node on the enumeration stack. depth is the length of the
// word spelled up to and including letter, the edge leading to node.
type frame struct {
	node   *node
	depth  int
	letter byte
}

// Suggestions returns an iterator over the stored words that start with prefix,
// in the same order as SuggestionsFor. The walk uses an explicit stack, so very
// long words do not grow the goroutine stack.
//
// Each word is the prefix exactly as given followed by the lowercase letters of
// the path below it, so "Ca" yields "Car" and "Cart".
//
// The trie is read-locked while the iterator runs. The loop body must not call
// any method of the same Trie: Insert deadlocks outright, and a nested read
// lock deadlocks as soon as another goroutine is waiting to insert.
func (t *Trie) Suggestions(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()

		start := t.find(prefix)
		if start == nil {
			return
		}
		path := []byte(prefix)
		stack := []frame{{node: start, depth: len(path)}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.letter != 0 {
				path = append(path[:top.depth-1], top.letter)
			}
			if top.node.end && !yield(string(path)) {
				return
			}
			// push in reverse so that 'a' is popped first
			for index := alphabetSize - 1; index >= 0; index-- {
				if child := top.node.children[index]; child != nil {
					stack = append(stack, frame{node: child, depth: top.depth + 1, letter: byte('a' + index)})
				}
			}
		}
	}
}
