package spell

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEncoding is returned when a configured charset has no decoder.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrNoSource is returned when Load is called without a source.
	ErrNoSource = errors.New("no dictionary source")
)

// LoadError reports a dictionary source that could not be opened, decoded or
// read. Words read before the failure stay in the trie.
type LoadError struct {
	// Source is the name of the source being loaded.
	Source string
	// Line is the number of lines read before the failure, zero if reading
	// never started.
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error loading dictionary %q after line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("error loading dictionary %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
