package spell

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"strings"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-spellcheck-trie"
)

// DefaultMaxLineLength is the longest dictionary line accepted by default.
const DefaultMaxLineLength = 1 << 20

// Stats describes a completed or partial dictionary load.
type Stats struct {
	// Lines is the number of lines passed to Insert.
	Lines int
	// Blank counts the lines that were empty after trimming.
	Blank       int
	Encoding    string
	Compression string
}

type loadOptions struct {
	logger        zerolog.Logger
	encoding      string
	maxLineLength int
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithLogger sets the logger used to report the load. By default nothing is
// logged.
func WithLogger(logger zerolog.Logger) LoadOption {
	return func(o *loadOptions) { o.logger = logger }
}

// WithEncoding sets the charset of the source, using WHATWG names such as
// "utf-8", "utf-16le" or "iso-8859-1". EncodingAuto, the default, detects it.
func WithEncoding(name string) LoadOption {
	return func(o *loadOptions) { o.encoding = name }
}

// WithMaxLineLength sets the longest line accepted before the load fails.
func WithMaxLineLength(n int) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.maxLineLength = n
		}
	}
}

// Load reads newline-delimited words from src into t. Each line is trimmed and
// lowercased before insertion. Any failure is returned as a *LoadError and the
// words read up to that point remain in t.
func Load(t *trie.Trie, src Source, opts ...LoadOption) (Stats, error) {
	o := loadOptions{
		logger:        zerolog.Nop(),
		encoding:      EncodingAuto,
		maxLineLength: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var stats Stats
	if src == nil {
		return stats, &LoadError{Source: "", Err: ErrNoSource}
	}
	logger := o.logger.With().Str("source", src.Name()).Logger()
	logger.Debug().Str("encoding", o.encoding).Msg("Loading dictionary")

	fail := func(err error) (Stats, error) {
		loadErr := &LoadError{Source: src.Name(), Line: stats.Lines, Err: err}
		logger.Error().Err(err).Int("lines", stats.Lines).Msg("Failed to load dictionary")
		return stats, loadErr
	}

	rc, err := src.Open()
	if err != nil {
		return fail(err)
	}
	defer rc.Close()

	r, compression, err := decompress(src.Name(), rc)
	stats.Compression = compression
	if err != nil {
		return fail(err)
	}
	if zr, ok := r.(*gzip.Reader); ok {
		defer zr.Close()
	}

	r, stats.Encoding, err = decodeCharset(r, o.encoding, logger)
	if err != nil {
		return fail(err)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, o.maxLineLength)), o.maxLineLength)
	scanner.Split(scanLines)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			stats.Blank++
		}
		t.Insert(word)
		stats.Lines++
	}
	if err := scanner.Err(); err != nil {
		return fail(err)
	}

	logger.Info().
		Int("lines", stats.Lines).
		Int("blank", stats.Blank).
		Int("words", t.Len()).
		Str("encoding", stats.Encoding).
		Str("compression", stats.Compression).
		Msg("Loaded dictionary")
	return stats, nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a lone
// "\r". The terminator is not part of the returned line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// a trailing '\r' may still be followed by '\n'
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
