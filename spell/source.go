package spell

import (
	"io"
	"os"
	"strings"
)

// Source is a newline-delimited word list the loader can read from.
type Source interface {
	// Name identifies the source in logs and errors. A ".gz" or ".xz" suffix
	// marks a compressed source.
	Name() string
	// Open returns a fresh reader over the source. The caller closes it.
	Open() (io.ReadCloser, error)
}

type fileSource string

// FileSource returns a Source that reads the file at path.
func FileSource(path string) Source { return fileSource(path) }

func (f fileSource) Name() string { return string(f) }

func (f fileSource) Open() (io.ReadCloser, error) { return os.Open(string(f)) }

type readerSource struct {
	name string
	r    io.Reader
}

// ReaderSource returns a Source backed by an already opened stream. The stream
// can only be consumed once; it is closed after loading if it is an io.Closer.
func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Open() (io.ReadCloser, error) {
	if rc, ok := s.r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(s.r), nil
}

type wordsSource []string

// WordsSource returns a Source over an in-memory word list, one word per entry.
func WordsSource(words ...string) Source { return wordsSource(words) }

func (w wordsSource) Name() string { return "words" }

func (w wordsSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(strings.Join(w, "\n"))), nil
}
