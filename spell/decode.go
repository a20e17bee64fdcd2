package spell

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/saintfish/chardet"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// EncodingAuto asks the loader to detect the charset of a source.
	EncodingAuto = "auto"

	// sniffLen is how much of a source is inspected for charset detection.
	sniffLen = 4096
	// minConfidence is the lowest chardet confidence trusted over UTF-8.
	minConfidence = 50
)

// Compression names reported in Stats.
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionXZ   = "xz"
)

// decompress wraps r according to the suffix of the source name.
func decompress(name string, r io.Reader) (io.Reader, string, error) {
	switch lower := strings.ToLower(name); {
	case strings.HasSuffix(lower, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, CompressionGzip, fmt.Errorf("gzip: %w", err)
		}
		return zr, CompressionGzip, nil
	case strings.HasSuffix(lower, ".xz"):
		zr, err := xz.NewReader(r)
		if err != nil {
			return nil, CompressionXZ, fmt.Errorf("xz: %w", err)
		}
		return zr, CompressionXZ, nil
	default:
		return r, CompressionNone, nil
	}
}

// lookupEncoding resolves a charset name such as "utf-8" or "ISO-8859-1".
func lookupEncoding(name string) (encoding.Encoding, string, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	return enc, canonical, nil
}

// detectEncoding guesses the charset of sample. It falls back to UTF-8 when
// chardet fails, is unsure, or names a charset x/text does not know.
func detectEncoding(sample []byte, logger zerolog.Logger) (encoding.Encoding, string) {
	if len(sample) == 0 {
		return unicode.UTF8, "utf-8"
	}
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		logger.Debug().Err(err).Msg("Charset detection failed, assuming UTF-8")
		return unicode.UTF8, "utf-8"
	}
	if result.Confidence < minConfidence {
		logger.Debug().
			Str("charset", result.Charset).
			Int("confidence", result.Confidence).
			Msg("Charset detection unsure, assuming UTF-8")
		return unicode.UTF8, "utf-8"
	}
	enc, canonical, err := lookupEncoding(result.Charset)
	if err != nil {
		logger.Debug().Err(err).Msg("Detected charset not supported, assuming UTF-8")
		return unicode.UTF8, "utf-8"
	}
	return enc, canonical
}

// decodeCharset returns a reader producing UTF-8 text from r. A leading
// byte-order mark always wins over the detected or configured charset.
func decodeCharset(r io.Reader, charset string, logger zerolog.Logger) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	var (
		enc       encoding.Encoding
		canonical string
	)
	if charset == "" || strings.EqualFold(charset, EncodingAuto) {
		sample, err := br.Peek(sniffLen)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, "", err
		}
		enc, canonical = detectEncoding(sample, logger)
	} else {
		var err error
		enc, canonical, err = lookupEncoding(charset)
		if err != nil {
			return nil, "", err
		}
	}
	return transform.NewReader(br, unicode.BOMOverride(enc.NewDecoder())), canonical, nil
}
