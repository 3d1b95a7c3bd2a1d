package protolens

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/anirudhraja/protolens/config"
)

// ReadInput reads at most limit payload bytes from r and decodes them
// according to format (raw, hex or base64). Whitespace is ignored in the
// text formats.
func ReadInput(r io.Reader, format string, limit int64) ([]byte, error) {
	readLimit := limit
	if format != config.InputRaw {
		// Text encodings need more source bytes than they produce.
		readLimit = limit*2 + 1024
	}
	src, err := io.ReadAll(io.LimitReader(r, readLimit+1))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if int64(len(src)) > readLimit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}

	var data []byte
	switch format {
	case config.InputRaw:
		data = src
	case config.InputHex:
		data, err = hex.DecodeString(stripSpace(string(src)))
	case config.InputBase64:
		s := stripSpace(string(src))
		data, err = base64.StdEncoding.DecodeString(s)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s input: %w", format, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, len(data), limit)
	}
	return data, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
