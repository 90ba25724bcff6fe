package textenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned by Parse for unknown encoding names.
var ErrUnsupportedEncoding = errors.New("unsupported output encoding")

// Encoding is one of the output encodings FinishLynx accepts.
type Encoding string

const (
	ASCII Encoding = "ascii"
	UTF8  Encoding = "utf-8"
	UTF16 Encoding = "utf-16"
)

// Supported lists the accepted encoding names.
var Supported = []Encoding{ASCII, UTF8, UTF16}

// Parse resolves a configured encoding name. Matching ignores case and
// surrounding whitespace.
func Parse(name string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(name))) {
	case ASCII:
		return ASCII, nil
	case UTF8:
		return UTF8, nil
	case UTF16:
		return UTF16, nil
	default:
		return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnsupportedEncoding, name, supportedList())
	}
}

func supportedList() string {
	names := make([]string, len(Supported))
	for i, e := range Supported {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

// asciiOnly replaces every rune outside the 7-bit range with '?'.
var asciiOnly = runes.Map(func(r rune) rune {
	if r > 0x7F {
		return '?'
	}
	return r
})

// Encode converts text into bytes of the given encoding.
// utf-8 and utf-16 output starts with a byte order mark; utf-16 is little-endian.
func Encode(enc Encoding, text string) ([]byte, error) {
	var t transform.Transformer
	switch enc {
	case ASCII:
		t = asciiOnly
	case UTF8:
		t = unicode.UTF8BOM.NewEncoder()
	case UTF16:
		t = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedEncoding, string(enc))
	}

	out, _, err := transform.Bytes(t, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode as %s: %w", enc, err)
	}
	return out, nil
}

// Decode converts file bytes into text. A UTF-8 or UTF-16 byte order mark
// selects the decoder; without one the content is read as UTF-8, with
// invalid sequences replaced.
func Decode(data []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
