package fields

import (
	"strings"
)

// Tokenize splits a single line into trimmed fields.
// A double quote toggles quoted mode, a doubled quote inside quoted mode emits a
// literal quote, and a comma outside quoted mode ends the current field.
// The trailing field is always emitted, even when empty.
func Tokenize(line string) []string {
	var (
		out      []string
		field    strings.Builder
		inQuotes bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}

	return append(out, strings.TrimSpace(field.String()))
}

// Lines splits decoded file content into lines, accepting LF, CRLF and bare
// CR endings, mixed freely. A trailing line break does not produce an extra
// empty line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = newlines.Replace(text)
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Rows tokenizes every line of text.
func Rows(text string) [][]string {
	lines := Lines(text)
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, Tokenize(l))
	}
	return rows
}

// Blank reports whether a field is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
