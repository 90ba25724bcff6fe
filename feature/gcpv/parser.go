package gcpv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"lynx-bridge/core/fields"
	"lynx-bridge/core/race"
	"lynx-bridge/core/textenc"
)

// ErrSourceNotFound is returned when a GCPV export does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// Parse extracts races from the decoded text of one export.
func Parse(text string) []race.Source {
	return Extract(fields.Rows(text))
}

// ParseFiles reads every export in order and extracts races from all of their
// rows as one stream, so a race continued in a later file keeps accumulating
// skaters.
func ParseFiles(paths ...string) ([]race.Source, error) {
	var rows [][]string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, p)
			}
			return nil, fmt.Errorf("failed to read source file '%s': %w", p, err)
		}
		rows = append(rows, fields.Rows(textenc.Decode(data))...)
	}
	return Extract(rows), nil
}
