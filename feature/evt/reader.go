package evt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"lynx-bridge/core/fields"
	"lynx-bridge/core/race"
	"lynx-bridge/core/textenc"
)

const (
	raceFields   = 13
	skaterFields = 3
	lapsField    = 12
)

// Parse reads races from decoded EVT content. Rows that are neither a race
// header nor a skater line are ignored, as are skater lines before the first
// header.
func Parse(text string) []race.Target {
	var (
		races   []race.Target
		current *race.Target
	)

	flush := func() {
		if current != nil {
			races = append(races, *current)
			current = nil
		}
	}

	for _, row := range fields.Rows(text) {
		if isRaceRow(row) {
			flush()
			current = &race.Target{
				Number:    strings.TrimSpace(row[0]),
				EventName: row[3],
				Laps:      race.ParseLaps(row[lapsField]),
			}
			continue
		}

		if lane, ok := skaterLane(row); ok && current != nil {
			current.Skaters = append(current.Skaters, race.TargetSkater{
				Lane: lane,
				ID:   strings.TrimSpace(row[1]),
			})
		}
	}
	flush()

	return races
}

func isRaceRow(row []string) bool {
	return len(row) == raceFields &&
		!fields.Blank(row[0]) &&
		fields.Blank(row[1]) &&
		fields.Blank(row[2])
}

func skaterLane(row []string) (int, bool) {
	if len(row) != skaterFields || !fields.Blank(row[0]) || fields.Blank(row[1]) {
		return 0, false
	}
	lane, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return 0, false
	}
	return lane, true
}

// ReadFile loads the races stored at path. A missing file is an empty
// database, not an error.
func ReadFile(path string) ([]race.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read EVT file '%s': %w", path, err)
	}
	return Parse(textenc.Decode(data)), nil
}
