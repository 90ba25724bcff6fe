package evt

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lynx-bridge/core/race"
	"lynx-bridge/core/textenc"

	"github.com/natefinch/atomic"
)

const (
	newline   = "\r\n"
	filePerms = 0o644
)

// Format renders races in EVT layout, ordered by race number and lane.
// The input slice is not reordered.
func Format(races []race.Target) string {
	sorted := make([]race.Target, len(races))
	copy(sorted, races)
	race.SortTargets(sorted)

	var b strings.Builder
	for _, r := range sorted {
		writeRaceLine(&b, r)
		for _, s := range r.SortedSkaters() {
			writeSkaterLine(&b, s)
		}
	}
	return b.String()
}

// writeRaceLine writes the 13-field header: number, two empty fields, the
// quoted event name, eight empty fields and the lap count.
func writeRaceLine(b *strings.Builder, r race.Target) {
	row := make([]string, raceFields)
	row[0] = escape(r.Number)
	row[3] = quote(r.EventName)
	row[lapsField] = race.FormatLaps(r.Laps)

	b.WriteString(strings.Join(row, ","))
	b.WriteString(newline)
}

func writeSkaterLine(b *strings.Builder, s race.TargetSkater) {
	b.WriteString(",")
	b.WriteString(escape(s.ID))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(s.Lane))
	b.WriteString(newline)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// escape quotes a field only when it would otherwise split or break the row.
func escape(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}
	return s
}

// WriteFile encodes races and replaces path in a single atomic step.
// The parent directory is created when missing.
func WriteFile(path string, races []race.Target, enc textenc.Encoding) error {
	data, err := textenc.Encode(enc, Format(races))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}

	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}

	// atomic.WriteFile leaves new files with temp-file permissions.
	if created {
		if err := os.Chmod(path, filePerms); err != nil {
			return fmt.Errorf("failed to set permissions on '%s': %w", path, err)
		}
	}
	return nil
}
