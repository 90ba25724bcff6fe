package gcpv

import (
	"strconv"
	"strings"

	"lynx-bridge/core/race"
)

const (
	keyRace    = "Race"
	keyEvent   = "Event :"
	keyStage   = "Stage :"
	keyLane    = "Lane"
	keySkaters = "Skaters"
	keyClub    = "Club"
)

// accumulator collects races keyed by number, remembering first-seen order.
type accumulator struct {
	order []string
	races map[string]*race.Source
}

func newAccumulator() accumulator {
	return accumulator{races: make(map[string]*race.Source)}
}

// fold applies one row to the accumulator.
func (a accumulator) fold(row []string) accumulator {
	number, ok := raceNumber(row)
	if !ok {
		return a
	}

	r, seen := a.races[number]
	if !seen {
		r = parseHeader(row, number)
		a.races[number] = r
		a.order = append(a.order, number)
	}

	if s, ok := parseSkater(row); ok {
		r.Skaters = append(r.Skaters, s)
	}

	return a
}

// add folds an already extracted race, copying what it keeps.
func (a accumulator) add(r race.Source) accumulator {
	cur, seen := a.races[r.Number]
	if !seen {
		c := r
		c.Laps = race.CloneLaps(r.Laps)
		c.Skaters = nil
		cur = &c
		a.races[r.Number] = cur
		a.order = append(a.order, r.Number)
	}
	cur.Skaters = append(cur.Skaters, r.Skaters...)
	return a
}

func (a accumulator) result() []race.Source {
	out := make([]race.Source, 0, len(a.order))
	for _, n := range a.order {
		out = append(out, *a.races[n])
	}
	return out
}

// Extract recovers races from tokenized GCPV rows. Races appear in the order
// their number was first seen; the first header found for a race wins and
// later rows only add skaters.
func Extract(rows [][]string) []race.Source {
	acc := newAccumulator()
	for _, row := range rows {
		acc = acc.fold(row)
	}
	return acc.result()
}

// Combine folds several race lists into one with the same rule Extract
// applies inside an export: a repeated race number keeps the first race's
// header and only adds skaters. The inputs are not modified.
func Combine(lists ...[]race.Source) []race.Source {
	acc := newAccumulator()
	for _, list := range lists {
		for _, r := range list {
			acc = acc.add(r)
		}
	}
	return acc.result()
}

// find returns the index of the first field equal to key, ignoring case.
func find(row []string, key string) int {
	for i, f := range row {
		if strings.EqualFold(strings.TrimSpace(f), key) {
			return i
		}
	}
	return -1
}

// after returns the field following the first occurrence of key.
func after(row []string, key string, offset int) (string, bool) {
	i := find(row, key)
	if i < 0 || i+offset >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i+offset]), true
}

func raceNumber(row []string) (string, bool) {
	for i := 0; i+1 < len(row); i++ {
		if strings.EqualFold(strings.TrimSpace(row[i]), keyRace) {
			n := strings.TrimSpace(row[i+1])
			return n, n != ""
		}
	}
	return "", false
}

func parseHeader(row []string, number string) *race.Source {
	r := &race.Source{Number: number}

	if p, ok := after(row, keyEvent, 1); ok {
		r.Parameters = p
		r.Group, _ = after(row, keyEvent, 2)
	}
	r.Stage, _ = after(row, keyStage, 1)

	return r
}

// parseSkater looks for "Lane", "Skaters", "Club" followed by lane, name and club.
func parseSkater(row []string) (race.SourceSkater, bool) {
	for i := 0; i+3 < len(row); i++ {
		if !strings.EqualFold(strings.TrimSpace(row[i]), keyLane) ||
			!strings.EqualFold(strings.TrimSpace(row[i+1]), keySkaters) ||
			!strings.EqualFold(strings.TrimSpace(row[i+2]), keyClub) {
			continue
		}

		lane, err := strconv.Atoi(strings.TrimSpace(row[i+3]))
		if err != nil {
			return race.SourceSkater{}, false
		}

		var name, club string
		if i+4 < len(row) {
			name = row[i+4]
		}
		if i+5 < len(row) {
			club = strings.TrimSpace(row[i+5])
		}

		id, last, first := ParseSkaterName(name)
		return race.SourceSkater{
			Lane:      lane,
			ID:        id,
			LastName:  last,
			FirstName: first,
			Club:      club,
		}, true
	}

	return race.SourceSkater{}, false
}
