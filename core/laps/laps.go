package laps

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"lynx-bridge/core/race"
)

// Table maps a race distance in metres to its lap count.
type Table map[int]float64

// Parse reads a table written as "distance=laps" pairs separated by commas,
// e.g. "500=4.5,1000=9". Whitespace around items is ignored.
func Parse(spec string) (Table, error) {
	t := Table{}
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		dist, lapsStr, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid distance laps entry %q: expected distance=laps", item)
		}

		d, err := strconv.Atoi(strings.TrimSpace(dist))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid distance in entry %q", item)
		}

		l, err := strconv.ParseFloat(strings.TrimSpace(lapsStr), 64)
		if err != nil || l < 0 {
			return nil, fmt.Errorf("invalid lap count in entry %q", item)
		}

		t[d] = l
	}
	return t, nil
}

// Distance extracts the leading distance from race parameters such as
// "1500 111m" or "500m". ok is false when parameters do not start with digits.
func Distance(parameters string) (int, bool) {
	p := strings.TrimSpace(parameters)
	end := 0
	for end < len(p) && unicode.IsDigit(rune(p[end])) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	d, err := strconv.Atoi(p[:end])
	if err != nil {
		return 0, false
	}
	return d, true
}

// Lookup returns the lap count for race parameters, or nil when the distance
// is unknown.
func (t Table) Lookup(parameters string) *float64 {
	d, ok := Distance(parameters)
	if !ok {
		return nil
	}
	l, ok := t[d]
	if !ok {
		return nil
	}
	return &l
}

// Apply fills in Laps for every race that has none yet. It returns how many
// races received a lap count.
func (t Table) Apply(races []race.Source) int {
	n := 0
	for i := range races {
		if races[i].Laps != nil {
			continue
		}
		if l := t.Lookup(races[i].Parameters); l != nil {
			races[i].Laps = l
			n++
		}
	}
	return n
}

// String renders the table in the format accepted by Parse, ordered by distance.
func (t Table) String() string {
	dists := make([]int, 0, len(t))
	for d := range t {
		dists = append(dists, d)
	}
	sort.Ints(dists)

	items := make([]string, 0, len(dists))
	for _, d := range dists {
		items = append(items, strconv.Itoa(d)+"="+strconv.FormatFloat(t[d], 'f', -1, 64))
	}
	return strings.Join(items, ",")
}
