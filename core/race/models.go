package race

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Source is a race recovered from a GCPV export.
type Source struct {
	// Parameters holds the distance/track description, e.g. "1500 111m".
	Parameters string
	// Group is the category, e.g. "Open Men A".
	Group string
	// Stage is the round, e.g. "Final" or "Heat, 2 +2".
	Stage string
	// Number identifies the race; it is the merge key.
	Number string
	// Laps is nil when no lap count is known.
	Laps *float64
	// Skaters are kept in the order they were found.
	Skaters []SourceSkater
}

// SourceSkater is a skater line from a GCPV export.
type SourceSkater struct {
	Lane      int
	ID        string
	LastName  string
	FirstName string
	Club      string
}

// FullName returns the name in "ID LASTNAME, FIRSTNAME" form.
func (s SourceSkater) FullName() string {
	return s.ID + " " + s.LastName + ", " + s.FirstName
}

// Target is a race stored in an EVT file.
type Target struct {
	Number    string
	EventName string
	Laps      *float64
	Skaters   []TargetSkater
}

// TargetSkater is a skater line from an EVT file.
type TargetSkater struct {
	Lane int
	ID   string
}

// EventName composes "Group (Parameters) Stage", leaving out empty parts.
// Group is trimmed of the first matching suffix from trimSuffixes.
func (r Source) EventName(trimSuffixes []string) string {
	var parts []string

	if g := TrimGroupSuffix(r.Group, trimSuffixes); g != "" {
		parts = append(parts, g)
	}
	if p := strings.TrimSpace(r.Parameters); p != "" {
		parts = append(parts, "("+p+")")
	}
	if s := strings.TrimSpace(r.Stage); s != "" {
		parts = append(parts, s)
	}

	return strings.Join(parts, " ")
}

// TrimGroupSuffix removes one configured suffix from the end of group.
// Matching is case-insensitive and only on a word boundary, longest suffix first,
// so "female" is never cut down to "fe" by a "male" entry.
func TrimGroupSuffix(group string, suffixes []string) string {
	group = strings.TrimSpace(group)
	if group == "" || len(suffixes) == 0 {
		return group
	}

	ordered := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s = strings.TrimSpace(s); s != "" {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	for _, s := range ordered {
		if len(s) > len(group) || !strings.EqualFold(group[len(group)-len(s):], s) {
			continue
		}
		rest := group[:len(group)-len(s)]
		if rest != "" && !strings.HasSuffix(rest, " ") && !strings.HasSuffix(rest, "\t") {
			continue
		}
		return strings.TrimSpace(rest)
	}

	return group
}

// Target converts a source race into its EVT form.
// laps is the effective lap count, which may differ from r.Laps when overridden.
func (r Source) Target(trimSuffixes []string, laps *float64) Target {
	skaters := make([]TargetSkater, 0, len(r.Skaters))
	for _, s := range r.Skaters {
		skaters = append(skaters, TargetSkater{Lane: s.Lane, ID: s.ID})
	}
	return Target{
		Number:    r.Number,
		EventName: r.EventName(trimSuffixes),
		Laps:      CloneLaps(laps),
		Skaters:   skaters,
	}
}

// Clone returns a deep copy of t.
func (t Target) Clone() Target {
	c := t
	c.Laps = CloneLaps(t.Laps)
	if t.Skaters != nil {
		c.Skaters = make([]TargetSkater, len(t.Skaters))
		copy(c.Skaters, t.Skaters)
	}
	return c
}

// SortedSkaters returns a copy of the skaters ordered by lane.
// Equal lanes keep their relative order.
func (t Target) SortedSkaters() []TargetSkater {
	return SortSkaters(t.Skaters)
}

// SortSkaters returns a lane-ordered copy of skaters.
func SortSkaters(skaters []TargetSkater) []TargetSkater {
	out := append([]TargetSkater(nil), skaters...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Lane < out[j].Lane
	})
	return out
}

func (r Source) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Race %s: %s - %s\n", r.Number, r.Parameters, r.Group)
	fmt.Fprintf(&b, "  Stage: %s\n", r.Stage)
	if r.Laps != nil {
		fmt.Fprintf(&b, "  Laps: %s\n", FormatLaps(r.Laps))
	}
	fmt.Fprintf(&b, "  Skaters (%d):\n", len(r.Skaters))
	for _, s := range r.Skaters {
		fmt.Fprintf(&b, "    Lane %d: ID=%s, LastName=%s, FirstName=%s (%s)\n", s.Lane, s.ID, s.LastName, s.FirstName, s.Club)
	}
	return b.String()
}

func (t Target) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Race %s: %s\n", t.Number, t.EventName)
	if t.Laps != nil {
		fmt.Fprintf(&b, "  Laps: %s\n", FormatLaps(t.Laps))
	}
	fmt.Fprintf(&b, "  Skaters (%d):\n", len(t.Skaters))
	for _, s := range t.SortedSkaters() {
		fmt.Fprintf(&b, "    Lane %d: ID=%s\n", s.Lane, s.ID)
	}
	return b.String()
}

// CloneLaps copies an optional lap count.
func CloneLaps(l *float64) *float64 {
	if l == nil {
		return nil
	}
	v := *l
	return &v
}

// RoundLaps rounds a lap count to the single decimal an EVT file can hold.
func RoundLaps(l *float64) *float64 {
	if l == nil {
		return nil
	}
	v := math.Round(*l*10) / 10
	if v == 0 {
		v = 0 // drop negative zero
	}
	return &v
}

// FormatLaps renders laps with at most one decimal and no trailing zero.
// nil renders as the empty string.
func FormatLaps(l *float64) string {
	r := RoundLaps(l)
	if r == nil {
		return ""
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

// ParseLaps parses a lap field, returning nil when it is not a number.
func ParseLaps(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// LapsEqual compares two optional lap counts.
func LapsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
