package reconcile

import (
	"fmt"

	"lynx-bridge/core/race"
)

// Merge folds incoming source races into the existing database races and
// returns the resulting plan. Neither input is modified.
//
// Incoming race numbers are expected to be unique. A repeat of a race added
// in the same merge replaces it and is folded into its add action.
func Merge(existing []race.Target, incoming []race.Source, opts ReconcileOptions) *ReconcilePlan {
	merged := make([]race.Target, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing))
	for _, r := range existing {
		if _, dup := index[r.Number]; !dup {
			index[r.Number] = len(merged)
		}
		merged = append(merged, r.Clone())
	}

	plan := &ReconcilePlan{Actions: []Action{}}
	touched := make(map[int]struct{})
	addedAt := make(map[int]int)

	for _, src := range incoming {
		next := src.Target(opts.TrimSuffixes, effectiveLaps(src, opts))

		i, ok := index[next.Number]
		if !ok {
			index[next.Number] = len(merged)
			addedAt[len(merged)] = len(plan.Actions)
			merged = append(merged, next)
			plan.Actions = append(plan.Actions, Action{
				Type:      ActionAdd,
				Key:       next.Number,
				EventName: next.EventName,
			})
			plan.Summary.Added++
			continue
		}

		if a, ok := addedAt[i]; ok {
			merged[i] = next
			plan.Actions[a].EventName = next.EventName
			continue
		}

		mismatch := CompareRace(merged[i], next)
		if len(mismatch) == 0 {
			continue
		}

		merged[i] = next
		plan.Actions = append(plan.Actions, Action{
			Type:      ActionUpdate,
			Key:       next.Number,
			EventName: next.EventName,
			Reasons:   mismatch,
		})
		if _, seen := touched[i]; !seen {
			touched[i] = struct{}{}
			plan.Summary.Updated++
		}
	}

	plan.Races = merged
	plan.Summary.Unchanged = len(existing) - plan.Summary.Updated
	plan.Summary.Total = len(merged)

	return plan
}

// effectiveLaps picks the override when set, otherwise the source value,
// rounded to what the database can store so a re-run compares equal.
func effectiveLaps(src race.Source, opts ReconcileOptions) *float64 {
	if opts.LapOverride != nil {
		return race.RoundLaps(opts.LapOverride)
	}
	return race.RoundLaps(src.Laps)
}

// CompareRace lists the differences between a stored race and its source
// form. Skaters are compared position by position after sorting by lane.
// An empty result means the race is up to date.
func CompareRace(stored, source race.Target) []string {
	var mismatch []string

	if stored.EventName != source.EventName {
		mismatch = append(mismatch, fmt.Sprintf("event_name: evt=%q csv=%q", stored.EventName, source.EventName))
	}
	if !race.LapsEqual(stored.Laps, source.Laps) {
		mismatch = append(mismatch, fmt.Sprintf("laps: evt=%s csv=%s", lapsLabel(stored.Laps), lapsLabel(source.Laps)))
	}

	if len(stored.Skaters) != len(source.Skaters) {
		return append(mismatch, fmt.Sprintf("skaters: evt=%d csv=%d", len(stored.Skaters), len(source.Skaters)))
	}

	a, b := stored.SortedSkaters(), source.SortedSkaters()
	for i := range a {
		if a[i] != b[i] {
			mismatch = append(mismatch, fmt.Sprintf("skater %d: evt=%s@%d csv=%s@%d", i+1, a[i].ID, a[i].Lane, b[i].ID, b[i].Lane))
		}
	}

	return mismatch
}

func lapsLabel(l *float64) string {
	if l == nil {
		return "none"
	}
	return race.FormatLaps(l)
}
