package reconcile

import "lynx-bridge/core/race"

// ActionType represents the type of change applied to a race.
type ActionType string

const (
	// ActionAdd appends a race missing from the event database.
	ActionAdd ActionType = "add"
	// ActionUpdate rewrites an existing race from the source.
	ActionUpdate ActionType = "update"
)

// Action represents a planned change to a single race.
type Action struct {
	// Type specifies the change.
	Type ActionType `json:"type"`

	// Key is the race number.
	Key string `json:"key"`

	// EventName is the event name the race will carry after the change.
	EventName string `json:"event_name"`

	// Reasons lists what differs between the stored race and the source,
	// e.g. "laps: evt=4 csv=4.5". Empty for additions.
	Reasons []string `json:"reasons,omitempty"`
}

// ReconcilePlan contains the merged races and the changes that produced them.
type ReconcilePlan struct {
	// Races is the merged race list in no particular order.
	Races []race.Target `json:"races"`

	// Actions lists additions and updates in source order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Added counts races appended to the database.
	Added int `json:"added"`

	// Updated counts existing races rewritten from the source.
	Updated int `json:"updated"`

	// Unchanged counts existing races left as they were, including races the
	// source does not mention.
	Unchanged int `json:"unchanged"`

	// Total is the number of races in the merged database.
	Total int `json:"total"`
}

// Changed reports whether the plan modifies the database.
func (s PlanSummary) Changed() bool {
	return s.Added > 0 || s.Updated > 0
}

// ReconcileOptions controls how source races are turned into database races.
type ReconcileOptions struct {
	// LapOverride replaces every source lap count when set.
	LapOverride *float64

	// TrimSuffixes are removed from the end of group names before the event
	// name is composed.
	TrimSuffixes []string
}
