package update

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"lynx-bridge/core/reconcile"
)

// ErrUpdateFailed marks failures to read or write the event database.
var ErrUpdateFailed = errors.New("update failed")

// Error reports an I/O failure on the event database.
// It matches both ErrUpdateFailed and the underlying cause with errors.Is.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to update EVT file '%s': %v", e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrUpdateFailed, e.Err}
}

// Result is the outcome of one update run.
type Result struct {
	RunID         string             `json:"run_id"`
	Added         int                `json:"added"`
	Updated       int                `json:"updated"`
	Unchanged     int                `json:"unchanged"`
	Total         int                `json:"total"`
	BackupCreated bool               `json:"backup_created"`
	BackupPath    string             `json:"backup_path,omitempty"`
	Actions       []reconcile.Action `json:"actions"`
	DryRun        bool               `json:"dry_run"`
}

// Summary renders the counts the way they are shown to the operator,
// e.g. "Races: 1 added, 2 unchanged".
func (r Result) Summary() string {
	var parts []string
	if r.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", r.Added))
	}
	if r.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", r.Updated))
	}
	if r.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", r.Unchanged))
	}

	summary := "No races processed"
	if len(parts) > 0 {
		summary = "Races: " + strings.Join(parts, ", ")
	}

	if r.BackupCreated && r.BackupPath != "" {
		summary += "\nBackup created: " + filepath.Base(r.BackupPath)
	}
	return summary
}
