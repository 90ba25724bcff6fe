// Package logger provides a structured logging facility based on Zap.
//
// # Run Correlation
//
// Every update gets a run ID, which is also the key of its history record.
// WithRun attaches that ID to the logger so every entry written during the
// run can be matched to the journal.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Update started")
//
//	l := logger.WithRun(log, runID)
//	l.Error("Update failed", zap.Error(err))
package logger
