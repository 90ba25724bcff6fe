// Package race holds the race and skater models shared by the GCPV extractor,
// the EVT reader/writer and the reconcile engine.
//
// # Models
//
//   - Source / SourceSkater: races as exported by GCPV, with full skater names.
//   - Target / TargetSkater: races as stored in a FinishLynx EVT file, reduced
//     to lane and skater ID.
//
// A race is identified by its Number alone. Parameters, group and stage only
// contribute to the composed event name.
//
// # Ordering
//
// CompareNumbers implements the natural race-number order expected by
// FinishLynx ("3A" < "3B" < "25A").
package race
