// Package update runs the full GCPV to FinishLynx pipeline.
//
// One call to Service.Update:
//
//  1. checks the output encoding and race settings,
//  2. reads and merges every GCPV export, deriving missing lap counts from
//     the distance table,
//  3. backs up the existing EVT file when backups are on,
//  4. reads the EVT file, merges the sources into it and rewrites it
//     atomically,
//  5. journals the run and refreshes the metrics textfile.
//
// A dry run stops after planning: nothing is backed up or written, but the
// run is still journaled.
package update
