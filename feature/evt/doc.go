// Package evt reads and writes FinishLynx EVT race databases.
//
// An EVT file is comma separated text without a header. Two row shapes matter:
//
//	<race>,,,"<event name>",,,,,,,,,<laps>      13 fields, race header
//	,<skater id>,<lane>                         3 fields, skater line
//
// Every other row is ignored when reading and never reproduced when writing:
// WriteFile always rewrites the whole file, in natural race-number order with
// skaters ordered by lane, and replaces it atomically so a failed write never
// leaves a truncated database behind.
package evt
