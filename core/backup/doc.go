// Package backup snapshots an EVT file before it is rewritten.
//
// Backups are written to a directory next to the EVT file, named after the
// original with a second-resolution timestamp inserted before the extension,
// e.g. "lynx.evt" -> "backups/lynx.20240217090503.evt".
//
// A requested backup that cannot be created is fatal to the update
// (ErrBackupFailed): the EVT file is never rewritten without its safety copy.
package backup
