// Package fields turns comma separated text into plain ordered field sequences.
//
// Both the GCPV export and the FinishLynx EVT file are comma separated text
// without a header row. Rows are represented as []string and never bound to a
// fixed schema; callers probe them for the patterns they care about.
//
// # Tokenizing
//
// Tokenize is deliberately lenient: it has no error conditions. Malformed
// quoting degrades to a best-effort split, and an unterminated quote swallows
// the rest of the line into the current field.
//
// # Usage
//
//	for _, row := range fields.Rows(text) {
//	    if len(row) == 3 && fields.Blank(row[0]) {
//	        // ...
//	    }
//	}
package fields
