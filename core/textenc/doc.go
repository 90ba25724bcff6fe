// Package textenc handles the character encodings used for EVT files.
//
// FinishLynx installations differ in what they expect, so the output encoding is
// configurable: "ascii", "utf-8" or "utf-16". Parse validates the configured
// name and must be called before any file is touched; an unknown name is a
// configuration error (ErrUnsupportedEncoding).
//
// Decode is used for every file read by the application and recognises UTF-8
// and UTF-16 byte order marks, so files written in any supported encoding read
// back the same.
package textenc
