// Package convert normalises loosely-typed scalar values, typically strings
// taken from form submissions, into booleans and numbers. Every function is
// total: when a value cannot be interpreted it comes back as it was (for
// Number, with any configured prefix or suffix already stripped), so callers
// must be prepared to receive text back.
//
// Numbers are read as plain decimal text with an optional sign and
// surrounding whitespace. Digit separators ("1_000") and hexadecimal forms
// are left as text.
package convert
