package tokenfind

import "regexp"

// Type identifies a kind of token in the registry, e.g. "number", "email",
// "ip", "date". It doubles as the registry key.
type Type string

// Pattern is a compiled token pattern together with the source text it was
// compiled from. The source is kept for diagnostics only; matching always
// uses the compiled form. A Pattern is immutable once built: replacing a
// registry entry swaps in a fresh Pattern rather than mutating this one.
type Pattern struct {
	Source string
	Regexp *regexp.Regexp
}

// Span marks a half-open byte range [Start, End) within a single line.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Match is the result of a successful search: the token type that produced
// it, the span within the line, and the matched text. Text shares the
// line's backing array; it is not a copy.
type Match struct {
	Type Type
	Span Span
	Text string
}
