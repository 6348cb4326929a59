package tokenfind

import "fmt"

// PatternError reports a token pattern that failed to compile at
// registration time. It is surfaced immediately to whoever is registering,
// never deferred to match time.
type PatternError struct {
	Type   Type
	Source string
	Err    error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern for token type %q: %v", e.Type, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// UnknownTypeError reports a lookup of a token type that is not registered.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown token type %q", e.Type)
}

// OccurrenceError reports an occurrence index below 1. This is a caller
// contract violation, distinct from the "no Nth match" outcome, which is
// not an error at all.
type OccurrenceError struct {
	N int
}

func (e *OccurrenceError) Error() string {
	return fmt.Sprintf("occurrence index must be at least 1, got %d", e.N)
}
