package tokenfind

import "unicode/utf8"

// FindNth scans line left to right for non-overlapping matches of pat and
// returns the nth one (1-based), with Type left unset. Each search resumes
// strictly after the end of the previous match, so overlapping candidates
// are never double-counted. A zero-width match advances the cursor by one
// rune so the scan always makes progress.
//
// If the line holds fewer than n matches, FindNth returns (nil, nil):
// no match is a normal outcome, not an error. An n below 1 is a caller
// contract violation and returns a *OccurrenceError before the pattern is
// evaluated at all.
func FindNth(line string, pat *Pattern, n int) (*Match, error) {
	if n < 1 {
		return nil, &OccurrenceError{N: n}
	}

	count := 0
	for pos := 0; pos <= len(line); {
		loc := pat.Regexp.FindStringIndex(line[pos:])
		if loc == nil {
			return nil, nil
		}
		start, end := pos+loc[0], pos+loc[1]

		count++
		if count == n {
			return &Match{
				Span: Span{Start: start, End: end},
				Text: line[start:end],
			}, nil
		}

		if end > start {
			pos = end
			continue
		}
		// Zero-width match: step over one rune, never into the middle of
		// a multi-byte character.
		_, size := utf8.DecodeRuneInString(line[end:])
		if size == 0 {
			size = 1
		}
		pos = end + size
	}
	return nil, nil
}
