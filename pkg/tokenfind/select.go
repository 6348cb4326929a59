package tokenfind

// SelectByType finds the nth occurrence of the given token type on line.
// The type must be registered; requesting an absent type returns a
// *UnknownTypeError. A missing nth match returns (nil, nil).
func SelectByType(line string, reg *Registry, typ Type, n int) (*Match, error) {
	if n < 1 {
		return nil, &OccurrenceError{N: n}
	}
	pat, err := reg.Lookup(typ)
	if err != nil {
		return nil, err
	}
	m, err := FindNth(line, pat, n)
	if m != nil {
		m.Type = typ
	}
	return m, err
}

// SelectAny tries every registered token type in registration order and
// returns the nth match of the first type that has one. Later types are
// never tried once a type succeeds, even if they would also match: the
// winner is the earliest registered type, not the longest or most specific
// match. Reordering the registry therefore changes the outcome on lines
// where several token types overlap.
//
// If no type yields an nth match, SelectAny returns (nil, nil) after
// exhausting the order.
func SelectAny(line string, reg *Registry, n int) (*Match, error) {
	if n < 1 {
		return nil, &OccurrenceError{N: n}
	}
	for _, e := range reg.snapshot() {
		m, err := FindNth(line, e.pat, n)
		if err != nil {
			return nil, err
		}
		if m != nil {
			m.Type = e.typ
			return m, nil
		}
	}
	return nil, nil
}
