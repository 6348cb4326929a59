package tokenfind

import (
	"regexp"
	"sync"
)

// Registry is an ordered mapping from token type to compiled pattern.
// Registration order is significant: it defines the trial order for
// any-type selection. Replacing an existing type keeps its position.
//
// A Registry is safe for concurrent use. Reads take the read lock, and
// entries are replaced atomically, so a lookup racing a Register never
// observes a half-updated pattern.
type Registry struct {
	mu       sync.RWMutex
	order    []Type
	patterns map[Type]*Pattern
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		patterns: make(map[Type]*Pattern),
	}
}

// Register compiles source and stores it under typ. A new type is appended
// to the registration order; an existing type is replaced in place, keeping
// its position. If the pattern does not compile, Register returns a
// *PatternError and the registry is left exactly as it was.
func (r *Registry) Register(typ Type, source string) error {
	re, err := regexp.Compile(source)
	if err != nil {
		return &PatternError{Type: typ, Source: source, Err: err}
	}
	pat := &Pattern{Source: source, Regexp: re}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.patterns[typ]; !exists {
		r.order = append(r.order, typ)
	}
	r.patterns[typ] = pat
	return nil
}

// Lookup returns the pattern registered under typ, or a *UnknownTypeError
// if the type is not registered.
func (r *Registry) Lookup(typ Type) (*Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pat, ok := r.patterns[typ]
	if !ok {
		return nil, &UnknownTypeError{Type: typ}
	}
	return pat, nil
}

// Types returns the registered token types in registration order. The
// returned slice is a copy; an empty registry yields an empty slice.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]Type, len(r.order))
	copy(types, r.order)
	return types
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// registryEntry pairs a type with its pattern for ordered iteration.
type registryEntry struct {
	typ Type
	pat *Pattern
}

// snapshot returns the (type, pattern) pairs in registration order, taken
// under a single read lock so a whole trial sequence sees one consistent
// view of the registry.
func (r *Registry) snapshot() []registryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]registryEntry, 0, len(r.order))
	for _, typ := range r.order {
		entries = append(entries, registryEntry{typ: typ, pat: r.patterns[typ]})
	}
	return entries
}
