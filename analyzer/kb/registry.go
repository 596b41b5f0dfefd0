// Package kb holds the knowledge bases consulted while classifying DAO methods:
// known enumerations and directly declared supertypes, keyed by simple type name.
package kb

import (
	"sort"
	"sync"
)

// Registry is an immutable snapshot of enumerators and supertypes.
// It is safe for concurrent use.
type Registry struct {
	enumerators map[string]bool
	supertypes  map[string]map[string]bool
}

// Empty returns a registry with no entries
func Empty() *Registry {
	return &Registry{enumerators: map[string]bool{}, supertypes: map[string]map[string]bool{}}
}

// IsEnumerator reports whether name is a known enumeration
func (r *Registry) IsEnumerator(name string) bool {
	if r == nil {
		return false
	}
	return r.enumerators[name]
}

// HasSupertype reports whether name directly declares supertype
func (r *Registry) HasSupertype(name, supertype string) bool {
	if r == nil {
		return false
	}
	return r.supertypes[name][supertype]
}

// IsSubtypeOf reports whether supertype is reachable from name through declared supertypes
func (r *Registry) IsSubtypeOf(name, supertype string) bool {
	if r == nil {
		return false
	}
	visited := map[string]bool{name: true}
	pending := []string{name}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for candidate := range r.supertypes[current] {
			if candidate == supertype {
				return true
			}
			if !visited[candidate] {
				visited[candidate] = true
				pending = append(pending, candidate)
			}
		}
	}
	return false
}

// Enumerators returns sorted enumerator names
func (r *Registry) Enumerators() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.enumerators)
}

// Supertypes returns sorted direct supertypes of name
func (r *Registry) Supertypes(name string) []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.supertypes[name])
}

// Len returns number of enumerators and number of types with declared supertypes
func (r *Registry) Len() (int, int) {
	if r == nil {
		return 0, 0
	}
	return len(r.enumerators), len(r.supertypes)
}

// Builder accumulates registry entries; concurrent writers are serialized
type Builder struct {
	mux         sync.Mutex
	enumerators map[string]bool
	supertypes  map[string]map[string]bool
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{enumerators: map[string]bool{}, supertypes: map[string]map[string]bool{}}
}

// AddEnumerator registers enumeration names
func (b *Builder) AddEnumerator(names ...string) *Builder {
	b.mux.Lock()
	defer b.mux.Unlock()
	for _, name := range names {
		if name != "" {
			b.enumerators[name] = true
		}
	}
	return b
}

// AddSupertype registers directly declared supertypes of name
func (b *Builder) AddSupertype(name string, supertypes ...string) *Builder {
	b.mux.Lock()
	defer b.mux.Unlock()
	if name == "" {
		return b
	}
	set, ok := b.supertypes[name]
	if !ok {
		set = map[string]bool{}
		b.supertypes[name] = set
	}
	for _, supertype := range supertypes {
		if supertype != "" && supertype != name {
			set[supertype] = true
		}
	}
	return b
}

// Build returns an immutable copy of the accumulated entries
func (b *Builder) Build() *Registry {
	b.mux.Lock()
	defer b.mux.Unlock()
	result := Empty()
	for name := range b.enumerators {
		result.enumerators[name] = true
	}
	for name, set := range b.supertypes {
		copied := make(map[string]bool, len(set))
		for supertype := range set {
			copied[supertype] = true
		}
		result.supertypes[name] = copied
	}
	return result
}

func sortedKeys(set map[string]bool) []string {
	result := make([]string, 0, len(set))
	for key := range set {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}
