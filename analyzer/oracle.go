package analyzer

import (
	"strings"

	"github.com/viant/daocheck/analyzer/decl"
	"github.com/viant/daocheck/analyzer/kb"
)

// Oracle matches type references against a single entity name
type Oracle struct {
	entity     string
	registry   *kb.Registry
	trivial    map[string]bool
	transitive bool
}

// Entity returns the entity name the oracle matches against
func (o *Oracle) Entity() string {
	return o.entity
}

// Classify matches ref against the entity; bounds maps method type variables to their declared bound
func (o *Oracle) Classify(ref decl.TypeRef, bounds map[string]decl.TypeRef) Outcome {
	return o.classify(ref, bounds, nil)
}

func (o *Oracle) classify(ref decl.TypeRef, bounds map[string]decl.TypeRef, resolved map[string]bool) Outcome {
	if ref.IsGeneric() {
		return Match
	}
	// T[] and T... resolve through the bound of T
	name := ref.SimpleName()
	if bound, ok := bounds[name]; ok {
		if resolved[name] {
			return Mismatch
		}
		if resolved == nil {
			resolved = map[string]bool{}
		}
		resolved[name] = true
		return o.classify(bound, bounds, resolved)
	}
	if o.registry.IsEnumerator(name) {
		return Match
	}
	if o.entity != "" && strings.Contains(name, o.entity) {
		return Match
	}
	if o.isSubtype(name) {
		return Match
	}
	if o.trivial[name] {
		return Trivial
	}
	return Mismatch
}

func (o *Oracle) isSubtype(name string) bool {
	if o.entity == "" {
		return false
	}
	if o.transitive {
		return o.registry.IsSubtypeOf(name, o.entity)
	}
	return o.registry.HasSupertype(name, o.entity)
}
