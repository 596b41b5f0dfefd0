// Package analyzer classifies the public methods of a DAO class as conforming or
// non-conforming to the entity naming convention implied by the class name.
package analyzer

import (
	"strings"

	"github.com/viant/daocheck/analyzer/decl"
	"github.com/viant/daocheck/analyzer/kb"
)

// Checker holds classification settings shared by all traversals.
// It is immutable after New and safe for concurrent use.
type Checker struct {
	suffix     string
	registry   *kb.Registry
	trivial    map[string]bool
	transitive bool
}

// New creates a checker
func New(options ...Option) *Checker {
	ret := &Checker{
		suffix:   DefaultSuffix,
		registry: kb.Empty(),
		trivial:  newTypeSet(DefaultTrivialTypes),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Suffix returns the DAO class name suffix
func (c *Checker) Suffix() string {
	return c.suffix
}

// IsDAO reports whether className carries the DAO suffix
func (c *Checker) IsDAO(className string) bool {
	return c.suffix != "" && strings.HasSuffix(className, c.suffix)
}

// EntityName strips the trailing suffix from a class name, e.g. InvoiceDAO -> Invoice
func (c *Checker) EntityName(className string) string {
	if c.suffix == "" {
		return className
	}
	return strings.TrimSuffix(className, c.suffix)
}

// Oracle returns a type oracle for entity
func (c *Checker) Oracle(entity string) *Oracle {
	return &Oracle{entity: entity, registry: c.registry, trivial: c.trivial, transitive: c.transitive}
}

// NewWalker returns a walker with an empty scope stack and fresh result sets
func (c *Checker) NewWalker() *Walker {
	return &Walker{checker: c, result: NewResult()}
}

// Check classifies a complete event sequence
func (c *Checker) Check(events []*decl.Event) *Result {
	return c.NewWalker().Walk(events)
}
