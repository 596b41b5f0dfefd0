package analyzer

import "github.com/viant/daocheck/analyzer/kb"

// DefaultSuffix is the conventional DAO class name qualifier
const DefaultSuffix = "DAO"

type Option func(*Checker)

// WithSuffix sets the class name suffix stripped to derive the entity name
func WithSuffix(suffix string) Option {
	return func(c *Checker) {
		c.suffix = suffix
	}
}

// WithRegistry sets the enumerator and supertype knowledge base
func WithRegistry(registry *kb.Registry) Option {
	return func(c *Checker) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithTrivialTypes replaces the trivial type whitelist
func WithTrivialTypes(names ...string) Option {
	return func(c *Checker) {
		c.trivial = newTypeSet(names)
	}
}

// WithExtraTrivialTypes extends the trivial type whitelist
func WithExtraTrivialTypes(names ...string) Option {
	return func(c *Checker) {
		for _, name := range names {
			if name != "" {
				c.trivial[name] = true
			}
		}
	}
}

// WithTransitiveSupertypes makes supertype lookup follow the whole declared hierarchy
// instead of a single level.
func WithTransitiveSupertypes() Option {
	return func(c *Checker) {
		c.transitive = true
	}
}
