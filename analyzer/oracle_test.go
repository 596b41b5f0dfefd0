package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/daocheck/analyzer/decl"
	"github.com/viant/daocheck/analyzer/kb"
)

func testRegistry() *kb.Registry {
	return kb.NewBuilder().
		AddEnumerator("PaymentInfoEnum").
		AddSupertype("SuperInvoice", "Invoice").
		AddSupertype("MegaInvoice", "SuperInvoice").
		Build()
}

func TestOracle_Classify(t *testing.T) {
	tests := []struct {
		description string
		ref         decl.TypeRef
		bounds      map[string]decl.TypeRef
		expect      Outcome
	}{
		{description: "entity", ref: "Invoice", expect: Match},
		{description: "entity prefix", ref: "InvoiceDTO", expect: Match},
		{description: "entity infix", ref: "AnyCrazyInvoiceType", expect: Match},
		{description: "case sensitive", ref: "invoiceDto", expect: Mismatch},
		{description: "qualified entity", ref: "com.acme.Invoice", expect: Match},
		{description: "entity array", ref: "Invoice[]", expect: Match},
		{description: "generic with entity", ref: "List<Invoice>", expect: Match},
		{description: "generic without entity", ref: "List<Car>", expect: Match},
		{description: "generic three arguments", ref: "Map<A,B,C>", expect: Match},
		{description: "enumerator", ref: "PaymentInfoEnum", expect: Match},
		{description: "direct subtype", ref: "SuperInvoice", expect: Match},
		{description: "indirect subtype", ref: "MegaInvoice", expect: Mismatch},
		{description: "primitive", ref: "int", expect: Trivial},
		{description: "boxed", ref: "Long", expect: Trivial},
		{description: "value type", ref: "BigDecimal", expect: Trivial},
		{description: "calendar", ref: "Calendar", expect: Trivial},
		{description: "primitive array", ref: "byte[]", expect: Trivial},
		{description: "unrelated", ref: "Car", expect: Mismatch},
		{description: "bound to entity", ref: "T", bounds: map[string]decl.TypeRef{"T": "Invoice"}, expect: Match},
		{description: "bound to unrelated", ref: "T", bounds: map[string]decl.TypeRef{"T": "Car"}, expect: Mismatch},
		{description: "bound to generic", ref: "T", bounds: map[string]decl.TypeRef{"T": "Comparable<T>"}, expect: Match},
		{description: "bound to primitive wrapper", ref: "T", bounds: map[string]decl.TypeRef{"T": "Number"}, expect: Trivial},
		{description: "chained bounds", ref: "T", bounds: map[string]decl.TypeRef{"T": "U", "U": "Invoice"}, expect: Match},
		{description: "cyclic bounds", ref: "T", bounds: map[string]decl.TypeRef{"T": "U", "U": "T"}, expect: Mismatch},
		{description: "unbound variable", ref: "T", expect: Mismatch},
		{description: "other variable bound", ref: "T", bounds: map[string]decl.TypeRef{"E": "Invoice"}, expect: Mismatch},
		{description: "bound varargs", ref: "T...", bounds: map[string]decl.TypeRef{"T": "Invoice"}, expect: Match},
		{description: "bound array", ref: "T[]", bounds: map[string]decl.TypeRef{"T": "Invoice"}, expect: Match},
		{description: "bound matrix", ref: "T[][]", bounds: map[string]decl.TypeRef{"T": "Invoice"}, expect: Match},
		{description: "bound array to unrelated", ref: "T[]", bounds: map[string]decl.TypeRef{"T": "Car"}, expect: Mismatch},
		{description: "bound varargs to primitive wrapper", ref: "T...", bounds: map[string]decl.TypeRef{"T": "Long"}, expect: Trivial},
		{description: "cyclic array bounds", ref: "T[]", bounds: map[string]decl.TypeRef{"T": "U[]", "U": "T"}, expect: Mismatch},
	}
	oracle := New(WithRegistry(testRegistry())).Oracle("Invoice")
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.EqualValues(t, tc.expect.String(), oracle.Classify(tc.ref, tc.bounds).String())
		})
	}
}

func TestOracle_TransitiveSupertypes(t *testing.T) {
	oracle := New(WithRegistry(testRegistry()), WithTransitiveSupertypes()).Oracle("Invoice")
	assert.EqualValues(t, Match, oracle.Classify("MegaInvoice", nil))
	assert.EqualValues(t, Match, oracle.Classify("SuperInvoice", nil))
	assert.EqualValues(t, Mismatch, oracle.Classify("Car", nil))
}

func TestOracle_EmptyEntity(t *testing.T) {
	checker := New()
	oracle := checker.Oracle(checker.EntityName("DAO"))
	assert.EqualValues(t, "", oracle.Entity())
	assert.EqualValues(t, Mismatch, oracle.Classify("Car", nil))
	assert.EqualValues(t, Trivial, oracle.Classify("int", nil))
}

func TestOracle_TrivialTypes(t *testing.T) {
	replaced := New(WithTrivialTypes("UUID")).Oracle("Invoice")
	assert.EqualValues(t, Trivial, replaced.Classify("UUID", nil))
	assert.EqualValues(t, Mismatch, replaced.Classify("int", nil))

	extended := New(WithExtraTrivialTypes("UUID")).Oracle("Invoice")
	assert.EqualValues(t, Trivial, extended.Classify("UUID", nil))
	assert.EqualValues(t, Trivial, extended.Classify("int", nil))
}

func TestChecker_EntityName(t *testing.T) {
	tests := []struct {
		description string
		suffix      string
		className   string
		expect      string
		isDAO       bool
	}{
		{description: "default suffix", className: "InvoiceDAO", expect: "Invoice", isDAO: true},
		{description: "no suffix", className: "InvoiceService", expect: "InvoiceService"},
		{description: "suffix only", className: "DAO", expect: "", isDAO: true},
		{description: "suffix in the middle", className: "DAOInvoice", expect: "DAOInvoice"},
		{description: "custom suffix", suffix: "Repository", className: "InvoiceRepository", expect: "Invoice", isDAO: true},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var options []Option
			if tc.suffix != "" {
				options = append(options, WithSuffix(tc.suffix))
			}
			checker := New(options...)
			assert.EqualValues(t, tc.expect, checker.EntityName(tc.className))
			assert.EqualValues(t, tc.isDAO, checker.IsDAO(tc.className))
		})
	}
}

func TestChecker_Suffix(t *testing.T) {
	assert.EqualValues(t, DefaultSuffix, New().Suffix())
	checker := New(WithSuffix("Repository"))
	assert.EqualValues(t, "Repository", checker.Suffix())
	assert.True(t, checker.IsDAO("InvoiceRepository"))
	assert.False(t, checker.IsDAO("InvoiceDAO"))
}
